package session

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/abhisek/tonequiz/internal/rounds"
	"github.com/abhisek/tonequiz/internal/tones"
)

// recordingPlayer captures every schedule handed to it.
type recordingPlayer struct {
	played [][]tones.Instruction
}

func (p *recordingPlayer) Play(seq []tones.Instruction) {
	p.played = append(p.played, seq)
}

func (p *recordingPlayer) last() []tones.Instruction {
	if len(p.played) == 0 {
		return nil
	}
	return p.played[len(p.played)-1]
}

func testSession(t *testing.T, values ...int) (*Session, *recordingPlayer) {
	t.Helper()
	p := &recordingPlayer{}
	return New(WithSource(rounds.SequenceSource(values...)), WithPlayer(p)), p
}

// rawState copies the unfiltered state, round digits included.
func rawState(s *Session) SessionState {
	return *s.state
}

func TestNew_InitialState(t *testing.T) {
	s, _ := testSession(t, 0)
	snap := s.Snapshot()

	assert.Equal(t, rounds.ModeRecognition, snap.Mode)
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Streak)
	assert.False(t, snap.ResultVisible)
	assert.False(t, snap.HasRound)
	assert.NotEmpty(t, snap.SessionID)
}

func TestWithMode(t *testing.T) {
	s := New(WithMode(rounds.ModeArithmetic))
	assert.Equal(t, rounds.ModeArithmetic, s.Snapshot().Mode)

	s = New(WithMode(rounds.Mode(9)))
	assert.Equal(t, rounds.ModeRecognition, s.Snapshot().Mode)
}

func TestRecognition_CorrectPick(t *testing.T) {
	s, p := testSession(t, 6)

	snap, err := s.RequestNewRound()
	require.NoError(t, err)
	assert.Equal(t, PhaseRoundActive, snap.Phase)
	assert.False(t, snap.Revealed, "target must stay hidden while the round is active")
	assert.Zero(t, snap.Target)
	require.Len(t, p.played, 1)
	assert.Equal(t, tones.FrequencyOf(6), p.last()[0].Frequency)

	snap, err = s.SelectDigit(6)
	require.NoError(t, err)
	assert.Equal(t, PhaseResultShown, snap.Phase)
	assert.True(t, snap.ResultVisible)
	assert.True(t, snap.LastCorrect)
	assert.True(t, snap.Revealed)
	assert.Equal(t, tones.Digit(6), snap.Target)
	assert.Equal(t, rounds.Answer("6"), snap.Answer)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 1, snap.Streak)
	assert.True(t, slices.Equal(tones.Success(), p.last()))
}

func TestRecognition_WrongPickResetsStreak(t *testing.T) {
	s, p := testSession(t, 2, 2, 8)

	for i := 0; i < 2; i++ {
		_, err := s.RequestNewRound()
		require.NoError(t, err)
		_, err = s.SelectDigit(2)
		require.NoError(t, err)
	}
	require.Equal(t, 2, s.Snapshot().Streak)

	_, err := s.RequestNewRound()
	require.NoError(t, err)
	snap, err := s.SelectDigit(3)
	require.NoError(t, err)

	assert.False(t, snap.LastCorrect)
	assert.Equal(t, 2, snap.Score)
	assert.Zero(t, snap.Streak)
	assert.Equal(t, 3, snap.Attempts)
	assert.True(t, slices.Equal(tones.Failure(), p.last()))
}

func TestRecognition_OneSubmissionPerRound(t *testing.T) {
	s, _ := testSession(t, 1)
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	_, err = s.SelectDigit(1)
	require.NoError(t, err)

	_, err = s.SelectDigit(1)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, s.Snapshot().Score)
}

func TestArithmetic_EndToEnd(t *testing.T) {
	s, p := testSession(t, 4, 5)

	_, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)

	snap, err := s.RequestNewRound()
	require.NoError(t, err)
	assert.False(t, snap.Revealed)
	require.Len(t, p.last(), 2)
	assert.Equal(t, tones.DefaultArithmeticGap, p.last()[1].Start)

	_, err = s.InputDigit(0)
	require.NoError(t, err)
	snap, err = s.InputDigit(9)
	require.NoError(t, err)
	assert.Equal(t, rounds.Answer("09"), snap.Answer)
	assert.Equal(t, tones.FrequencyOf(9), p.last()[0].Frequency, "input digit plays its own tone")

	snap, err = s.SubmitAnswer()
	require.NoError(t, err)
	assert.True(t, snap.LastCorrect)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 1, snap.Streak)
	assert.True(t, snap.ResultVisible)
	assert.Equal(t, tones.Digit(4), snap.First)
	assert.Equal(t, tones.Digit(5), snap.Second)
	assert.Equal(t, 9, snap.Sum)
}

func TestArithmetic_EmptySubmissionIsWrong(t *testing.T) {
	s, _ := testSession(t, 0, 0)
	_, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	_, err = s.RequestNewRound()
	require.NoError(t, err)

	snap, err := s.SubmitAnswer()
	require.NoError(t, err)
	assert.False(t, snap.LastCorrect, "no answer never matches, even a sum of 0")
	assert.Zero(t, snap.Streak)
}

func TestArithmetic_ClearInputIdempotent(t *testing.T) {
	s, _ := testSession(t, 3, 3)
	_, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	_, err = s.RequestNewRound()
	require.NoError(t, err)
	_, err = s.InputDigit(7)
	require.NoError(t, err)

	snap, err := s.ClearInput()
	require.NoError(t, err)
	assert.True(t, snap.Answer.Empty())

	snap, err = s.ClearInput()
	require.NoError(t, err)
	assert.True(t, snap.Answer.Empty())
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		mode rounds.Mode
		run  func(s *Session) error
	}{
		{"input digit in recognition", rounds.ModeRecognition, func(s *Session) error {
			_, _ = s.RequestNewRound()
			_, err := s.InputDigit(1)
			return err
		}},
		{"select digit in arithmetic", rounds.ModeArithmetic, func(s *Session) error {
			_, _ = s.RequestNewRound()
			_, err := s.SelectDigit(1)
			return err
		}},
		{"select digit while idle", rounds.ModeRecognition, func(s *Session) error {
			_, err := s.SelectDigit(1)
			return err
		}},
		{"submit while idle", rounds.ModeArithmetic, func(s *Session) error {
			_, err := s.SubmitAnswer()
			return err
		}},
		{"clear while idle", rounds.ModeArithmetic, func(s *Session) error {
			_, err := s.ClearInput()
			return err
		}},
		{"dismiss without result", rounds.ModeRecognition, func(s *Session) error {
			_, err := s.DismissResult()
			return err
		}},
		{"new round while active", rounds.ModeRecognition, func(s *Session) error {
			_, _ = s.RequestNewRound()
			_, err := s.RequestNewRound()
			return err
		}},
		{"replay while idle", rounds.ModeRecognition, func(s *Session) error {
			_, err := s.ReplayCues()
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testSession(t, 1, 2)
			_, err := s.SwitchMode(tt.mode)
			require.NoError(t, err)

			err = tt.run(s)
			require.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestInvalidTransition_LeavesStateUnchanged(t *testing.T) {
	s, _ := testSession(t, 5)
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	before := rawState(s)

	_, err = s.InputDigit(4)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, rawState(s))
}

func TestInvalidDigit(t *testing.T) {
	s, _ := testSession(t, 5)
	_, err := s.RequestNewRound()
	require.NoError(t, err)

	_, err = s.SelectDigit(10)
	require.ErrorIs(t, err, tones.ErrInvalidDigit)
	assert.Equal(t, PhaseRoundActive, s.Snapshot().Phase)

	_, err = s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	_, err = s.RequestNewRound()
	require.NoError(t, err)
	_, err = s.InputDigit(-1)
	require.ErrorIs(t, err, tones.ErrInvalidDigit)
}

func TestInvalidSource(t *testing.T) {
	s, p := testSession(t, 11)
	_, err := s.RequestNewRound()
	require.ErrorIs(t, err, tones.ErrInvalidDigit)
	assert.Equal(t, PhaseIdle, s.Snapshot().Phase)
	assert.Empty(t, p.played)
}

func TestSwitchMode_InvalidMode(t *testing.T) {
	s, _ := testSession(t, 1)
	_, err := s.SwitchMode(rounds.Mode(42))
	require.True(t, errors.Is(err, ErrInvalidMode))
}

func TestSwitchMode_KeepsTally(t *testing.T) {
	s, _ := testSession(t, 3)
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	_, err = s.SelectDigit(3)
	require.NoError(t, err)

	snap, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 1, snap.Streak)
	assert.False(t, snap.ResultVisible)
	assert.False(t, snap.HasRound)
	assert.True(t, snap.Answer.Empty())
	assert.Equal(t, PhaseIdle, snap.Phase)
}

func TestDismissResult_KeepsHistory(t *testing.T) {
	s, _ := testSession(t, 7, 1)
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	_, err = s.SelectDigit(2)
	require.NoError(t, err)

	snap, err := s.DismissResult()
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.False(t, snap.ResultVisible)
	assert.True(t, snap.Revealed, "finished round stays visible until the next request")
	assert.Equal(t, tones.Digit(7), snap.Target)

	snap, err = s.RequestNewRound()
	require.NoError(t, err)
	assert.False(t, snap.ResultVisible)
	assert.False(t, snap.Revealed)
	assert.Equal(t, rounds.RecognitionRound{Target: 1}, rawState(s).Round)
}

func TestReplayCues(t *testing.T) {
	s, p := testSession(t, 4, 8)
	_, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	_, err = s.RequestNewRound()
	require.NoError(t, err)

	_, err = s.ReplayCues()
	require.NoError(t, err)
	require.Len(t, p.played, 2)
	assert.Equal(t, p.played[0], p.played[1])
}

func TestPressDigit_RoutesByMode(t *testing.T) {
	s, _ := testSession(t, 2, 1, 1)
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	snap, err := s.PressDigit(2)
	require.NoError(t, err)
	assert.True(t, snap.ResultVisible)

	_, err = s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)
	_, err = s.RequestNewRound()
	require.NoError(t, err)
	snap, err = s.PressDigit(2)
	require.NoError(t, err)
	assert.False(t, snap.ResultVisible)
	assert.Equal(t, rounds.Answer("2"), snap.Answer)
}

func TestMilestone(t *testing.T) {
	s, _ := testSession(t, 0)
	for i := 0; i < 5; i++ {
		_, err := s.RequestNewRound()
		require.NoError(t, err)
		snap, err := s.SelectDigit(0)
		require.NoError(t, err)
		assert.Equal(t, i == 4, snap.Milestone, "round %d", i+1)
	}
}

func TestWithSequencer(t *testing.T) {
	p := &recordingPlayer{}
	seq := tones.Sequencer{ToneDuration: 100 * time.Millisecond, Gap: 250 * time.Millisecond}
	s := New(WithSource(rounds.SequenceSource(1, 2)), WithPlayer(p), WithSequencer(seq), WithMode(rounds.ModeArithmetic))

	_, err := s.RequestNewRound()
	require.NoError(t, err)
	require.Len(t, p.last(), 2)
	assert.Equal(t, 250*time.Millisecond, p.last()[1].Start)
	assert.Equal(t, 100*time.Millisecond, p.last()[0].Duration)
}

func TestPlayerFunc(t *testing.T) {
	var got int
	s := New(WithSource(rounds.SequenceSource(3)), WithPlayer(PlayerFunc(func(seq []tones.Instruction) {
		got += len(seq)
	})))
	_, err := s.RequestNewRound()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// Any interleaving of host calls keeps the tally invariants intact.
func TestProperty_SessionInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(WithSource(func() int { return 3 }))
		prev := s.Snapshot()

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 7).Draw(t, "op")
			d := tones.Digit(rapid.IntRange(0, 9).Draw(t, "digit"))

			var snap Snapshot
			switch op {
			case 0:
				mode := rounds.AllModes()[rapid.IntRange(0, 1).Draw(t, "mode")]
				snap, _ = s.SwitchMode(mode)
				if snap.Score != prev.Score || snap.Streak != prev.Streak {
					t.Fatalf("SwitchMode changed tally: %+v -> %+v", prev, snap)
				}
				if snap.ResultVisible || !snap.Answer.Empty() {
					t.Fatalf("SwitchMode left result or answer: %+v", snap)
				}
			case 1:
				snap, _ = s.RequestNewRound()
			case 2:
				snap, _ = s.SelectDigit(d)
			case 3:
				snap, _ = s.InputDigit(d)
			case 4:
				snap, _ = s.ClearInput()
			case 5:
				snap, _ = s.SubmitAnswer()
			case 6:
				snap, _ = s.DismissResult()
			case 7:
				snap, _ = s.ReplayCues()
			}

			if snap.Score < prev.Score {
				t.Fatalf("score decreased: %d -> %d", prev.Score, snap.Score)
			}
			if snap.Streak != 0 && snap.Streak < prev.Streak {
				t.Fatalf("streak decreased without reset: %d -> %d", prev.Streak, snap.Streak)
			}
			if snap.ResultVisible != (snap.Phase == PhaseResultShown) {
				t.Fatalf("result visibility %v in phase %v", snap.ResultVisible, snap.Phase)
			}
			if snap.Phase == PhaseRoundActive && snap.Revealed {
				t.Fatal("round revealed while active")
			}
			prev = snap
		}
	})
}

func TestSnapshot_OnlyViewOfActiveRound(t *testing.T) {
	s, _ := testSession(t, 7, 8)
	_, err := s.SwitchMode(rounds.ModeArithmetic)
	require.NoError(t, err)

	snap, err := s.RequestNewRound()
	require.NoError(t, err)
	assert.Equal(t, rounds.ArithmeticRound{First: 7, Second: 8, Sum: 15}, rawState(s).Round)
	assert.False(t, snap.Revealed)
	assert.Zero(t, snap.First)
	assert.Zero(t, snap.Second)
	assert.Zero(t, snap.Sum)
}
