//go:build !linux

package synth

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/abhisek/tonequiz/internal/log"
	"github.com/abhisek/tonequiz/internal/tones"
)

// OtoPlayer plays schedules in-process through the system audio device.
type OtoPlayer struct {
	renderer *Renderer
	ctx      *oto.Context
	limit    limiter
}

func newOtoPlayer(r *Renderer, maxConcurrent int) (Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   r.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("init audio device: %w", err)
	}
	<-ready
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &OtoPlayer{renderer: r, ctx: ctx, limit: limiter{max: int32(maxConcurrent)}}, nil
}

// Play renders seq and streams it to the audio device asynchronously.
func (p *OtoPlayer) Play(seq []tones.Instruction) {
	if len(seq) == 0 {
		return
	}
	if !p.limit.acquire() {
		log.Debug(log.CatSound, "Concurrent playback limit reached", "tones", len(seq))
		return
	}

	player := p.ctx.NewPlayer(bytes.NewReader(PCM16(p.renderer.Render(seq))))
	player.Play()
	go func() {
		defer p.limit.release()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Debug(log.CatSound, "Failed to close audio player", "error", err)
		}
	}()
}

// Wait blocks until all started playbacks have finished.
func (p *OtoPlayer) Wait() {
	p.limit.wg.Wait()
}
