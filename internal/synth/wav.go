package synth

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitsPerSample = 16
	numChannels   = 1
	wavFormatPCM  = 1
	wavHeaderSize = 44
)

// sample16 scales a sample in [-1, 1] to a signed 16-bit value.
func sample16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

// PCM16 converts samples in [-1, 1] to little-endian signed 16-bit PCM.
func PCM16(samples []float64) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(sample16(v)))
	}
	return out
}

// WriteWAV writes samples as a mono 16-bit PCM RIFF/WAVE stream. The
// encoder seeks back to fill in chunk sizes, so w must be seekable.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(sample16(v))
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitsPerSample,
	}

	enc := wav.NewEncoder(w, sampleRate, bitsPerSample, numChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}
