// Package wavio is the audio load/save boundary. It decodes WAV files into
// per-channel float64 samples and encodes protected output as 16-bit PCM.
// This is the only place I/O errors surface to callers.
package wavio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const outputBitDepth = 16

// Load reads a WAV file into deinterleaved channels in [-1, 1] plus the
// sample rate.
func Load(path string) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, 0, fmt.Errorf("decode wav %s: no audio data", path)
	}

	numCh := buf.Format.NumChannels
	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = outputBitDepth
	}
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / numCh
	channels := make([][]float64, numCh)
	for c := range channels {
		channels[c] = make([]float64, frames)
		for i := range frames {
			channels[c][i] = float64(buf.Data[i*numCh+c]) / scale
		}
	}
	return channels, buf.Format.SampleRate, nil
}

// Save writes channels as 16-bit PCM WAV, clamping samples to [-1, 1].
func Save(path string, channels [][]float64, sampleRate int) error {
	if len(channels) == 0 {
		return fmt.Errorf("save wav %s: no channels", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create audio: %w", err)
	}
	defer f.Close()

	numCh := len(channels)
	frames := len(channels[0])
	data := make([]int, frames*numCh)
	for c, ch := range channels {
		for i, v := range ch {
			if v > 1 {
				v = 1
			}
			if v < -1 {
				v = -1
			}
			data[i*numCh+c] = int(v * 32767)
		}
	}

	enc := wav.NewEncoder(f, sampleRate, outputBitDepth, numCh, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numCh, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: outputBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav %s: %w", path, err)
	}
	return nil
}

// Downmix averages channels into a single mono channel for analysis.
func Downmix(channels [][]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	if len(channels) == 1 {
		out := make([]float64, len(channels[0]))
		copy(out, channels[0])
		return out
	}
	out := make([]float64, len(channels[0]))
	for i := range out {
		var sum float64
		for _, ch := range channels {
			if i < len(ch) {
				sum += ch[i]
			}
		}
		out[i] = sum / float64(len(channels))
	}
	return out
}
