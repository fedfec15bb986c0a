// Package adversarial embeds an imperceptible, statistically detectable
// pattern into audio that is engineered to degrade machine-learning models
// trained on it, and provides the companion detection heuristic.
package adversarial

import (
	"context"
	"errors"
	"sync"

	"github.com/jacksliwoski/anti-ai-ai-club/internal/detect"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/jitter"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/masking"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/seed"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/spread"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/timbre"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/ultrasonic"
)

var (
	ErrNoAudio           = errors.New("no audio channels provided")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// Detection thresholds for flagging a channel as protected.
const (
	thresholdHF       = 0.01
	thresholdTemporal = 0.1
	thresholdMFCC     = 0.05
)

// defaultFrameLength is the masking analysis frame length.
const defaultFrameLength = 2048

// Protect applies full protection at the options' level and returns the
// protected channels with the verification record. This is a convenience
// function that creates a Watermarker instance and calls its Protect method.
func Protect(ctx context.Context, channels [][]float64, sampleRate int, artist, title string, opts ...Option) ([][]float64, Record, error) {
	w, _ := New(opts...)
	return w.Protect(ctx, channels, sampleRate, artist, title)
}

// Verify reports whether a channel appears to carry the protection pattern.
// This is a convenience function that creates a Watermarker instance and
// calls its Verify method.
func Verify(ctx context.Context, channel []float64, sampleRate int, opts ...Option) (Report, error) {
	w, _ := New(opts...)
	return w.Verify(ctx, channel, sampleRate)
}

// Watermarker applies and detects adversarial protection. A Watermarker is
// stateless across calls apart from its configured profile; independent
// calls share nothing and are safe to run concurrently.
type Watermarker struct {
	level    string
	profile  Profile
	frameLen int
}

// New initializes a Watermarker. The protection level and the masking frame
// length can be optionally specified; unknown level names are silently
// coerced to the default level.
func New(opts ...Option) (*Watermarker, error) {
	w := new(Watermarker)
	if err := w.init(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Watermarker) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return err
		}
	}
	if w.level == "" {
		w.level, w.profile = lookupProfile(DefaultLevel)
	}
	if w.frameLen == 0 {
		w.frameLen = defaultFrameLength
	}
	return nil
}

// Level returns the normalized level name the Watermarker applies.
func (w *Watermarker) Level() string {
	return w.level
}

// Protect derives the signature from (artist, title) and pushes every
// channel through the four-stage pipeline:
//
//  1. Spread-spectrum embedding under the psychoacoustic masking envelope.
//  2. Cepstral feature disruption.
//  3. Content-seeded temporal micro-warping.
//  4. Ultrasonic pattern injection.
//
// Channels are processed independently, each with its own generators and
// buffers. Output channel lengths always equal their input lengths.
func (w *Watermarker) Protect(ctx context.Context, channels [][]float64, sampleRate int, artist, title string) ([][]float64, Record, error) {
	if len(channels) == 0 {
		return nil, Record{}, ErrNoAudio
	}
	if sampleRate <= 0 {
		return nil, Record{}, ErrInvalidSampleRate
	}
	if err := ctx.Err(); err != nil {
		return nil, Record{}, err
	}

	sig := NewSignature(artist, title)

	out := make([][]float64, len(channels))
	var wg sync.WaitGroup
	wg.Add(len(channels))
	for i := range channels {
		go func(i int) {
			defer wg.Done()
			out[i] = w.protectChannel(channels[i], sampleRate, sig)
		}(i)
	}
	wg.Wait()

	record := Record{
		WatermarkSignature: sig.ID,
		ProtectionLevel:    w.level,
		SampleRate:         sampleRate,
		IsStereo:           len(channels) > 1,
		ArtistName:         artist,
		TrackTitle:         title,
		ProtectionFeatures: Features{
			SpreadSpectrum:        true,
			MFCCDisruption:        true,
			TemporalJitter:        true,
			PsychoacousticMasking: true,
		},
	}
	return out, record, nil
}

func (w *Watermarker) protectChannel(channel []float64, sampleRate int, sig Signature) []float64 {
	envelope := masking.Envelope(channel, w.frameLen)

	s := spread.Embed(channel, sig.Bits(), seed.FromString(sig.ID), envelope, sampleRate, spread.Params{
		Strength: w.profile.Strength,
		Bands:    w.profile.Bands,
		Rate:     w.profile.Rate,
	})
	s = timbre.Disrupt(s, sampleRate, w.profile.Disruption, seed.NewRand(seed.Derive(sig.ID, "timbre")))
	s = jitter.Apply(s, sampleRate, w.profile.JitterMS)
	s = ultrasonic.Inject(s, sampleRate, w.profile.Strength, seed.NewRand(seed.Derive(sig.ID, "ultrasonic")))
	return s
}

// Verify scores a channel with the three detection heuristics and combines
// them into a confidence value in [0, 1]. Capability limits (sample rate
// too low for the ultrasonic band, too few beats, degenerate features)
// degrade the corresponding score to 0 rather than failing; short or
// silent input yields a valid near-zero report.
func (w *Watermarker) Verify(ctx context.Context, channel []float64, sampleRate int) (Report, error) {
	if sampleRate <= 0 {
		return Report{}, ErrInvalidSampleRate
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	hf := detect.UltrasonicScore(channel, sampleRate)
	temporal := detect.TemporalScore(channel, sampleRate)
	mfcc := detect.TimbreScore(channel, sampleRate)

	confidence := (hf*10 + temporal + mfcc*5) / 3
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}

	return Report{
		Protected:  hf > thresholdHF || temporal > thresholdTemporal || mfcc > thresholdMFCC,
		Confidence: confidence,
		FeaturesDetected: FeatureFlags{
			HighFrequencyPatterns: hf > thresholdHF,
			TemporalJitter:        temporal > thresholdTemporal,
			MFCCDisruption:        mfcc > thresholdMFCC,
		},
		Scores: Scores{
			HFEnergy:      hf,
			TemporalScore: temporal,
			MFCCScore:     mfcc,
		},
	}, nil
}
