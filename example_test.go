package adversarial_test

import (
	"context"
	"fmt"
	"math"

	adversarial "github.com/jacksliwoski/anti-ai-ai-club"
)

func Example_protect() {
	// Build two seconds of a 440 Hz tone as the track to protect.
	sampleRate := 44100
	samples := make([]float64, 2*sampleRate)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate))
	}

	w, err := adversarial.New(adversarial.WithLevel(adversarial.LevelMedium))
	if err != nil {
		fmt.Printf("Error creating watermarker: %v\n", err)
		return
	}

	ctx := context.Background()
	protected, record, err := w.Protect(ctx, [][]float64{samples}, sampleRate, "Example Artist", "Example Track")
	if err != nil {
		fmt.Printf("Error protecting audio: %v\n", err)
		return
	}

	// The output has the same shape as the input and carries a signature
	// derived only from the artist and title.
	fmt.Println("channels:", len(protected))
	fmt.Println("samples:", len(protected[0]))
	fmt.Println("level:", record.ProtectionLevel)
	fmt.Println("signature:", record.WatermarkSignature)

	report, err := w.Verify(ctx, protected[0], sampleRate)
	if err != nil {
		fmt.Printf("Error verifying audio: %v\n", err)
		return
	}
	fmt.Println("verified:", report.Confidence >= 0 && report.Confidence <= 1)

	// Output:
	// channels: 1
	// samples: 88200
	// level: medium
	// signature: 21de6425088d6d30ffee674acf8f04e5
	// verified: true
}
