package adversarial

// Features lists the techniques applied during protection. All four are
// always applied; the flags exist so the record stays self-describing when
// serialized.
type Features struct {
	SpreadSpectrum        bool `json:"spread_spectrum"`
	MFCCDisruption        bool `json:"mfcc_disruption"`
	TemporalJitter        bool `json:"temporal_jitter"`
	PsychoacousticMasking bool `json:"psychoacoustic_masking"`
}

// Record is the durable verification metadata produced by Protect. It is a
// flat structure suitable for JSON interchange.
type Record struct {
	WatermarkSignature string   `json:"watermark_signature"`
	ProtectionLevel    string   `json:"protection_level"`
	SampleRate         int      `json:"sample_rate"`
	IsStereo           bool     `json:"is_stereo"`
	ArtistName         string   `json:"artist_name"`
	TrackTitle         string   `json:"track_title"`
	ProtectionFeatures Features `json:"protection_features"`
}

// FeatureFlags are the per-technique detections of a verification pass.
type FeatureFlags struct {
	HighFrequencyPatterns bool `json:"high_frequency_patterns"`
	TemporalJitter        bool `json:"temporal_jitter"`
	MFCCDisruption        bool `json:"mfcc_disruption"`
}

// Scores are the raw per-feature detector outputs.
type Scores struct {
	HFEnergy      float64 `json:"hf_energy"`
	TemporalScore float64 `json:"temporal_score"`
	MFCCScore     float64 `json:"mfcc_score"`
}

// Report is the result of a verification pass. The detector is a statistical
// heuristic over generic spectral, temporal and cepstral statistics; it does
// not decode the embedded payload, so a positive report estimates likelihood
// rather than proving a specific watermark is present.
type Report struct {
	Protected        bool         `json:"is_protected"`
	Confidence       float64      `json:"confidence"`
	FeaturesDetected FeatureFlags `json:"features_detected"`
	Scores           Scores       `json:"scores"`
}
