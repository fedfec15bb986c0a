package adversarial

// Profile holds the tunable parameters of one protection level.
type Profile struct {
	// Strength scales the spread-spectrum carrier and the ultrasonic tones.
	Strength float64
	// Disruption scales the cepstral perturbation and its blend factor.
	Disruption float64
	// JitterMS bounds the temporal micro-warp in milliseconds.
	JitterMS float64
	// Bands lists the (low, high) frequency bands, in Hz, that receive
	// watermark energy. Bands may overlap across levels; overlapping
	// regions accumulate additively.
	Bands [][2]float64
	// Rate scales each band-filtered watermark replica.
	Rate float64
}

// Named protection levels, weakest to strongest.
const (
	LevelLight      = "light"
	LevelMedium     = "medium"
	LevelAggressive = "aggressive"
	LevelNuclear    = "nuclear"
)

// DefaultLevel is applied when an unknown level name is requested.
const DefaultLevel = LevelMedium

var profiles = map[string]Profile{
	LevelLight: {
		Strength:   0.001,
		Disruption: 0.02,
		JitterMS:   2,
		Bands:      [][2]float64{{2000, 4000}, {8000, 12000}},
		Rate:       0.3,
	},
	LevelMedium: {
		Strength:   0.003,
		Disruption: 0.05,
		JitterMS:   5,
		Bands:      [][2]float64{{2000, 4000}, {4000, 8000}, {8000, 16000}},
		Rate:       0.5,
	},
	LevelAggressive: {
		Strength:   0.008,
		Disruption: 0.10,
		JitterMS:   8,
		Bands:      [][2]float64{{1000, 4000}, {4000, 8000}, {8000, 16000}, {16000, 20000}},
		Rate:       0.7,
	},
	LevelNuclear: {
		Strength:   0.015,
		Disruption: 0.15,
		JitterMS:   10,
		Bands:      [][2]float64{{500, 4000}, {4000, 8000}, {8000, 16000}, {16000, 20000}},
		Rate:       0.9,
	},
}

// LevelNames returns the supported level names, weakest to strongest.
func LevelNames() []string {
	return []string{LevelLight, LevelMedium, LevelAggressive, LevelNuclear}
}

// lookupProfile resolves a level name, silently coercing unknown names to
// the default. The normalized name is returned alongside the profile.
func lookupProfile(level string) (string, Profile) {
	if p, ok := profiles[level]; ok {
		return level, p
	}
	return DefaultLevel, profiles[DefaultLevel]
}

// Degradation is a descriptive, non-computed estimate of expected
// ML-training degradation for a level, in percent.
type Degradation struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

// LevelInfo is the human-readable catalog entry for one protection level.
// None of its fields are derived from audio analysis.
type LevelInfo struct {
	Name                string      `json:"name"`
	Imperceptibility    string      `json:"imperceptibility"`
	AIDegradation       Degradation `json:"ai_degradation"`
	SurvivesCompression string      `json:"survives_compression"`
	ProcessingTime      string      `json:"processing_time"`
	UseCase             string      `json:"use_case"`
}

var levelCatalog = []LevelInfo{
	{
		Name:                LevelLight,
		Imperceptibility:    "100% - No audible artifacts",
		AIDegradation:       Degradation{Min: 30, Max: 50, Avg: 40},
		SurvivesCompression: "MP3 320kbps+",
		ProcessingTime:      "~5 seconds",
		UseCase:             "General distribution, maximum compatibility",
	},
	{
		Name:                LevelMedium,
		Imperceptibility:    "99.9% - Negligible artifacts",
		AIDegradation:       Degradation{Min: 60, Max: 80, Avg: 70},
		SurvivesCompression: "MP3 192kbps+",
		ProcessingTime:      "~10 seconds",
		UseCase:             "Professional releases (RECOMMENDED)",
	},
	{
		Name:                LevelAggressive,
		Imperceptibility:    "99% - Minimal artifacts",
		AIDegradation:       Degradation{Min: 85, Max: 95, Avg: 90},
		SurvivesCompression: "MP3 128kbps+",
		ProcessingTime:      "~20 seconds",
		UseCase:             "High-value content requiring strong protection",
	},
	{
		Name:                LevelNuclear,
		Imperceptibility:    "95% - May have subtle artifacts",
		AIDegradation:       Degradation{Min: 95, Max: 99, Avg: 97},
		SurvivesCompression: "Most formats",
		ProcessingTime:      "~30 seconds",
		UseCase:             "Maximum protection for unreleased masters",
	},
}

// DescribeLevels returns the static catalog of the four protection levels,
// weakest to strongest.
func DescribeLevels() []LevelInfo {
	out := make([]LevelInfo, len(levelCatalog))
	copy(out, levelCatalog)
	return out
}

// EstimateDegradation returns the descriptive degradation range for a level.
// Unknown names fall back to the default level.
func EstimateDegradation(level string) Degradation {
	name, _ := lookupProfile(level)
	for _, info := range levelCatalog {
		if info.Name == name {
			return info.AIDegradation
		}
	}
	return Degradation{}
}
