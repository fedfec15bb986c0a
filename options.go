package adversarial

type Option func(*Watermarker) error

// WithLevel selects one of the named protection levels. An unrecognized
// name is silently coerced to the default level; this is an explicit
// fallback, not an error.
func WithLevel(name string) Option {
	return func(w *Watermarker) error {
		w.level, w.profile = lookupProfile(name)
		return nil
	}
}

// WithFrameLength sets the masking analysis frame length. Values below 256
// are raised to 256.
func WithFrameLength(n int) Option {
	return func(w *Watermarker) error {
		if n < 256 {
			n = 256
		}
		w.frameLen = n
		return nil
	}
}
