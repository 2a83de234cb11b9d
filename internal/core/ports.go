package core

import "context"

// ImageProvider turns a prompt into a URL for a rendered image.
type ImageProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextProvider completes a free-text prompt.
type TextProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Random is the only source of randomness used by the engine and providers.
// IntN returns a value in [0, n) and panics when n <= 0.
type Random interface {
	IntN(n int) int
}
