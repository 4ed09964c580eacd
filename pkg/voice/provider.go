package voice

import "context"

// Provider synthesizes speech audio from a script.
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
