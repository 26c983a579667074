package art

import "context"

// ImageGenerator produces count image references for a single prompt.
// References are either remote URLs or data URLs, depending on the backend.
type ImageGenerator interface {
	GenerateUrls(ctx context.Context, prompt string, count int) ([]string, error)
}
