package ports

import "context"

// Port: a boundary for caching rendered log images.
// Keys are content hashes of the full render input, so a hit is always
// byte-identical to a fresh render (the pipeline is idempotent).
type RenderCache interface {
	// Look up a cached render. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Store a rendered image under its input hash.
	Put(ctx context.Context, key string, payload []byte) error
}
