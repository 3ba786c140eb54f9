package ports

import "context"

// ContentCache is a TTL'd byte cache for public content responses. Get
// reports a miss with (nil, false, nil); expiry is the implementation's
// concern.
type ContentCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context, key string) error
}
