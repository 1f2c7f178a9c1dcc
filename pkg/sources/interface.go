package sources

import "context"

// Prober checks whether a chapter URL is reachable.
type Prober interface {
	Probe(ctx context.Context, url string) (bool, error)
}
