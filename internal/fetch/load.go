package fetch

import (
	"context"
	"errors"

	"github.com/johnsonav1992/remix-v3-experimental/internal/store/poststore"
)

// ErrInFlight is returned by Load when the store is already loading.
var ErrInFlight = errors.New("posts load already in flight")

// Load runs one complete load against st: Begin, fetch, Resolve.
// Subscribers of st are notified exactly twice. The returned error is the
// same one recorded in the store.
func Load(ctx context.Context, st *poststore.Store, f Fetcher) error {
	if !st.Begin() {
		return ErrInFlight
	}
	posts, err := f.FetchPosts(ctx)
	st.Resolve(posts, err)
	return err
}
