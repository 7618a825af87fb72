// Package quote looks up live market prices for portfolio symbols. The
// lookup is an unreliable external collaborator: a Provider may return a
// partial map, or an empty one, and callers must treat a missing symbol as
// "no live price available this cycle", falling back to the average price,
// never as a fatal error.
package quote

import (
	"context"

	"github.com/ebal/folio"
)

// Provider fetches current quotes for a set of symbols. The returned map
// may be missing any or all of the requested symbols.
type Provider interface {
	Fetch(ctx context.Context, symbols []string) (map[string]folio.Quote, error)
}

// None is a Provider that never has prices, used when lookups are disabled.
type None struct{}

// Fetch returns an empty quote map.
func (None) Fetch(ctx context.Context, symbols []string) (map[string]folio.Quote, error) {
	return map[string]folio.Quote{}, nil
}
