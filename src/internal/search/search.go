// Package search runs the combined all-sources query.
package search

import (
	"context"
	"fmt"
	"sync"

	"citations/src/internal/crossref"
	"citations/src/internal/googlebooks"
	"citations/src/internal/openlibrary"
	"citations/src/internal/schema"
)

// Attempt records the outcome of one source query.
type Attempt struct {
	Source string
	Err    error
}

// Func is the shape shared by the three source search clients.
type Func func(ctx context.Context, query string, limit int) ([]schema.Citation, error)

var sources = []struct {
	name string
	fn   Func
}{
	{schema.SourceCrossref, crossref.Search},
	{schema.SourceGoogleBooks, googlebooks.Search},
	{schema.SourceOpenLibrary, openlibrary.Search},
}

// All queries the three sources concurrently. A failing source never blocks
// the others and partial results are valid output; the returned error is
// non-nil only when every source fails. Results are concatenated in fixed
// source order so output is deterministic regardless of completion order.
func All(ctx context.Context, query string, limit int) ([]schema.Citation, []Attempt, error) {
	results := make([][]schema.Citation, len(sources))
	attempts := make([]Attempt, len(sources))
	var wg sync.WaitGroup
	for i, s := range sources {
		wg.Add(1)
		go func(i int, name string, fn Func) {
			defer wg.Done()
			cs, err := fn(ctx, query, limit)
			results[i] = cs
			attempts[i] = Attempt{Source: name, Err: err}
		}(i, s.name, s.fn)
	}
	wg.Wait()
	var out []schema.Citation
	failed := 0
	for i := range sources {
		if attempts[i].Err != nil {
			failed++
			continue
		}
		out = append(out, results[i]...)
	}
	if failed == len(sources) {
		return nil, attempts, fmt.Errorf("search: all sources failed for %q", query)
	}
	return out, attempts, nil
}
