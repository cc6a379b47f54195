// Package selector implements random reviewer selection.
//
// Selection is uniform without replacement over a candidate pool. The
// randomness comes from an injected Source so tests can pin the outcome.
package selector

import (
	"math/rand"
	"sync"
)

// Source yields k distinct indexes in [0, n), uniformly at random.
type Source interface {
	Pick(n, k int) []int
}

type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a seeded Source safe for concurrent use.
// The source is not cryptographically secure; reviewer assignment
// does not need it to be.
func NewSource(seed int64) Source {
	//nolint:gosec // G404: non-cryptographic selection
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Pick(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Perm(n)[:k]
}

// Selector chooses reviewers from a candidate pool.
type Selector struct {
	src Source
}

// New returns a Selector backed by the given Source.
func New(src Source) *Selector {
	return &Selector{src: src}
}

// Select draws up to k user ids from candidates, skipping excluded ids.
// It returns min(pool size, k) ids and never fails: an empty pool yields
// an empty selection.
func (s *Selector) Select(candidates []string, excluded map[string]struct{}, k int) []string {
	pool := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if _, skip := excluded[id]; !skip {
			pool = append(pool, id)
		}
	}

	picked := s.src.Pick(len(pool), k)
	selected := make([]string, 0, len(picked))
	for _, i := range picked {
		selected = append(selected, pool[i])
	}
	return selected
}

// Exclude builds an exclusion set from user ids.
func Exclude(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
