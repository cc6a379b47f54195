package selector

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstN is a deterministic Source picking the first k indexes.
type firstN struct{}

func (firstN) Pick(n, k int) []int {
	if k > n {
		k = n
	}
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSelect_ExcludesIDs(t *testing.T) {
	s := New(firstN{})

	got := s.Select([]string{"u1", "u2", "u3", "u4"}, Exclude("u1", "u3"), 2)

	assert.Equal(t, []string{"u2", "u4"}, got)
}

func TestSelect_PoolSmallerThanK(t *testing.T) {
	s := New(firstN{})

	got := s.Select([]string{"u1", "u2"}, Exclude("u1"), 2)

	assert.Equal(t, []string{"u2"}, got)
}

func TestSelect_EmptyPool(t *testing.T) {
	s := New(firstN{})

	assert.Empty(t, s.Select(nil, nil, 2))
	assert.Empty(t, s.Select([]string{"u1"}, Exclude("u1"), 2))
}

func TestSelect_SeededSourceIsDeterministic(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e"}

	first := New(NewSource(42)).Select(candidates, nil, 2)
	second := New(NewSource(42)).Select(candidates, nil, 2)

	assert.Equal(t, first, second)
}

func TestSelect_WithoutReplacement(t *testing.T) {
	s := New(NewSource(1))
	candidates := []string{"a", "b", "c", "d"}

	for i := 0; i < 100; i++ {
		got := s.Select(candidates, nil, 3)
		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, id := range got {
			require.False(t, seen[id], "duplicate selection %q", id)
			seen[id] = true
		}
	}
}

func TestSelect_EveryCandidateReachable(t *testing.T) {
	s := New(NewSource(7))
	candidates := []string{"a", "b", "c"}

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		for _, id := range s.Select(candidates, nil, 1) {
			seen[id]++
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, candidates, keys, "all candidates should be drawn eventually")
}

func TestSource_ConcurrentPick(t *testing.T) {
	src := NewSource(3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got := src.Pick(10, 2)
				require.Len(t, got, 2)
			}
		}()
	}
	wg.Wait()
}
