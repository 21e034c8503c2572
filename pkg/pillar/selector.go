package pillar

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// TaglineSlots is the number of letters per category in the homepage tagline:
// "The MEME is the Magic / The Magic is the MEME" has four M and four E letters.
const TaglineSlots = 4

// Assignment binds tagline letter slots to sampled pillar names. It lives for a
// single page view and is never persisted.
type Assignment struct {
	M []string
	E []string
}

// Selector draws random samples without replacement. The zero value is not
// usable; construct with NewSelector.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector returns a selector backed by src. A nil src is replaced with a
// PCG generator seeded from crypto/rand.
func NewSelector(src rand.Source) *Selector {
	if src == nil {
		src = rand.NewPCG(newSeed(), newSeed())
	}
	return &Selector{rnd: rand.New(src)}
}

// Shuffle returns a uniformly random permutation of a copy of items.
// Starting from the last index i, each element is swapped with a uniformly
// chosen element at an index <= i.
func (s *Selector) Shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(out) - 1; i > 0; i-- {
		j := s.rnd.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns k distinct elements of items in random order. When k exceeds
// len(items) the whole shuffled list is returned; k <= 0 yields an empty slice.
func (s *Selector) Sample(items []string, k int) []string {
	if k <= 0 {
		return []string{}
	}
	shuffled := s.Shuffle(items)
	if k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k:k]
}

// Assign samples k pillars from each category independently.
func (s *Selector) Assign(r *Registry, k int) Assignment {
	return Assignment{
		M: s.Sample(r.AllPillars(CategoryM), k),
		E: s.Sample(r.AllPillars(CategoryE), k),
	}
}

// newSeed reads 8 bytes from crypto/rand, falling back to the clock if the
// system source is unavailable.
func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
