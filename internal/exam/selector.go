package exam

import (
	"math/rand/v2"
	"sort"
)

// IndexSet is a set of question indices.
type IndexSet map[int]struct{}

// Has reports whether index is in the set.
func (s IndexSet) Has(index int) bool {
	_, ok := s[index]
	return ok
}

// Add inserts index into the set.
func (s IndexSet) Add(index int) {
	s[index] = struct{}{}
}

// Len returns the set size.
func (s IndexSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for index := range s {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// Unseen returns the indices in [0, size) that are not in answered, ascending.
func Unseen(size int, answered IndexSet) []int {
	out := make([]int, 0, max(size-answered.Len(), 0))
	for i := 0; i < size; i++ {
		if !answered.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Selector draws question indices uniformly from an explicit candidate set.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a selector using rng. A nil rng uses a randomly seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng}
}

// Pick returns one of candidates chosen uniformly at random.
func (s *Selector) Pick(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoUnseenQuestions
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

// PickUnseen returns an index in [0, size) not in answered, chosen uniformly at random.
func (s *Selector) PickUnseen(size int, answered IndexSet) (int, error) {
	return s.Pick(Unseen(size, answered))
}
