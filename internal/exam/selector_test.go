package exam

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func seededSelector(seed uint64) *Selector {
	return NewSelector(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// TestUnseen verifies the complement of the answered set.
func TestUnseen(t *testing.T) {
	answered := IndexSet{}
	answered.Add(1)
	answered.Add(3)
	got := Unseen(5, answered)
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if len(Unseen(0, IndexSet{})) != 0 {
		t.Fatalf("expected empty complement for empty bank")
	}
}

// TestPickUnseenNeverReturnsAnswered verifies answered indices are never drawn.
func TestPickUnseenNeverReturnsAnswered(t *testing.T) {
	selector := seededSelector(7)
	answered := IndexSet{}
	for i := 0; i < 50; i += 2 {
		answered.Add(i)
	}
	for trial := 0; trial < 5000; trial++ {
		index, err := selector.PickUnseen(50, answered)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if answered.Has(index) {
			t.Fatalf("trial %d returned answered index %d", trial, index)
		}
		if index < 0 || index >= 50 {
			t.Fatalf("index %d out of range", index)
		}
	}
}

// TestPickUnseenSingleRemaining verifies the last unseen index is always returned.
func TestPickUnseenSingleRemaining(t *testing.T) {
	const size = 10000
	const remaining = 6173
	selector := seededSelector(11)
	answered := IndexSet{}
	for i := 0; i < size; i++ {
		if i != remaining {
			answered.Add(i)
		}
	}
	for trial := 0; trial < 200; trial++ {
		index, err := selector.PickUnseen(size, answered)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if index != remaining {
			t.Fatalf("expected %d, got %d", remaining, index)
		}
	}
}

// TestPickExhausted verifies an empty candidate set is an error rather than a loop.
func TestPickExhausted(t *testing.T) {
	selector := seededSelector(3)
	answered := IndexSet{}
	answered.Add(0)
	answered.Add(1)
	if _, err := selector.PickUnseen(2, answered); !errors.Is(err, ErrNoUnseenQuestions) {
		t.Fatalf("expected ErrNoUnseenQuestions, got %v", err)
	}
}

// TestPickIsUniform verifies each candidate is drawn with roughly equal frequency.
func TestPickIsUniform(t *testing.T) {
	selector := seededSelector(42)
	candidates := []int{2, 5, 8, 9}
	counts := map[int]int{}
	const draws = 40000
	for i := 0; i < draws; i++ {
		index, err := selector.Pick(candidates)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		counts[index]++
	}
	expected := draws / len(candidates)
	for _, candidate := range candidates {
		if diff := counts[candidate] - expected; diff > 600 || diff < -600 {
			t.Fatalf("candidate %d drawn %d times, expected about %d", candidate, counts[candidate], expected)
		}
	}
}

// TestIndexSetSorted verifies ascending output.
func TestIndexSetSorted(t *testing.T) {
	set := IndexSet{}
	for _, index := range []int{9, 1, 4} {
		set.Add(index)
	}
	got := set.Sorted()
	if len(got) != 3 || got[0] != 1 || got[1] != 4 || got[2] != 9 {
		t.Fatalf("unexpected order %v", got)
	}
}
