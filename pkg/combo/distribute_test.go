package combo

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistribute(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	mins := []int{1, 2, 3}
	got, err := Distribute(r, 10, mins)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("length = %d, want 10", len(got))
	}
	counts := make([]int, len(mins))
	for _, c := range got {
		if c < 0 || c >= len(mins) {
			t.Fatalf("category %d out of range", c)
		}
		counts[c]++
	}
	for i, m := range mins {
		if counts[i] < m {
			t.Errorf("category %d used %d times, want at least %d", i, counts[i], m)
		}
	}
}

func TestDistributeDeterministic(t *testing.T) {
	a, err := Distribute(rand.New(rand.NewPCG(7, 7)), 8, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Distribute(rand.New(rand.NewPCG(7, 7)), 8, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different output (-a +b):\n%s", diff)
	}
}

func TestDistributeExactFit(t *testing.T) {
	got, err := Distribute(rand.New(rand.NewPCG(3, 4)), 3, []int{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(got)
	if diff := cmp.Diff([]int{0, 0, 1}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDistributeErrors(t *testing.T) {
	tests := []struct {
		name   string
		length int
		mins   []int
		want   error
	}{
		{"no categories", 4, nil, ErrCategoryCount},
		{"zero minimum", 4, []int{1, 0}, ErrCategoryCount},
		{"more categories than length", 2, []int{1, 1, 1}, ErrTooManyCategories},
		{"minimums exceed length", 4, []int{3, 2}, ErrTooManyCategories},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distribute(rand.New(rand.NewPCG(0, 0)), tt.length, tt.mins)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
