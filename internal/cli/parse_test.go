package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "3", []int{3}, false},
		{"list", "1, 1,2", []int{1, 1, 2}, false},
		{"negative", "-1,4", []int{-1, 4}, false},
		{"garbage", "1,x", nil, true},
		{"trailing comma", "1,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInts(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseInts(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseInts(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseGroups(t *testing.T) {
	got, err := parseGroups("0,1,2;0,2;1,3")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 1, 2}, {0, 2}, {1, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseGroups mismatch (-want +got):\n%s", diff)
	}

	// An empty segment becomes an empty group, which the enumerator rejects.
	got, err = parseGroups("0;;1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || len(got[1]) != 0 {
		t.Errorf("parseGroups(\"0;;1\") = %v", got)
	}

	if _, err := parseGroups("0;a"); !cerrors.Is(err, cerrors.ErrCodeInvalidArgument) {
		t.Errorf("bad group: err = %v", err)
	}
}

func TestParseSize(t *testing.T) {
	if n, err := parseSize("n", "7"); err != nil || n != 7 {
		t.Errorf("parseSize(7) = %d, %v", n, err)
	}
	if _, err := parseSize("n", "seven"); err == nil {
		t.Error("parseSize should reject non-integers")
	}
}
