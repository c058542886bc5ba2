package cli

import (
	"strconv"
	"strings"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
)

// parseInts parses a comma-separated list such as "1,1,2".
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeInvalidArgument, err, "parse %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// parseGroups parses groups written as semicolon-separated integer lists,
// e.g. "0,1,2;0,2;1,3".
func parseGroups(s string) ([][]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return [][]int{}, nil
	}
	parts := strings.Split(s, ";")
	out := make([][]int, len(parts))
	for i, p := range parts {
		g, err := parseInts(p)
		if err != nil {
			return nil, err
		}
		if g == nil {
			g = []int{}
		}
		out[i] = g
	}
	return out, nil
}

// parseSize parses a positional size argument.
func parseSize(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, cerrors.Wrap(cerrors.ErrCodeInvalidArgument, err, "%s must be an integer", name)
	}
	return n, nil
}
