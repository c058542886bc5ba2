package cli

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/combikit/pkg/combo"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// Named character sets for --charsets.
var charsets = map[string]string{
	"lower":  "abcdefghijklmnopqrstuvwxyz",
	"upper":  "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"digit":  "0123456789",
	"symbol": "!#$%&*+-=?@^_~",
}

// distributeCommand creates the distribute command.
func (c *CLI) distributeCommand() *cobra.Command {
	var (
		length int
		mins   string
		sets   string
		seed   uint64
		out    outputFlags
	)

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Randomly assign categories to slots with per-category minimums",
		Long: `Assign one of several categories to each of --length slots.

Category i gets at least the i-th value of --min slots; the remaining slots
are drawn uniformly and the result is shuffled. With --charsets each
category is a character set and the command prints a random string, e.g. a
password with at least one digit and one symbol.

Without --seed the generator is seeded from crypto/rand.`,
		Example: `  combikit distribute --length 8 --min 1,1,2
  combikit distribute --length 16 --min 1,1,1,1 --charsets lower,upper,digit,symbol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			minimums, err := parseInts(mins)
			if err != nil {
				return err
			}
			alphabets, err := parseCharsets(sets, len(minimums))
			if err != nil {
				return err
			}

			r, err := newRand(cmd.Flags().Changed("seed"), seed)
			if err != nil {
				return err
			}
			slots, err := combo.Distribute(r, length, minimums)
			if err != nil {
				return pipeline.Classify(err)
			}

			res := result{value: slots, text: func(w io.Writer) error {
				_, err := fmt.Fprintln(w, joinSlots(slots))
				return err
			}}
			if alphabets != nil {
				s := fill(r, slots, alphabets)
				res = result{value: s, text: func(w io.Writer) error {
					_, err := fmt.Fprintln(w, s)
					return err
				}}
			}
			return out.write(cmd.Context(), res)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 12, "number of slots")
	cmd.Flags().StringVar(&mins, "min", "1", "minimum slots per category, comma-separated")
	cmd.Flags().StringVar(&sets, "charsets", "", "character set per category: names (lower, upper, digit, symbol) or literal characters")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	out.register(cmd, rowFormats)
	return cmd
}

// parseCharsets resolves a comma-separated list of set names or literal
// alphabets. It returns nil when s is empty.
func parseCharsets(s string, categories int) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	if len(fields) != categories {
		return nil, cerrors.New(cerrors.ErrCodeInvalidArgument, "%d charsets for %d categories", len(fields), categories)
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		if named, ok := charsets[f]; ok {
			f = named
		}
		if f == "" {
			return nil, cerrors.New(cerrors.ErrCodeInvalidArgument, "charset %d is empty", i)
		}
		out[i] = f
	}
	return out, nil
}

func newRand(seeded bool, seed uint64) (*rand.Rand, error) {
	if seeded {
		return rand.New(rand.NewPCG(seed, seed)), nil
	}
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return rand.New(rand.NewChaCha8(key)), nil
}

// fill draws one character per slot from the slot's category.
func fill(r *rand.Rand, slots []int, alphabets []string) string {
	var b strings.Builder
	for _, cat := range slots {
		chars := []rune(alphabets[cat])
		b.WriteRune(chars[r.IntN(len(chars))])
	}
	return b.String()
}

func joinSlots(slots []int) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, " ")
}
