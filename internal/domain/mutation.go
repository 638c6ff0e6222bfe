package domain

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type Mutation struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ResultID  uuid.UUID `json:"result_id"`
	Notation  string    `json:"notation"`
}

// MutationChange is the decoded form of a point mutation notation such as
// "A15V": original residue, 1-based position, replacement residue.
type MutationChange struct {
	Original rune
	Position int
	New      rune
}

// ParseMutation decodes a single mutation notation. The grammar is exactly
// one amino acid letter, one or more digits without zero padding, and one
// amino acid letter. Anything else is reported as not-a-mutation rather than
// an error: the optimization service's output may carry stray tokens that
// are simply skipped downstream.
func ParseMutation(notation string) (MutationChange, bool) {
	runes := []rune(notation)
	if len(runes) < 3 {
		return MutationChange{}, false
	}

	orig := runes[0]
	repl := runes[len(runes)-1]
	if !isAminoAcid(orig) || !isAminoAcid(repl) {
		return MutationChange{}, false
	}

	digits := runes[1 : len(runes)-1]
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return MutationChange{}, false
		}
	}
	if digits[0] == '0' {
		return MutationChange{}, false
	}

	pos, err := strconv.Atoi(string(digits))
	if err != nil || pos < 1 {
		return MutationChange{}, false
	}

	return MutationChange{
		Original: unicode.ToUpper(orig),
		Position: pos,
		New:      unicode.ToUpper(repl),
	}, true
}

// String re-serializes the mutation in canonical uppercase form.
// ParseMutation(m.String()) round-trips for every valid mutation.
func (m MutationChange) String() string {
	return fmt.Sprintf("%c%d%c", m.Original, m.Position, m.New)
}

// Index returns the 0-based position into the raw sequence string.
func (m MutationChange) Index() int {
	return m.Position - 1
}

// FilterMutations keeps only the candidates that parse as mutation notation,
// in input order, canonicalized to uppercase. Unparseable entries are dropped
// silently.
func FilterMutations(candidates []string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if m, ok := ParseMutation(c); ok {
			kept = append(kept, m.String())
		}
	}
	return kept
}
