package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type SequenceSource string

const (
	SourceUserInput SequenceSource = "user_input"
	SourceGenerated SequenceSource = "generated"
	SourceImported  SequenceSource = "imported"
)

type Sequence struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	ProjectID uuid.UUID      `json:"project_id"`
	Name      string         `json:"name"`
	Sequence  string         `json:"sequence"`
	Length    int            `json:"length"`
	Source    SequenceSource `json:"source"`

	// Computed fields (populated by the aggregate listing query)
	Optimizations []*OptimizationResult `json:"optimizations,omitempty"`
}

// aminoAlphabet holds the 20 standard single-letter amino acid codes.
const aminoAlphabet = "ACDEFGHIKLMNPQRSTVWY"

// NormalizeSequence strips whitespace, uppercases and validates a raw protein
// sequence against the standard amino acid alphabet. It is pure: feeding a
// normalized sequence back in returns it unchanged.
func NormalizeSequence(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if !strings.ContainsRune(aminoAlphabet, r) {
			return "", ErrInvalidAlphabet
		}
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "", ErrEmptySequence
	}
	return b.String(), nil
}

func isAminoAcid(r rune) bool {
	return strings.ContainsRune(aminoAlphabet, unicode.ToUpper(r))
}
