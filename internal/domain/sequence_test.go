package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "MKV", "MKV"},
		{"lowercase", "mkv", "MKV"},
		{"mixed case", "mKvLy", "MKVLY"},
		{"interior whitespace", "MKV LYA", "MKVLYA"},
		{"edge whitespace", "  MKV\t\n", "MKV"},
		{"full alphabet", "acdefghiklmnpqrstvwy", "ACDEFGHIKLMNPQRSTVWY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSequence(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSequence_InvalidAlphabet(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ambiguity code B", "MKB"},
		{"ambiguity code X", "XKV"},
		{"stop symbol", "MKV*"},
		{"digit", "MK1V"},
		{"punctuation", "MK-V"},
		{"lowercase invalid", "mkz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeSequence(tt.input)
			assert.ErrorIs(t, err, ErrInvalidAlphabet)
		})
	}
}

func TestNormalizeSequence_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n "} {
		_, err := NormalizeSequence(input)
		assert.ErrorIs(t, err, ErrEmptySequence)
	}
}

func TestNormalizeSequence_Idempotent(t *testing.T) {
	normalized, err := NormalizeSequence(" mkv lya ")
	assert.NoError(t, err)

	again, err := NormalizeSequence(normalized)
	assert.NoError(t, err)
	assert.Equal(t, normalized, again)
}

func TestNormalizeSequence_LongInput(t *testing.T) {
	long := strings.Repeat("MKVLYA", 10000)
	got, err := NormalizeSequence(long)
	assert.NoError(t, err)
	assert.Len(t, got, len(long))
}
