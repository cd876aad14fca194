package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNames(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trims and lowercases",
			input:    []string{"  Acme  ", "GOOGLE"},
			expected: []string{"acme", "google"},
		},
		{
			name:     "deduplicates case-insensitively",
			input:    []string{"Acme", "acme ", "ACME"},
			expected: []string{"acme"},
		},
		{
			name:     "drops empty entries",
			input:    []string{"", "   ", "acme"},
			expected: []string{"acme"},
		},
		{
			name:     "preserves first occurrence order",
			input:    []string{"zeta", "alpha", "Zeta"},
			expected: []string{"zeta", "alpha"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNames(tt.input))
		})
	}
}

func TestUnionNames(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		incoming []string
		expected []string
	}{
		{
			name:     "appends only new names",
			existing: []string{"acme", "globex"},
			incoming: []string{"acme", "initech"},
			expected: []string{"acme", "globex", "initech"},
		},
		{
			name:     "empty existing",
			existing: nil,
			incoming: []string{"acme"},
			expected: []string{"acme"},
		},
		{
			name:     "does not reorder existing",
			existing: []string{"globex", "acme"},
			incoming: []string{"acme"},
			expected: []string{"globex", "acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnionNames(tt.existing, tt.incoming))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Acme", TitleCase("acme"))
	assert.Equal(t, "Acme corp", TitleCase("acme corp"))
	assert.Equal(t, "", TitleCase(""))
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, "acme-corp", OptionValue("  Acme Corp "))
	assert.Equal(t, "dsa", OptionValue("DSA"))
}
