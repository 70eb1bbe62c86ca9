package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		// Basic cases
		{"Ohtani", "Ohtani"},
		{"Aaron Judge", "A. Judge"},
		{"Elly De La Cruz", "E. De La Cruz"},
		{"", ""},

		// Punctuation and spacing
		{"(Shohei Ohtani)", "S. Ohtani"},
		{"  Juan   Soto  ", "J. Soto"},
		{"Ronald Acuña", "R. Acuña"},

		// Suffixes
		{"Vladimir Guerrero Jr.", "V. Guerrero Jr"},
		{"Ken Griffey III", "K. Griffey III"},
		{"Jr Smith", "J. Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateName(tt.name))
		})
	}
}

func TestFitName(t *testing.T) {
	assert.Equal(t, "Aaron Judge", FitName("Aaron Judge", 20))
	assert.Equal(t, "Aaron Judge", FitName("Aaron Judge", 0))
	assert.Equal(t, "A. Judge", FitName("Aaron Judge", 8))
	assert.Equal(t, "C. Mont...", FitName("Christopher Montgomery-Smithson", 10))
}
