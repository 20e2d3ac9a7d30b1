// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turathdz/turath/pkg/slug"
)

/*
TestFrom verifies the normalization pipeline, in particular that two
differently-cased or accented spellings of the same tag name collapse to the
same canonical slug.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Casbah", "casbah"},
		{"accents_removed", "Poterie Kabyle brodée", "poterie-kabyle-brodee"},
		{"case_insensitive_equivalence", "POTERIE KABYLE", "poterie-kabyle"},
		{"punctuation", "L'Étranger (roman)", "l-etranger-roman"},
		{"collapsed_hyphens", "tapis --  berbère", "tapis-berbere"},
		{"trimmed", "  musique chaâbi  ", "musique-chaabi"},
		{"digits_kept", "guerre 1954", "guerre-1954"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
