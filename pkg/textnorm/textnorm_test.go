// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/plusgroup/pkg/textnorm"
)

/*
TestKeyword covers composition, width folding and whitespace collapsing.
*/
func TestKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "run", "run"},
		{"trim", "  run  ", "run"},
		{"collapse", "night \t run", "night run"},
		{"decomposed_accent", "cafe\u0301", "caf\u00e9"},
		{"fullwidth_ascii", "ｒｕｎ", "run"},
		{"ideographic_space", "跑步　圈子", "跑步 圈子"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Keyword(tt.input))
		})
	}
}
