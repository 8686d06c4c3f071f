// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes user-typed text before it is sent as a query parameter.
//
// # Usage
//
// Search keywords typed on mobile keyboards often arrive in decomposed form
// (e + combining acute) or with full-width spaces. The service matches on
// composed text, so keywords are canonicalized first.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Keyword canonicalizes a search keyword.
//
// # Transformation Pipeline
//
// 1. Folds full-width ASCII and ideographic spaces to their narrow forms.
// 2. Normalizes to NFC.
// 3. Collapses runs of whitespace into one ASCII space and trims the ends.
func Keyword(s string) string {
	folded := width.Fold.String(s)
	composed := norm.NFC.String(folded)

	return strings.Join(strings.FieldsFunc(composed, unicode.IsSpace), " ")
}
