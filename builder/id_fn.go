// SPDX-License-Identifier: MIT
// Package builder: label schemes for constructed vertices.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn produces a vertex label from its zero-based emission index. It
// must be deterministic.
type LabelFn func(idx int) string

// DecimalLabels returns "0", "1", "2", ...
func DecimalLabels(idx int) string {
	return strconv.Itoa(idx)
}

// LetterLabels returns spreadsheet-style names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func LetterLabels(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterLabels: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
