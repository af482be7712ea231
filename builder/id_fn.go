// SPDX-License-Identifier: MIT
// Package: pathkit/builder
//
// id_fn.go - vertex naming schemes.

package builder

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/pathkit/core"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn renders 0..25 as "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn renders spreadsheet column names: "A".."Z", "AA", "AB", ...
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	slices.Reverse(runes)

	return string(runes)
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs names vertices "A".."Z".
func WithSymbolIDs[W core.Weight]() Option[W] {
	return WithIDScheme[W](SymbolIDFn)
}

// WithExcelColumnIDs names vertices "A", ..., "Z", "AA", ...
func WithExcelColumnIDs[W core.Weight]() Option[W] {
	return WithIDScheme[W](ExcelColumnIDFn)
}

// WithPrefixIDs names vertices prefix+index.
func WithPrefixIDs[W core.Weight](prefix string) Option[W] {
	return WithIDScheme[W](SymbolNumberIDFn(prefix))
}
