package geometry

import (
	"strconv"
	"strings"
)

// ColumnLetter returns the spreadsheet-style letter for a column index:
// 0 -> A, 25 -> Z, 26 -> AA.
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}

// CompartmentKey builds the key of the n-th (1-based) compartment of a column.
func CompartmentKey(column, n int) string {
	return ColumnLetter(column) + strconv.Itoa(n)
}

// BaseKey strips a sub-compartment suffix: "A1.2" -> "A1".
func BaseKey(key string) string {
	key = strings.TrimSpace(key)
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}
