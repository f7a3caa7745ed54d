package util

import (
	"unicode/utf8"
)

// TruncateRunes — безопасное усечение по рунам; n <= 0 означает "без ограничения"
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n]) + "…"
}

// Head возвращает первые n элементов (или весь срез, если он короче)
func Head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
