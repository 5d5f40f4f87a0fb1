package view

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials returns up to two uppercase initials for an avatar badge:
// "Ada Lovelace" -> "AL", "Madonna" -> "M", "" -> "".
func Initials(name string) string {
	var b strings.Builder
	for i, f := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(f)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
