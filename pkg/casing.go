package symspell

import (
	"strings"
	"unicode"
)

// TransferCasing copies the letter case of src onto dst, a lowercase
// dictionary word. Same-length words are copied rune by rune; otherwise
// all-caps and title case are carried over.
func TransferCasing(src, dst string) string {
	if src == "" || dst == "" {
		return dst
	}
	if isUpper(src) {
		return strings.ToUpper(dst)
	}
	rs, rd := []rune(src), []rune(dst)
	if len(rs) == len(rd) {
		for i, c := range rs {
			switch {
			case unicode.IsUpper(c):
				rd[i] = unicode.ToUpper(rd[i])
			case unicode.IsLower(c):
				rd[i] = unicode.ToLower(rd[i])
			}
		}
		return string(rd)
	}
	if isTitle(src) {
		return title(dst)
	}
	return dst
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsUpper(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

// isUpper needs at least one cased letter: "42" is not upper.
func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
