// Package stringtest provides helpers for constructing multi-line test
// fixtures with explicit line endings.
package stringtest

import "strings"

// JoinLF joins ss with LF line endings.
//
//	stringtest.JoinLF("a", "b") // -> "a\nb"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins ss with CRLF line endings, for sources produced on Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}
