package unoidl

import "strings"

// IsIdentifier reports whether s is a UNO identifier: an ASCII letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		letter := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
		digit := ch >= '0' && ch <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return true
}

// IsQualifiedIdentifier reports whether name is a dotted sequence of identifiers
func IsQualifiedIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if !IsIdentifier(seg) {
			return false
		}
	}
	return true
}
