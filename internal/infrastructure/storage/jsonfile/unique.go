package jsonfile

import "strings"

// duplicate reports whether candidate matches any existing value
// case-insensitively. It must only be called inside a collection's critical
// section, after the freshest load; checking earlier would reopen the
// check-then-act race between concurrent writers.
func duplicate(values []string, candidate string) bool {
	for _, v := range values {
		if strings.EqualFold(v, candidate) {
			return true
		}
	}
	return false
}
