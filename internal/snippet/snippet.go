// Package snippet defines snippet entries and the flat-file record format.
package snippet

import "strings"

// Delimiter bounds a value in the flat-file format.
const Delimiter = '\''

// Entry is a single name/value pair in the snippet store.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Index returns the position of the first entry named name, or -1.
func Index(entries []Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Filter returns the entries whose name contains substr (case-sensitive).
// File order is preserved.
func Filter(entries []Entry, substr string) []Entry {
	var out []Entry
	for _, e := range entries {
		if strings.Contains(e.Name, substr) {
			out = append(out, e)
		}
	}
	return out
}

// Values returns the values of every entry named exactly name, in order.
func Values(entries []Entry, name string) []string {
	var out []string
	for _, e := range entries {
		if e.Name == name {
			out = append(out, e.Value)
		}
	}
	return out
}

// SwapRemove removes entries[i] by moving the last element into its slot.
// The order of the remaining entries is not preserved.
func SwapRemove(entries []Entry, i int) []Entry {
	last := len(entries) - 1
	entries[i] = entries[last]
	return entries[:last]
}

// OrderedRemove removes entries[i] and shifts later entries left.
func OrderedRemove(entries []Entry, i int) []Entry {
	return append(entries[:i], entries[i+1:]...)
}
