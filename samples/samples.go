// Package samples holds the sample tape machine programs shipped with bfvm.
package samples

import (
	"embed"
	"iter"
	"path"
	"slices"
	"strings"
)

//go:embed *.b
var files embed.FS

const ext = ".b"

// Names returns the sorted sample names.
func Names() (names []string) {
	entries, _ := files.ReadDir(".")
	for _, entry := range entries {
		name := entry.Name()
		if path.Ext(name) == ext {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}

	slices.Sort(names)

	return
}

// Lookup returns the source of the named sample.
func Lookup(name string) (source string, ok bool) {
	data, err := files.ReadFile(name + ext)
	if err != nil {
		return
	}

	return string(data), true
}

// All returns an iterator over sample names and sources, in name order.
func All() iter.Seq2[string, string] {
	return func(yield func(name string, source string) bool) {
		for _, name := range Names() {
			source, _ := Lookup(name)
			if !yield(name, source) {
				return
			}
		}
	}
}
