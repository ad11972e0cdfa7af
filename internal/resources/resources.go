// Package resources decides where opaque asset bytes live: inline in the
// generated handler, or in the PluginFiles resource bundle wired into the
// project manifest.
package resources

import (
	"encoding/base64"
	"path/filepath"

	"github.com/xll-gen/filepacker/internal/assets"
	"github.com/xll-gen/filepacker/internal/resx"
)

// Kind selects the payload strategy of a run.
type Kind int

const (
	// Bundle stores bytes in Properties/PluginFiles.resx.
	Bundle Kind = iota
	// Inline stores bytes as base64 literals in FileHandler.cs.
	Inline
)

func (k Kind) String() string {
	switch k {
	case Inline:
		return "inline"
	case Bundle:
		return "bundle"
	default:
		return "unknown"
	}
}

// KindFor maps the inline_payloads setting to a Kind.
func KindFor(inline bool) Kind {
	if inline {
		return Inline
	}
	return Bundle
}

const (
	// BundleDir is the project folder holding the bundle, relative to the project root.
	BundleDir = "Properties"
	// BundleFile is the bundle's file name; the accessor class is named after it.
	BundleFile = "PluginFiles.resx"
	// BundleClass is the generated accessor class.
	BundleClass = "PluginFiles"
)

// BundlePath returns the bundle location in a project root.
func BundlePath(root string) string {
	return filepath.Join(root, BundleDir, BundleFile)
}

// Entry maps a derived key to the file whose bytes it holds.
type Entry struct {
	Key    string
	Source string
	data   []byte
}

// Set is the ordered content of the bundle for one run.
type Set struct {
	entries []Entry
}

// Add appends an entry. Key uniqueness is enforced upstream by keys.Registry.
func (s *Set) Add(key string, a assets.Asset) {
	s.entries = append(s.entries, Entry{Key: key, Source: a.AbsPath, data: a.Content})
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *Set) resx() []resx.Entry {
	out := make([]resx.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, resx.Entry{Name: e.Key, Data: e.data})
	}
	return out
}

// Selector applies one Kind to every opaque asset of a run and owns the
// bundle side effects that follow.
type Selector struct {
	kind Kind
	set  Set
}

// NewSelector returns a Selector for kind with an empty Set.
func NewSelector(kind Kind) *Selector {
	return &Selector{kind: kind}
}

// Kind returns the strategy in use.
func (s *Selector) Kind() Kind {
	return s.kind
}

// Set returns the bundle content collected so far.
func (s *Selector) Set() *Set {
	return &s.set
}

// Expression returns the C# expression yielding a's bytes, recording the asset
// in the Set when the bundle holds it.
func (s *Selector) Expression(key string, a assets.Asset) string {
	if s.kind == Inline {
		return `Convert.FromBase64String("` + base64.StdEncoding.EncodeToString(a.Content) + `")`
	}
	s.set.Add(key, a)
	return BundleClass + "." + key
}
