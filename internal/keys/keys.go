// Package keys derives the member names assets are stored under in the resource bundle.
package keys

import (
	"strings"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

const prefix = "File"

const hexDigits = "0123456789ABCDEF"

// Derive maps a relative asset path to a C# identifier. The result depends on
// relPath alone, so an unchanged tree yields the same keys on every run.
// ASCII letters and digits are kept; every other byte, underscore included,
// becomes "_" and two hex digits. Distinct paths therefore never share a key.
func Derive(relPath string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 3*len(relPath))
	b.WriteString(prefix)
	for i := 0; i < len(relPath); i++ {
		c := relPath[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0F])
		}
	}
	return b.String()
}

// Registry remembers which path each key came from during one run.
type Registry struct {
	owners map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]string)}
}

// Add derives the key for relPath and records it.
// A key that is already taken fails with DuplicateAssetKey.
func (r *Registry) Add(relPath string) (string, error) {
	key := Derive(relPath)
	if owner, ok := r.owners[key]; ok {
		return "", fperrors.DuplicateAssetKey(key, owner, relPath)
	}
	r.owners[key] = relPath
	return key, nil
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	return len(r.owners)
}
