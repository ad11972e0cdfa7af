// Package detect recovers the namespace and class name a project already uses
// for its file handler, so regeneration keeps hand-made choices.
package detect

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

const (
	// GeneratedFile is the file the generator writes.
	GeneratedFile = "FileHandler.cs"
	// CustomFile is the optional hand-written companion with the fallback lookups.
	CustomFile = "FileHandlerCustom.cs"
)

// Customization is what Recover found in a project root.
type Customization struct {
	Namespace         string
	TypeName          string
	HasCustomFallback bool
}

// Recover inspects FileHandler.cs, then FileHandlerCustom.cs, in root.
// The first file yielding a value wins; defaultNamespace and projectName fill the gaps.
func Recover(root, defaultNamespace, projectName string) (Customization, error) {
	candidates := []string{
		filepath.Join(root, GeneratedFile),
		filepath.Join(root, CustomFile),
	}

	c := Customization{}
	for _, path := range candidates {
		ns, typ, err := scanFile(path)
		if err != nil {
			return Customization{}, err
		}
		if c.Namespace == "" {
			c.Namespace = ns
		}
		if c.TypeName == "" {
			c.TypeName = typ
		}
	}
	if c.Namespace == "" {
		c.Namespace = defaultNamespace
	}
	if c.TypeName == "" {
		c.TypeName = projectName
	}

	_, err := os.Stat(candidates[1])
	switch {
	case err == nil:
		c.HasCustomFallback = true
	case !errors.Is(err, fs.ErrNotExist):
		return Customization{}, fperrors.Filesystem(err, "stat", candidates[1])
	}
	return c, nil
}

// scanFile returns the first namespace and class declared in path.
// A missing file yields empty results.
func scanFile(path string) (namespace, typeName string, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fperrors.Filesystem(err, "open", path)
	}
	defer f.Close()

	// Generated handlers carry base64 payloads on a single line, so lines are
	// read without a length limit.
	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			if namespace == "" {
				namespace = Namespace(line)
			}
			if typeName == "" {
				typeName = TypeName(line)
			}
			if namespace != "" && typeName != "" {
				return namespace, typeName, nil
			}
		}
		if readErr == io.EOF {
			return namespace, typeName, nil
		}
		if readErr != nil {
			return "", "", fperrors.Filesystem(readErr, "read", path)
		}
	}
}

// Namespace returns the namespace declared by line, or "" if line does not start
// with a namespace declaration. Both block and file-scoped forms are accepted.
func Namespace(line string) string {
	rest, ok := strings.CutPrefix(line, "namespace ")
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, " {;"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// TypeName returns the class declared on line, or "" when line has no
// "class " keyword at its start or after a space or tab.
func TypeName(line string) string {
	i := strings.Index(line, "class ")
	if i < 0 || (i != 0 && line[i-1] != ' ' && line[i-1] != '\t') {
		return ""
	}
	rest := line[i+len("class "):]
	if j := strings.IndexAny(rest, " \t:{"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}
