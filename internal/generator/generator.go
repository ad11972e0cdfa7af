// Package generator assembles FileHandler.cs: a partial plugin class with one
// switch arm per asset in GetFile and GetFileVersion.
package generator

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xll-gen/filepacker/internal/csharp"
	"github.com/xll-gen/filepacker/internal/detect"
	"github.com/xll-gen/filepacker/internal/fperrors"
	"github.com/xll-gen/filepacker/internal/templates"
)

// PluginNamespace is where the Plugin base class lives.
const PluginNamespace = "uwap.WebFramework.Plugins"

const fileHandlerTemplate = "FileHandler.cs.tmpl"

// Entry is one asset's row in both lookup functions.
type Entry struct {
	// RelPath is the switch arm label.
	RelPath string
	// Content is the C# expression producing the file bytes.
	Content string
	// Version is the asset's tick count.
	Version string
}

// Module is the content of a FileHandler.cs file.
type Module struct {
	// Using is an extra namespace import emitted above the namespace, or "".
	Using          string
	Namespace      string
	TypeName       string
	PluginPrefix   string
	CustomFallback bool
	Entries        []Entry
}

// NewModule starts a module for the given namespace and class.
// The Plugin base class is qualified unless namespace already sits inside its namespace.
func NewModule(namespace, typeName string, customFallback bool) *Module {
	return &Module{
		Namespace:      namespace,
		TypeName:       typeName,
		PluginPrefix:   csharp.Qualifier(namespace, PluginNamespace),
		CustomFallback: customFallback,
	}
}

// Add appends one asset. Arms keep the order of Add calls.
func (m *Module) Add(relPath, content string, modTicks int64) {
	m.Entries = append(m.Entries, Entry{
		RelPath: relPath,
		Content: content,
		Version: strconv.FormatInt(modTicks, 10),
	})
}

// Render writes the module source to w.
func (m *Module) Render(w io.Writer) error {
	return templates.Render(w, fileHandlerTemplate, m, GetCommonFuncMap())
}

// Write overwrites FileHandler.cs in root and returns its path.
// The module is rendered in memory first, so a render failure leaves the
// previous file untouched.
func (m *Module) Write(root string) (string, error) {
	path := filepath.Join(root, detect.GeneratedFile)

	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return path, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return path, fperrors.Filesystem(err, "write", path)
	}
	return path, nil
}

// Templated wraps an interpolated string expression so it yields UTF-8 bytes.
func Templated(interpolated string) string {
	return "System.Text.Encoding.UTF8.GetBytes(" + interpolated + ")"
}
