// Package resx writes and reads .resx resource bundles holding binary
// entries, and generates the strongly typed accessor class for them.
package resx

import (
	"encoding/base64"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/xll-gen/filepacker/internal/csharp"
	"github.com/xll-gen/filepacker/internal/fperrors"
	"github.com/xll-gen/filepacker/internal/templates"
	"github.com/xll-gen/filepacker/version"
)

// Entry is a named binary resource.
type Entry struct {
	Name string
	Data []byte
}

var funcMap = template.FuncMap{
	"base64": base64.StdEncoding.EncodeToString,
	"xml": func(s string) (string, error) {
		var b strings.Builder
		if err := xml.EscapeText(&b, []byte(s)); err != nil {
			return "", err
		}
		return b.String(), nil
	},
}

// Write replaces the bundle at path with exactly entries, in order.
func Write(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fperrors.Filesystem(err, "create directory for", path)
	}
	if err := templates.Execute("PluginFiles.resx.tmpl", path, entries, funcMap); err != nil {
		return fperrors.Filesystem(err, "write", path)
	}
	return nil
}

type document struct {
	Data []struct {
		Name string `xml:"name,attr"`
	} `xml:"data"`
}

// Names returns the resource names stored in the bundle at path, in file order.
func Names(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fperrors.Filesystem(err, "open", path)
	}
	defer f.Close()

	var doc document
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fperrors.Filesystem(err, "parse", path)
	}
	names := make([]string, 0, len(doc.Data))
	for _, d := range doc.Data {
		names = append(names, d.Name)
	}
	return names, nil
}

// DesignerPath returns where the accessor class for the bundle at resxPath lives.
func DesignerPath(resxPath string) string {
	return strings.TrimSuffix(resxPath, filepath.Ext(resxPath)) + ".Designer.cs"
}

// GenerateDesigner writes the accessor class for the bundle at resxPath into
// namespace, one static byte[] property per resource. It returns the written path.
func GenerateDesigner(resxPath, namespace string) (string, error) {
	names, err := Names(resxPath)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if !csharp.IsIdentifier(name) {
			return "", fperrors.InvalidResourceName(name, resxPath)
		}
	}

	className := strings.TrimSuffix(filepath.Base(resxPath), filepath.Ext(resxPath))
	data := struct {
		Namespace string
		ClassName string
		Names     []string
		Version   string
	}{
		Namespace: namespace,
		ClassName: className,
		Names:     names,
		Version:   version.Version,
	}

	out := DesignerPath(resxPath)
	if err := templates.Execute("PluginFiles.Designer.cs.tmpl", out, data, nil); err != nil {
		return "", fperrors.Filesystem(err, "write", out)
	}
	return out, nil
}
