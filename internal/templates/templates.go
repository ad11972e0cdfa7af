// Package templates holds the embedded text templates for every file the
// generator writes, and the helpers to execute them.
package templates

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Render loads a template, parses it with the provided funcMap, and executes it into w.
func Render(w io.Writer, tmplName string, data interface{}, funcMap template.FuncMap) error {
	t, err := load(tmplName, funcMap)
	if err != nil {
		return err
	}
	return t.Execute(w, data)
}

// Execute renders a template to outputPath, replacing any existing file.
// A failure while executing leaves whatever was written so far on disk.
func Execute(tmplName, outputPath string, data interface{}, funcMap template.FuncMap) error {
	t, err := load(tmplName, funcMap)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := t.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func load(tmplName string, funcMap template.FuncMap) (*template.Template, error) {
	tmplContent, err := Get(tmplName)
	if err != nil {
		return nil, err
	}

	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	return template.New(tmplName).Funcs(funcMap).Parse(tmplContent)
}
