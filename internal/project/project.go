// Package project locates the files of a plugin project on disk.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xll-gen/filepacker/internal/assets"
)

// ManifestExt is the extension of the project manifest.
const ManifestExt = ".csproj"

// Project is a plugin project: a directory with a manifest named after the project.
type Project struct {
	Name string
	Root string
}

// ManifestPath returns <Root>/<Name>.csproj.
func (p Project) ManifestPath() string {
	return filepath.Join(p.Root, p.Name+ManifestExt)
}

// AssetsDir returns the folder holding the files to embed.
func (p Project) AssetsDir() string {
	return filepath.Join(p.Root, assets.DirName)
}

// Discover builds a Project for root. When name is empty it is taken from the
// single *.csproj file in root.
func Discover(root, name string) (Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Project{}, err
	}
	if name != "" {
		return Project{Name: name, Root: abs}, nil
	}

	matches, err := filepath.Glob(filepath.Join(abs, "*"+ManifestExt))
	if err != nil {
		return Project{}, err
	}
	switch len(matches) {
	case 0:
		return Project{}, fmt.Errorf("no %s file found in %s; select a project first", ManifestExt, abs)
	case 1:
		return Project{Name: strings.TrimSuffix(filepath.Base(matches[0]), ManifestExt), Root: abs}, nil
	default:
		return Project{}, fmt.Errorf("found %d %s files in %s; pass --project-name to pick one", len(matches), ManifestExt, abs)
	}
}
