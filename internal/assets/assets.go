// Package assets enumerates the files under a project's Files folder.
package assets

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

// DirName is the folder under the project root that holds the served files.
const DirName = "Files"

// ticksAtUnixEpoch is the number of 100ns ticks between 0001-01-01 and 1970-01-01 UTC.
const ticksAtUnixEpoch = 621355968000000000

// Asset is one file discovered during a generation run.
type Asset struct {
	// RelPath is the path below the assets root with forward slashes and a
	// leading slash, e.g. "/css/site.css". It is the lookup key at runtime.
	RelPath string
	// AbsPath is the file's location on disk.
	AbsPath string
	// ModTicks is the UTC modification time in 100ns ticks since 0001-01-01.
	ModTicks int64
	// IsText marks files whose path ends with a configured text extension.
	IsText bool
	// Content is the raw file content.
	Content []byte
}

// Ticks converts t to .NET-style ticks so versions stay comparable with
// FileHandler.cs files generated by earlier tooling.
func Ticks(t time.Time) int64 {
	return t.UTC().UnixNano()/100 + ticksAtUnixEpoch
}

// IsTextCandidate reports whether relPath ends with one of exts.
// The test is a case-sensitive suffix match.
func IsTextCandidate(relPath string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(relPath, ext) {
			return true
		}
	}
	return false
}

// Walk yields every regular file (or symlink to one) below root in the order filepath.WalkDir visits them.
// A missing root is reported as the only element of the sequence.
// The sequence reads the filesystem as it goes and can be ranged over once.
func Walk(root string, exts []string) iter.Seq2[Asset, error] {
	return func(yield func(Asset, error) bool) {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			yield(Asset{}, fperrors.MissingAssetsDirectory(root))
			return
		}

		stopped := false
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fperrors.Filesystem(err, "walk", path)
			}
			info, ok, err := fileInfo(path, d)
			if err != nil || !ok {
				return err
			}

			asset, err := load(root, path, info, exts)
			if err != nil {
				return err
			}
			if !yield(asset, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield(Asset{}, walkErr)
		}
	}
}

// fileInfo reports whether d is a file to embed. Symlinks count when they
// resolve to a regular file; their target supplies the modification time.
// Symlinked directories are not descended into.
func fileInfo(path string, d fs.DirEntry) (fs.FileInfo, bool, error) {
	switch {
	case d.Type().IsRegular():
		info, err := d.Info()
		if err != nil {
			return nil, false, fperrors.Filesystem(err, "stat", path)
		}
		return info, true, nil
	case d.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return nil, false, fperrors.Filesystem(err, "resolve", path)
		}
		return info, info.Mode().IsRegular(), nil
	default:
		return nil, false, nil
	}
}

func load(root, path string, info fs.FileInfo, exts []string) (Asset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fperrors.Filesystem(err, "read", path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Asset{}, fperrors.Filesystem(err, "relativize", path)
	}
	relPath := "/" + filepath.ToSlash(rel)

	return Asset{
		RelPath:  relPath,
		AbsPath:  path,
		ModTicks: Ticks(info.ModTime()),
		IsText:   IsTextCandidate(relPath, exts),
		Content:  content,
	}, nil
}

// Collect drains Walk into a slice, stopping at the first error.
func Collect(root string, exts []string) ([]Asset, error) {
	var out []Asset
	for asset, err := range Walk(root, exts) {
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, nil
}
