// Package fperrors defines the failures a generation run can end with.
//
// Every error carries a text code so callers and tests can tell them apart
// without matching on message text.
package fperrors

import (
	stderrors "errors"

	"github.com/goliatone/go-errors"
)

const (
	CodeMissingAssetsDirectory      = "MISSING_ASSETS_DIRECTORY"
	CodeDuplicateAssetKey           = "DUPLICATE_ASSET_KEY"
	CodeManifestAnchorNotFound      = "MANIFEST_ANCHOR_NOT_FOUND"
	CodeResourceRegistrationTimeout = "RESOURCE_REGISTRATION_TIMEOUT"
	CodeInvalidResourceName         = "INVALID_RESOURCE_NAME"
	CodeFilesystem                  = "FILESYSTEM"
)

// MissingAssetsDirectory reports that the Files folder of a project does not exist.
func MissingAssetsDirectory(dir string) error {
	return errors.New("Directory 'Files' not found!", errors.CategoryBadInput).
		WithTextCode(CodeMissingAssetsDirectory).
		WithMetadata(map[string]any{
			"dir": dir,
		})
}

// DuplicateAssetKey reports two relative paths that derive the same key.
func DuplicateAssetKey(key, first, second string) error {
	return errors.New("asset key "+key+" is derived from both "+first+" and "+second, errors.CategoryConflict).
		WithTextCode(CodeDuplicateAssetKey).
		WithMetadata(map[string]any{
			"key":    key,
			"first":  first,
			"second": second,
		})
}

// ManifestAnchorNotFound reports a manifest with neither a patch region nor a closing anchor.
func ManifestAnchorNotFound(anchor string) error {
	return errors.New("The RESX file couldn't be attached to the project!", errors.CategoryBadInput).
		WithTextCode(CodeManifestAnchorNotFound).
		WithMetadata(map[string]any{
			"anchor": anchor,
		})
}

// ResourceRegistrationTimeout reports that the host never recognized the side resource file.
func ResourceRegistrationTimeout(path string, attempts int) error {
	return errors.New("The RESX file couldn't be found as a project item! This can usually be fixed by trying again.", errors.CategoryExternal).
		WithTextCode(CodeResourceRegistrationTimeout).
		WithMetadata(map[string]any{
			"path":     path,
			"attempts": attempts,
		})
}

// InvalidResourceName reports a bundle entry that cannot become an accessor member.
func InvalidResourceName(name, path string) error {
	return errors.New("resource name "+name+" is not a valid C# identifier", errors.CategoryValidation).
		WithTextCode(CodeInvalidResourceName).
		WithMetadata(map[string]any{
			"name": name,
			"path": path,
		})
}

// Filesystem wraps an I/O failure on path.
func Filesystem(err error, op, path string) error {
	return errors.Wrap(err, errors.CategoryExternal, op+" "+path).
		WithTextCode(CodeFilesystem).
		WithMetadata(map[string]any{
			"path": path,
		})
}

// Code returns the text code attached to err, or "" for foreign errors.
func Code(err error) string {
	var ge *errors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

// Is reports whether err carries the given text code.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}
