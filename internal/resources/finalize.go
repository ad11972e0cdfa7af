package resources

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/xll-gen/filepacker/internal/fperrors"
	"github.com/xll-gen/filepacker/internal/host"
	"github.com/xll-gen/filepacker/internal/manifest"
	"github.com/xll-gen/filepacker/internal/project"
	"github.com/xll-gen/filepacker/internal/resx"
)

// Outcome describes the side effects Finalize performed.
type Outcome struct {
	ManifestChanged bool
	BundleWritten   bool
	BundleRemoved   bool
	Reloaded        bool
}

// Finalize brings the bundle and the manifest in line with the Set.
//
// A non-empty bundle Set is written to PluginFiles.resx, the manifest region is
// ensured, and the host regenerates the accessors once it sees the file.
// Otherwise (an empty Set, or the inline strategy) any bundle left by an
// earlier run is removed together with its manifest region.
func (s *Selector) Finalize(ctx context.Context, p project.Project, h host.Host, retry host.Retry) (Outcome, error) {
	if s.kind == Bundle && s.set.Len() > 0 {
		return s.publish(ctx, p, h, retry)
	}
	return s.cleanup(ctx, p, h)
}

func (s *Selector) publish(ctx context.Context, p project.Project, h host.Host, retry host.Retry) (Outcome, error) {
	var out Outcome
	region := manifest.BundleRegion()
	manifestPath := p.ManifestPath()

	text, err := os.ReadFile(manifestPath)
	if err != nil {
		return out, fperrors.Filesystem(err, "read", manifestPath)
	}
	// computed before anything is written so a bad manifest aborts cleanly
	patched, changed, err := region.Ensure(string(text))
	if err != nil {
		return out, err
	}

	if changed {
		if err := os.WriteFile(manifestPath, []byte(patched), 0644); err != nil {
			return out, fperrors.Filesystem(err, "write", manifestPath)
		}
		out.ManifestChanged = true
		slog.Info("patched project manifest", "path", manifestPath)
	}

	bundlePath := BundlePath(p.Root)
	if err := resx.Write(bundlePath, s.set.resx()); err != nil {
		return out, err
	}
	out.BundleWritten = true
	slog.Info("wrote resource bundle", "path", bundlePath, "entries", s.set.Len())
	for _, e := range s.set.Entries() {
		slog.Debug("bundled asset", "key", e.Key, "source", e.Source)
	}

	if changed {
		if err := h.ReloadProject(ctx, p.Name); err != nil {
			return out, err
		}
		out.Reloaded = true
	}

	item, err := host.WaitForItem(ctx, h, bundlePath, retry)
	if err != nil {
		return out, err
	}
	if err := h.Regenerate(ctx, item); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Selector) cleanup(ctx context.Context, p project.Project, h host.Host) (Outcome, error) {
	var out Outcome

	bundlePath := BundlePath(p.Root)
	for _, path := range []string{bundlePath, resx.DesignerPath(bundlePath)} {
		err := os.Remove(path)
		switch {
		case err == nil:
			out.BundleRemoved = true
			slog.Info("removed stale bundle file", "path", path)
		case !errors.Is(err, fs.ErrNotExist):
			return out, fperrors.Filesystem(err, "delete", path)
		}
	}

	manifestPath := p.ManifestPath()
	text, err := os.ReadFile(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, fperrors.Filesystem(err, "read", manifestPath)
	}

	region := manifest.BundleRegion()
	if !region.Contains(string(text)) {
		return out, nil
	}
	stripped, removed := region.Remove(string(text))
	if !removed {
		slog.Warn("bundle region has no end marker, leaving manifest as is", "path", manifestPath)
		return out, nil
	}
	if err := os.WriteFile(manifestPath, []byte(stripped), 0644); err != nil {
		return out, fperrors.Filesystem(err, "write", manifestPath)
	}
	out.ManifestChanged = true
	slog.Info("removed bundle region from project manifest", "path", manifestPath)

	if err := h.ReloadProject(ctx, p.Name); err != nil {
		return out, err
	}
	out.Reloaded = true
	return out, nil
}
