package resources

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/filepacker/internal/assets"
	"github.com/xll-gen/filepacker/internal/fperrors"
	"github.com/xll-gen/filepacker/internal/host"
	"github.com/xll-gen/filepacker/internal/host/hosttest"
	"github.com/xll-gen/filepacker/internal/manifest"
	"github.com/xll-gen/filepacker/internal/project"
	"github.com/xll-gen/filepacker/internal/resx"
)

const csproj = "<Project Sdk=\"Microsoft.NET.Sdk\">\n</Project>\n"

var fastRetry = host.Retry{Attempts: 3, Delay: time.Millisecond}

func newProject(t *testing.T, manifestText string) project.Project {
	t.Helper()
	p := project.Project{Name: "Shop", Root: t.TempDir()}
	if manifestText != "" {
		require.NoError(t, os.WriteFile(p.ManifestPath(), []byte(manifestText), 0644))
	}
	return p
}

func readManifest(t *testing.T, p project.Project) string {
	t.Helper()
	data, err := os.ReadFile(p.ManifestPath())
	require.NoError(t, err)
	return string(data)
}

func logo(root string) assets.Asset {
	return assets.Asset{RelPath: "/logo.png", AbsPath: filepath.Join(root, "Files", "logo.png"), Content: []byte("0123456789")}
}

func TestSelector_Expression(t *testing.T) {
	a := logo("/p")

	inline := NewSelector(Inline)
	assert.Equal(t, `Convert.FromBase64String("MDEyMzQ1Njc4OQ==")`, inline.Expression("File_logo_png", a))
	assert.Equal(t, 0, inline.Set().Len())

	bundle := NewSelector(Bundle)
	assert.Equal(t, "PluginFiles.File_logo_png", bundle.Expression("File_logo_png", a))
	want := []Entry{{Key: "File_logo_png", Source: a.AbsPath}}
	if diff := cmp.Diff(want, bundle.Set().Entries(), cmp.Comparer(func(x, y Entry) bool {
		return x.Key == y.Key && x.Source == y.Source
	})); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalize_Publish(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{MissLookups: 1, ResourceNamespace: "Shop.Properties"}

	s := NewSelector(Bundle)
	s.Expression("File_logo_png", logo(p.Root))

	out, err := s.Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)
	assert.Equal(t, Outcome{ManifestChanged: true, BundleWritten: true, Reloaded: true}, out)

	assert.Equal(t, 1, strings.Count(readManifest(t, p), manifest.StartMarker))
	assert.Equal(t, []string{"Shop"}, rec.Reloads)
	assert.Equal(t, []string{BundlePath(p.Root)}, rec.Regenerated)

	names, err := resx.Names(BundlePath(p.Root))
	require.NoError(t, err)
	assert.Equal(t, []string{"File_logo_png"}, names)
	assert.FileExists(t, resx.DesignerPath(BundlePath(p.Root)))
}

func TestFinalize_PublishTwiceKeepsManifest(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{}

	for i := 0; i < 2; i++ {
		s := NewSelector(Bundle)
		s.Expression("File_logo_png", logo(p.Root))
		_, err := s.Finalize(context.Background(), p, rec, fastRetry)
		require.NoError(t, err)
	}
	assert.Len(t, rec.Reloads, 1, "second run must not reload an unchanged manifest")
}

func TestFinalize_AnchorNotFound(t *testing.T) {
	p := newProject(t, "<Foo/>")
	rec := &hosttest.Recorder{}

	s := NewSelector(Bundle)
	s.Expression("File_logo_png", logo(p.Root))
	_, err := s.Finalize(context.Background(), p, rec, fastRetry)
	require.Error(t, err)
	assert.True(t, fperrors.Is(err, fperrors.CodeManifestAnchorNotFound))

	assert.Equal(t, "<Foo/>", readManifest(t, p))
	assert.NoFileExists(t, BundlePath(p.Root))
	assert.Empty(t, rec.Reloads)
}

func TestFinalize_RegistrationTimeout(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{MissLookups: 100}

	s := NewSelector(Bundle)
	s.Expression("File_logo_png", logo(p.Root))
	_, err := s.Finalize(context.Background(), p, rec, fastRetry)
	require.Error(t, err)
	assert.True(t, fperrors.Is(err, fperrors.CodeResourceRegistrationTimeout))

	// left on disk for manual recovery
	assert.FileExists(t, BundlePath(p.Root))
	assert.Contains(t, readManifest(t, p), manifest.StartMarker)
	assert.Empty(t, rec.Regenerated)
}

func TestFinalize_EmptySetRemovesBundle(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{}

	s := NewSelector(Bundle)
	s.Expression("File_logo_png", logo(p.Root))
	_, err := s.Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)

	out, err := NewSelector(Bundle).Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)
	assert.Equal(t, Outcome{ManifestChanged: true, BundleRemoved: true, Reloaded: true}, out)
	assert.Equal(t, csproj, readManifest(t, p))
	assert.NoFileExists(t, BundlePath(p.Root))
	assert.NoFileExists(t, resx.DesignerPath(BundlePath(p.Root)))
	assert.Len(t, rec.Reloads, 2)
}

func TestFinalize_EmptySetWithoutBundleIsNoop(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{}

	out, err := NewSelector(Bundle).Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, csproj, readManifest(t, p))
	assert.Empty(t, rec.Reloads)
}

func TestFinalize_InlineCleansUpPreviousBundle(t *testing.T) {
	p := newProject(t, csproj)
	rec := &hosttest.Recorder{}

	s := NewSelector(Bundle)
	s.Expression("File_logo_png", logo(p.Root))
	_, err := s.Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)

	inline := NewSelector(Inline)
	inline.Expression("File_logo_png", logo(p.Root))
	out, err := inline.Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)
	assert.True(t, out.BundleRemoved)
	assert.NotContains(t, readManifest(t, p), manifest.StartMarker)
}

func TestFinalize_CleanupKeepsUnterminatedRegion(t *testing.T) {
	broken := "<Project>\n  " + manifest.StartMarker + "\n</Project>\n"
	p := newProject(t, broken)
	rec := &hosttest.Recorder{}

	out, err := NewSelector(Inline).Finalize(context.Background(), p, rec, fastRetry)
	require.NoError(t, err)
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, broken, readManifest(t, p))
	assert.Empty(t, rec.Reloads)
}

func TestFinalize_InlineWithoutManifest(t *testing.T) {
	p := newProject(t, "")
	out, err := NewSelector(Inline).Finalize(context.Background(), p, &hosttest.Recorder{}, fastRetry)
	require.NoError(t, err)
	assert.Equal(t, Outcome{}, out)
}

func TestKind(t *testing.T) {
	assert.Equal(t, Inline, KindFor(true))
	assert.Equal(t, Bundle, KindFor(false))
	assert.Equal(t, "inline", Inline.String())
	assert.Equal(t, "bundle", Bundle.String())
}
