package resx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Properties", "PluginFiles.resx")
	entries := []Entry{
		{Name: "File_logo_png", Data: []byte{0x89, 'P', 'N', 'G'}},
		{Name: "File_a_bin", Data: []byte{}},
	}
	require.NoError(t, Write(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `<data name="File_logo_png" type="System.Byte[], mscorlib">`)
	assert.Contains(t, content, "<value>iVBORw==</value>")
	assert.Contains(t, content, "<value>text/microsoft-resx</value>")

	names, err := Names(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"File_logo_png", "File_a_bin"}, names)
}

func TestWrite_ReplacesStaleEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PluginFiles.resx")
	require.NoError(t, Write(path, []Entry{{Name: "File_old", Data: []byte("x")}}))
	require.NoError(t, Write(path, []Entry{{Name: "File_new", Data: []byte("y")}}))

	names, err := Names(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"File_new"}, names)
}

func TestGenerateDesigner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PluginFiles.resx")
	require.NoError(t, Write(path, []Entry{
		{Name: "File_logo_png", Data: []byte("a")},
		{Name: "File_font_woff", Data: []byte("b")},
	}))

	out, err := GenerateDesigner(path, "MyPlugin.Properties")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(path, ".resx")+".Designer.cs", out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "namespace MyPlugin.Properties {")
	assert.Contains(t, content, "internal class PluginFiles {")
	assert.Contains(t, content, `new global::System.Resources.ResourceManager("MyPlugin.Properties.PluginFiles", typeof(PluginFiles).Assembly)`)
	assert.Contains(t, content, "internal static byte[] File_logo_png {")
	assert.Contains(t, content, `ResourceManager.GetObject("File_font_woff", resourceCulture)`)
	assert.Equal(t, 2, strings.Count(content, "internal static byte[] "))
}

func TestGenerateDesigner_RejectsBadNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PluginFiles.resx")
	require.NoError(t, Write(path, []Entry{{Name: "1bad", Data: []byte("a")}}))

	_, err := GenerateDesigner(path, "X")
	require.Error(t, err)
	assert.True(t, fperrors.Is(err, fperrors.CodeInvalidResourceName))
}

func TestNames_Missing(t *testing.T) {
	_, err := Names(filepath.Join(t.TempDir(), "nope.resx"))
	assert.Error(t, err)
}
