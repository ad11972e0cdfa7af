// Package manifest edits a delimited region inside a project manifest.
//
// The manifest is handled as plain text: a region is located by its start and
// end markers and inserted in front of a closing anchor, so the operations work
// for any manifest format that tolerates the markers.
package manifest

import (
	"strings"

	"github.com/xll-gen/filepacker/internal/fperrors"
)

const (
	StartMarker = "<!--PluginFilePacker start-->"
	EndMarker   = "<!--PluginFilePacker end-->"

	// ProjectAnchor is the closing element of an MSBuild project file.
	ProjectAnchor = "</Project>"

	// BundleBody wires PluginFiles.resx into the build through the ResX code generator.
	BundleBody = `<ItemGroup><Compile Update="Properties\PluginFiles.Designer.cs"><DesignTime>True</DesignTime><AutoGen>True</AutoGen><DependentUpon>PluginFiles.resx</DependentUpon></Compile></ItemGroup>` +
		`<ItemGroup><EmbeddedResource Update="Properties\PluginFiles.resx"><Generator>ResXFileCodeGenerator</Generator><LastGenOutput>PluginFiles.Designer.cs</LastGenOutput></EmbeddedResource></ItemGroup>`
)

// Region is a marker-delimited block of manifest text.
type Region struct {
	Start  string
	End    string
	Body   string
	Anchor string
}

// BundleRegion returns the region that wires the resource bundle into a .csproj.
func BundleRegion() Region {
	return Region{
		Start:  StartMarker,
		End:    EndMarker,
		Body:   BundleBody,
		Anchor: ProjectAnchor,
	}
}

// Block returns the full text of the region including its markers.
func (r Region) Block() string {
	return r.Start + r.Body + r.End
}

// Contains reports whether text has a start marker for r.
func (r Region) Contains(text string) bool {
	return strings.Contains(text, r.Start)
}

// Ensure returns text with exactly one up-to-date copy of r.
//
// An exact copy leaves text unchanged. An existing region (first start marker
// to last end marker) is replaced. Otherwise the block is inserted on its own
// line before the last anchor, or in front of the anchor when it shares its line
// with other markup. changed is false when text already had the block.
func (r Region) Ensure(text string) (out string, changed bool, err error) {
	block := r.Block()
	if strings.Contains(text, block) {
		return text, false, nil
	}

	if before, after, ok := strings.Cut(text, r.Start); ok {
		if i := strings.LastIndex(after, r.End); i >= 0 {
			after = after[i+len(r.End):]
		}
		return before + block + after, true, nil
	}

	i := strings.LastIndex(text, r.Anchor)
	if r.Anchor == "" || i < 0 {
		return text, false, fperrors.ManifestAnchorNotFound(r.Anchor)
	}
	beforeEnd, afterEnd := text[:i], text[i+len(r.Anchor):]

	// The block gets a line of its own only when the anchor starts its line.
	// Otherwise it joins the anchor's line, leaving the other markup as is.
	n := strings.LastIndex(beforeEnd, "\n")
	if n < 0 || strings.TrimSpace(beforeEnd[n+1:]) != "" {
		return beforeEnd + block + r.Anchor + afterEnd, true, nil
	}
	nl := newline(text)
	head := strings.TrimSuffix(beforeEnd[:n], "\r")
	indent := beforeEnd[n+1:]
	return head + nl + indent + "  " + block + nl + indent + r.Anchor + afterEnd, true, nil
}

// Remove deletes the region from text. When the region sits on a line of its
// own the whole line goes with it, so Remove undoes Ensure.
// removed is false when text has no complete region.
func (r Region) Remove(text string) (out string, removed bool) {
	before, after, ok := strings.Cut(text, r.Start)
	if !ok {
		return text, false
	}
	i := strings.LastIndex(after, r.End)
	if i < 0 {
		return text, false
	}
	rest := after[i+len(r.End):]

	lineStart := strings.LastIndex(before, "\n") + 1
	if strings.TrimSpace(before[lineStart:]) == "" {
		switch {
		case strings.HasPrefix(rest, "\r\n"):
			before, rest = before[:lineStart], rest[2:]
		case strings.HasPrefix(rest, "\n"):
			before, rest = before[:lineStart], rest[1:]
		}
	}
	return before + rest, true
}

func newline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
