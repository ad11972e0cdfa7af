package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	PrintHeader("Generate")
	PrintSuccess("Done!", "generated FileHandler.cs")
	PrintError("Error!", "boom")
	PrintWarning("Reload", "reload project")
	PrintInfo("Status", "working")

	out := buf.String()
	for _, want := range []string{"Generate", "Done!", "generated FileHandler.cs", "Error!", "boom", "Reload", "Status", "working"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 6 {
		t.Errorf("expected 6 lines, got %d:\n%s", got, out)
	}
}
