package host

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/xll-gen/filepacker/internal/csharp"
	"github.com/xll-gen/filepacker/internal/fperrors"
	"github.com/xll-gen/filepacker/internal/resx"
	"github.com/xll-gen/filepacker/internal/ui"
)

type fileItem string

func (f fileItem) Path() string { return string(f) }

// CLI is the Host used when filepacker runs from a terminal. Without an IDE
// around it regenerates the resource accessors itself and asks the user to
// reload the project.
type CLI struct {
	// ResourceNamespace is the namespace of the generated PluginFiles class.
	ResourceNamespace string
	// Quiet suppresses progress and success output.
	Quiet bool
}

// NewCLI returns a CLI host for the named project.
func NewCLI(projectName string, quiet bool) *CLI {
	return &CLI{
		ResourceNamespace: csharp.RootNamespace(projectName) + ".Properties",
		Quiet:             quiet,
	}
}

func (c *CLI) Progress(text string) {
	slog.Info(text)
	if !c.Quiet {
		ui.PrintInfo("Status", text)
	}
}

func (c *CLI) Error(title, text string) {
	slog.Error(text, "title", title)
	ui.PrintError(title, text)
}

func (c *CLI) Info(title, text string) {
	if !c.Quiet {
		ui.PrintSuccess(title, text)
	}
}

// ReloadProject cannot reach an IDE from the command line, so it tells the user instead.
func (c *CLI) ReloadProject(_ context.Context, projectName string) error {
	slog.Info("project manifest changed", "project", projectName)
	ui.PrintWarning("Reload", "the manifest of "+projectName+" changed; reload the project in your IDE")
	return nil
}

// FindItem treats every existing regular file as a project item, which is what
// SDK-style projects do through their default globs.
func (c *CLI) FindItem(_ context.Context, path string) (Item, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fperrors.Filesystem(err, "stat", path)
	}
	if !info.Mode().IsRegular() {
		return nil, false, nil
	}
	return fileItem(path), true, nil
}

// Regenerate writes the accessor class for the resource bundle item.
func (c *CLI) Regenerate(_ context.Context, item Item) error {
	out, err := resx.GenerateDesigner(item.Path(), c.ResourceNamespace)
	if err != nil {
		return err
	}
	slog.Debug("regenerated resource accessors", "path", out)
	return nil
}
