package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xll-gen/filepacker/internal/assets"
	"github.com/xll-gen/filepacker/internal/config"
	"github.com/xll-gen/filepacker/internal/project"
	"github.com/xll-gen/filepacker/internal/templates"
	"github.com/xll-gen/filepacker/internal/ui"
)

var initForce bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create filepacker.yaml and the Files folder in a plugin project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(projectDir(args), initForce)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing filepacker.yaml")
	rootCmd.AddCommand(initCmd)
}

// runInit scaffolds dir for filepacker. The project name comes from the
// .csproj in dir when there is exactly one, and from the directory otherwise.
func runInit(dir string, force bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	name := filepath.Base(abs)
	if p, err := project.Discover(abs, ""); err == nil {
		name = p.Name
	}

	ui.PrintHeader("Initializing filepacker for " + name)

	cfgPath := filepath.Join(abs, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists; pass --force to overwrite it", cfgPath)
	}

	data := struct {
		ProjectName      string
		TextExtensions   string
		DefaultNamespace string
	}{
		ProjectName:      name,
		TextExtensions:   config.DefaultTextExtensions,
		DefaultNamespace: config.DefaultNamespace,
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return err
	}
	if err := templates.Execute("filepacker.yaml.tmpl", cfgPath, data, nil); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfgPath, err)
	}
	ui.PrintSuccess("Config", cfgPath)

	filesDir := filepath.Join(abs, assets.DirName)
	if err := os.MkdirAll(filesDir, 0755); err != nil {
		return err
	}
	ui.PrintSuccess("Files", filesDir)
	return nil
}
