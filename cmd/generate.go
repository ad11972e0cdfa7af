package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xll-gen/filepacker/internal/config"
	"github.com/xll-gen/filepacker/internal/host"
	"github.com/xll-gen/filepacker/internal/packer"
	"github.com/xll-gen/filepacker/internal/project"
)

// generateOptions are the flags shared by generate and watch.
type generateOptions struct {
	inline         bool
	inlineSet      bool
	textExtensions string
	namespace      string
	projectName    string
	quiet          bool
}

var genOpts generateOptions

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate FileHandler.cs from the Files folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		genOpts.inlineSet = cmd.Flags().Changed("inline")
		return runGenerate(cmd.Context(), projectDir(args), genOpts)
	},
}

func init() {
	addGenerateFlags(generateCmd, &genOpts)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(c *cobra.Command, o *generateOptions) {
	c.Flags().BoolVar(&o.inline, "inline", false, "Store binary files as base64 literals instead of Properties/PluginFiles.resx")
	c.Flags().StringVar(&o.textExtensions, "text-extensions", "", "Extensions scanned for placeholders, e.g. \"css,js,html\"")
	c.Flags().StringVar(&o.namespace, "namespace", "", "Namespace used when the project does not declare one")
	c.Flags().StringVar(&o.projectName, "project-name", "", "Project name (default: the single .csproj in dir)")
	c.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "Only report errors")
}

// prepare resolves the project, configuration and host for a run.
func prepare(dir string, o generateOptions) (project.Project, *config.Config, *host.CLI, error) {
	cfg, err := loadConfig(dir)
	if err != nil {
		return project.Project{}, nil, nil, err
	}
	if o.inlineSet {
		cfg.InlinePayloads = o.inline
	}
	if o.textExtensions != "" {
		cfg.TextExtensions = o.textExtensions
	}
	if o.namespace != "" {
		cfg.DefaultNamespace = o.namespace
	}
	if err := config.Validate(cfg); err != nil {
		return project.Project{}, nil, nil, err
	}

	p, err := project.Discover(dir, o.projectName)
	if err != nil {
		return project.Project{}, nil, nil, err
	}
	return p, cfg, host.NewCLI(p.Name, o.quiet), nil
}

// runGenerate performs a single generation for the project in dir.
func runGenerate(ctx context.Context, dir string, o generateOptions) error {
	p, cfg, h, err := prepare(dir, o)
	if err != nil {
		return err
	}
	if _, err := packer.Run(ctx, p, cfg, h); err != nil {
		return reported{err}
	}
	return nil
}
