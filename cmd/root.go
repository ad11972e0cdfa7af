package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xll-gen/filepacker/internal/config"
	"github.com/xll-gen/filepacker/internal/ui"
	"github.com/xll-gen/filepacker/pkg/log"
)

var (
	configPath string
	logLevel   string
	logPath    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "filepacker",
	Short: "Embed the Files folder of a uwap.WebFramework plugin into FileHandler.cs",
	Long: `filepacker generates FileHandler.cs for a plugin project so its static files
are served from the assembly instead of the filesystem. Binary files go into
Properties/PluginFiles.resx, or inline with --inline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var r reported
		if !errors.As(err, &r) {
			ui.PrintError("Error", err.Error())
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to filepacker.yaml (default <dir>/filepacker.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "Write logs to this file instead of stderr")
}

// reported marks an error the host has already shown to the user.
type reported struct{ err error }

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// loadConfig reads the config for a project directory and sets up logging from it.
// --log-level and --log-path win over the file.
func loadConfig(dir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(dir, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logPath != "" {
		cfg.Logging.Path = logPath
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// projectDir returns the directory argument, or "." when none was given.
func projectDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
