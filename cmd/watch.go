package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/xll-gen/filepacker/internal/packer"
	"github.com/xll-gen/filepacker/internal/ui"
	"github.com/xll-gen/filepacker/internal/watch"
)

var (
	watchOpts     generateOptions
	watchDebounce time.Duration
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Regenerate FileHandler.cs whenever the Files folder changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watchOpts.inlineSet = cmd.Flags().Changed("inline")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runWatch(ctx, projectDir(args), watchOpts, watchDebounce)
	},
}

func init() {
	addGenerateFlags(watchCmd, &watchOpts)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before a change triggers a run")
	rootCmd.AddCommand(watchCmd)
}

// runWatch generates once, then again after every settled change until ctx ends.
// Failed runs are reported and watching continues.
func runWatch(ctx context.Context, dir string, o generateOptions, debounce time.Duration) error {
	p, cfg, h, err := prepare(dir, o)
	if err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		_, err := packer.Run(ctx, p, cfg, h)
		return err
	}
	// the first run also surfaces a missing Files folder before watching it
	if err := run(ctx); err != nil {
		return reported{err}
	}

	w, err := watch.New(p.AssetsDir(), debounce, run)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	if !o.quiet {
		ui.PrintHeader("Watching " + p.AssetsDir() + " (Ctrl+C to stop)")
	}

	select {
	case <-ctx.Done():
	case <-w.Done():
	}
	w.Stop()
	return nil
}
