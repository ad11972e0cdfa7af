// Package packer runs one generation: it walks the Files folder of a plugin
// project, writes FileHandler.cs and keeps the resource bundle in sync.
package packer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/xll-gen/filepacker/internal/assets"
	"github.com/xll-gen/filepacker/internal/config"
	"github.com/xll-gen/filepacker/internal/csharp"
	"github.com/xll-gen/filepacker/internal/detect"
	"github.com/xll-gen/filepacker/internal/generator"
	"github.com/xll-gen/filepacker/internal/host"
	"github.com/xll-gen/filepacker/internal/keys"
	"github.com/xll-gen/filepacker/internal/placeholder"
	"github.com/xll-gen/filepacker/internal/project"
	"github.com/xll-gen/filepacker/internal/resources"
)

// Context is everything a run knows about the project before the first asset is read.
type Context struct {
	ProjectName       string
	Root              string
	Namespace         string
	TypeName          string
	HasCustomFallback bool
}

// Result summarizes a successful run.
type Result struct {
	RunID   string
	Context Context
	// Path is the written FileHandler.cs.
	Path      string
	Assets    int
	Templated int
	Bundled   int
	Outcome   resources.Outcome
}

// Generate writes FileHandler.cs for p and finalizes the payload strategy
// selected by cfg. It reports nothing to h except the calls Finalize needs.
func Generate(ctx context.Context, p project.Project, cfg *config.Config, h host.Host) (*Result, error) {
	runID := uuid.NewString()
	logger := slog.With("run_id", runID, "project", p.Name)

	custom, err := detect.Recover(p.Root, cfg.DefaultNamespace, p.Name)
	if err != nil {
		return nil, err
	}
	gctx := Context{
		ProjectName:       p.Name,
		Root:              p.Root,
		Namespace:         custom.Namespace,
		TypeName:          custom.TypeName,
		HasCustomFallback: custom.HasCustomFallback,
	}
	logger.Debug("recovered handler customization",
		"namespace", gctx.Namespace,
		"type", gctx.TypeName,
		"custom_fallback", gctx.HasCustomFallback)

	selector := resources.NewSelector(resources.KindFor(cfg.InlinePayloads))
	registry := keys.NewRegistry()
	module := generator.NewModule(gctx.Namespace, gctx.TypeName, gctx.HasCustomFallback)
	frameworkPrefix := placeholder.FrameworkPrefix(gctx.Namespace)

	res := &Result{RunID: runID, Context: gctx}
	for a, err := range assets.Walk(p.AssetsDir(), cfg.TextExtensionsClean()) {
		if err != nil {
			return nil, err
		}
		key, err := registry.Add(a.RelPath)
		if err != nil {
			return nil, err
		}

		var content string
		if text := string(a.Content); placeholder.ShouldTemplate(a.IsText, text) {
			content = generator.Templated(placeholder.Render(text, frameworkPrefix))
			res.Templated++
		} else {
			content = selector.Expression(key, a)
		}
		module.Add(a.RelPath, content, a.ModTicks)
		res.Assets++
		logger.Debug("added asset", "path", a.RelPath, "key", key, "text", a.IsText)
	}
	res.Bundled = selector.Set().Len()

	if res.Bundled > 0 {
		module.Using = csharp.RootNamespace(p.Name) + ".Properties"
	}

	res.Path, err = module.Write(p.Root)
	if err != nil {
		return nil, err
	}
	logger.Info("wrote file handler",
		"path", res.Path,
		"assets", res.Assets,
		"templated", res.Templated,
		"bundled", res.Bundled,
		"keys", registry.Len(),
		"strategy", selector.Kind().String())

	retry := host.Retry{Attempts: cfg.Retry.Attempts, Delay: cfg.RetryDelay()}
	res.Outcome, err = selector.Finalize(ctx, p, h, retry)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Run is Generate with user-facing reporting: progress before, a notification
// after, and every failure shown through h.Error. The error is still returned.
func Run(ctx context.Context, p project.Project, cfg *config.Config, h host.Host) (*Result, error) {
	h.Progress("Generating FileHandler.cs for " + p.Name + "...")

	res, err := Generate(ctx, p, cfg, h)
	if err != nil {
		slog.Error("generation failed", "project", p.Name, "error", err)
		h.Error("Error!", "An error occurred while generating FileHandler.cs for "+p.Name+":\n"+err.Error())
		return nil, err
	}

	h.Progress("Successfully generated FileHandler.cs for " + p.Name + "!")
	if cfg.Notify() {
		h.Info("Done!", "Successfully generated FileHandler.cs for "+p.Name+"!")
	}
	return res, nil
}
