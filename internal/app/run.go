package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/theoremgo/internal/counter"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/declorder"
	"github.com/vk/theoremgo/internal/document"
	"github.com/vk/theoremgo/internal/render"
)

// Run executes one document export: numbering every block occurrence in
// document order, computing the declaration order for the environments the
// document used, and writing the preamble followed by the rendered blocks.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	doc, err := a.loader.LoadDocument(ctx, appConfig.DocumentPath)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	logger.Debug("Document loaded.", "event_count", len(doc.Events))

	// Counting state is strictly per run; a fresh engine every export.
	engine := counter.New(a.graph)

	var rendered []string
	used, err := document.Walk(ctx, doc, a.graph, engine, func(block *document.Block) error {
		spec, _ := a.graph.Spec(block.Env)
		text, err := a.backend.Formatter.Format(spec, block)
		if err != nil {
			return err
		}
		rendered = append(rendered, text)
		return nil
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	groups, err := declorder.Order(ctx, a.model, a.graph, used)
	if err != nil {
		return fmt.Errorf("failed to order declarations: %w", err)
	}

	emitter := render.NewEmitter(a.backend, a.graph)
	preamble, err := emitter.Preamble(groups)
	if err != nil {
		return fmt.Errorf("failed to emit preamble: %w", err)
	}

	if preamble != "" {
		if _, err := fmt.Fprintln(a.outW, preamble); err != nil {
			return err
		}
	}
	for _, text := range rendered {
		if _, err := fmt.Fprintln(a.outW, text); err != nil {
			return err
		}
	}

	logger.Info("Export finished.",
		"blocks", len(rendered),
		"environments_used", len(used),
		"declaration_groups", len(groups))
	return nil
}
