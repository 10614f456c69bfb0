package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/fsutil"
	"github.com/vk/theoremgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadEnvironments finds and parses all .hcl files under path and merges
// their environment blocks, in file-then-declaration order, into a model.
func (l *Loader) LoadEnvironments(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("hcl: loading environment configuration.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find environment files in %s: %w", path, err)
	}
	logger.Debug("hcl: discovered environment files.", "count", len(files))

	parser := hclparse.NewParser()
	var specs []*config.EnvironmentSpec

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var parsed schema.EnvironmentsFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, env := range parsed.Environments {
			spec, err := translateEnvironment(env)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			specs = append(specs, spec)
		}
	}

	logger.Debug("hcl: environment configuration loaded.", "environment_count", len(specs))
	return config.NewModel(specs), nil
}

// LoadDocument parses a single document event file. Blocks are read from
// the raw body content so that section and block entries keep their source
// interleaving, which is the document order.
func (l *Loader) LoadDocument(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("hcl: loading document events.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse document file %s: %w", path, diags)
	}

	content, diags := hclFile.Body.Content(schema.DocumentSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode document file %s: %w", path, diags)
	}

	doc := &config.Document{}
	for _, block := range content.Blocks {
		switch block.Type {
		case "section":
			number, err := parseSectionNumber(block.Labels[0])
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", path, err)
			}
			doc.Events = append(doc.Events, config.Event{
				Kind:    config.EventSection,
				Section: number,
			})

		case "block":
			var body schema.BlockEvent
			if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode block %q in %s: %w", block.Labels[0], path, diags)
			}
			doc.Events = append(doc.Events, config.Event{
				Kind:  config.EventBlock,
				Env:   block.Labels[0],
				Label: body.Label,
				Body:  body.Body,
			})
		}
	}

	logger.Debug("hcl: document events loaded.", "event_count", len(doc.Events))
	return doc, nil
}
