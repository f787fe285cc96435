// Package generate writes the fixture schema catalog to disk.
package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tailbits/fixture"
	"github.com/tailbits/fixture/catalog"
	"github.com/tailbits/fixture/internal/config"
)

// DocumentFile is the name of the combined OpenAPI document.
const DocumentFile = "openapi.json"

const filePerm = 0o644

type Generator struct {
	cfg config.Config
	log zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Catalog registers every fixture type.
func (g *Generator) Catalog() (*catalog.Catalog, error) {
	opts := []catalog.Option{
		catalog.WithTitle(g.cfg.Title),
		catalog.WithVersion(g.cfg.Version),
		catalog.WithDescription(fmt.Sprintf("Schemas of the sample user module (retry limit %d, default name %q).", fixture.MaxRetries, fixture.DefaultName)),
	}
	if g.cfg.Lint {
		opts = append(opts, catalog.Lint(g.cfg.IgnoreRules...))
	}

	c := catalog.New(opts...)

	if err := catalog.Add[*fixture.User](c); err != nil {
		return nil, err
	}
	if err := catalog.Add[*fixture.UserImpl](c); err != nil {
		return nil, err
	}
	if err := catalog.Add[fixture.UserRole](c); err != nil {
		return nil, err
	}
	if err := c.RegisterValue("UserMap", fixture.UserMap{}); err != nil {
		return nil, err
	}

	return c, nil
}

// Run writes the document and one schema file per definition, returning
// the paths written.
func (g *Generator) Run() ([]string, error) {
	c, err := g.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	doc, err := c.Document()
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	written := make([]string, 0, len(c.Names())+1)

	path := filepath.Join(g.cfg.OutDir, DocumentFile)
	if err := g.write(path, doc); err != nil {
		return written, err
	}
	written = append(written, path)

	for _, name := range c.Names() {
		sch, _ := c.Schema(name)
		data, err := json.MarshalIndent(&sch, "", "  ")
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", name, err)
		}

		path := filepath.Join(g.cfg.OutDir, catalog.FileName(name))
		if err := g.write(path, data); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	g.log.Info().Str("dir", g.cfg.OutDir).Int("files", len(written)).Msg("schemas generated")

	return written, nil
}

func (g *Generator) write(path string, data []byte) error {
	if err := os.WriteFile(path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	g.log.Debug().Str("path", path).Int("bytes", len(data)+1).Msg("wrote file")

	return nil
}
