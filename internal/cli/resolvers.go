package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huepoint/internal/config"
	"github.com/jmylchreest/huepoint/internal/names"
	"github.com/jmylchreest/huepoint/internal/resolver"
)

// buildResolver loads the configured name tables and wraps them in a
// ColorResolver, consulted in the configured order.
func buildResolver(cfg *config.Config, logger hclog.Logger) (*resolver.ColorResolver, error) {
	metric, err := names.ParseMetric(cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("invalid metric: %w", err)
	}

	var rs []names.NameResolver
	for _, src := range cfg.Sources {
		table, err := loadTable(src)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded name table", "source", table.Source(), "entries", table.Len())
		rs = append(rs, names.NewTableResolver(table, metric))
	}

	if cfg.TablePath != "" {
		table, err := names.LoadFile(cfg.TablePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load name table: %w", err)
		}
		logger.Debug("loaded name table", "source", table.Source(), "path", cfg.TablePath, "entries", table.Len())
		rs = append(rs, names.NewTableResolver(table, metric))
	}

	return resolver.New(nil, rs...).WithLogger(logger.Named("resolver")), nil
}

// loadTable returns a built-in table by source name, or loads a table file.
// Built-in names match case-insensitively; paths are used as given.
func loadTable(src string) (*names.Table, error) {
	switch strings.ToLower(src) {
	case names.SourceNTC:
		table, err := names.NTC()
		if err != nil {
			return nil, fmt.Errorf("failed to load ntc table: %w", err)
		}
		return table, nil
	case names.SourceHTML:
		return names.HTML(), nil
	default:
		table, err := names.LoadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to load name table: %w", err)
		}
		return table, nil
	}
}
