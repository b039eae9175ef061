package autoshift

import (
	"github.com/bft-labs/coordmod/internal/cliconfig"
	"github.com/bft-labs/coordmod/internal/ports"
	"github.com/bft-labs/coordmod/pkg/log"
)

// FromConfig builds the watcher and its PluginConfig from CLI configuration.
//
// Usage:
//
//	p, pcfg := autoshift.FromConfig(cfg, mgr, handler, logger)
//	if err := p.Initialize(ctx, pcfg); err != nil { ... }
//	defer p.Shutdown(context.Background())
func FromConfig(cfg cliconfig.Config, conn ports.Connector, shifter ports.Shifter, logger log.Logger) (*Plugin, ports.PluginConfig) {
	p := New(Config{DebounceDelay: cfg.WatchDebounce})
	return p, ports.PluginConfig{
		StateFile: cfg.StateFile,
		Shift:     cfg.Shift,
		Connector: conn,
		Shifter:   shifter,
		Logger:    logger,
	}
}
