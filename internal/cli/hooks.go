package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/statutegraph/statutegraph/pkg/observability"
)

// logHooks bridges the observability hook registry to the CLI logger.
// All events log at debug level; commands report their own results, so the
// hooks only matter under --verbose.
type logHooks struct {
	logger *log.Logger
}

// installHooks registers logging hooks for loader, analysis, and cache events.
// Safe to call more than once; later calls replace earlier hooks.
func (c *CLI) installHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetLoaderHooks(h)
	observability.SetAnalysisHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnLoadStart(path string) {
	h.logger.Debugf("Parsing %s", path)
}

func (h logHooks) OnLoadComplete(path string, sections, edges int, err error) {
	if err != nil {
		h.logger.Debugf("Parse failed for %s: %v", path, err)
		return
	}
	h.logger.Debugf("Parsed %s: %d sections, %d citations", path, sections, edges)
}

func (h logHooks) OnOrderStart(nodes int) {
	h.logger.Debugf("Ordering %d sections", nodes)
}

func (h logHooks) OnOrderComplete(nodes, sccs int, elapsed time.Duration) {
	h.logger.Debugf("Ordered %d sections in %d groups (%s)", nodes, sccs, elapsed.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(keyType string) {
	h.logger.Debugf("Cache hit (%s)", keyType)
}

func (h logHooks) OnCacheMiss(keyType string) {
	h.logger.Debugf("Cache miss (%s)", keyType)
}

func (h logHooks) OnCacheSet(keyType string, bytes int) {
	h.logger.Debugf("Cached %d bytes (%s)", bytes, keyType)
}
