// Package observability provides hooks for instrumenting loading and
// analysis without adding hard dependencies on specific backends.
//
// The package uses a simple hooks pattern: interfaces per event category,
// no-op defaults, and registration at startup. Libraries emit events;
// main decides where they go.
//
//	func main() {
//	    observability.SetLoaderHooks(&myLoaderHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Loader Hooks
// =============================================================================

// LoaderHooks receives events from XML graph loading.
type LoaderHooks interface {
	// OnLoadStart records the beginning of a file parse.
	OnLoadStart(path string)

	// OnLoadComplete records a finished file parse with the number of
	// sections and edges extracted.
	OnLoadComplete(path string, sections, edges int, err error)
}

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from ordering and statistics computation.
type AnalysisHooks interface {
	// OnOrderStart records the beginning of an ordering computation.
	OnOrderStart(nodes int)

	// OnOrderComplete records a finished ordering computation.
	OnOrderComplete(nodes, sccs int, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoaderHooks is a no-op implementation of LoaderHooks.
type NoopLoaderHooks struct{}

func (NoopLoaderHooks) OnLoadStart(string)                     {}
func (NoopLoaderHooks) OnLoadComplete(string, int, int, error) {}

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnOrderStart(int)                        {}
func (NoopAnalysisHooks) OnOrderComplete(int, int, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)      {}
func (NoopCacheHooks) OnCacheMiss(string)     {}
func (NoopCacheHooks) OnCacheSet(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loaderHooks   LoaderHooks   = NoopLoaderHooks{}
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetLoaderHooks registers custom loader hooks.
// Call once at application startup before loading any files.
func SetLoaderHooks(h LoaderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loaderHooks = h
	}
}

// SetAnalysisHooks registers custom analysis hooks.
// Call once at application startup.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Loader returns the registered loader hooks.
func Loader() LoaderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loaderHooks
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loaderHooks = NoopLoaderHooks{}
	analysisHooks = NoopAnalysisHooks{}
	cacheHooks = NoopCacheHooks{}
}
