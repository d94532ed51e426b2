package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Loader hooks
	l := NoopLoaderHooks{}
	l.OnLoadStart("usc26.xml")
	l.OnLoadComplete("usc26.xml", 2000, 8000, nil)

	// Analysis hooks
	a := NoopAnalysisHooks{}
	a.OnOrderStart(2000)
	a.OnOrderComplete(2000, 1950, time.Second)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit("graph")
	c.OnCacheMiss("graph")
	c.OnCacheSet("graph", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Loader().(NoopLoaderHooks); !ok {
		t.Error("Loader() should return NoopLoaderHooks by default")
	}
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customLoader := &testLoaderHooks{}
	SetLoaderHooks(customLoader)
	if Loader() != customLoader {
		t.Error("SetLoaderHooks should set custom hooks")
	}

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	if Analysis() != customAnalysis {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Loader().(NoopLoaderHooks); !ok {
		t.Error("Reset() should restore NoopLoaderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLoaderHooks{}
	SetLoaderHooks(custom)

	// Setting nil should be ignored
	SetLoaderHooks(nil)

	if Loader() != custom {
		t.Error("SetLoaderHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLoaderHooks struct{ NoopLoaderHooks }
type testAnalysisHooks struct{ NoopAnalysisHooks }
type testCacheHooks struct{ NoopCacheHooks }
