package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/statutegraph/statutegraph/pkg/cache"
	pkgerrors "github.com/statutegraph/statutegraph/pkg/errors"
	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graphio"
	"github.com/statutegraph/statutegraph/pkg/uslm"
)

// loadGraph loads a citation graph from input, which can be a graph JSON
// file, a USLM XML file, or a directory of uscNN.xml release files.
//
// XML parses are cached keyed by the file's content hash, so re-running a
// command against an unchanged release file skips the parse. Directory loads
// are never cached. The returned bool reports whether the graph came from
// cache.
func (c *CLI) loadGraph(ctx context.Context, input string, noCache bool) (*graph.Graph, bool, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "stat %s", input)
	}

	logger := loggerFromContext(ctx)

	if info.IsDir() {
		loader := uslm.NewLoader(input)
		loader.Logger = func(msg string, args ...any) { logger.Warnf(msg, args...) }
		g, err := loader.LoadAll()
		if err != nil {
			return nil, false, err
		}
		return g, false, nil
	}

	switch {
	case strings.HasSuffix(input, ".json"):
		g, err := graphio.ReadGraphFile(input)
		if err != nil {
			return nil, false, err
		}
		return g, false, nil

	case strings.HasSuffix(input, ".xml"):
		return c.loadXML(ctx, input, noCache)

	default:
		return nil, false, pkgerrors.New(pkgerrors.ErrCodeInvalidFormat, "unsupported input %s: expected .json, .xml, or a directory", input)
	}
}

// loadXML parses a single USLM XML file, consulting the graph cache first.
func (c *CLI) loadXML(ctx context.Context, path string, noCache bool) (*graph.Graph, bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		store = cache.NewNullCache()
	}
	defer store.Close()

	key := ""
	if hash, err := cache.HashFile(path); err == nil {
		key = cache.GraphKey(hash)
	}

	if key != "" {
		if data, ok, err := store.Get(ctx, key); err == nil && ok {
			if gj, err := graphio.UnmarshalGraph(data); err == nil {
				if g, err := graphio.ToGraph(gj); err == nil {
					return g, true, nil
				}
			}
			// A corrupt entry is treated as a miss and overwritten below.
			_ = store.Delete(ctx, key)
		}
	}

	g, err := uslm.LoadFile(path)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if data, err := graphio.MarshalGraph(g); err == nil {
			ttl := time.Duration(c.Config.CacheTTLDays) * 24 * time.Hour
			if ttl <= 0 {
				ttl = cache.DefaultTTL
			}
			_ = store.Set(ctx, key, data, ttl)
		}
	}

	return g, false, nil
}

// =============================================================================
// Filtering
// =============================================================================

// filterFlags holds the shared --prefix and --sections flag values.
type filterFlags struct {
	prefix   string
	sections string // "MIN:MAX"
}

// apply narrows g to the induced subgraph matching the flags.
// With no flags set it returns g unchanged.
func (f filterFlags) apply(g *graph.Graph) (*graph.Graph, error) {
	if f.prefix == "" && f.sections == "" {
		return g, nil
	}

	filter := graph.Filter{Prefix: f.prefix}
	if f.prefix == "" {
		// Section-only filters still need every path considered.
		filter.Prefix = "us/statute/"
	}

	if f.sections != "" {
		minStr, maxStr, ok := strings.Cut(f.sections, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --sections %q: expected MIN:MAX", f.sections)
		}
		min, err := strconv.Atoi(minStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --sections %q: %w", f.sections, err)
		}
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --sections %q: %w", f.sections, err)
		}
		if err := pkgerrors.ValidateSectionRange(min, max); err != nil {
			return nil, err
		}
		filter.Sections = &graph.SectionRange{Min: min, Max: max}
	}

	return g.FilterSubgraph(filter), nil
}

// register adds the shared filter flags to a command.
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "restrict to citation paths with this prefix (e.g. us/statute/26)")
	cmd.Flags().StringVar(&f.sections, "sections", "", "restrict to a section number range, MIN:MAX")
}

// =============================================================================
// Output Helpers
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}
