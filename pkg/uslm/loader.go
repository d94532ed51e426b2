package uslm

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/observability"
)

// Namespace is the USLM schema namespace used by US Code XML files.
const Namespace = "http://xml.house.gov/schemas/uslm/1.0"

// uscFile matches data file names like usc26.xml and captures the title.
var uscFile = regexp.MustCompile(`^usc(\d+)\.xml$`)

// Loader builds statute graphs from USLM XML files in a data directory.
//
// Target-node policy: every reference target is registered as a node before
// its edge is added, whether it lives in the same title or a different one.
// Cross-title targets therefore appear with minimal attributes (title only)
// unless a later file fills them in. One uniform rule keeps the graph
// well-formed for analytics regardless of which titles were loaded.
type Loader struct {
	// DataDir holds the usc*.xml files.
	DataDir string

	// Logger receives warnings about skipped content. Nil disables logging.
	Logger func(msg string, args ...any)
}

// NewLoader creates a loader for the given data directory.
func NewLoader(dataDir string) *Loader {
	return &Loader{DataDir: dataDir}
}

// LoadTitle parses a single title (e.g. 26 for the Internal Revenue Code)
// into a new graph.
func (l *Loader) LoadTitle(title int) (*graph.Graph, error) {
	path := filepath.Join(l.DataDir, fmt.Sprintf("usc%d.xml", title))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("usc xml not found: %s: %w", path, err)
	}
	g := graph.New()
	if err := l.parseInto(path, g); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadAll parses every usc*.xml file in the data directory into a single
// merged graph. Files are processed in name order.
func (l *Loader) LoadAll() (*graph.Graph, error) {
	entries, err := os.ReadDir(l.DataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", l.DataDir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && uscFile.MatchString(e.Name()) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	g := graph.New()
	for _, name := range files {
		if err := l.parseInto(filepath.Join(l.DataDir, name), g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// LoadFile parses one USC XML file into a new graph.
func LoadFile(path string) (*graph.Graph, error) {
	l := &Loader{DataDir: filepath.Dir(path)}
	g := graph.New()
	if err := l.parseInto(path, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (l *Loader) parseInto(path string, g *graph.Graph) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	observability.Loader().OnLoadStart(path)
	sections, skipped, err := parseSections(f)
	if err != nil {
		observability.Loader().OnLoadComplete(path, 0, 0, err)
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if skipped > 0 && l.Logger != nil {
		l.Logger("skipped %d malformed references in %s", skipped, filepath.Base(path))
	}

	// Register all section nodes before wiring edges so that in-file
	// targets carry their headings.
	for _, s := range sections {
		if err := g.AddNode(graph.Node{
			Path:    s.citation.Path(),
			Title:   s.citation.Title,
			Heading: s.heading,
		}); err != nil {
			return err
		}
	}

	edges := 0
	for _, s := range sections {
		from := s.citation.Path()
		for _, r := range s.refs {
			kind := graph.RefExternalTitle
			if r.citation.Title == s.citation.Title {
				kind = graph.RefInternalSection
			}
			if !g.Has(r.citation.Path()) {
				if err := g.AddNode(graph.Node{
					Path:  r.citation.Path(),
					Title: r.citation.Title,
				}); err != nil {
					return err
				}
			}
			if err := g.AddEdge(from, r.citation.Path(), graph.Ref{Kind: kind, Text: r.text}); err != nil {
				return err
			}
			edges++
		}
	}
	observability.Loader().OnLoadComplete(path, len(sections), edges, nil)
	return nil
}

// xmlSection is one parsed <section> element with its outbound references.
type xmlSection struct {
	citation Citation
	heading  string
	refs     []xmlRef
}

type xmlRef struct {
	citation Citation
	text     string
}

// capture accumulates the character data of one element subtree.
type capture struct {
	buf   strings.Builder
	depth int
}

// parseSections streams USLM XML and extracts sections, headings, and
// cross-references. It returns the sections in document order together with
// the count of reference markers whose href did not parse as a US Code
// section (these are skipped, never edges).
func parseSections(r io.Reader) ([]xmlSection, int, error) {
	dec := xml.NewDecoder(r)

	var (
		sections   []xmlSection
		stack      []*xmlSection // nil entries mark sections without a valid identifier
		heading    *capture
		ref        *capture
		refTarget  Citation
		refSection *xmlSection
		skipped    int
	)

	innermost := func() *xmlSection {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] != nil {
				return stack[i]
			}
		}
		return nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if heading != nil {
				heading.depth++
			}
			if ref != nil {
				ref.depth++
			}
			if t.Name.Space != Namespace {
				continue
			}
			switch t.Name.Local {
			case "section":
				var sec *xmlSection
				if c, ok := ParseRef(attr(t, "identifier")); ok {
					sec = &xmlSection{citation: c}
				}
				stack = append(stack, sec)
			case "heading":
				if sec := innermost(); sec != nil && sec.heading == "" && heading == nil {
					heading = &capture{depth: 1}
				}
			case "ref":
				if sec := innermost(); sec != nil && ref == nil {
					href := attr(t, "href")
					if href == "" {
						continue
					}
					c, ok := ParseRef(href)
					if !ok {
						skipped++
						continue
					}
					ref = &capture{depth: 1}
					refTarget = c
					refSection = sec
				}
			}

		case xml.CharData:
			if heading != nil {
				heading.buf.Write(t)
			}
			if ref != nil {
				ref.buf.Write(t)
			}

		case xml.EndElement:
			if heading != nil {
				heading.depth--
				if heading.depth == 0 {
					if sec := innermost(); sec != nil {
						sec.heading = strings.TrimSpace(heading.buf.String())
					}
					heading = nil
				}
			}
			if ref != nil {
				ref.depth--
				if ref.depth == 0 {
					refSection.refs = append(refSection.refs, xmlRef{
						citation: refTarget,
						text:     strings.TrimSpace(ref.buf.String()),
					})
					ref = nil
				}
			}
			if t.Name.Space == Namespace && t.Name.Local == "section" && len(stack) > 0 {
				sec := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if sec != nil {
					sections = append(sections, *sec)
				}
			}
		}
	}
	return sections, skipped, nil
}

func attr(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
