package graphio

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graph/order"
)

// sample builds a small graph with attributes, a cycle, and progress state.
func sample() *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Node{
		Path:    "us/statute/26/1",
		Title:   "26",
		Heading: "Tax imposed",
		Meta:    map[string]any{"source": "usc26.xml"},
	})
	g.AddNode(graph.Node{Path: "us/statute/26/32", Title: "26", Heading: "Earned income"})
	g.AddEdge("us/statute/26/32", "us/statute/26/1", graph.Ref{Kind: graph.RefInternalSection, Text: "section 1"})
	g.AddEdge("us/statute/26/1", "us/statute/26/32", graph.Ref{Kind: graph.RefInternalSection})
	g.AddEdge("us/statute/26/151", "us/statute/26/1", graph.Ref{Kind: graph.RefUnknown})
	g.MarkEncoded("us/statute/26/1")
	return g
}

func TestRoundTrip(t *testing.T) {
	g := sample()

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	gj, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}
	back, err := ToGraph(gj)
	if err != nil {
		t.Fatalf("ToGraph: %v", err)
	}

	if back.NodeCount() != g.NodeCount() || back.EdgeCount() != g.EdgeCount() {
		t.Fatalf("size = (%d, %d), want (%d, %d)",
			back.NodeCount(), back.EdgeCount(), g.NodeCount(), g.EdgeCount())
	}

	n, ok := back.Node("us/statute/26/1")
	if !ok {
		t.Fatal("node missing after round trip")
	}
	if n.Title != "26" || n.Heading != "Tax imposed" || n.Meta["source"] != "usc26.xml" {
		t.Errorf("node attributes lost: %+v", n)
	}

	ref, ok := back.Ref("us/statute/26/32", "us/statute/26/1")
	if !ok || ref.Kind != graph.RefInternalSection || ref.Text != "section 1" {
		t.Errorf("edge attributes lost: %+v, %v", ref, ok)
	}

	if !back.IsEncoded("us/statute/26/1") {
		t.Error("encoded marker lost")
	}
	if back.IsEncoded("us/statute/26/32") {
		t.Error("spurious encoded marker")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	g := sample()

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := MarshalGraph(g)
		if !bytes.Equal(first, again) {
			t.Fatal("MarshalGraph output not deterministic")
		}
	}
}

func TestFieldNames(t *testing.T) {
	g := sample()
	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	var raw struct {
		Nodes []map[string]any `json:"nodes"`
		Edges []map[string]any `json:"edges"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw.Nodes) == 0 || len(raw.Edges) == 0 {
		t.Fatal("empty serialization")
	}

	// External field names are part of the format contract.
	if _, ok := raw.Nodes[0]["citation_path"]; !ok {
		t.Errorf("node missing citation_path: %v", raw.Nodes[0])
	}
	if _, ok := raw.Edges[0]["ref_type"]; !ok {
		t.Errorf("edge missing ref_type: %v", raw.Edges[0])
	}
}

func TestGraphFile(t *testing.T) {
	g := sample()
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	back, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if back.NodeCount() != g.NodeCount() || back.EdgeCount() != g.EdgeCount() {
		t.Errorf("file round trip size mismatch")
	}

	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadGraphFile(missing) succeeded")
	}
}

func TestWriteSequenceCSV(t *testing.T) {
	g := sample()
	records := order.EncodingSequence(g)

	var buf bytes.Buffer
	if err := WriteSequenceCSV(records, &buf); err != nil {
		t.Fatalf("WriteSequenceCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(records)+1 {
		t.Fatalf("lines = %d, want %d", len(lines), len(records)+1)
	}
	if lines[0] != "order,section,citation_path,dependencies,dependents,scc_size" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,") {
		t.Errorf("first row = %q, want order 1", lines[1])
	}
}

func TestWriteSequenceJSON(t *testing.T) {
	g := sample()
	records := order.EncodingSequence(g)

	var buf bytes.Buffer
	if err := WriteSequenceJSON(records, &buf); err != nil {
		t.Fatalf("WriteSequenceJSON: %v", err)
	}

	var back []order.Record
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("records = %d, want %d", len(back), len(records))
	}
	if back[0] != records[0] {
		t.Errorf("record mismatch: %+v vs %+v", back[0], records[0])
	}
}
