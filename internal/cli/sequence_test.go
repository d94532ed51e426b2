package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	pkgerrors "github.com/statutegraph/statutegraph/pkg/errors"
	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graphio"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

// cyclicGraphFile writes a graph with two mutually-citing sections and
// returns its path.
func cyclicGraphFile(t *testing.T) string {
	t.Helper()
	g := graph.New()
	g.AddNode(graph.Node{Path: "us/statute/26/1", Title: "26"})
	g.AddNode(graph.Node{Path: "us/statute/26/2", Title: "26"})
	g.AddEdge("us/statute/26/1", "us/statute/26/2", graph.Ref{Kind: graph.RefInternalSection})
	g.AddEdge("us/statute/26/2", "us/statute/26/1", graph.Ref{Kind: graph.RefInternalSection})

	path := filepath.Join(t.TempDir(), "cyclic.json")
	if err := graphio.WriteGraphFile(g, path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunSequenceWritesOutput(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := graphio.WriteGraphFile(testGraph(), input); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	output := filepath.Join(dir, "sequence.json")

	if err := c.runSequence(testCommand(), input, filterFlags{}, "json", output, false, true); err != nil {
		t.Fatalf("runSequence: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("sequence file not created: %v", err)
	}
}

func TestRunSequenceUnknownFormat(t *testing.T) {
	c := testCLI()
	err := c.runSequence(testCommand(), "graph.json", filterFlags{}, "yaml", "", false, true)
	if err == nil {
		t.Fatal("unknown format should error")
	}
	if got := pkgerrors.GetCode(err); got != pkgerrors.ErrCodeInvalidFormat {
		t.Errorf("GetCode = %q, want %q", got, pkgerrors.ErrCodeInvalidFormat)
	}
}

func TestRunSequenceStrictCyclic(t *testing.T) {
	c := testCLI()
	err := c.runSequence(testCommand(), cyclicGraphFile(t), filterFlags{}, "json", "", true, true)
	if err == nil {
		t.Fatal("strict sequence of a cyclic graph should error")
	}
	if got := pkgerrors.GetCode(err); got != pkgerrors.ErrCodeGraphHasCycle {
		t.Errorf("GetCode = %q, want %q", got, pkgerrors.ErrCodeGraphHasCycle)
	}
}

func TestRunSequenceStrictAcyclic(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := graphio.WriteGraphFile(testGraph(), input); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	output := filepath.Join(dir, "sequence.json")
	if err := c.runSequence(testCommand(), input, filterFlags{}, "json", output, true, true); err != nil {
		t.Errorf("strict sequence of an acyclic graph should succeed, got %v", err)
	}
}
