package cli

import (
	"path/filepath"
	"testing"

	pkgerrors "github.com/statutegraph/statutegraph/pkg/errors"
	"github.com/statutegraph/statutegraph/pkg/graphio"
)

func TestRunProgressMarkUnknownSection(t *testing.T) {
	c := testCLI()
	input := filepath.Join(t.TempDir(), "graph.json")
	if err := graphio.WriteGraphFile(testGraph(), input); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := c.runProgress(testCommand(), input, []string{"us/statute/99/999"}, "", false, 0, true)
	if err == nil {
		t.Fatal("marking an unknown section should error")
	}
	if got := pkgerrors.GetCode(err); got != pkgerrors.ErrCodeNodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, pkgerrors.ErrCodeNodeNotFound)
	}
}

func TestRunProgressMarkAndSave(t *testing.T) {
	c := testCLI()
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := graphio.WriteGraphFile(testGraph(), input); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	output := filepath.Join(dir, "updated.json")
	err := c.runProgress(testCommand(), input, []string{"us/statute/26/1"}, output, false, 0, true)
	if err != nil {
		t.Fatalf("runProgress: %v", err)
	}

	g, err := graphio.ReadGraphFile(output)
	if err != nil {
		t.Fatalf("read saved graph: %v", err)
	}
	if !g.IsEncoded("us/statute/26/1") {
		t.Error("marked section not persisted as encoded")
	}
}
