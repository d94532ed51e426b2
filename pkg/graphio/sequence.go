package graphio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/statutegraph/statutegraph/pkg/graph/order"
)

// sequenceColumns is the fixed CSV column order of the encoding sequence.
var sequenceColumns = []string{
	"order", "section", "citation_path", "dependencies", "dependents", "scc_size",
}

// WriteSequenceJSON writes the encoding sequence as an indented JSON array.
func WriteSequenceJSON(records []order.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode sequence: %w", err)
	}
	return nil
}

// WriteSequenceCSV writes the encoding sequence as CSV with a header row.
func WriteSequenceCSV(records []order.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sequenceColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Order),
			r.Section,
			r.CitationPath,
			strconv.Itoa(r.Dependencies),
			strconv.Itoa(r.Dependents),
			strconv.Itoa(r.SCCSize),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", r.Order, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
