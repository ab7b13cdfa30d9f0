package bench

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText renders results the way the standalone benchmark scripts print
// them: each workload's metric lines followed by its elapsed time.
func WriteText(w io.Writer, results []Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n", r.Name); err != nil {
			return err
		}

		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "Error: %v\n", r.Err); err != nil {
				return err
			}
			continue
		}

		for _, m := range r.Metrics {
			if _, err := fmt.Fprintf(w, "%s: %s\n", m.Label, m.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Time: %.2f ms\n", r.ElapsedMS); err != nil {
			return err
		}
	}
	return nil
}

// jsonResult mirrors Result with the error rendered as a string.
type jsonResult struct {
	Result
	Error string `json:"error,omitempty"`
}

// WriteJSON renders results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{Result: r}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
