package main

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// routeReport is the structured form of one path query.
type routeReport struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Found    bool     `json:"found"`
	Path     []string `json:"path,omitempty"`
	Distance float64  `json:"distance"`
	Settled  int      `json:"settled"`
}

// orderReport is the structured form of a traversal or topological order.
type orderReport struct {
	Command string   `json:"command"`
	From    string   `json:"from,omitempty"`
	Order   []string `json:"order"`
}

// emit writes v in the selected structured format, or calls text for the
// plain rendering.
func (env *runEnv) emit(v any, text func(w io.Writer)) error {
	switch env.format {
	case formatJSON:
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("rendering yaml: %w", err)
		}
		_, err = env.out.Write(b)
		return err
	default:
		text(env.out)
		return nil
	}
}
