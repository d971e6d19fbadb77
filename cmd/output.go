package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeFormatted writes v as JSON or YAML, or calls text for plain output.
func writeFormatted(w io.Writer, v any, text func(io.Writer) error) error {
	switch outputFormat {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	case formatText, "":
		return text(w)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", outputFormat)
	}
}
