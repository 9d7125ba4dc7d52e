package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders any payload as indented JSON, used for raw dumps of
// backend read models.
type JSONExporter struct{}

// NewJSONExporter constructs a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Render marshals the payload with indentation.
func (e *JSONExporter) Render(payload any) ([]byte, error) {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return append(out, '\n'), nil
}
