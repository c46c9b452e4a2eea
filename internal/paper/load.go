package paper

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRequest reads a Request from a YAML or JSON file and applies layout
// defaults. The request is not validated.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read request file: %w", err)
	}
	return ParseRequest(data)
}

// ParseRequest decodes YAML (or JSON, which YAML accepts) into a Request.
func ParseRequest(data []byte) (Request, error) {
	var r Request
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	r.ApplyDefaults()
	return r, nil
}
