package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Bucket struct {
	Key   string
	Value int
}

// Breakdown is a label→count map that keeps its insertion order through JSON
// and YAML, so month and location series render in the order they were stored.
type Breakdown []Bucket

// Map returns the breakdown as a plain map; order is lost.
func (b Breakdown) Map() map[string]int {
	out := make(map[string]int, len(b))
	for _, kv := range b {
		out[kv.Key] = kv.Value
	}
	return out
}

func (b Breakdown) Get(key string) (int, bool) {
	for _, kv := range b {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return 0, false
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", kv.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (b *Breakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("breakdown: expected object, got %v", tok)
	}
	out := Breakdown{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("breakdown: expected string key, got %v", keyTok)
		}
		var v int
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("breakdown: value for %q: %w", key, err)
		}
		out = append(out, Bucket{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*b = out
	return nil
}

func (b *Breakdown) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("breakdown: line %d: expected mapping", node.Line)
	}
	out := make(Breakdown, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var v int
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("breakdown: value for %q: %w", node.Content[i].Value, err)
		}
		out = append(out, Bucket{Key: node.Content[i].Value, Value: v})
	}
	*b = out
	return nil
}
