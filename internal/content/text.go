package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Text is a scalar field kept as its literal YAML text.
//
// Numbers, dates and strings all decode to the text as written, so
// `year: 2024` and `year: "2024"` compare equal and dates sort as strings.
type Text string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a single value", node.Line)
	}
	if node.ShortTag() == "!!null" {
		*t = ""
		return nil
	}
	*t = Text(node.Value)
	return nil
}

// String returns the raw text.
func (t Text) String() string {
	return string(t)
}

// IsZero reports whether the field is empty or whitespace.
func (t Text) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Or returns the text, or placeholder when the field is empty.
func (t Text) Or(placeholder string) string {
	if t.IsZero() {
		return placeholder
	}
	return string(t)
}

// List is a multi-valued field. A single scalar decodes as a one-element list.
type List []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" || strings.TrimSpace(node.Value) == "" {
			*l = nil
			return nil
		}
		*l = List{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(List, 0, len(node.Content))
		for _, item := range node.Content {
			var v Text
			if err := v.UnmarshalYAML(item); err != nil {
				return err
			}
			if !v.IsZero() {
				out = append(out, string(v))
			}
		}
		*l = out
		return nil
	}
	return fmt.Errorf("line %d: expected a value or a list of values", node.Line)
}

// plainValue converts decoded YAML values to plain strings, numbers, slices and maps.
func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = plainValue(item)
		}
		return out
	default:
		return val
	}
}

func plainMap(m map[string]interface{}) map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}
