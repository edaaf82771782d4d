package parser

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// FieldError is a single key whose value could not be decoded into its field.
// The rest of the record still decodes.
type FieldError struct {
	Key  string
	Line int
	Err  error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("line %d: field %q dropped: %v", e.Line, e.Key, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// DecodeYAML decodes a YAML mapping into v, which must be a non-nil pointer.
//
// Syntax errors and documents that are not a mapping are returned as err and
// leave v untouched. Repeated keys keep the last value. A key whose value does
// not fit its field is left out and reported in fieldErrs, so one bad field
// never empties the record.
func DecodeYAML(raw []byte, v interface{}) (fieldErrs []FieldError, err error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of fields", root.Line)
	}

	pairs := lastKeyWins(root.Content)
	if err := mapping(root, pairs).Decode(v); err == nil {
		return nil, nil
	}

	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return nil, fmt.Errorf("decode target must be a non-nil pointer, got %T", v)
	}
	elem := target.Elem()

	kept := make([]*yaml.Node, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		key, value := pairs[i], pairs[i+1]
		trial := reflect.New(elem.Type())
		if err := mapping(root, pairs[i:i+2]).Decode(trial.Interface()); err != nil {
			fieldErrs = append(fieldErrs, FieldError{Key: key.Value, Line: value.Line, Err: err})
			continue
		}
		kept = append(kept, key, value)
	}
	if len(fieldErrs) == 0 {
		// Every key decodes alone, so the failure comes from the record as a whole.
		return nil, mapping(root, pairs).Decode(v)
	}

	elem.Set(reflect.Zero(elem.Type()))
	if err := mapping(root, kept).Decode(v); err != nil {
		elem.Set(reflect.Zero(elem.Type()))
		return nil, err
	}
	return fieldErrs, nil
}

// lastKeyWins drops earlier occurrences of repeated scalar keys.
// Merge keys are left alone.
func lastKeyWins(content []*yaml.Node) []*yaml.Node {
	last := make(map[string]int, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i]
		if key.Kind == yaml.ScalarNode && key.Value != "<<" {
			last[key.Value] = i
		}
	}

	out := make([]*yaml.Node, 0, len(content))
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i]
		if key.Kind == yaml.ScalarNode && key.Value != "<<" && last[key.Value] != i {
			continue
		}
		out = append(out, key, content[i+1])
	}
	return out
}

func mapping(like *yaml.Node, content []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     like.Tag,
		Style:   like.Style,
		Line:    like.Line,
		Column:  like.Column,
		Content: content,
	}
}
