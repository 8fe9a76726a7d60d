package request_models

import (
	"bytes"
	"encoding/json"
)

// Nullable tells an absent JSON key apart from an explicit null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) IsNull() bool {
	return n.Set && n.Value == nil
}

// NotNullable is implemented by payloads whose fields reject an explicit
// JSON null even when the field itself may be omitted.
type NotNullable interface {
	NotNullFields() []string
}

// ExplicitNulls returns the listed keys that body sets to null, in the
// order they were listed. A body that is not a JSON object yields none.
func ExplicitNulls(body []byte, fields []string) []string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	var nulls []string
	for _, f := range fields {
		if v, ok := raw[f]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			nulls = append(nulls, f)
		}
	}
	return nulls
}
