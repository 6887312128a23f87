package datatype

import (
	"encoding/json"
	"fmt"
)

// The wire form of a DataType is a bare string token, not an object: a
// column's type serializes as just its label, and an absent type as null.

// MarshalJSON implements json.Marshaler.
func (d DataType) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.label)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null and the empty string
// both decode to the absent value; any other string decodes to a DataType
// with that label. Unknown labels are accepted.
func (d *DataType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = DataType{}
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("datatype: unmarshal: %w", err)
	}
	if label == "" {
		*d = DataType{}
		return nil
	}

	dt, err := New(label)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}

// MarshalText implements encoding.TextMarshaler. The absent value renders as
// the empty string.
func (d DataType) MarshalText() ([]byte, error) {
	return []byte(d.label), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// empty-means-absent convention as UnmarshalJSON.
func (d *DataType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = DataType{}
		return nil
	}
	dt, err := New(string(text))
	if err != nil {
		return err
	}
	*d = dt
	return nil
}
