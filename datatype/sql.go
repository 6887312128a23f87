package datatype

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer. The absent value stores as SQL NULL,
// everything else as the raw label.
func (d DataType) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.label, nil
}

// Scan implements sql.Scanner. NULL and the empty string scan to the absent
// value; any other string or byte slice becomes the label as-is.
func (d *DataType) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DataType{}
		return nil
	case string:
		if v == "" {
			*d = DataType{}
			return nil
		}
		dt, err := New(v)
		if err != nil {
			return err
		}
		*d = dt
		return nil
	case []byte:
		if len(v) == 0 {
			*d = DataType{}
			return nil
		}
		dt, err := New(string(v))
		if err != nil {
			return err
		}
		*d = dt
		return nil
	default:
		return fmt.Errorf("datatype: cannot scan %T into DataType", src)
	}
}
