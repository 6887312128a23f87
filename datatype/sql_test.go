package datatype

import "testing"

func TestValue(t *testing.T) {
	v, err := Text.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "Text" {
		t.Errorf("Value() = %v; want %q", v, "Text")
	}

	v, err = DataType{}.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("absent Value() = %v; want nil", v)
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		name       string
		src        any
		want       DataType
		wantAbsent bool
		wantErr    bool
	}{
		{"string", "Boolean", Boolean, false, false},
		{"bytes", []byte("datetime"), DateTime, false, false},
		{"open-set string", "citext", MustNew("citext"), false, false},
		{"nil is absent", nil, DataType{}, true, false},
		{"empty string is absent", "", DataType{}, true, false},
		{"empty bytes are absent", []byte{}, DataType{}, true, false},
		{"unsupported type", 42, DataType{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DataType
			err := got.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Scan(%v) expected error", tt.src)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan(%v) unexpected error: %v", tt.src, err)
			}
			if tt.wantAbsent {
				if !got.IsZero() {
					t.Errorf("Scan(%v) = %v; want absent", tt.src, got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Scan(%v) = %v; want %v", tt.src, got, tt.want)
			}
		})
	}
}
