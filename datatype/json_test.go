package datatype

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		dt   DataType
		want string
	}{
		{"predefined", Boolean, `"Boolean"`},
		{"case preserved", MustNew("vArChAr"), `"vArChAr"`},
		{"open-set label", MustNew("uuid"), `"uuid"`},
		{"absent", DataType{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.dt)
			if err != nil {
				t.Fatalf("Marshal(%v) unexpected error: %v", tt.dt, err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal(%v) = %s; want %s", tt.dt, got, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       DataType
		wantAbsent bool
	}{
		{"predefined", `"Integer"`, Integer, false},
		{"case variant equals predefined", `"INTEGER"`, Integer, false},
		{"open-set label", `"jsonb"`, MustNew("jsonb"), false},
		{"null is absent", `null`, DataType{}, true},
		{"empty string is absent", `""`, DataType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DataType
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if tt.wantAbsent {
				if !got.IsZero() {
					t.Errorf("Unmarshal(%s) = %v; want absent value", tt.input, got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Unmarshal(%s) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, dt := range Predefined() {
		data, err := json.Marshal(dt)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", dt, err)
		}
		if want := `"` + dt.String() + `"`; string(data) != want {
			t.Errorf("Marshal(%v) = %s; want bare string %s", dt, data, want)
		}

		var back DataType
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if !back.Equal(dt) {
			t.Errorf("round-trip of %v yielded %v", dt, back)
		}
		if back.String() != dt.String() {
			t.Errorf("round-trip of %v changed case: %q", dt, back.String())
		}
	}
}

func TestUnmarshalInStruct(t *testing.T) {
	type columnDoc struct {
		Name string   `json:"name"`
		Type DataType `json:"type"`
	}

	var doc columnDoc
	if err := json.Unmarshal([]byte(`{"name":"id","type":"Integer"}`), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Type.Equal(Integer) {
		t.Errorf("doc.Type = %v; want Integer", doc.Type)
	}

	// Missing field stays absent
	doc = columnDoc{}
	if err := json.Unmarshal([]byte(`{"name":"id"}`), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Type.IsZero() {
		t.Errorf("missing type field decoded to %v; want absent", doc.Type)
	}
}

func TestMarshalText(t *testing.T) {
	got, err := VarChar.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "VarChar" {
		t.Errorf("MarshalText() = %q; want %q", got, "VarChar")
	}

	var dt DataType
	if err := dt.UnmarshalText([]byte("Decimal")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dt.Equal(Decimal) {
		t.Errorf("UnmarshalText = %v; want Decimal", dt)
	}

	if err := dt.UnmarshalText(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dt.IsZero() {
		t.Errorf("UnmarshalText(nil) = %v; want absent", dt)
	}
}
