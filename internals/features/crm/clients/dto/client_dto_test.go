package dto

import (
	"encoding/json"
	"testing"
)

func TestPatchFieldTriState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		payload  string
		wantSet  bool
		wantNull bool
		wantVal  string
	}{
		{name: "absent field stays unset", payload: `{}`, wantSet: false},
		{name: "explicit null clears", payload: `{"client_company":null}`, wantSet: true, wantNull: true},
		{name: "value sets", payload: `{"client_company":"Studio Nord"}`, wantSet: true, wantVal: "Studio Nord"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var req PatchClientRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			f := req.ClientCompany
			if f.Set != tt.wantSet {
				t.Fatalf("Set = %v, want %v", f.Set, tt.wantSet)
			}
			if f.Null != tt.wantNull {
				t.Fatalf("Null = %v, want %v", f.Null, tt.wantNull)
			}
			if tt.wantVal != "" {
				if f.Value == nil || *f.Value != tt.wantVal {
					t.Fatalf("Value = %v, want %q", f.Value, tt.wantVal)
				}
			}
		})
	}
}

func TestPatchFieldRejectsWrongType(t *testing.T) {
	t.Parallel()
	var req PatchClientRequest
	if err := json.Unmarshal([]byte(`{"client_company":42}`), &req); err == nil {
		t.Fatal("expected type error for number into string field")
	}
}
