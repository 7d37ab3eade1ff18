package layer

import (
	"testing"

	"github.com/akositz/innstereo/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"plane", "plane", KindPlane, false},
		{"faultplane", "faultplane", KindFaultPlane, false},
		{"line", "line", KindLine, false},
		{"smallcircle", "smallcircle", KindSmallCircle, false},

		{"empty", "", "", true},
		{"unknown", "polygon", "", true},
		{"wrong case", "Plane", "", true},
		{"with space", " plane", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidKind) {
					t.Errorf("ParseKind(%q) error code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidKind)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range Kinds() {
		if !k.Valid() {
			t.Errorf("Kind(%q).Valid() = false, want true", k)
		}
	}
	if Kind("polygon").Valid() {
		t.Error(`Kind("polygon").Valid() = true, want false`)
	}
}

func TestKinds(t *testing.T) {
	got := Kinds()
	want := []Kind{KindPlane, KindFaultPlane, KindLine, KindSmallCircle}

	if len(got) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
