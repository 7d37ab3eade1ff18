package dataset

import (
	"testing"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		kind layer.Kind
		want []string
	}{
		{layer.KindPlane, []string{"dip_direction", "dip", "stratigraphy"}},
		{layer.KindFaultPlane, []string{"dip_direction", "dip", "lineation_direction", "lineation_dip", "sense"}},
		{layer.KindLine, []string{"dip_direction", "dip", "sense"}},
		{layer.KindSmallCircle, []string{"dip_direction", "dip", "opening_angle"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := Columns(tt.kind)
			if err != nil {
				t.Fatalf("Columns(%q): %v", tt.kind, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Columns(%q) = %v, want %v", tt.kind, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Columns(%q)[%d] = %q, want %q", tt.kind, i, got[i], tt.want[i])
				}
			}
		})
	}

	if _, err := Columns(layer.Kind("polygon")); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("Columns(polygon) error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidKind)
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	a, _ := Columns(layer.KindPlane)
	a[0] = "mutated"

	b, _ := Columns(layer.KindPlane)
	if b[0] != "dip_direction" {
		t.Errorf("schema mutated through returned slice: %v", b)
	}
}

func TestStore(t *testing.T) {
	s, err := NewStore(layer.KindPlane)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if s.Kind() != layer.KindPlane {
		t.Errorf("Kind() = %v, want %v", s.Kind(), layer.KindPlane)
	}
	if s.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", s.RowCount())
	}

	s.Append(Row{"dip_direction": 120.0, "dip": 30.0})
	s.Append(Row{"dip_direction": 200.0, "dip": 85.0, "stratigraphy": "upper"})

	if s.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", s.RowCount())
	}

	r, err := s.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	if r["stratigraphy"] != "upper" {
		t.Errorf("Row(1)[stratigraphy] = %v, want upper", r["stratigraphy"])
	}

	if _, err := s.Row(2); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Row(2) error code = %v, want %v", errors.GetCode(err), errors.ErrCodeNotFound)
	}
	if _, err := s.Row(-1); err == nil {
		t.Error("Row(-1) succeeded, want error")
	}
}

func TestNewStoreUnknownKind(t *testing.T) {
	if _, err := NewStore(layer.Kind("polygon")); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("NewStore(polygon) error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidKind)
	}
}

func TestViewBinding(t *testing.T) {
	s, _ := NewStore(layer.KindLine)
	v := NewView(s)

	if v.Binding() != layer.Store(s) {
		t.Error("Binding() does not return the bound store")
	}

	// The view satisfies the layer-side interfaces.
	if _, err := layer.New(layer.KindLine, s, v); err != nil {
		t.Errorf("layer.New with dataset binding: %v", err)
	}

	// A view bound to a different store is rejected.
	other, _ := NewStore(layer.KindLine)
	if _, err := layer.New(layer.KindLine, other, v); !errors.Is(err, errors.ErrCodeViewMismatch) {
		t.Errorf("layer.New with mismatched view error code = %v, want %v", errors.GetCode(err), errors.ErrCodeViewMismatch)
	}
}

func TestViewSelection(t *testing.T) {
	s, _ := NewStore(layer.KindPlane)
	s.Append(Row{"dip_direction": 10.0, "dip": 20.0})
	s.Append(Row{"dip_direction": 30.0, "dip": 40.0})
	s.Append(Row{"dip_direction": 50.0, "dip": 60.0})
	v := NewView(s)

	if len(v.Selected()) != 0 {
		t.Errorf("Selected() = %v, want empty", v.Selected())
	}

	v.Select(0, 2)
	got := v.Selected()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Selected() = %v, want [0 2]", got)
	}

	v.Select(1)
	got = v.Selected()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Selected() after reselect = %v, want [1]", got)
	}

	v.ClearSelection()
	if len(v.Selected()) != 0 {
		t.Errorf("Selected() after clear = %v, want empty", v.Selected())
	}
}
