package project

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/akositz/innstereo/pkg/dataset"
	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

func TestWriteReadRoundTrip(t *testing.T) {
	p := New()

	plane, _ := p.AddLayer(layer.KindPlane)
	plane.Layer.SetLabel("Bedding")
	plane.Layer.SetLineColor("#aa0000")
	plane.Layer.SetLineWidth(2.5)
	plane.Layer.SetRenderPoles(true)
	plane.Layer.SetPoleAlpha(0.5)
	plane.Store.Append(dataset.Row{"dip_direction": 120.0, "dip": 30.0})
	plane.Store.Append(dataset.Row{"dip_direction": 140.0, "dip": 45.0})

	fault, _ := p.AddLayer(layer.KindFaultPlane)
	fault.Layer.SetDrawHoeppener(true)
	fault.Layer.SetContourMethod(layer.MethodSchmidt)
	fault.Layer.SetContourResolution(80)

	var buf bytes.Buffer
	if err := Write(p, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}

	e := got.Entries()[0]
	if e.ID != plane.ID {
		t.Errorf("ID = %q, want %q", e.ID, plane.ID)
	}
	if e.Layer.Kind() != layer.KindPlane {
		t.Errorf("kind = %v, want plane", e.Layer.Kind())
	}
	if e.Layer.Label() != "Bedding" {
		t.Errorf("Label() = %q, want Bedding", e.Layer.Label())
	}
	if e.Layer.LineColor() != "#aa0000" {
		t.Errorf("LineColor() = %q, want #aa0000", e.Layer.LineColor())
	}
	if e.Layer.LineWidth() != 2.5 {
		t.Errorf("LineWidth() = %v, want 2.5", e.Layer.LineWidth())
	}
	if !e.Layer.RenderPoles() {
		t.Error("RenderPoles() = false, want true")
	}
	if e.Layer.PoleAlpha() != 0.5 {
		t.Errorf("PoleAlpha() = %v, want 0.5", e.Layer.PoleAlpha())
	}
	if e.Store.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", e.Store.RowCount())
	}
	row, _ := e.Store.Row(0)
	if row["dip_direction"] != 120.0 {
		t.Errorf("row dip_direction = %v, want 120", row["dip_direction"])
	}

	e = got.Entries()[1]
	if !e.Layer.DrawHoeppener() {
		t.Error("DrawHoeppener() = false, want true")
	}
	if e.Layer.ContourMethod() != layer.MethodSchmidt {
		t.Errorf("ContourMethod() = %q, want schmidt", e.Layer.ContourMethod())
	}
	if e.Layer.ContourResolution() != 80 {
		t.Errorf("ContourResolution() = %d, want 80", e.Layer.ContourResolution())
	}

	// Untouched attributes keep their defaults through the round trip.
	if e.Layer.MarkerFill() != "#1283eb" {
		t.Errorf("MarkerFill() = %q, want default #1283eb", e.Layer.MarkerFill())
	}
}

func TestReadPartialRecordKeepsDefaults(t *testing.T) {
	input := `{"layers": [{"kind": "smallcircle", "line_color": "#112233"}]}`

	p, err := Read(bytes.NewReader([]byte(input)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}

	l := p.Entries()[0].Layer
	if l.LineColor() != "#112233" {
		t.Errorf("LineColor() = %q, want #112233", l.LineColor())
	}
	if l.Label() != "Small circle layer" {
		t.Errorf("Label() = %q, want the kind default", l.Label())
	}
	if l.LineWidth() != 1.0 {
		t.Errorf("LineWidth() = %v, want default 1.0", l.LineWidth())
	}

	// A record without a stored ID gets a fresh one.
	if p.Entries()[0].ID == "" {
		t.Error("entry has no ID")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{"malformed json", `{"layers": [`, errors.ErrCodeInvalidProject},
		{"unknown kind", `{"layers": [{"kind": "polygon"}]}`, errors.ErrCodeInvalidProject},
		{"missing kind", `{"layers": [{"label": "x"}]}`, errors.ErrCodeInvalidProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader([]byte(tt.input)))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")

	p := New()
	e, _ := p.AddLayer(layer.KindLine)
	e.Layer.SetMarkerFill("#00aa00")

	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	if got.Entries()[0].Layer.MarkerFill() != "#00aa00" {
		t.Errorf("MarkerFill() = %q, want #00aa00", got.Entries()[0].Layer.MarkerFill())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestSaveRejectsBadPath(t *testing.T) {
	p := New()
	if err := Save(p, "../escape.json"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}
