package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

// writeManifest writes a TOML manifest into a temp dir and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layers.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestImportManifest(t *testing.T) {
	path := writeManifest(t, `
[[layer]]
kind = "plane"
label = "Bedding"
line_color = "#aa0000"
render_poles = true

[[layer.rows]]
dip_direction = 120.0
dip = 30.0

[[layer.rows]]
dip_direction = 140.0
dip = 45.0

[[layer]]
kind = "faultplane"
draw_hoeppener = true
`)

	p, err := ImportManifest(path)
	if err != nil {
		t.Fatalf("ImportManifest: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}

	e := p.Entries()[0]
	if e.Layer.Kind() != layer.KindPlane {
		t.Errorf("kind = %v, want plane", e.Layer.Kind())
	}
	if e.Layer.Label() != "Bedding" {
		t.Errorf("Label() = %q, want Bedding", e.Layer.Label())
	}
	if e.Layer.LineColor() != "#aa0000" {
		t.Errorf("LineColor() = %q, want #aa0000", e.Layer.LineColor())
	}
	if !e.Layer.RenderPoles() {
		t.Error("RenderPoles() = false, want true")
	}
	if e.Store.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", e.Store.RowCount())
	}

	e = p.Entries()[1]
	if !e.Layer.DrawHoeppener() {
		t.Error("DrawHoeppener() = false, want true")
	}
	// Omitted keys keep the construction defaults.
	if e.Layer.Label() != "Faultplane layer" {
		t.Errorf("Label() = %q, want the kind default", e.Layer.Label())
	}
	if e.Layer.LineColor() != "#0000ff" {
		t.Errorf("LineColor() = %q, want default #0000ff", e.Layer.LineColor())
	}
}

func TestImportManifestMinimal(t *testing.T) {
	path := writeManifest(t, `
[[layer]]
kind = "line"
`)

	p, err := ImportManifest(path)
	if err != nil {
		t.Fatalf("ImportManifest: %v", err)
	}

	l := p.Entries()[0].Layer
	if l.Kind() != layer.KindLine {
		t.Errorf("kind = %v, want line", l.Kind())
	}
	if l.MarkerFill() != "#1283eb" {
		t.Errorf("MarkerFill() = %q, want default #1283eb", l.MarkerFill())
	}
}

func TestImportManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no layers", "title = \"x\"\n"},
		{"unknown kind", "[[layer]]\nkind = \"polygon\"\n"},
		{"malformed toml", "[[layer]\nkind = \"plane\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := ImportManifest(path)
			if !errors.Is(err, errors.ErrCodeInvalidManifest) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidManifest)
			}
		})
	}
}

func TestImportManifestRejectsBadPath(t *testing.T) {
	if _, err := ImportManifest("../layers.toml"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}
