package errors

import (
	"strings"
	"testing"
)

func TestValidateHexTriplet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid lowercase", "#aa00ff", false},
		{"valid uppercase", "#AA00FF", false},
		{"valid mixed case", "#Ff7E00", false},
		{"valid black", "#000000", false},

		{"empty", "", true},
		{"missing hash", "aa00ff", true},
		{"shorthand", "#f00", true},
		{"with alpha", "#aa00ff80", true},
		{"too short", "#aa00f", true},
		{"non-hex digit", "#zz00ff", true},
		{"named color", "blue", true},
		{"trailing space", "#aa00ff ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexTriplet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexTriplet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateHexTriplet(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Bedding", false},
		{"valid with spaces", "Fault set 2 (NW)", false},
		{"valid unicode", "Schichtflächen", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"newline", "foo\nbar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProjectPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "project.json", false},
		{"valid nested", "fieldwork/2025/project.json", false},
		{"valid manifest", "layers.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar.json", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateProjectPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidColor,
		ErrCodeInvalidKind,
		ErrCodeInvalidLabel,
		ErrCodeInvalidValue,
		ErrCodeInvalidManifest,
		ErrCodeInvalidProject,
		ErrCodeInvalidPath,
		ErrCodeMissingStore,
		ErrCodeMissingView,
		ErrCodeViewMismatch,
		ErrCodeNotFound,
		ErrCodeLayerNotFound,
		ErrCodePropertyNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
