package project

import (
	"github.com/BurntSushi/toml"

	"github.com/akositz/innstereo/pkg/errors"
)

// manifest is the TOML import format: a [[layer]] table per layer, with
// the same keys as the JSON records. Omitted styling keys keep the kind's
// construction defaults, so a minimal manifest only needs kind tags.
//
// Example:
//
//	[[layer]]
//	kind = "plane"
//	label = "Bedding"
//	line_color = "#aa0000"
//
//	[[layer.rows]]
//	dip_direction = 120.0
//	dip = 30.0
type manifest struct {
	Layer []Record `toml:"layer"`
}

// ImportManifest builds a project from a TOML manifest file.
func ImportManifest(path string) (*Project, error) {
	if err := errors.ValidateProjectPath(path); err != nil {
		return nil, err
	}

	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", path)
	}
	if len(m.Layer) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest %s declares no layers", path)
	}

	p, err := fromRecords(m.Layer)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "import %s", path)
	}
	return p, nil
}
