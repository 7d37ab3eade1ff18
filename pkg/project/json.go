package project

import (
	"encoding/json"
	"io"
	"os"

	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

// file is the JSON project file format. Layers appear in display order and
// every record is fully populated, so a saved file round-trips without
// depending on construction defaults.
type file struct {
	Layers []Record `json:"layers"`
}

// Write encodes the project as indented JSON and writes it to w.
// The output can be re-read with [Read] for round-trip processing.
func Write(p *Project, w io.Writer) error {
	out := file{Layers: make([]Record, len(p.entries))}
	for i, e := range p.entries {
		out.Layers[i] = snapshot(e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode project")
	}
	return nil
}

// Read decodes a project from JSON.
// Records with an unknown kind fail with INVALID_KIND; a record without a
// stored ID gets a fresh one.
func Read(r io.Reader) (*Project, error) {
	var in file
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "decode project")
	}
	return fromRecords(in.Layers)
}

// Save writes the project to a JSON file at path.
func Save(p *Project, path string) error {
	if err := errors.ValidateProjectPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return Write(p, f)
}

// Load reads a project from a JSON file at path.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// fromRecords rebuilds a project from serialized layer records.
func fromRecords(records []Record) (*Project, error) {
	p := New()
	for i, rec := range records {
		kind, err := layer.ParseKind(rec.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidProject, err, "layer %d", i+1)
		}
		e, err := p.AddLayer(kind)
		if err != nil {
			return nil, err
		}
		if rec.ID != "" {
			e.ID = rec.ID
		}
		apply(rec, e)
	}
	return p, nil
}
