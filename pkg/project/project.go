// Package project manages the ordered list of layers that makes up one
// stereonet project, together with its persistence.
//
// Each entry pairs a layer with the store/view it was created around. The
// project is the owner of all three: removing an entry drops the layer and
// its dataset together. Projects round-trip through JSON files and can be
// imported from TOML manifests.
package project

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akositz/innstereo/pkg/dataset"
	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

// Entry is one layer of a project together with its dataset.
type Entry struct {
	ID    string // stable identity, assigned at creation
	Layer *layer.Layer
	Store *dataset.Store
	View  *dataset.View
}

// Project is an ordered list of layers.
type Project struct {
	entries []*Entry
}

// New creates an empty project.
func New() *Project {
	return &Project{}
}

// AddLayer creates a fresh store/view pair for the given kind, binds a new
// layer to it, and appends the entry to the project.
func (p *Project) AddLayer(kind layer.Kind) (*Entry, error) {
	store, err := dataset.NewStore(kind)
	if err != nil {
		return nil, err
	}
	view := dataset.NewView(store)

	l, err := layer.New(kind, store, view)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		ID:    uuid.NewString(),
		Layer: l,
		Store: store,
		View:  view,
	}
	p.entries = append(p.entries, e)
	return e, nil
}

// Entries returns the project's layers in display order.
func (p *Project) Entries() []*Entry { return p.entries }

// Len returns the number of layers in the project.
func (p *Project) Len() int { return len(p.entries) }

// Get returns the entry with the given ID.
func (p *Project) Get(id string) (*Entry, error) {
	for _, e := range p.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.New(errors.ErrCodeLayerNotFound, "no layer with id %q", id)
}

// Remove deletes the entry with the given ID. The layer owns no resources
// beyond its store/view pair, so dropping the references is sufficient.
func (p *Project) Remove(id string) error {
	for i, e := range p.entries {
		if e.ID == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeLayerNotFound, "no layer with id %q", id)
}

// Resolve finds an entry by 1-based list position, full ID, or unique ID
// prefix, in that order. This is what the CLI uses to let users say
// "layer 2" or paste a shortened UUID.
func (p *Project) Resolve(ref string) (*Entry, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(p.entries) {
			return nil, errors.New(errors.ErrCodeLayerNotFound, "layer index %d out of range (project has %d layers)", n, len(p.entries))
		}
		return p.entries[n-1], nil
	}

	var match *Entry
	for _, e := range p.entries {
		if e.ID == ref {
			return e, nil
		}
		if strings.HasPrefix(e.ID, ref) {
			if match != nil {
				return nil, errors.New(errors.ErrCodeLayerNotFound, "layer reference %q is ambiguous", ref)
			}
			match = e
		}
	}
	if match == nil {
		return nil, errors.New(errors.ErrCodeLayerNotFound, "no layer matching %q", ref)
	}
	return match, nil
}
