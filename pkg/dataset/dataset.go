// Package dataset provides the tabular data store and selection view a
// layer is bound to.
//
// A Store holds the individual features of one dataset as rows with a
// kind-specific column schema. A View is bound 1:1 to its Store and tracks
// the display selection. The layer model only ever sees the small
// layer.Store/layer.View interfaces; this package owns the rows.
package dataset

import (
	"github.com/akositz/innstereo/pkg/errors"
	"github.com/akositz/innstereo/pkg/layer"
)

// Row is one feature measurement keyed by column name. Values are numbers
// for orientation columns and strings for annotation columns such as the
// movement sense.
type Row map[string]any

// columns is the per-kind column schema. Orientation angles are stored in
// degrees as dip direction / dip pairs.
var columns = map[layer.Kind][]string{
	layer.KindPlane:       {"dip_direction", "dip", "stratigraphy"},
	layer.KindFaultPlane:  {"dip_direction", "dip", "lineation_direction", "lineation_dip", "sense"},
	layer.KindLine:        {"dip_direction", "dip", "sense"},
	layer.KindSmallCircle: {"dip_direction", "dip", "opening_angle"},
}

// Columns returns the column schema for a layer kind.
// Returns an INVALID_KIND error for unknown kinds.
func Columns(kind layer.Kind) ([]string, error) {
	cols, ok := columns[kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "no dataset schema for kind %q", kind)
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out, nil
}

// Store holds the feature rows of one dataset.
//
// The store is owned by the project, not by the layer bound to it: the
// layer holds a reference and the store remains the sole mutator of rows.
type Store struct {
	kind layer.Kind
	rows []Row
}

// NewStore creates an empty store with the column schema of the given kind.
func NewStore(kind layer.Kind) (*Store, error) {
	if _, ok := columns[kind]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidKind, "no dataset schema for kind %q", kind)
	}
	return &Store{kind: kind}, nil
}

// Kind returns the layer kind this store's schema belongs to.
func (s *Store) Kind() layer.Kind { return s.kind }

// Columns returns the column schema of the store.
func (s *Store) Columns() []string {
	cols, _ := Columns(s.kind)
	return cols
}

// RowCount returns the number of feature rows. This implements the
// layer.Store interface.
func (s *Store) RowCount() int { return len(s.rows) }

// Append adds a feature row. Keys outside the schema are stored as-is; the
// store is as permissive as the rest of the configuration model.
func (s *Store) Append(r Row) {
	s.rows = append(s.rows, r)
}

// Row returns the row at index i.
func (s *Store) Row(i int) (Row, error) {
	if i < 0 || i >= len(s.rows) {
		return nil, errors.New(errors.ErrCodeNotFound, "row %d out of range (store has %d rows)", i, len(s.rows))
	}
	return s.rows[i], nil
}

// Rows returns all feature rows in insertion order.
func (s *Store) Rows() []Row { return s.rows }

// View is the display/selection view bound 1:1 to a Store. Each layer
// stores a view that is linked to the layer's store; the main window reads
// it when the layer selection changes.
type View struct {
	store    *Store
	selected []int
}

// NewView creates a view bound to the given store.
func NewView(s *Store) *View {
	return &View{store: s}
}

// Binding returns the store this view was created for. This implements the
// layer.View interface; layer.New uses it to reject a view bound to a
// different store.
func (v *View) Binding() layer.Store { return v.store }

// Select replaces the current row selection.
func (v *View) Select(rows ...int) {
	v.selected = append(v.selected[:0], rows...)
}

// ClearSelection empties the row selection.
func (v *View) ClearSelection() {
	v.selected = v.selected[:0]
}

// Selected returns the currently selected row indices.
func (v *View) Selected() []int { return v.selected }
