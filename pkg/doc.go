// Package pkg provides the core libraries for InnStereo layer management.
//
// # Overview
//
// InnStereo manages the layers of a stereonet project: plane, faultplane,
// linear, and small circle datasets together with their full plotting
// configuration. The pkg directory is organized into five areas:
//
//  1. [layer] - The layer configuration entity (kinds, styling attributes,
//     derived colors, preview swatches)
//  2. [dataset] - Tabular feature stores and selection views
//  3. [project] - Ordered layer lists with JSON persistence and TOML import
//  4. [hexcolor] - Hex triplet color parsing and formatting
//  5. [errors] - Structured error codes shared by all packages
//
// # Architecture
//
// The typical data flow:
//
//	TOML manifest / JSON project file
//	         ↓
//	    [project] package (records → entries)
//	         ↓
//	    [dataset] package (store + view per layer)
//	         ↓
//	    [layer] package (styling configuration)
//	         ↓
//	    plotting / preview output
//
// # Quick Start
//
// Create a layer bound to a dataset and adjust its styling:
//
//	store, _ := dataset.NewStore(layer.KindPlane)
//	view := dataset.NewView(store)
//
//	l, _ := layer.New(layer.KindPlane, store, view)
//	l.SetLabel("Bedding")
//	l.SetLineColor("#aa0000")
//
//	c, err := l.LineRGB() // lazy parse; malformed colors surface here
//
// Or manage a whole project:
//
//	p := project.New()
//	e, _ := p.AddLayer(layer.KindFaultPlane)
//	e.Layer.SetDrawHoeppener(true)
//	project.Save(p, "project.json")
//
// # Main Packages
//
// [layer] - One Layer type covers all four kinds; per-kind behavior (default
// label, preview color source) lives in a dispatch table. Setters accept any
// value; color strings are parsed lazily by the derived-color getters.
//
// [dataset] - Store holds feature rows with a kind-specific column schema;
// View tracks the display selection and is bound 1:1 to its store. The layer
// package only sees the small layer.Store/layer.View interfaces.
//
// [project] - Entries pair a layer with its store/view. Projects round-trip
// through JSON and can be imported from TOML manifests where omitted keys
// keep the kind's defaults.
//
// [hexcolor] - The single point where "#RRGGBB" strings become channel
// values, so no toolkit color type leaks into the model.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layer/...     # Specific package
//	go test -run Example        # Examples only
//
// [layer]: https://pkg.go.dev/github.com/akositz/innstereo/pkg/layer
// [dataset]: https://pkg.go.dev/github.com/akositz/innstereo/pkg/dataset
// [project]: https://pkg.go.dev/github.com/akositz/innstereo/pkg/project
// [hexcolor]: https://pkg.go.dev/github.com/akositz/innstereo/pkg/hexcolor
// [errors]: https://pkg.go.dev/github.com/akositz/innstereo/pkg/errors
package pkg
