// Package hovergrid extends the platform DataGrid with reference-renewal
// property proxies, render timing instrumentation, and a hover rich-text
// cell type.
package hovergrid

import (
	"fmt"
	"reflect"
	"time"

	"github.com/vcrobe/nojs-grid/console"
	"github.com/vcrobe/nojs-grid/grid"
)

// HoverGrid wraps DataGrid with defensive setters: every assignment to Data
// or Columns republishes a freshly allocated collection, so reference-based
// change detection downstream always observes a change even when the caller
// mutates its own slice in place.
type HoverGrid struct {
	grid.DataGrid

	// lastSetAt is the pending render measurement: set on every data
	// assignment, consumed exactly once by OnAfterRender. Zero means idle.
	lastSetAt time.Time
}

// SetData replaces the grid's rows. Any ordered sequence is accepted and
// shallow-copied into a new slice; anything else degrades to an empty row set
// with a warning. The copy is never skipped, even for empty or identical
// input — the fresh reference is the change-detection contract.
func (h *HoverGrid) SetData(value any) {
	h.lastSetAt = time.Now()

	seq, ok := asSequence(value)
	if !ok {
		console.Warn("hovergrid: data is not a sequence, got %s; clearing rows", typeName(value))
		console.Dump("hovergrid: rejected data", value)
		h.ReplaceRows([]grid.Row{})
		h.StateHasChanged()
		return
	}

	rows := make([]grid.Row, len(seq))
	for i, el := range seq {
		rows[i] = grid.AsRow(el)
	}

	console.Info("hovergrid: data set, %d rows", len(rows))
	h.ReplaceRows(rows)
	h.StateHasChanged()
}

// Data returns the current row collection by reference. The next SetData call
// replaces it wholesale, so callers must not hold onto it expecting mutations
// to propagate.
func (h *HoverGrid) Data() []grid.Row {
	return h.Rows()
}

// SetColumns replaces the column definitions with the same renewal contract
// as SetData: sequence in, fresh slice stored; junk in, empty slice stored.
func (h *HoverGrid) SetColumns(value any) {
	seq, ok := asSequence(value)
	if !ok {
		console.Warn("hovergrid: columns is not a sequence, got %s; clearing columns", typeName(value))
		console.Dump("hovergrid: rejected columns", value)
		h.ReplaceColumns([]grid.Column{})
		h.StateHasChanged()
		return
	}

	columns := make([]grid.Column, len(seq))
	for i, el := range seq {
		columns[i] = grid.AsColumn(el)
	}

	console.Info("hovergrid: columns set, %d columns", len(columns))
	h.ReplaceColumns(columns)
	h.StateHasChanged()
}

// Columns returns the current column definitions by reference.
func (h *HoverGrid) Columns() []grid.Column {
	return h.ColumnDefs()
}

// OnInit logs the attach, then delegates to the base grid's own setup.
// Custom logic first, then the base — the order is part of the contract.
func (h *HoverGrid) OnInit() {
	console.Info("hovergrid: attached, %d rows", len(h.Rows()))
	h.DataGrid.OnInit()
}

// OnAfterRender consumes a pending render measurement, if any. Exactly one
// timing line per data assignment: further render passes before the next
// assignment find the sentinel reset and log nothing.
func (h *HoverGrid) OnAfterRender() {
	if h.lastSetAt.IsZero() {
		return
	}
	elapsed := time.Since(h.lastSetAt)
	console.Info("hovergrid: rendered %d rows in %.2fms",
		len(h.Rows()), float64(elapsed.Microseconds())/1000.0)
	h.lastSetAt = time.Time{}
}

// asSequence flattens any slice or array into []any. Strings are NOT
// sequences here: data="..." is exactly the misuse the warning exists for.
func asSequence(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// typeName reports the concrete type of a rejected value for diagnostics.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
