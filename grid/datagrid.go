package grid

import (
	"github.com/google/uuid"

	"github.com/vcrobe/nojs-grid/runtime"
	"github.com/vcrobe/nojs-grid/signals"
	"github.com/vcrobe/nojs-grid/vdom"
)

// DataGrid is the platform grid component: it renders its row and column
// storage as a table, resolving each cell through the cell type registry.
//
// DataGrid stores whatever collections it is handed, by reference. Callers
// that need reference-renewal semantics (clone on every write) layer them on
// top, the way hovergrid does.
type DataGrid struct {
	runtime.ComponentBase

	// KeyField names the row field used as the stable render key.
	// Rows without a usable value there get a generated fallback key.
	KeyField string

	rows    []Row
	columns []Column

	// fallbackKeys holds generated keys per row index, renewed whenever the
	// row storage is replaced so keys stay stable across render passes.
	fallbackKeys []string

	revision *signals.Signal[int]
}

// OnInit performs the grid's base setup when it is attached to the tree.
func (g *DataGrid) OnInit() {
	if g.rows == nil {
		g.rows = []Row{}
	}
	if g.columns == nil {
		g.columns = []Column{}
	}
	// Touch the signal so subscribers can attach before the first assignment.
	g.Revision()
}

// Revision exposes the grid's change signal: it fires with a monotonically
// increasing value every time row or column storage is replaced.
func (g *DataGrid) Revision() *signals.Signal[int] {
	if g.revision == nil {
		g.revision = signals.New(0)
	}
	return g.revision
}

// Rows returns the current row storage by reference.
func (g *DataGrid) Rows() []Row {
	return g.rows
}

// ColumnDefs returns the current column storage by reference.
func (g *DataGrid) ColumnDefs() []Column {
	return g.columns
}

// ReplaceRows swaps in a new row collection. The slice is stored as given;
// fallback render keys are regenerated for rows missing the key field.
func (g *DataGrid) ReplaceRows(rows []Row) {
	if rows == nil {
		rows = []Row{}
	}
	g.rows = rows

	g.fallbackKeys = make([]string, len(rows))
	for i, row := range rows {
		if g.keyFromRow(row) == "" {
			g.fallbackKeys[i] = uuid.NewString()
		}
	}

	g.Revision().Update(func(v int) int { return v + 1 })
}

// ReplaceColumns swaps in a new column collection.
func (g *DataGrid) ReplaceColumns(columns []Column) {
	if columns == nil {
		columns = []Column{}
	}
	g.columns = columns
	g.Revision().Update(func(v int) int { return v + 1 })
}

// keyFromRow reads the configured key field from a row, empty if unusable.
func (g *DataGrid) keyFromRow(row Row) string {
	if g.KeyField == "" || row == nil {
		return ""
	}
	return formatCellValue(row[g.KeyField])
}

// rowKey returns the stable render key for the row at index i.
func (g *DataGrid) rowKey(i int, row Row) string {
	if key := g.keyFromRow(row); key != "" {
		return key
	}
	if i < len(g.fallbackKeys) {
		return g.fallbackKeys[i]
	}
	return ""
}

// Render builds the grid's table: a header row from the column labels and one
// body row per record, each cell resolved through the cell type registry.
func (g *DataGrid) Render(r runtime.Renderer) *vdom.VNode {
	headers := make([]*vdom.VNode, len(g.columns))
	for i, col := range g.columns {
		headers[i] = vdom.Th(col.Label, map[string]any{"scope": "col"})
	}

	body := make([]*vdom.VNode, len(g.rows))
	for i, row := range g.rows {
		cells := make([]*vdom.VNode, len(g.columns))
		for j, col := range g.columns {
			cells[j] = g.renderCell(row, col)
		}
		body[i] = vdom.Tr(map[string]any{"data-row-key": g.rowKey(i, row)}, cells...)
	}

	return vdom.Table(map[string]any{"class": "nojs-grid"},
		vdom.THead(vdom.Tr(nil, headers...)),
		vdom.TBody(body...),
	)
}

// renderCell resolves one cell: looks up the column's cell type, resolves its
// declared type attributes against the row, and wraps the template output in
// the standard cell layout when the type opts into it.
func (g *DataGrid) renderCell(row Row, col Column) *vdom.VNode {
	ct := resolveCellType(col.Type)

	var value any
	if row != nil && col.FieldName != "" {
		value = row[col.FieldName]
	}

	var attrs map[string]any
	if len(ct.TypeAttributes) > 0 {
		attrs = make(map[string]any, len(ct.TypeAttributes))
		for _, name := range ct.TypeAttributes {
			attrs[name] = resolveTypeAttribute(row, col, name)
		}
	}

	inner := ct.Template(value, attrs)

	if ct.StandardCellLayout {
		return vdom.Td(map[string]any{"class": "nojs-grid-cell"}, inner)
	}
	return vdom.Td(nil, inner)
}

// resolveTypeAttribute produces the value for one declared type attribute:
// FieldRef values are read from the row, literals pass through.
func resolveTypeAttribute(row Row, col Column, name string) any {
	raw, ok := col.TypeAttributes[name]
	if !ok {
		return nil
	}
	if ref, isRef := raw.(FieldRef); isRef {
		if row == nil {
			return nil
		}
		return row[string(ref)]
	}
	return raw
}
