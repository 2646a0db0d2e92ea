//go:build !wasm
// +build !wasm

package grid

import (
	"testing"

	"github.com/vcrobe/nojs-grid/testcomponents"
	"github.com/vcrobe/nojs-grid/vdom"
)

// TestDataGrid_RenderTable verifies the rendered table shape: one header cell
// per column, one body row per record, cell content resolved per column type.
func TestDataGrid_RenderTable(t *testing.T) {
	// Arrange
	g := &DataGrid{KeyField: "id"}
	renderer := testcomponents.NewTestRenderer(g)

	g.ReplaceColumns([]Column{
		{Label: "ID", FieldName: "id", Type: "number"},
		{Label: "Name", FieldName: "name"},
		{Label: "Active", FieldName: "active", Type: "boolean"},
	})
	g.ReplaceRows([]Row{
		{"id": 1, "name": "alpha", "active": true},
		{"id": 2, "name": "beta", "active": false},
	})

	// Act
	table := renderer.RenderRoot()

	// Assert: table root
	if table.Tag != "table" {
		t.Fatalf("Expected root tag 'table', got '%s'", table.Tag)
	}
	if len(table.Children) != 2 {
		t.Fatalf("Expected thead and tbody, got %d children", len(table.Children))
	}

	// Assert: header
	thead := table.Children[0]
	if thead.Tag != "thead" {
		t.Errorf("Expected first child 'thead', got '%s'", thead.Tag)
	}
	headerRow := thead.Children[0]
	if len(headerRow.Children) != 3 {
		t.Fatalf("Expected 3 header cells, got %d", len(headerRow.Children))
	}
	for i, want := range []string{"ID", "Name", "Active"} {
		if headerRow.Children[i].Content != want {
			t.Errorf("Header %d: expected '%s', got '%s'", i, want, headerRow.Children[i].Content)
		}
	}

	// Assert: body
	tbody := table.Children[1]
	if tbody.Tag != "tbody" {
		t.Errorf("Expected second child 'tbody', got '%s'", tbody.Tag)
	}
	if len(tbody.Children) != 2 {
		t.Fatalf("Expected 2 body rows, got %d", len(tbody.Children))
	}

	firstRow := tbody.Children[0]
	if got := cellText(firstRow.Children[0]); got != "1" {
		t.Errorf("Expected first cell '1', got '%s'", got)
	}
	if got := cellText(firstRow.Children[1]); got != "alpha" {
		t.Errorf("Expected second cell 'alpha', got '%s'", got)
	}
	if got := cellText(firstRow.Children[2]); got != "✓" {
		t.Errorf("Expected boolean cell '✓', got '%s'", got)
	}

	secondRow := tbody.Children[1]
	if got := cellText(secondRow.Children[2]); got != "" {
		t.Errorf("Expected empty boolean cell for false, got '%s'", got)
	}
}

// TestDataGrid_RowKeys verifies the key field drives row keys and that rows
// without one get a stable generated fallback.
func TestDataGrid_RowKeys(t *testing.T) {
	g := &DataGrid{KeyField: "id"}
	renderer := testcomponents.NewTestRenderer(g)

	g.ReplaceColumns([]Column{{Label: "Name", FieldName: "name"}})
	g.ReplaceRows([]Row{
		{"id": "a1", "name": "alpha"},
		{"name": "anonymous"}, // no key field
	})

	table := renderer.RenderRoot()
	tbody := table.Children[1]

	keyed := tbody.Children[0]
	if keyed.Attributes["data-row-key"] != "a1" {
		t.Errorf("Expected key field value 'a1', got '%v'", keyed.Attributes["data-row-key"])
	}

	fallback, _ := tbody.Children[1].Attributes["data-row-key"].(string)
	if fallback == "" {
		t.Fatalf("Expected a generated fallback key for keyless row")
	}

	// Re-render without replacing rows: fallback key must not change
	renderer.ReRender()
	again, _ := renderer.GetCurrentVDOM().Children[1].Children[1].Attributes["data-row-key"].(string)
	if again != fallback {
		t.Errorf("Fallback key changed across renders: '%s' vs '%s'", fallback, again)
	}
}

// TestDataGrid_ReplaceStorage_BumpsRevision verifies the change signal fires
// for both row and column replacement.
func TestDataGrid_ReplaceStorage_BumpsRevision(t *testing.T) {
	g := &DataGrid{}

	var seen []int
	unsubscribe := g.Revision().Subscribe(func(v int) { seen = append(seen, v) })
	defer unsubscribe()

	g.ReplaceRows([]Row{{"id": 1}})
	g.ReplaceColumns([]Column{{Label: "ID", FieldName: "id"}})
	g.ReplaceRows(nil)

	if len(seen) != 3 {
		t.Fatalf("Expected 3 signal notifications, got %d", len(seen))
	}
	for i, v := range seen {
		if v != i+1 {
			t.Errorf("Notification %d: expected revision %d, got %d", i, i+1, v)
		}
	}
	if g.Rows() == nil {
		t.Errorf("Expected nil row replacement to normalize to an empty slice")
	}
}

// TestDataGrid_TypeAttributeResolution verifies FieldRef attributes are read
// from the row while literals pass through.
func TestDataGrid_TypeAttributeResolution(t *testing.T) {
	RegisterCellType("testLink", CellType{
		Template: func(value any, attrs map[string]any) *vdom.VNode {
			href, _ := attrs["href"].(string)
			target, _ := attrs["target"].(string)
			return vdom.NewVNode("a", map[string]any{"href": href, "target": target}, nil, formatCellValue(value))
		},
		TypeAttributes:     []string{"href", "target"},
		StandardCellLayout: false,
	})

	g := &DataGrid{}
	renderer := testcomponents.NewTestRenderer(g)

	g.ReplaceColumns([]Column{
		{
			Label:     "Link",
			FieldName: "name",
			Type:      "testLink",
			TypeAttributes: map[string]any{
				"href":   FieldRef("url"),
				"target": "_blank",
			},
		},
	})
	g.ReplaceRows([]Row{{"name": "docs", "url": "https://example.test/docs"}})

	table := renderer.RenderRoot()
	cell := table.Children[1].Children[0].Children[0]

	if cell.Attributes["class"] != nil {
		t.Errorf("Non-standard layout should not get the standard cell class")
	}

	link := cell.Children[0]
	if link.Tag != "a" {
		t.Fatalf("Expected 'a' element, got '%s'", link.Tag)
	}
	if link.Attributes["href"] != "https://example.test/docs" {
		t.Errorf("FieldRef not resolved against row: got '%v'", link.Attributes["href"])
	}
	if link.Attributes["target"] != "_blank" {
		t.Errorf("Literal attribute not passed through: got '%v'", link.Attributes["target"])
	}
	if link.Content != "docs" {
		t.Errorf("Expected link text 'docs', got '%s'", link.Content)
	}
}

// cellText digs the display text out of a standard grid cell (td > span).
func cellText(td *vdom.VNode) string {
	if td == nil || len(td.Children) == 0 {
		return ""
	}
	return td.Children[0].Content
}
