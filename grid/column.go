package grid

// Column describes one grid column: which row field it reads, the header
// label, and the cell type used to render its cells.
type Column struct {
	Label     string
	FieldName string
	// Type names a registered cell type. Empty resolves to the default text type.
	Type string
	// TypeAttributes supplies the attributes the cell type's template consumes.
	// A FieldRef value is resolved against the current row at render time;
	// anything else is passed through as-is.
	TypeAttributes map[string]any
}

// FieldRef marks a type attribute whose value comes from a row field instead
// of being a static literal.
type FieldRef string

// AsColumn normalizes an arbitrary sequence element into a Column.
// Column values pass through; map-shaped descriptors are read field by field;
// anything else degrades to a zero Column so the element count is preserved.
func AsColumn(v any) Column {
	switch c := v.(type) {
	case Column:
		return c
	case *Column:
		if c != nil {
			return *c
		}
		return Column{}
	case map[string]any:
		col := Column{}
		if s, ok := c["label"].(string); ok {
			col.Label = s
		}
		if s, ok := c["fieldName"].(string); ok {
			col.FieldName = s
		}
		if s, ok := c["type"].(string); ok {
			col.Type = s
		}
		if m, ok := c["typeAttributes"].(map[string]any); ok {
			col.TypeAttributes = m
		}
		return col
	default:
		return Column{}
	}
}
