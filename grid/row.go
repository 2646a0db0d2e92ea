package grid

// Row is a single grid record: field name to value. The grid itself treats
// rows as opaque except for the fields named by column definitions and the
// key field.
type Row map[string]any

// ValueField is the field under which non-record sequence elements are
// carried so element count and order survive normalization.
const ValueField = "value"

// AsRow normalizes an arbitrary sequence element into a Row. Record-shaped
// values pass through; anything else is wrapped under ValueField.
func AsRow(v any) Row {
	switch r := v.(type) {
	case Row:
		return r
	case map[string]any:
		return Row(r)
	default:
		return Row{ValueField: v}
	}
}
