package grid

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vcrobe/nojs-grid/console"
	"github.com/vcrobe/nojs-grid/vdom"
)

// DefaultCellType is the type used when a column names no type, or names one
// that was never registered.
const DefaultCellType = "text"

// CellTemplate produces the inner VNode for one cell. value is the row field
// the column points at; attrs holds the resolved type attributes declared by
// the cell type.
type CellTemplate func(value any, attrs map[string]any) *vdom.VNode

// CellType is the static configuration for a named cell rendering variant:
// the display template, the attribute names the template consumes, and
// whether the grid should wrap the output in its standard cell layout.
type CellType struct {
	Template           CellTemplate
	TypeAttributes     []string
	StandardCellLayout bool
}

var (
	cellTypesMu sync.RWMutex
	cellTypes   = map[string]CellType{}
)

// RegisterCellType registers a cell type under name, process-wide.
// Re-registration overwrites the previous entry, last wins.
func RegisterCellType(name string, ct CellType) {
	cellTypesMu.Lock()
	defer cellTypesMu.Unlock()
	if _, exists := cellTypes[name]; exists {
		console.Debug("grid: cell type %q re-registered", name)
	}
	cellTypes[name] = ct
}

// LookupCellType returns the cell type registered under name.
func LookupCellType(name string) (CellType, bool) {
	cellTypesMu.RLock()
	defer cellTypesMu.RUnlock()
	ct, ok := cellTypes[name]
	return ct, ok
}

// CellTypeNames returns a sorted snapshot of all registered cell type names.
func CellTypeNames() []string {
	cellTypesMu.RLock()
	defer cellTypesMu.RUnlock()
	names := make([]string, 0, len(cellTypes))
	for name := range cellTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveCellType maps a column's declared type to a registered cell type,
// falling back to the default text type for unknown names.
func resolveCellType(name string) CellType {
	if name == "" {
		name = DefaultCellType
	}
	if ct, ok := LookupCellType(name); ok {
		return ct
	}
	ct, _ := LookupCellType(DefaultCellType)
	return ct
}

// formatCellValue renders a cell value as display text. nil shows as empty
// rather than Go's "<nil>".
func formatCellValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func init() {
	RegisterCellType("text", CellType{
		Template: func(value any, _ map[string]any) *vdom.VNode {
			return vdom.Span(formatCellValue(value), nil)
		},
		StandardCellLayout: true,
	})

	RegisterCellType("number", CellType{
		Template: func(value any, _ map[string]any) *vdom.VNode {
			return vdom.Span(formatCellValue(value), map[string]any{"class": "nojs-grid-number"})
		},
		StandardCellLayout: true,
	})

	RegisterCellType("boolean", CellType{
		Template: func(value any, _ map[string]any) *vdom.VNode {
			checked, _ := value.(bool)
			text := ""
			if checked {
				text = "✓"
			}
			return vdom.Span(text, map[string]any{"class": "nojs-grid-boolean"})
		},
		StandardCellLayout: true,
	})
}
