package hovergrid

import (
	"fmt"

	"github.com/vcrobe/nojs-grid/grid"
	"github.com/vcrobe/nojs-grid/vdom"
)

// CellTypeName is the registered name of the hover preview cell type.
const CellTypeName = "hoverRichText"

// PreviewAttribute is the single type attribute the hover cell consumes:
// the raw markup shown in the hover panel.
const PreviewAttribute = "previewHtml"

// The hover cell type is process-wide static configuration, registered once
// when this package is linked in. It opts into the standard cell layout so it
// costs the same as the built-in types.
func init() {
	grid.RegisterCellType(CellTypeName, grid.CellType{
		Template:           hoverRichTextCell,
		TypeAttributes:     []string{PreviewAttribute},
		StandardCellLayout: true,
	})
}

// hoverRichTextCell renders the plain cell value with a hover panel carrying
// the preview markup. The markup travels verbatim under data-preview-html:
// no parsing or sanitization happens here — injecting it into the DOM, and
// any escaping policy, is the host rendering pipeline's responsibility.
func hoverRichTextCell(value any, attrs map[string]any) *vdom.VNode {
	display := ""
	if value != nil {
		display = fmt.Sprint(value)
	}

	preview, _ := attrs[PreviewAttribute].(string)

	return vdom.Div(map[string]any{"class": "nojs-hover-cell"},
		vdom.Span(display, map[string]any{"class": "nojs-hover-cell-value"}),
		vdom.Div(map[string]any{
			"class":             "nojs-hover-cell-preview",
			"data-preview-html": preview,
		}),
	)
}
