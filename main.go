//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/nojs-grid/grid"
	"github.com/vcrobe/nojs-grid/grid/hovergrid"
	"github.com/vcrobe/nojs-grid/runtime"
)

func main() {
	// 1. Create the Renderer for the mount point
	renderer := runtime.NewRenderer("#app")

	// 2. Create the grid and declare its columns, including a hover
	// rich-text column whose preview markup comes from the "details" field
	table := &hovergrid.HoverGrid{}
	table.KeyField = "id"

	renderer.SetCurrentComponent(table)
	renderer.RenderRoot()

	table.SetColumns([]grid.Column{
		{Label: "ID", FieldName: "id", Type: "number"},
		{Label: "Name", FieldName: "name"},
		{
			Label:     "Details",
			FieldName: "name",
			Type:      hovergrid.CellTypeName,
			TypeAttributes: map[string]any{
				hovergrid.PreviewAttribute: grid.FieldRef("details"),
			},
		},
	})

	table.SetData([]grid.Row{
		{"id": 1, "name": "alpha", "details": "<b>alpha</b> — first entry"},
		{"id": 2, "name": "beta", "details": "<i>beta</i> — second entry"},
		{"id": 3, "name": "gamma", "details": "<u>gamma</u> — third entry"},
	})

	// Keep the Go program running
	select {}
}
