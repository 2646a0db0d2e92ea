package runtime

import "github.com/vcrobe/nojs-grid/vdom"

// Component is what the renderer drives: anything that can produce a VNode
// tree and accept a renderer reference. Grid components satisfy it by
// embedding ComponentBase and implementing Render.
//
// Kept free of build tags so the same component code runs under the WASM
// renderer and the in-memory test harness.
type Component interface {
	// Render builds the component's current VNode tree. The renderer is
	// passed in (as the interface, never the concrete type) so nested
	// components can be rendered through RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer injects the owning renderer. The framework calls this on
	// mount; components get StateHasChanged wired up through it.
	SetRenderer(r Renderer)
}
