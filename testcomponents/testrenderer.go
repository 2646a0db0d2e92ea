package testcomponents

import (
	"github.com/vcrobe/nojs-grid/runtime"
	"github.com/vcrobe/nojs-grid/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Drive the component lifecycle (OnInit, OnPropertiesSet, OnAfterRender)
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	initialized bool
	renderCount int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, running the same
// lifecycle sequence as the WASM renderer: OnInit once, OnPropertiesSet
// before the render, OnAfterRender after it.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.renderOnce()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.renderOnce()
}

func (r *TestRenderer) renderOnce() {
	if !r.initialized {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized = true
	}

	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnPropertiesSet()
	}

	r.currentVDOM = r.component.Render(r)
	r.renderCount++

	if handler, ok := r.component.(runtime.AfterRenderHandler); ok {
		handler.OnAfterRender()
	}
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Tests use this to inspect the component's output after renders.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount reports how many render passes have run.
func (r *TestRenderer) RenderCount() int {
	return r.renderCount
}

// RenderChild renders a child component in place.
// For grid tests there are no nested component children, so no instance
// tracking is needed here.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}
