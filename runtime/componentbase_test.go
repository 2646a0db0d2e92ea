//go:build !wasm
// +build !wasm

package runtime_test

import (
	"testing"

	"github.com/vcrobe/nojs-grid/runtime"
	"github.com/vcrobe/nojs-grid/vdom"
)

type fakeRenderer struct {
	reRenders int
}

func (f *fakeRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return nil
}

func (f *fakeRenderer) ReRender() {
	f.reRenders++
}

// TestStateHasChanged_TriggersReRender verifies the base wiring between a
// component and its renderer.
func TestStateHasChanged_TriggersReRender(t *testing.T) {
	base := &runtime.ComponentBase{}
	r := &fakeRenderer{}
	base.SetRenderer(r)

	base.StateHasChanged()
	base.StateHasChanged()

	if r.reRenders != 2 {
		t.Errorf("Expected 2 re-renders, got %d", r.reRenders)
	}
	if base.GetRenderer() != r {
		t.Errorf("GetRenderer should return the injected renderer")
	}
}

// TestStateHasChanged_UnmountedIsSafe verifies the unmounted case degrades to
// a diagnostic instead of a panic.
func TestStateHasChanged_UnmountedIsSafe(t *testing.T) {
	base := &runtime.ComponentBase{}

	// Must not panic with no renderer attached.
	base.StateHasChanged()
}
