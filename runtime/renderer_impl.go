//go:build js || wasm
// +build js wasm

package runtime

import "github.com/vcrobe/nojs-grid/vdom"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The currently active root component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a new runtime renderer mounting into the element
// matched by mountID (a CSS selector such as "#app").
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mountID:     mountID,
		prevVDOM:    nil,
	}
}

// SetCurrentComponent sets the component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	// Ensure the component has a reference to the renderer for StateHasChanged.
	r.currentComponent.SetRenderer(r)

	if _, initialized := r.initialized["__root__"]; !initialized {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, "__root__")
		}
		r.initialized["__root__"] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, "__root__")
	}

	newVDOM := r.currentComponent.Render(r)

	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		// Subsequent renders: patch the existing DOM
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()

	// The DOM is committed: fire post-render hooks, root last so instrumentation
	// observes a fully rendered subtree.
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			continue
		}
		if handler, ok := instance.(AfterRenderHandler); ok {
			r.callOnAfterRender(handler, key)
		}
	}
	if handler, ok := r.currentComponent.(AfterRenderHandler); ok {
		r.callOnAfterRender(handler, "__root__")
	}
}

// RenderChild renders a child component, handling instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else {
		// We have seen this component before. Preserve the existing instance to keep state.
		// Apply new props from childWithProps to the existing instance.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	if isFirstRender {
		// Call OnInit only once, before first render
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	// Call OnPropertiesSet before every render (including first)
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		// If the component wasn't marked as active in this render, it's been unmounted
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}

			// Remove from tracking maps
			delete(r.instances, key)
			delete(r.initialized, key)
		}
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
