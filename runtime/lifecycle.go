package runtime

// Lifecycle interfaces are optional: the renderer type-asserts for each of
// them at the appropriate point in the render cycle, so components implement
// only the hooks they need.

// Initializer is implemented by components that need one-time setup when they
// are first attached to the component tree, before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to incoming
// properties. Called before every render, including the first.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// AfterRenderHandler is implemented by components that need to run after
// their visual output has been committed (measurements, instrumentation).
// Called after every completed render pass.
type AfterRenderHandler interface {
	OnAfterRender()
}

// Cleaner is implemented by components that hold resources needing release
// when the component is removed from the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater is implemented by components whose instances are reused across
// renders: the renderer passes the freshly constructed instance so the
// existing one can absorb its properties without losing state.
type PropUpdater interface {
	ApplyProps(next Component)
}
