//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import "github.com/vcrobe/nojs-grid/console"

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnInit panic in component %s: %v", key, rec)
		}
	}()
	initializer.OnInit()
}

// callOnParametersSet invokes the OnPropertiesSet lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnPropertiesSet panic in component %s: %v", key, rec)
		}
	}()
	receiver.OnPropertiesSet()
}

// callOnAfterRender invokes the OnAfterRender lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnAfterRender(handler AfterRenderHandler, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnAfterRender panic in component %s: %v", key, rec)
		}
	}()
	handler.OnAfterRender()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnDestroy panic in component %s: %v", key, rec)
		}
	}()
	cleaner.OnDestroy()
}
