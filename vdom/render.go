//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-grid/console"
)

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	callbacks := v.GetEventCallbacks()
	for _, cb := range callbacks {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// Clear empties the mount element and releases callbacks held by the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector: %s", selector)
		return
	}

	// Set innerHTML to an empty string to clear all children.
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", selector)

	if !mount.Truthy() {
		console.Error("Mount element not found for selector: %s", selector)
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	// Handle boolean attributes
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			// For boolean attributes, set them without a value (or with empty string)
			el.Call("setAttribute", key, "")
		}
		// If false, don't set the attribute at all
		return
	}

	// Handle event handlers (functions that accept js.Value)
	if _, ok := value.(func(js.Value)); ok {
		// Event handlers should be attached via addEventListener, not setAttribute
		// Skip them here - they'll be handled separately
		return
	}

	// For all other types, convert to string and set normally
	el.Call("setAttribute", key, fmt.Sprint(value))
}

// attachEventListeners processes attributes and attaches event listeners for event handlers.
// Event attributes start with "on" (e.g., onClick, onInput, onMouseenter).
// The VNode parameter is used to store js.Func objects for later cleanup.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	if attributes == nil {
		return
	}

	for key, value := range attributes {
		// Check if this is an event handler (starts with "on")
		if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
			if handler, ok := value.(func(js.Value)); ok {
				// Convert "onClick" -> "click", "onInput" -> "input", etc.
				eventName := key[2:]
				if eventName[0] >= 'A' && eventName[0] <= 'Z' {
					eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
				}

				cb := js.FuncOf(func(this js.Value, args []js.Value) any {
					if len(args) > 0 {
						handler(args[0])
					}
					return nil
				})

				el.Call("addEventListener", eventName, cb)

				// Store the callback in VNode for later cleanup
				if vnode != nil {
					vnode.AddEventCallback(cb)
				}
			}
		}
	}
}

// valueTags are elements whose Content maps to the "value" property instead of textContent.
var valueTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
}

// voidTags are elements that never receive children.
var voidTags = map[string]bool{
	"input": true,
	"br":    true,
	"hr":    true,
	"img":   true,
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	// Pure text node - no HTML element wrapper
	if n.Tag == "#text" {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	if !el.Truthy() {
		console.Error("Could not create element for tag: %s", n.Tag)
		return js.Undefined()
	}

	if n.Attributes != nil {
		for k, v := range n.Attributes {
			setAttributeValue(el, k, v)
		}
		attachEventListeners(el, n, n.Attributes)
	}

	if n.Content != "" {
		if valueTags[n.Tag] {
			el.Set("value", n.Content)
		} else {
			el.Set("textContent", n.Content)
		}
	}

	if !voidTags[n.Tag] {
		for _, child := range n.Children {
			childEl := createElement(child)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}

	// Attach Go OnClick handler if present (legacy support)
	if n.OnClick != nil {
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			n.OnClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		// Store callback for cleanup
		n.AddEventCallback(cb)
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return
	}

	mount := doc.Call("querySelector", mountSelector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector: %s", mountSelector)
		return
	}

	// Get the root DOM element (first child of mount point)
	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		// No existing DOM, just render fresh
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// Different component instance or different tag - replace the entire subtree
	keyChanged := oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" &&
		oldVNode.ComponentKey != newVNode.ComponentKey
	if keyChanged || oldVNode.Tag != newVNode.Tag {
		deepReleaseCallbacks(oldVNode)

		newElement := createElement(newVNode)
		if newElement.Truthy() {
			parent := domElement.Get("parentNode")
			if parent.Truthy() {
				parent.Call("replaceChild", newElement, domElement)
			}
		}
		return
	}

	// Same tag - update attributes
	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Release old callbacks and attach new ones
	releaseCallbacks(oldVNode)
	if newVNode.Attributes != nil {
		attachEventListeners(domElement, newVNode, newVNode.Attributes)
	}

	if newVNode.Tag == "input" || newVNode.Tag == "textarea" {
		// Only update value if element is NOT currently focused.
		// This preserves the user's typing experience.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() && newVNode.Content != "" {
			currentValue := domElement.Get("value").String()
			if currentValue != newVNode.Content {
				domElement.Set("value", newVNode.Content)
			}
		}
	} else if newVNode.Tag == "select" {
		if newVNode.Content != "" {
			domElement.Set("value", newVNode.Content)
		}
	} else {
		// Update text content ONLY if there are no children.
		// Setting textContent wipes out all child nodes, so we must check first.
		if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	// Remove old attributes that are not in new attributes
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			// Skip event handlers (they start with "on")
			if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
				continue
			}
			domElement.Call("removeAttribute", key)
		}
	}

	// Set new attributes
	for key, value := range newAttrs {
		// Skip event handlers - they're attached separately
		if len(key) > 2 && key[0] == 'o' && key[1] == 'n' {
			continue
		}

		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := oldLen
	if newLen < minLen {
		minLen = newLen
	}

	domChildren := domElement.Get("childNodes")

	// Patch existing children
	for i := 0; i < minLen; i++ {
		oldChild := oldChildren[i]
		newChild := newChildren[i]

		if oldChild == nil && newChild != nil {
			// Old was nil but new is not (e.g., conditional rendering)
			newChildEl := createElement(newChild)
			if newChildEl.Truthy() {
				if i < domChildren.Length() {
					refChild := domChildren.Call("item", i)
					if refChild.Truthy() {
						domElement.Call("insertBefore", newChildEl, refChild)
					} else {
						domElement.Call("appendChild", newChildEl)
					}
				} else {
					domElement.Call("appendChild", newChildEl)
				}
			}
		} else if oldChild != nil && newChild == nil {
			// Old existed but new is nil (e.g., conditional hiding)
			deepReleaseCallbacks(oldChild)
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		} else if oldChild != nil && newChild != nil {
			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				patchElement(childElement, oldChild, newChild)
			}
		}
		// If both are nil, nothing to do
	}

	// Add new children if newChildren is longer
	if newLen > oldLen {
		for i := oldLen; i < newLen; i++ {
			newChild := createElement(newChildren[i])
			if newChild.Truthy() {
				domElement.Call("appendChild", newChild)
			}
		}
	}

	// Remove extra children if oldChildren is longer
	if oldLen > newLen {
		for i := oldLen - 1; i >= newLen; i-- {
			deepReleaseCallbacks(oldChildren[i])

			childElement := domChildren.Call("item", i)
			if childElement.Truthy() {
				domElement.Call("removeChild", childElement)
			}
		}
	}
}
