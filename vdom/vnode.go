package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or "#text" for a bare text node
	Attributes   map[string]any // The attributes of the node
	Children     []*VNode       // The child nodes
	Content      string         // The text content of the node
	ComponentKey string         // Identifies the owning component instance for subtree replacement
	OnClick      func()         // Optional click event handler

	// eventCallbacks holds js.Func values created while mounting this node,
	// stored as any so this file compiles without build tags. Released by the
	// renderer before the node leaves the DOM.
	eventCallbacks []any
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Text creates a bare text node with no element wrapper.
func Text(content string) *VNode {
	return &VNode{Tag: "#text", Content: content}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// AddEventCallback stores a live event callback for later release.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks registered on this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks drops all stored callbacks after they have been released.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> VNode with the given text and attributes.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Table creates a <table> VNode with the given children (thead/tbody) and attributes.
func Table(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("table", attrs, children, "")
}

// THead creates a <thead> VNode wrapping the given rows.
func THead(children ...*VNode) *VNode {
	return NewVNode("thead", nil, children, "")
}

// TBody creates a <tbody> VNode wrapping the given rows.
func TBody(children ...*VNode) *VNode {
	return NewVNode("tbody", nil, children, "")
}

// Tr creates a <tr> VNode with the given cells and attributes.
func Tr(attrs map[string]any, cells ...*VNode) *VNode {
	return NewVNode("tr", attrs, cells, "")
}

// Th creates a <th> header cell with the given text and attributes.
func Th(text string, attrs map[string]any) *VNode {
	return NewVNode("th", attrs, nil, text)
}

// Td creates a <td> cell wrapping the given children.
func Td(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("td", attrs, children, "")
}
