package jsx_parser

import (
	"strings"

	"jsx-localize/packages/localize/util"
)

const jsWhitespace = " \t\n\r\v\f"

// Node represents a node in the JSX source tree
type Node interface {
	SourceSpan() *util.ParseSourceSpan
	Visit(visitor Visitor, context interface{}) interface{}
}

type baseNode struct {
	sourceSpan *util.ParseSourceSpan
}

// SourceSpan returns the source span, nil for synthesized nodes
func (n *baseNode) SourceSpan() *util.ParseSourceSpan {
	return n.sourceSpan
}

// Raw is a run of host-language source kept verbatim
type Raw struct {
	baseNode
	Value string
}

// NewRaw creates a new Raw node
func NewRaw(value string, sourceSpan *util.ParseSourceSpan) *Raw {
	return &Raw{baseNode: baseNode{sourceSpan: sourceSpan}, Value: value}
}

// Visit implements the Node interface
func (r *Raw) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitRaw(r, context)
}

// Code is a stretch of host-language source: raw runs interleaved with the
// JSX elements embedded in it. A whole file parses to one Code.
type Code struct {
	baseNode
	Parts []Node
}

// NewCode creates a new Code node
func NewCode(parts []Node, sourceSpan *util.ParseSourceSpan) *Code {
	return &Code{baseNode: baseNode{sourceSpan: sourceSpan}, Parts: parts}
}

// Visit implements the Node interface
func (c *Code) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitCode(c, context)
}

// IsEmpty reports whether the code holds nothing but whitespace and comments
func (c *Code) IsEmpty() bool {
	for _, part := range c.Parts {
		raw, ok := part.(*Raw)
		if !ok || !isTrivia(raw.Value) {
			return false
		}
	}
	return true
}

// TrimSpace returns the code without the whitespace that surrounds it
func (c *Code) TrimSpace() *Code {
	parts := append([]Node(nil), c.Parts...)
	for len(parts) > 0 {
		raw, ok := parts[0].(*Raw)
		if !ok {
			break
		}
		value := strings.TrimLeft(raw.Value, jsWhitespace)
		if value != "" {
			parts[0] = NewRaw(value, raw.sourceSpan)
			break
		}
		parts = parts[1:]
	}
	for len(parts) > 0 {
		last := len(parts) - 1
		raw, ok := parts[last].(*Raw)
		if !ok {
			break
		}
		value := strings.TrimRight(raw.Value, jsWhitespace)
		if value != "" {
			parts[last] = NewRaw(value, raw.sourceSpan)
			break
		}
		parts = parts[:last]
	}
	return NewCode(parts, c.sourceSpan)
}

// Text represents literal JSX text between tags
type Text struct {
	baseNode
	Value string
}

// NewText creates a new Text node
func NewText(value string, sourceSpan *util.ParseSourceSpan) *Text {
	return &Text{baseNode: baseNode{sourceSpan: sourceSpan}, Value: value}
}

// Visit implements the Node interface
func (t *Text) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitText(t, context)
}

// ExpressionContainer represents `{expression}` in children or attribute values
type ExpressionContainer struct {
	baseNode
	Expression *Code
}

// NewExpressionContainer creates a new ExpressionContainer node
func NewExpressionContainer(expression *Code, sourceSpan *util.ParseSourceSpan) *ExpressionContainer {
	return &ExpressionContainer{baseNode: baseNode{sourceSpan: sourceSpan}, Expression: expression}
}

// Visit implements the Node interface
func (e *ExpressionContainer) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitExpressionContainer(e, context)
}

// AttributeKind classifies the value an attribute is bound to
type AttributeKind int

const (
	AttrBoolean AttributeKind = iota
	AttrString
	AttrExpression
	AttrElement
	AttrSpread
)

// String returns the syntax kind name used in diagnostics
func (k AttributeKind) String() string {
	switch k {
	case AttrBoolean:
		return "BooleanAttribute"
	case AttrString:
		return "StringLiteral"
	case AttrExpression:
		return "JSXExpressionContainer"
	case AttrElement:
		return "JSXElement"
	case AttrSpread:
		return "JSXSpreadAttribute"
	}
	return "Unknown"
}

// Attribute represents one attribute of an opening tag
type Attribute struct {
	baseNode
	Name string
	Kind AttributeKind
	// Value is the literal text of a string attribute, without quotes.
	Value      string
	Quote      byte
	Expression *ExpressionContainer
	Element    *Element
	// Leading is the trivia between the previous token and this attribute.
	Leading string
	// Assign is the raw text between the name and the value, usually "=".
	Assign string
}

// NewAttribute creates a new Attribute node
func NewAttribute(name string, kind AttributeKind, sourceSpan *util.ParseSourceSpan) *Attribute {
	return &Attribute{baseNode: baseNode{sourceSpan: sourceSpan}, Name: name, Kind: kind}
}

// Visit implements the Node interface
func (a *Attribute) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitAttribute(a, context)
}

// IsLiteral reports whether the attribute is bound to a string literal
func (a *Attribute) IsLiteral() bool {
	return a.Kind == AttrString
}

// SetExpression rebinds the attribute to `{code}`
func (a *Attribute) SetExpression(code *Code) {
	a.Kind = AttrExpression
	a.Value = ""
	a.Quote = 0
	a.Element = nil
	a.Expression = NewExpressionContainer(code, nil)
	if a.Assign == "" {
		a.Assign = "="
	}
}

// Element represents a JSX element; fragments have an empty Name
type Element struct {
	baseNode
	Name          string
	Attrs         []*Attribute
	Children      []Node
	IsSelfClosing bool
	// OpenTrail is the trivia between the last attribute and '>' or '/>'.
	OpenTrail string
	// CloseTag is the closing tag as written, empty for self-closing elements.
	CloseTag string
	// Resolved marks an element whose localized message was already emitted.
	Resolved        bool
	StartSourceSpan *util.ParseSourceSpan
	EndSourceSpan   *util.ParseSourceSpan
}

// NewElement creates a new Element node
func NewElement(name string, attrs []*Attribute, children []Node, isSelfClosing bool, sourceSpan, startSourceSpan, endSourceSpan *util.ParseSourceSpan) *Element {
	return &Element{
		baseNode:        baseNode{sourceSpan: sourceSpan},
		Name:            name,
		Attrs:           attrs,
		Children:        children,
		IsSelfClosing:   isSelfClosing,
		StartSourceSpan: startSourceSpan,
		EndSourceSpan:   endSourceSpan,
	}
}

// NewFragment creates a synthesized `<>children</>` fragment
func NewFragment(children []Node) *Element {
	return &Element{Name: "", Children: children, CloseTag: "</>"}
}

// Visit implements the Node interface
func (e *Element) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitElement(e, context)
}

// IsFragment reports whether the element is a `<>...</>` fragment
func (e *Element) IsFragment() bool {
	return e.Name == ""
}

// Attr looks up an attribute by name
func (e *Element) Attr(name string) *Attribute {
	for _, attr := range e.Attrs {
		if attr.Kind != AttrSpread && attr.Name == name {
			return attr
		}
	}
	return nil
}

// RemoveAttr drops an attribute together with its leading trivia
func (e *Element) RemoveAttr(attr *Attribute) {
	for i, a := range e.Attrs {
		if a == attr {
			e.Attrs = append(e.Attrs[:i:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// SetChildren replaces the children, turning a self-closing element into an open/close pair
func (e *Element) SetChildren(children []Node) {
	e.Children = children
	if e.IsSelfClosing && len(children) > 0 {
		e.IsSelfClosing = false
		if e.OpenTrail != "" && isTrivia(e.OpenTrail) && !containsNewLine(e.OpenTrail) {
			e.OpenTrail = ""
		}
	}
	if !e.IsSelfClosing && e.CloseTag == "" {
		e.CloseTag = "</" + e.Name + ">"
	}
}

// WithoutChildren returns a copy that keeps the tag and attributes and drops the children
func (e *Element) WithoutChildren() *Element {
	clone := *e
	clone.Children = nil
	if !clone.IsSelfClosing && clone.CloseTag == "" {
		clone.CloseTag = "</" + clone.Name + ">"
	}
	return &clone
}

// Visitor interface for visiting JSX nodes
type Visitor interface {
	VisitCode(code *Code, context interface{}) interface{}
	VisitRaw(raw *Raw, context interface{}) interface{}
	VisitText(text *Text, context interface{}) interface{}
	VisitExpressionContainer(container *ExpressionContainer, context interface{}) interface{}
	VisitElement(element *Element, context interface{}) interface{}
	VisitAttribute(attribute *Attribute, context interface{}) interface{}
}

// VisitAll visits all nodes with a visitor
func VisitAll(visitor Visitor, nodes []Node, context interface{}) []interface{} {
	var result []interface{}
	for _, node := range nodes {
		if r := node.Visit(visitor, context); r != nil {
			result = append(result, r)
		}
	}
	return result
}
