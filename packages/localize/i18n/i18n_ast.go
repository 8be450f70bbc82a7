package i18n

import (
	"strings"

	"jsx-localize/packages/localize/jsx_parser"
	"jsx-localize/packages/localize/util"
)

// Message is one extracted localizable message: the metadata, the ordered
// segments of its template and the values bound to its placeholders.
// Substitutions[i] binds the placeholder with index i.
type Message struct {
	Meta          Meta
	Segments      []Segment
	Substitutions []jsx_parser.Node
}

// NewMessage creates a new Message
func NewMessage(meta Meta, segments []Segment, substitutions []jsx_parser.Node) *Message {
	return &Message{
		Meta:          meta,
		Segments:      segments,
		Substitutions: substitutions,
	}
}

// Template returns the `$localize` template body: the metadata prefix
// followed by the serialized segments, escaped for a template literal.
func (m *Message) Template() string {
	return EscapeTemplateText(m.Meta.Prefix()) + SerializeMessage(m.Segments)
}

// Placeholders returns the placeholder segments in template order
func (m *Message) Placeholders() []*Placeholder {
	var placeholders []*Placeholder
	for _, segment := range m.Segments {
		if ph, ok := segment.(*Placeholder); ok {
			placeholders = append(placeholders, ph)
		}
	}
	return placeholders
}

// Segment is one piece of a message template
type Segment interface {
	SourceSpan() *util.ParseSourceSpan
	Visit(visitor Visitor, context interface{}) interface{}
}

// Text represents a normalized literal text segment
type Text struct {
	Value      string
	sourceSpan *util.ParseSourceSpan
}

// NewText creates a new Text segment
func NewText(value string, sourceSpan *util.ParseSourceSpan) *Text {
	return &Text{
		Value:      value,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (t *Text) SourceSpan() *util.ParseSourceSpan {
	return t.sourceSpan
}

// Visit implements the Segment interface
func (t *Text) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitText(t, context)
}

// Visitor interface for visiting message segments
type Visitor interface {
	VisitText(text *Text, context interface{}) interface{}
	VisitPlaceholder(ph *Placeholder, context interface{}) interface{}
}

// SerializeMessage serializes segments to the `$localize` template format
func SerializeMessage(segments []Segment) string {
	visitor := &LocalizeMessageStringVisitor{}
	var b strings.Builder
	for _, segment := range segments {
		if str, ok := segment.Visit(visitor, nil).(string); ok {
			b.WriteString(str)
		}
	}
	return b.String()
}

// LocalizeMessageStringVisitor serializes segments to the `$localize` format
type LocalizeMessageStringVisitor struct{}

// VisitText serializes a Text segment
func (v *LocalizeMessageStringVisitor) VisitText(text *Text, context interface{}) interface{} {
	return EscapeTemplateText(text.Value)
}

// VisitPlaceholder serializes a Placeholder as its marker token and name
func (v *LocalizeMessageStringVisitor) VisitPlaceholder(ph *Placeholder, context interface{}) interface{} {
	return ph.Marker() + ":" + ph.Name() + ":"
}

var templateEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

// EscapeTemplateText escapes text for the body of a JS template literal
func EscapeTemplateText(text string) string {
	return templateEscaper.Replace(text)
}
