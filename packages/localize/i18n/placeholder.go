package i18n

import (
	"strconv"

	"jsx-localize/packages/localize/util"
)

// PlaceholderMarker brackets the id of a placeholder marker token
const PlaceholderMarker = "\uFFFD"

// PlaceholderKind distinguishes what a placeholder stands in for
type PlaceholderKind int

const (
	PlaceholderInterpolation PlaceholderKind = iota
	PlaceholderTagVoid
	PlaceholderTagStart
	PlaceholderTagEnd
)

// String returns the kind name
func (k PlaceholderKind) String() string {
	switch k {
	case PlaceholderInterpolation:
		return "Interpolation"
	case PlaceholderTagVoid:
		return "TagVoid"
	case PlaceholderTagStart:
		return "TagStart"
	case PlaceholderTagEnd:
		return "TagEnd"
	}
	return "Unknown"
}

// Placeholder is a positional stand-in for an interpolated value or a
// relocated element. A start tag and its end tag share one index.
type Placeholder struct {
	Kind       PlaceholderKind
	Index      int
	TagName    string
	sourceSpan *util.ParseSourceSpan
}

// NewPlaceholder creates a new Placeholder
func NewPlaceholder(kind PlaceholderKind, index int, tagName string, sourceSpan *util.ParseSourceSpan) *Placeholder {
	return &Placeholder{
		Kind:       kind,
		Index:      index,
		TagName:    tagName,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (p *Placeholder) SourceSpan() *util.ParseSourceSpan {
	return p.sourceSpan
}

// Visit implements the Segment interface
func (p *Placeholder) Visit(visitor Visitor, context interface{}) interface{} {
	return visitor.VisitPlaceholder(p, context)
}

// Name returns the translator-facing placeholder name, e.g. TAG_START_span#0
func (p *Placeholder) Name() string {
	suffix := "#" + strconv.Itoa(p.Index)
	switch p.Kind {
	case PlaceholderTagVoid:
		return "TAG_" + p.TagName + suffix
	case PlaceholderTagStart:
		return "TAG_START_" + p.TagName + suffix
	case PlaceholderTagEnd:
		return "TAG_END_" + p.TagName + suffix
	}
	return "INTERPOLATION" + suffix
}

// ID returns the compact marker id: "#0" opens, "#0/" is self-contained,
// "/#0" closes.
func (p *Placeholder) ID() string {
	id := "#" + strconv.Itoa(p.Index)
	switch p.Kind {
	case PlaceholderTagStart:
		return id
	case PlaceholderTagEnd:
		return "/" + id
	}
	return id + "/"
}

// Marker returns the marker token as it is embedded in a template literal
func (p *Placeholder) Marker() string {
	return `${"` + PlaceholderMarker + p.ID() + PlaceholderMarker + `"}`
}

// PlaceholderRegistry hands out placeholder indices for one message, in
// first-occurrence order starting at 0.
type PlaceholderRegistry struct {
	next int
}

// NewPlaceholderRegistry creates a new PlaceholderRegistry
func NewPlaceholderRegistry() *PlaceholderRegistry {
	return &PlaceholderRegistry{}
}

// GetInterpolationPlaceholder allocates a placeholder for an embedded expression
func (pr *PlaceholderRegistry) GetInterpolationPlaceholder(sourceSpan *util.ParseSourceSpan) *Placeholder {
	return NewPlaceholder(PlaceholderInterpolation, pr.allocate(), "", sourceSpan)
}

// GetVoidTagPlaceholder allocates a placeholder for a childless element
func (pr *PlaceholderRegistry) GetVoidTagPlaceholder(tag string, sourceSpan *util.ParseSourceSpan) *Placeholder {
	return NewPlaceholder(PlaceholderTagVoid, pr.allocate(), tag, sourceSpan)
}

// GetStartTagPlaceholder allocates a placeholder for the opening tag of an element with children
func (pr *PlaceholderRegistry) GetStartTagPlaceholder(tag string, sourceSpan *util.ParseSourceSpan) *Placeholder {
	return NewPlaceholder(PlaceholderTagStart, pr.allocate(), tag, sourceSpan)
}

// GetCloseTagPlaceholder pairs a closing placeholder with start; no index is allocated
func (pr *PlaceholderRegistry) GetCloseTagPlaceholder(start *Placeholder, sourceSpan *util.ParseSourceSpan) *Placeholder {
	return NewPlaceholder(PlaceholderTagEnd, start.Index, start.TagName, sourceSpan)
}

// Count returns the number of indices allocated so far
func (pr *PlaceholderRegistry) Count() int {
	return pr.next
}

func (pr *PlaceholderRegistry) allocate() int {
	id := pr.next
	pr.next++
	return id
}
