package transform

import (
	"jsx-localize/packages/localize/i18n"
	"jsx-localize/packages/localize/jsx_parser"
)

// messageExtractor turns the children of one marker-bearing node into the
// segments and substitutions of a single message. Child elements are
// inlined as start/end tag placeholders; already resolved messages and
// embedded expressions become interpolations.
type messageExtractor struct {
	registry      *i18n.PlaceholderRegistry
	segments      []i18n.Segment
	substitutions []jsx_parser.Node
}

func extractMessage(meta i18n.Meta, children []jsx_parser.Node) *i18n.Message {
	x := &messageExtractor{registry: i18n.NewPlaceholderRegistry()}
	jsx_parser.VisitAll(x, children, nil)
	return i18n.NewMessage(meta, x.segments, x.substitutions)
}

func (x *messageExtractor) addPlaceholder(ph *i18n.Placeholder, substitution jsx_parser.Node) {
	x.segments = append(x.segments, ph)
	if substitution != nil {
		x.substitutions = append(x.substitutions, substitution)
	}
}

// VisitText implements jsx_parser.Visitor
func (x *messageExtractor) VisitText(text *jsx_parser.Text, context interface{}) interface{} {
	if value := jsx_parser.NormalizeText(text.Value); value != "" {
		x.segments = append(x.segments, i18n.NewText(value, text.SourceSpan()))
	}
	return nil
}

// VisitExpressionContainer implements jsx_parser.Visitor
func (x *messageExtractor) VisitExpressionContainer(container *jsx_parser.ExpressionContainer, context interface{}) interface{} {
	if container.Expression.IsEmpty() {
		return nil
	}
	ph := x.registry.GetInterpolationPlaceholder(container.SourceSpan())
	x.addPlaceholder(ph, container.Expression.TrimSpace())
	return nil
}

// VisitElement implements jsx_parser.Visitor
func (x *messageExtractor) VisitElement(element *jsx_parser.Element, context interface{}) interface{} {
	switch {
	case element.Resolved:
		ph := x.registry.GetInterpolationPlaceholder(element.SourceSpan())
		x.addPlaceholder(ph, element)
	case element.IsFragment():
		jsx_parser.VisitAll(x, element.Children, context)
	case len(element.Children) == 0:
		ph := x.registry.GetVoidTagPlaceholder(element.Name, element.SourceSpan())
		x.addPlaceholder(ph, element)
	default:
		start := x.registry.GetStartTagPlaceholder(element.Name, element.StartSourceSpan)
		x.addPlaceholder(start, element.WithoutChildren())
		jsx_parser.VisitAll(x, element.Children, context)
		x.addPlaceholder(x.registry.GetCloseTagPlaceholder(start, element.EndSourceSpan), nil)
	}
	return nil
}

// VisitCode implements jsx_parser.Visitor
func (x *messageExtractor) VisitCode(code *jsx_parser.Code, context interface{}) interface{} {
	return nil
}

// VisitRaw implements jsx_parser.Visitor
func (x *messageExtractor) VisitRaw(raw *jsx_parser.Raw, context interface{}) interface{} {
	return nil
}

// VisitAttribute implements jsx_parser.Visitor
func (x *messageExtractor) VisitAttribute(attribute *jsx_parser.Attribute, context interface{}) interface{} {
	return nil
}
