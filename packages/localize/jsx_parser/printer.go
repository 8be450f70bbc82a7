package jsx_parser

import "strings"

// Printer renders a tree back to source. Untouched nodes print exactly as
// they were written.
type Printer struct {
	builder strings.Builder
}

// Print renders a node to source text
func Print(node Node) string {
	p := &Printer{}
	node.Visit(p, nil)
	return p.builder.String()
}

// VisitCode implements Visitor
func (p *Printer) VisitCode(code *Code, context interface{}) interface{} {
	VisitAll(p, code.Parts, context)
	return nil
}

// VisitRaw implements Visitor
func (p *Printer) VisitRaw(raw *Raw, context interface{}) interface{} {
	p.builder.WriteString(raw.Value)
	return nil
}

// VisitText implements Visitor
func (p *Printer) VisitText(text *Text, context interface{}) interface{} {
	p.builder.WriteString(text.Value)
	return nil
}

// VisitExpressionContainer implements Visitor
func (p *Printer) VisitExpressionContainer(container *ExpressionContainer, context interface{}) interface{} {
	p.builder.WriteByte('{')
	container.Expression.Visit(p, context)
	p.builder.WriteByte('}')
	return nil
}

// VisitElement implements Visitor
func (p *Printer) VisitElement(element *Element, context interface{}) interface{} {
	p.builder.WriteByte('<')
	p.builder.WriteString(element.Name)
	for _, attr := range element.Attrs {
		attr.Visit(p, context)
	}
	p.builder.WriteString(element.OpenTrail)
	if element.IsSelfClosing {
		p.builder.WriteString("/>")
		return nil
	}
	p.builder.WriteByte('>')
	VisitAll(p, element.Children, context)
	if element.CloseTag != "" {
		p.builder.WriteString(element.CloseTag)
	} else {
		p.builder.WriteString("</" + element.Name + ">")
	}
	return nil
}

// VisitAttribute implements Visitor
func (p *Printer) VisitAttribute(attr *Attribute, context interface{}) interface{} {
	p.builder.WriteString(attr.Leading)
	if attr.Kind == AttrSpread {
		attr.Expression.Visit(p, context)
		return nil
	}
	p.builder.WriteString(attr.Name)
	switch attr.Kind {
	case AttrString:
		p.builder.WriteString(attr.Assign)
		p.builder.WriteByte(attr.Quote)
		p.builder.WriteString(attr.Value)
		p.builder.WriteByte(attr.Quote)
	case AttrExpression:
		p.builder.WriteString(attr.Assign)
		attr.Expression.Visit(p, context)
	case AttrElement:
		p.builder.WriteString(attr.Assign)
		attr.Element.Visit(p, context)
	}
	return nil
}
