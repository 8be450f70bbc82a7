package transform

import (
	"jsx-localize/packages/localize/i18n"
	"jsx-localize/packages/localize/jsx_parser"
)

// resolver walks the tree post-order so that every marker-bearing
// descendant is replaced by its finished expression before an ancestor's
// message captures it.
type resolver struct {
	opts    *Options
	emitter *emitter

	messages   int
	attributes int
}

func newResolver(opts *Options, imports *importTracker) *resolver {
	return &resolver{
		opts:    opts,
		emitter: newEmitter(opts, imports),
	}
}

func (r *resolver) resolveCode(code *jsx_parser.Code) error {
	for i, part := range code.Parts {
		element, ok := part.(*jsx_parser.Element)
		if !ok {
			continue
		}
		resolved, err := r.resolveElement(element)
		if err != nil {
			return err
		}
		code.Parts[i] = resolved
	}
	return nil
}

// resolveElement resolves the subtree of element and returns the node that
// takes its place in the parent.
func (r *resolver) resolveElement(element *jsx_parser.Element) (*jsx_parser.Element, error) {
	for _, attr := range element.Attrs {
		switch {
		case attr.Expression != nil:
			if err := r.resolveCode(attr.Expression.Expression); err != nil {
				return nil, err
			}
		case attr.Element != nil:
			resolved, err := r.resolveElement(attr.Element)
			if err != nil {
				return nil, err
			}
			attr.Element = resolved
		}
	}

	for i, child := range element.Children {
		switch child := child.(type) {
		case *jsx_parser.Element:
			resolved, err := r.resolveElement(child)
			if err != nil {
				return nil, err
			}
			element.Children[i] = resolved
		case *jsx_parser.ExpressionContainer:
			if err := r.resolveCode(child.Expression); err != nil {
				return nil, err
			}
		}
	}

	if element.IsFragment() {
		return element, nil
	}

	if element.Name == r.opts.WrapperTag {
		meta, err := r.wrapperMeta(element)
		if err != nil {
			return nil, err
		}
		r.messages++
		message := extractMessage(meta, element.Children)
		return r.emitter.emitFragment(message), nil
	}

	translated, err := r.translateAttributes(element)
	if err != nil {
		return nil, err
	}
	r.attributes += translated

	marker := element.Attr(r.opts.MarkerAttribute)
	if marker == nil {
		return element, nil
	}
	meta, err := r.markerMeta(marker)
	if err != nil {
		return nil, err
	}
	r.messages++
	message := extractMessage(meta, element.Children)
	r.emitter.emitElement(element, marker, message)
	return element, nil
}

// markerMeta reads the compact metadata of a boolean or string marker attribute
func (r *resolver) markerMeta(marker *jsx_parser.Attribute) (i18n.Meta, error) {
	switch marker.Kind {
	case jsx_parser.AttrBoolean:
		return i18n.Meta{}, nil
	case jsx_parser.AttrString:
		return i18n.ParseI18nMeta(marker.Value), nil
	}
	return i18n.Meta{}, nonLiteralMarkerError(marker)
}

// wrapperMeta reads the discrete meaning/description/id attributes of a wrapper tag
func (r *resolver) wrapperMeta(element *jsx_parser.Element) (i18n.Meta, error) {
	fields := make(map[string]*string, 3)
	for _, name := range []string{"meaning", "description", "id"} {
		attr := element.Attr(name)
		if attr == nil {
			continue
		}
		if !attr.IsLiteral() {
			return i18n.Meta{}, nonLiteralMarkerError(attr)
		}
		value := attr.Value
		fields[name] = &value
	}
	return i18n.MetaFromFields(fields["meaning"], fields["description"], fields["id"]), nil
}

func nonLiteralMarkerError(attr *jsx_parser.Attribute) error {
	return newValidationError(NonLiteralMarker, attr.SourceSpan(),
		"value of attribute '%s' must be a literal, was: %s", attr.Name, attr.Kind)
}
