package transform

import (
	"jsx-localize/packages/localize/i18n"
	"jsx-localize/packages/localize/jsx_parser"
)

// emitter builds the replacement nodes of resolved messages
type emitter struct {
	opts    *Options
	imports *importTracker
}

func newEmitter(opts *Options, imports *importTracker) *emitter {
	return &emitter{opts: opts, imports: imports}
}

// localizeCall renders `$localize` over an already escaped template
func (e *emitter) localizeCall(template string) string {
	return e.opts.LocalizeTag + "`" + template + "`"
}

// localizeCode is the plain `$localize` call over literal text
func (e *emitter) localizeCode(text string) *jsx_parser.Code {
	call := e.localizeCall(i18n.EscapeTemplateText(text))
	return jsx_parser.NewCode([]jsx_parser.Node{jsx_parser.NewRaw(call, nil)}, nil)
}

// messageCode is `$localize` alone for a flat message and the helper call
// over the template and the substitution list otherwise.
func (e *emitter) messageCode(message *i18n.Message) *jsx_parser.Code {
	call := e.localizeCall(message.Template())
	if len(message.Substitutions) == 0 {
		return jsx_parser.NewCode([]jsx_parser.Node{jsx_parser.NewRaw(call, nil)}, nil)
	}

	e.imports.require(e.opts.HelperModule, e.opts.HelperName)
	parts := []jsx_parser.Node{jsx_parser.NewRaw(e.opts.HelperName+"("+call+", [", nil)}
	for i, substitution := range message.Substitutions {
		if i > 0 {
			parts = append(parts, jsx_parser.NewRaw(", ", nil))
		}
		if code, ok := substitution.(*jsx_parser.Code); ok {
			parts = append(parts, code.Parts...)
		} else {
			parts = append(parts, substitution)
		}
	}
	parts = append(parts, jsx_parser.NewRaw("])", nil))
	return jsx_parser.NewCode(parts, nil)
}

// emitElement replaces the children of a marker-bearing element with its
// message and drops the marker. Tag and other attributes stay.
func (e *emitter) emitElement(element *jsx_parser.Element, marker *jsx_parser.Attribute, message *i18n.Message) {
	element.RemoveAttr(marker)
	container := jsx_parser.NewExpressionContainer(e.messageCode(message), nil)
	element.SetChildren([]jsx_parser.Node{container})
	element.Resolved = true
}

// emitFragment builds the fragment that replaces a wrapper tag
func (e *emitter) emitFragment(message *i18n.Message) *jsx_parser.Element {
	container := jsx_parser.NewExpressionContainer(e.messageCode(message), nil)
	fragment := jsx_parser.NewFragment([]jsx_parser.Node{container})
	fragment.Resolved = true
	return fragment
}
