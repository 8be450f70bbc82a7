package transform

import (
	"strings"

	"jsx-localize/packages/localize/i18n"
	"jsx-localize/packages/localize/jsx_parser"
)

// translateAttributes resolves the attribute markers of element: each
// `i18n-attr-<name>` turns the literal value of its peer attribute `<name>`
// into a `$localize` call and is then dropped. It returns how many
// attributes were translated.
func (r *resolver) translateAttributes(element *jsx_parser.Element) (int, error) {
	var markers []*jsx_parser.Attribute
	for _, attr := range element.Attrs {
		if attr.Kind != jsx_parser.AttrSpread && r.isAttributeMarker(attr.Name) {
			markers = append(markers, attr)
		}
	}

	for _, marker := range markers {
		var meta i18n.Meta
		switch marker.Kind {
		case jsx_parser.AttrBoolean:
		case jsx_parser.AttrString:
			meta = i18n.ParseI18nMeta(marker.Value)
		default:
			return 0, nonLiteralMarkerError(marker)
		}

		target := strings.TrimPrefix(marker.Name, r.opts.AttributeMarkerPrefix)
		peer := element.Attr(target)
		if peer == nil {
			return 0, newValidationError(MissingPeerAttribute, marker.SourceSpan(),
				"attribute '%s' doesn't have matching peer attribute '%s' on element '%s'",
				marker.Name, target, element.Name)
		}
		if !peer.IsLiteral() {
			return 0, newValidationError(NonLiteralPeer, peer.SourceSpan(),
				"value of attribute '%s' must be a literal, was: %s", peer.Name, peer.Kind)
		}

		peer.SetExpression(r.emitter.localizeCode(meta.Prefix() + peer.Value))
		element.RemoveAttr(marker)
	}
	return len(markers), nil
}

func (r *resolver) isAttributeMarker(name string) bool {
	prefix := r.opts.AttributeMarkerPrefix
	return len(name) > len(prefix) && strings.HasPrefix(name, prefix)
}
