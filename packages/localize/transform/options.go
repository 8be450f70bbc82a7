package transform

// Options names the marker surface and the emitted calls
type Options struct {
	// MarkerAttribute marks an element whose children form one message.
	MarkerAttribute string
	// WrapperTag is the dedicated tag replaced by a fragment holding its message.
	WrapperTag string
	// AttributeMarkerPrefix prefixes the name of the attribute to translate.
	AttributeMarkerPrefix string
	// LocalizeTag is the tag function of emitted template literals.
	LocalizeTag string
	// HelperName reassembles a template and its substitutions into markup.
	HelperName string
	// HelperModule is the module HelperName is imported from.
	HelperModule string
}

const (
	DefaultMarkerAttribute       = "i18n"
	DefaultWrapperTag            = "i18n"
	DefaultAttributeMarkerPrefix = "i18n-attr-"
	DefaultLocalizeTag           = "$localize"
	DefaultHelperName            = "$jsxify"
	DefaultHelperModule          = "@flarelabs-net/jsx-localize/react"
)

// DefaultOptions returns the stock marker surface
func DefaultOptions() *Options {
	return &Options{
		MarkerAttribute:       DefaultMarkerAttribute,
		WrapperTag:            DefaultWrapperTag,
		AttributeMarkerPrefix: DefaultAttributeMarkerPrefix,
		LocalizeTag:           DefaultLocalizeTag,
		HelperName:            DefaultHelperName,
		HelperModule:          DefaultHelperModule,
	}
}

// withDefaults returns a copy of o with empty fields set to their defaults
func (o *Options) withDefaults() *Options {
	result := DefaultOptions()
	if o == nil {
		return result
	}
	setIfPresent(&result.MarkerAttribute, o.MarkerAttribute)
	setIfPresent(&result.WrapperTag, o.WrapperTag)
	setIfPresent(&result.AttributeMarkerPrefix, o.AttributeMarkerPrefix)
	setIfPresent(&result.LocalizeTag, o.LocalizeTag)
	setIfPresent(&result.HelperName, o.HelperName)
	setIfPresent(&result.HelperModule, o.HelperModule)
	return result
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
