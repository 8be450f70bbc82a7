package i18n

import "strings"

const (
	I18N_MEANING_SEPARATOR = "|"
	I18N_ID_SEPARATOR      = "@@"
)

// Meta is the translator-facing metadata of a message
type Meta struct {
	Meaning     string
	Description string
	CustomID    string
}

// ParseI18nMeta parses i18n metas like:
//   - "@@id",
//   - "description[@@id]",
//   - "meaning|description[@@id]"
//
// The first '|' separates the meaning, the first "@@" after it the custom id.
// The string is kept verbatim, whitespace included.
func ParseI18nMeta(meta string) Meta {
	var result Meta
	rest := meta
	if idx := strings.Index(rest, I18N_MEANING_SEPARATOR); idx > -1 {
		result.Meaning = rest[:idx]
		rest = rest[idx+len(I18N_MEANING_SEPARATOR):]
	}
	if idx := strings.Index(rest, I18N_ID_SEPARATOR); idx > -1 {
		result.CustomID = rest[idx+len(I18N_ID_SEPARATOR):]
		rest = rest[:idx]
	}
	result.Description = rest
	return result
}

// MetaFromFields builds the metadata of the discrete meaning/description/id
// form. A nil field was not given.
func MetaFromFields(meaning, description, id *string) Meta {
	var result Meta
	if meaning != nil {
		result.Meaning = *meaning
	}
	if description != nil {
		result.Description = *description
	}
	if id != nil {
		result.CustomID = *id
	}
	return result
}

// IsEmpty reports whether no field carries any text
func (m Meta) IsEmpty() bool {
	return m.Meaning == "" && m.Description == "" && m.CustomID == ""
}

// String renders the metadata as "meaning|description@@id". Empty fields
// are left out along with their separator.
func (m Meta) String() string {
	var b strings.Builder
	if m.Meaning != "" {
		b.WriteString(m.Meaning)
		b.WriteString(I18N_MEANING_SEPARATOR)
	}
	b.WriteString(m.Description)
	if m.CustomID != "" {
		b.WriteString(I18N_ID_SEPARATOR)
		b.WriteString(m.CustomID)
	}
	return b.String()
}

// Prefix renders the metadata block that opens a `$localize` template:
// ":meaning|description@@id:", or nothing when there is no metadata.
func (m Meta) Prefix() string {
	if m.IsEmpty() {
		return ""
	}
	return ":" + m.String() + ":"
}
