package util

// Character code constants
const (
	CharEOF    = 0
	CharTAB    = 9
	CharLF     = 10
	CharCR     = 13
	CharSPACE  = 32
	CharDQ     = 34
	CharDollar = 36
	CharSQ     = 39
	CharRPAREN = 41
	CharSTAR   = 42
	CharMINUS  = 45
	CharPERIOD = 46
	CharSLASH  = 47
	CharCOLON  = 58
	CharLT     = 60
	CharEQ     = 61
	CharGT     = 62

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharLBRACKET   = 91
	CharBACKSLASH  = 92
	CharRBRACKET   = 93
	CharUnderscore = 95
	CharBT         = 96

	CharLowerA = 97
	CharLowerZ = 122

	CharLBRACE = 123
	CharRBRACE = 125
)

// IsWhitespace checks if a character code represents JS source whitespace
func IsWhitespace(code int) bool {
	return (code >= CharTAB && code <= CharCR) || code == CharSPACE
}

// IsHorizontalSpace checks for the two characters JSX text collapses on a line
func IsHorizontalSpace(code int) bool {
	return code == CharSPACE || code == CharTAB
}

// IsNewLine checks if a character code is a line terminator
func IsNewLine(code int) bool {
	return code == CharLF || code == CharCR
}

// IsDigit checks if a character code represents a digit
func IsDigit(code int) bool {
	return code >= Char0 && code <= Char9
}

// IsAsciiLetter checks if a character code represents an ASCII letter
func IsAsciiLetter(code int) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsIdentifierStart reports whether code may start a JS identifier. Bytes of
// multi-byte UTF-8 sequences are accepted as identifier characters.
func IsIdentifierStart(code int) bool {
	return IsAsciiLetter(code) || code == CharDollar || code == CharUnderscore || code >= 0x80
}

// IsIdentifierPart reports whether code may continue a JS identifier
func IsIdentifierPart(code int) bool {
	return IsIdentifierStart(code) || IsDigit(code)
}

// IsJsxNamePart reports whether code may continue a JSX tag or attribute name,
// which additionally allows '-', '.' (member tags) and ':' (namespaced names).
func IsJsxNamePart(code int) bool {
	return IsIdentifierPart(code) || code == CharMINUS || code == CharPERIOD || code == CharCOLON
}
