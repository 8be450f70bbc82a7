package jsx_parser

import (
	"fmt"
	"strings"

	"jsx-localize/packages/localize/util"
)

// ParseTreeResult holds the parsed file and any errors
type ParseTreeResult struct {
	Root   *Code
	Errors []*util.ParseError
}

// NewParseTreeResult creates a new ParseTreeResult
func NewParseTreeResult(root *Code, errors []*util.ParseError) *ParseTreeResult {
	return &ParseTreeResult{Root: root, Errors: errors}
}

// Parser parses JS/TS source with embedded JSX into a Code tree
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// keywords after which an expression, and thus a JSX element or a regex, may start
var operatorKeywords = map[string]bool{
	"return":     true,
	"typeof":     true,
	"instanceof": true,
	"in":         true,
	"of":         true,
	"new":        true,
	"delete":     true,
	"void":       true,
	"throw":      true,
	"case":       true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"await":      true,
	"default":    true,
}

// Parse parses source. Parsing stops at the first syntax error.
func (p *Parser) Parse(source, url string) (result *ParseTreeResult) {
	file := util.NewParseSourceFile(source, url)
	s := &scanner{
		file:  file,
		input: source,
		index: util.NewLineIndex(file),
	}
	defer func() {
		if r := recover(); r != nil {
			parseErr, ok := r.(*util.ParseError)
			if !ok {
				panic(r)
			}
			result = NewParseTreeResult(nil, []*util.ParseError{parseErr})
		}
	}()
	root := s.parseCode(false)
	return NewParseTreeResult(root, nil)
}

// scanner walks the input byte by byte; multi-byte characters are only ever
// copied through, never interpreted.
type scanner struct {
	file   *util.ParseSourceFile
	input  string
	offset int
	index  *util.LineIndex
}

func (s *scanner) peek() int {
	return s.peekAt(0)
}

func (s *scanner) peekAt(delta int) int {
	pos := s.offset + delta
	if pos >= len(s.input) {
		return util.CharEOF
	}
	return int(s.input[pos])
}

func (s *scanner) atEOF() bool {
	return s.offset >= len(s.input)
}

func (s *scanner) advance() {
	if s.atEOF() {
		s.fail(s.offset, "Unexpected character \"EOF\"")
	}
	s.offset++
}

func (s *scanner) span(start int) *util.ParseSourceSpan {
	return s.index.Span(start, s.offset)
}

func (s *scanner) fail(at int, msg string) {
	panic(util.NewParseError(s.index.Span(at, at), msg))
}

func (s *scanner) expect(code int, what string) {
	if s.peek() != code {
		s.fail(s.offset, fmt.Sprintf("Unexpected character %s, expected %s", describeChar(s.peek()), what))
	}
	s.advance()
}

func describeChar(code int) string {
	if code == util.CharEOF {
		return "\"EOF\""
	}
	return fmt.Sprintf("%q", rune(code))
}

// parseCode consumes host-language source up to EOF, or up to the unbalanced
// '}' that closes the surrounding expression container when inBraces is set.
// The closing brace is left for the caller.
func (s *scanner) parseCode(inBraces bool) *Code {
	start := s.offset
	var parts []Node
	rawStart := s.offset
	flush := func() {
		if s.offset > rawStart {
			parts = append(parts, NewRaw(s.input[rawStart:s.offset], s.span(rawStart)))
		}
	}
	if !inBraces && s.offset == 0 && strings.HasPrefix(s.input, "#!") {
		s.skipLineComment()
	}
	depth := 0
	// exprEnd is set when the last significant token can end an expression,
	// in which case '<' is a comparison and '/' a division.
	exprEnd := false

	for {
		ch := s.peek()
		switch {
		case s.atEOF():
			if inBraces {
				s.fail(start, "Unterminated expression container, expected '}'")
			}
			flush()
			return NewCode(parts, s.span(start))
		case util.IsWhitespace(ch):
			s.advance()
		case ch == util.CharSLASH && s.peekAt(1) == util.CharSLASH:
			s.skipLineComment()
		case ch == util.CharSLASH && s.peekAt(1) == util.CharSTAR:
			s.skipBlockComment()
		case ch == util.CharSLASH:
			if exprEnd {
				s.advance()
				exprEnd = false
			} else {
				s.skipRegex()
				exprEnd = true
			}
		case ch == util.CharSQ || ch == util.CharDQ:
			s.skipString(ch)
			exprEnd = true
		case ch == util.CharBT:
			flush()
			parts = append(parts, s.parseTemplateLiteral()...)
			rawStart = s.offset
			exprEnd = true
		case ch == util.CharLBRACE:
			depth++
			s.advance()
			exprEnd = false
		case ch == util.CharRBRACE:
			if depth == 0 && inBraces {
				flush()
				return NewCode(parts, s.span(start))
			}
			depth--
			s.advance()
			exprEnd = false
		case ch == util.CharRPAREN || ch == util.CharRBRACKET:
			s.advance()
			exprEnd = true
		case ch == util.CharLT && !exprEnd && s.isJsxStart():
			flush()
			parts = append(parts, s.parseElement())
			rawStart = s.offset
			exprEnd = true
		case util.IsIdentifierStart(ch):
			word := s.scanWhile(util.IsIdentifierPart)
			exprEnd = !operatorKeywords[word]
		case util.IsDigit(ch):
			s.scanWhile(func(c int) bool { return util.IsIdentifierPart(c) || c == util.CharPERIOD })
			exprEnd = true
		default:
			s.advance()
			exprEnd = false
		}
	}
}

// isJsxStart checks whether the '<' under the cursor opens an element or fragment
func (s *scanner) isJsxStart() bool {
	next := s.peekAt(1)
	return next == util.CharGT || util.IsIdentifierStart(next)
}

func (s *scanner) scanWhile(pred func(int) bool) string {
	start := s.offset
	for !s.atEOF() && pred(s.peek()) {
		s.advance()
	}
	return s.input[start:s.offset]
}

func (s *scanner) skipLineComment() {
	for !s.atEOF() && !util.IsNewLine(s.peek()) {
		s.advance()
	}
}

func (s *scanner) skipBlockComment() {
	start := s.offset
	s.advance()
	s.advance()
	for {
		if s.atEOF() {
			s.fail(start, "Unterminated comment")
		}
		if s.peek() == util.CharSTAR && s.peekAt(1) == util.CharSLASH {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
}

func (s *scanner) skipString(quote int) {
	start := s.offset
	s.advance()
	for {
		ch := s.peek()
		switch {
		case s.atEOF() || util.IsNewLine(ch):
			s.fail(start, "Unterminated string literal")
		case ch == util.CharBACKSLASH:
			s.advance()
			s.advance()
		case ch == quote:
			s.advance()
			return
		default:
			s.advance()
		}
	}
}

func (s *scanner) skipRegex() {
	start := s.offset
	s.advance()
	inClass := false
	for {
		ch := s.peek()
		switch {
		case s.atEOF() || util.IsNewLine(ch):
			s.fail(start, "Unterminated regular expression")
		case ch == util.CharBACKSLASH:
			s.advance()
			s.advance()
			continue
		case ch == util.CharLBRACKET:
			inClass = true
		case ch == util.CharRBRACKET:
			inClass = false
		case ch == util.CharSLASH && !inClass:
			s.advance()
			s.scanWhile(util.IsIdentifierPart)
			return
		}
		s.advance()
	}
}

// parseTemplateLiteral consumes a template literal; JSX inside `${...}`
// substitutions surfaces as element parts.
func (s *scanner) parseTemplateLiteral() []Node {
	start := s.offset
	rawStart := s.offset
	var parts []Node
	s.advance()
	for {
		ch := s.peek()
		switch {
		case s.atEOF():
			s.fail(start, "Unterminated template literal")
		case ch == util.CharBACKSLASH:
			s.advance()
			s.advance()
		case ch == util.CharBT:
			s.advance()
			parts = append(parts, NewRaw(s.input[rawStart:s.offset], s.span(rawStart)))
			return parts
		case ch == util.CharDollar && s.peekAt(1) == util.CharLBRACE:
			s.advance()
			s.advance()
			parts = append(parts, NewRaw(s.input[rawStart:s.offset], s.span(rawStart)))
			parts = append(parts, s.parseCode(true).Parts...)
			rawStart = s.offset
			s.expect(util.CharRBRACE, "'}'")
		default:
			s.advance()
		}
	}
}

// parseElement parses an element or fragment starting at '<'
func (s *scanner) parseElement() *Element {
	start := s.offset
	s.expect(util.CharLT, "'<'")
	name := s.scanWhile(util.IsJsxNamePart)

	element := NewElement(name, nil, nil, false, nil, nil, nil)
	for {
		leadingStart := s.offset
		s.skipTrivia()
		leading := s.input[leadingStart:s.offset]
		ch := s.peek()
		switch {
		case ch == util.CharSLASH && s.peekAt(1) == util.CharGT:
			if name == "" {
				s.fail(s.offset, "Fragments cannot be self-closing")
			}
			element.OpenTrail = leading
			s.advance()
			s.advance()
			element.IsSelfClosing = true
			element.StartSourceSpan = s.span(start)
			element.sourceSpan = element.StartSourceSpan
			return element
		case ch == util.CharGT:
			element.OpenTrail = leading
			s.advance()
			element.StartSourceSpan = s.span(start)
			element.Children = s.parseChildren(element)
			element.sourceSpan = s.span(start)
			return element
		case name == "":
			s.fail(s.offset, "Unexpected attribute on a fragment")
		default:
			attr := s.parseAttribute()
			attr.Leading = leading
			element.Attrs = append(element.Attrs, attr)
		}
	}
}

// skipTrivia skips whitespace and comments between JSX tokens
func (s *scanner) skipTrivia() {
	for {
		ch := s.peek()
		switch {
		case util.IsWhitespace(ch):
			s.advance()
		case ch == util.CharSLASH && s.peekAt(1) == util.CharSLASH:
			s.skipLineComment()
		case ch == util.CharSLASH && s.peekAt(1) == util.CharSTAR:
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *scanner) parseAttribute() *Attribute {
	start := s.offset
	if s.peek() == util.CharLBRACE {
		container := s.parseExpressionContainer()
		attr := NewAttribute("", AttrSpread, s.span(start))
		attr.Expression = container
		return attr
	}

	name := s.scanWhile(util.IsJsxNamePart)
	if name == "" {
		s.fail(s.offset, fmt.Sprintf("Unexpected character %s in tag", describeChar(s.peek())))
	}
	nameEnd := s.offset
	s.skipTrivia()
	if s.peek() != util.CharEQ {
		s.offset = nameEnd
		return NewAttribute(name, AttrBoolean, s.span(start))
	}
	s.advance()
	s.skipTrivia()
	assign := s.input[nameEnd:s.offset]

	var attr *Attribute
	switch ch := s.peek(); {
	case ch == util.CharDQ || ch == util.CharSQ:
		valueStart := s.offset + 1
		s.advance()
		for s.peek() != ch {
			if s.atEOF() {
				s.fail(valueStart-1, "Unterminated attribute value")
			}
			s.advance()
		}
		value := s.input[valueStart:s.offset]
		s.advance()
		attr = NewAttribute(name, AttrString, s.span(start))
		attr.Value = value
		attr.Quote = byte(ch)
	case ch == util.CharLBRACE:
		container := s.parseExpressionContainer()
		attr = NewAttribute(name, AttrExpression, s.span(start))
		attr.Expression = container
	case ch == util.CharLT && s.isJsxStart():
		element := s.parseElement()
		attr = NewAttribute(name, AttrElement, s.span(start))
		attr.Element = element
	default:
		s.fail(s.offset, fmt.Sprintf("Unexpected character %s, expected an attribute value", describeChar(ch)))
	}
	attr.Assign = assign
	return attr
}

func (s *scanner) parseExpressionContainer() *ExpressionContainer {
	start := s.offset
	s.expect(util.CharLBRACE, "'{'")
	code := s.parseCode(true)
	s.expect(util.CharRBRACE, "'}'")
	return NewExpressionContainer(code, s.span(start))
}

func (s *scanner) parseChildren(parent *Element) []Node {
	var children []Node
	for {
		start := s.offset
		ch := s.peek()
		switch {
		case s.atEOF():
			s.fail(parent.StartSourceSpan.Start.Offset, fmt.Sprintf("Unclosed element %s", describeTag(parent.Name)))
		case ch == util.CharLT && s.peekAt(1) == util.CharSLASH:
			s.parseClosingTag(parent)
			return children
		case ch == util.CharLT:
			children = append(children, s.parseElement())
		case ch == util.CharLBRACE:
			children = append(children, s.parseExpressionContainer())
		default:
			for !s.atEOF() && s.peek() != util.CharLT && s.peek() != util.CharLBRACE {
				s.advance()
			}
			children = append(children, NewText(s.input[start:s.offset], s.span(start)))
		}
	}
}

func (s *scanner) parseClosingTag(parent *Element) {
	start := s.offset
	s.advance()
	s.advance()
	s.skipTrivia()
	name := s.scanWhile(util.IsJsxNamePart)
	s.skipTrivia()
	if name != parent.Name {
		s.fail(start, fmt.Sprintf("Unexpected closing tag %s, expected %s", describeTag(name), describeTag(parent.Name)))
	}
	s.expect(util.CharGT, "'>'")
	parent.CloseTag = s.input[start:s.offset]
	parent.EndSourceSpan = s.span(start)
}

func describeTag(name string) string {
	if name == "" {
		return "fragment"
	}
	return "'" + name + "'"
}

// isTrivia reports whether value is only whitespace and comments
func isTrivia(value string) bool {
	return SkipTrivia(value, 0) == len(value)
}

// SkipTrivia returns the offset of the first byte at or after pos that is
// neither whitespace nor part of a comment. An unterminated block comment
// is not trivia.
func SkipTrivia(value string, pos int) int {
	for pos < len(value) {
		switch {
		case util.IsWhitespace(int(value[pos])):
			pos++
		case strings.HasPrefix(value[pos:], "//"):
			end := strings.IndexByte(value[pos:], '\n')
			if end < 0 {
				return len(value)
			}
			pos += end
		case strings.HasPrefix(value[pos:], "/*"):
			end := strings.Index(value[pos+2:], "*/")
			if end < 0 {
				return pos
			}
			pos += end + 4
		default:
			return pos
		}
	}
	return pos
}

func containsNewLine(value string) bool {
	return strings.ContainsAny(value, "\r\n")
}
