package jsx_parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsx-localize/packages/localize/jsx_parser"
)

func parse(t *testing.T, source string) *jsx_parser.Code {
	t.Helper()
	result := jsx_parser.NewParser().Parse(source, "test.tsx")
	if len(result.Errors) > 0 {
		t.Fatalf("Parse(%q) failed: %v", source, result.Errors[0])
	}
	return result.Root
}

func elements(code *jsx_parser.Code) []*jsx_parser.Element {
	var result []*jsx_parser.Element
	for _, part := range code.Parts {
		if element, ok := part.(*jsx_parser.Element); ok {
			result = append(result, element)
		}
	}
	return result
}

func TestPrintRoundTrip(t *testing.T) {
	sources := map[string]string{
		"plain code":                    "const a = 1;\nconst b = a < 2 ? 'x' : \"y\";\n",
		"comparison":                    "if (a<b && c > d) { return a<b; }",
		"self-closing":                  "const el = <img src=\"a.png\" alt='b' />;",
		"nested elements":               "const el = <div className=\"x\">\n  <span>Hello</span> {name}!\n</div>;",
		"fragment":                      "const el = <><b>one</b><i>two</i></>;",
		"spread and boolean attributes": "const el = <input {...props} disabled\n  value={v} />;",
		"attribute element":             "const el = <Slot fallback=<b>x</b> />;",
		"arrow":                         "const Greeting = () => <span>Hello</span>;",
		"comments":                      "// <div>not jsx</div>\n/* <b> */ const x = <p>{/* c */}</p>;",
		"regex":                         "const re = /<div>/g; const el = <p>ok</p>;",
		"division":                      "const half = total / 2 / count;",
		"template literal":              "const s = `a ${<b>x</b>} c ${`nested ${y}`}`;",
		"strings with tags":             "const s = '<div>'; const t = \"</div>\";",
		"member tag":                    "const el = <Foo.Bar baz:qux=\"1\" data-x='2'>text</Foo.Bar>;",
		"expression with braces":        "const el = <p style={{ color: 'red' }}>{items.map((i) => <li key={i}>{i}</li>)}</p>;",
		"return":                        "function f() {\n  return <div i18n>Hi</div>;\n}\n",
		"shebang":                       "#!/usr/bin/env node\nconst el = <p>x</p>;\n",
		"multi-byte text":               "const el = <p>👋 héllo</p>;",
		"comment in tag":                "const el = <p /* c */ a=\"1\" // d\n>x</p>;",
		"spaced closing tag":            "const el = <p>x</ p >;",
	}

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			got := jsx_parser.Print(parse(t, source))
			if diff := cmp.Diff(source, got); diff != "" {
				t.Errorf("Print(Parse()) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	t.Run("should parse attributes by kind", func(t *testing.T) {
		root := parse(t, `<img {...p} alt="a" hidden src={url} slot=<b/> />`)
		els := elements(root)
		if len(els) != 1 {
			t.Fatalf("got %d elements, want 1", len(els))
		}
		var kinds []string
		for _, attr := range els[0].Attrs {
			kinds = append(kinds, attr.Kind.String())
		}
		expected := []string{"JSXSpreadAttribute", "StringLiteral", "BooleanAttribute", "JSXExpressionContainer", "JSXElement"}
		if diff := cmp.Diff(expected, kinds); diff != "" {
			t.Errorf("attribute kinds mismatch (-want +got):\n%s", diff)
		}
		if alt := els[0].Attr("alt"); alt == nil || alt.Value != "a" || alt.Quote != '"' {
			t.Errorf("Attr(\"alt\") = %+v", alt)
		}
		if !els[0].IsSelfClosing {
			t.Errorf("expected a self-closing element")
		}
	})

	t.Run("should parse children in order", func(t *testing.T) {
		root := parse(t, `<div>Hello <b>x</b>{name}</div>`)
		div := elements(root)[0]
		var got []string
		for _, child := range div.Children {
			switch child := child.(type) {
			case *jsx_parser.Text:
				got = append(got, "text:"+child.Value)
			case *jsx_parser.Element:
				got = append(got, "element:"+child.Name)
			case *jsx_parser.ExpressionContainer:
				got = append(got, "expr:"+jsx_parser.Print(child.Expression))
			}
		}
		expected := []string{"text:Hello ", "element:b", "expr:name"}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("children mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should surface JSX inside expressions", func(t *testing.T) {
		root := parse(t, `<div>{ok ? <b>yes</b> : 'no'}</div>`)
		container := elements(root)[0].Children[0].(*jsx_parser.ExpressionContainer)
		if n := len(elements(container.Expression)); n != 1 {
			t.Errorf("got %d elements in expression, want 1", n)
		}
	})

	t.Run("should not treat comparisons as JSX", func(t *testing.T) {
		root := parse(t, `const x = a < b; const y = f(a)<c; const z = arr[0]<d;`)
		if n := len(elements(root)); n != 0 {
			t.Errorf("got %d elements, want 0", n)
		}
	})

	t.Run("should report empty expressions", func(t *testing.T) {
		root := parse(t, `<p>{}{ /* c */ }{ x }</p>`)
		p := elements(root)[0]
		var empty []bool
		for _, child := range p.Children {
			empty = append(empty, child.(*jsx_parser.ExpressionContainer).Expression.IsEmpty())
		}
		if diff := cmp.Diff([]bool{true, true, false}, empty); diff != "" {
			t.Errorf("IsEmpty mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		msg    string
	}{
		{"unclosed element", "const x = <div>text", "Unclosed element 'div'"},
		{"mismatched closing tag", "<div></span>", "Unexpected closing tag 'span', expected 'div'"},
		{"unterminated expression", "<div>{name", "Unterminated expression container, expected '}'"},
		{"unterminated regex", "const r = /abc", "Unterminated regular expression"},
		{"unterminated string", "const s = 'abc\n", "Unterminated string literal"},
		{"unterminated template", "const s = `abc", "Unterminated template literal"},
		{"unterminated attribute", `<a href="x`, "Unterminated attribute value"},
		{"unclosed fragment", "<>text", "Unclosed element fragment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := jsx_parser.NewParser().Parse(tt.source, "test.tsx")
			if len(result.Errors) == 0 {
				t.Fatalf("Parse(%q) succeeded, want error %q", tt.source, tt.msg)
			}
			if got := result.Errors[0].Msg; !strings.Contains(got, tt.msg) {
				t.Errorf("error = %q, want it to contain %q", got, tt.msg)
			}
			if result.Errors[0].Span == nil {
				t.Errorf("error has no span")
			}
		})
	}
}

func TestSetChildren(t *testing.T) {
	t.Run("should open a self-closing element", func(t *testing.T) {
		root := parse(t, `<p a="1" />`)
		p := elements(root)[0]
		p.SetChildren([]jsx_parser.Node{jsx_parser.NewText("x", nil)})
		if got := jsx_parser.Print(root); got != `<p a="1">x</p>` {
			t.Errorf("Print() = %q", got)
		}
	})

	t.Run("should keep a multi-line open tag layout", func(t *testing.T) {
		root := parse(t, "<p\n  a=\"1\"\n/>")
		p := elements(root)[0]
		p.SetChildren([]jsx_parser.Node{jsx_parser.NewText("x", nil)})
		if got := jsx_parser.Print(root); got != "<p\n  a=\"1\"\n>x</p>" {
			t.Errorf("Print() = %q", got)
		}
	})

	t.Run("should strip children of a copy only", func(t *testing.T) {
		root := parse(t, `<b kind="wild">text</b>`)
		b := elements(root)[0]
		if got := jsx_parser.Print(b.WithoutChildren()); got != `<b kind="wild"></b>` {
			t.Errorf("Print(WithoutChildren()) = %q", got)
		}
		if len(b.Children) != 1 {
			t.Errorf("WithoutChildren mutated the element")
		}
	})
}
