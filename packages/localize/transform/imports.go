package transform

import (
	"fmt"
	"regexp"
	"strings"

	"jsx-localize/packages/localize/jsx_parser"
	"jsx-localize/packages/localize/util"
)

type importSpec struct {
	module string
	name   string
}

// importTracker collects the named imports the emitted code depends on.
// It lives for one file.
type importTracker struct {
	seen      map[importSpec]bool
	requested []importSpec
}

func newImportTracker() *importTracker {
	return &importTracker{seen: make(map[importSpec]bool)}
}

func (t *importTracker) require(module, name string) {
	spec := importSpec{module: module, name: name}
	if t.seen[spec] {
		return
	}
	t.seen[spec] = true
	t.requested = append(t.requested, spec)
}

var (
	shebangRegexp     = regexp.MustCompile(`^#![^\n]*\n`)
	directiveRegexp   = regexp.MustCompile(`^(?:"use [^"\n]*"|'use [^'\n]*')[ \t]*;?[ \t]*(?:\r?\n|$)`)
	namedImportRegexp = regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*(?:"([^"\n]*)"|'([^'\n]*)')`)
)

// apply inserts the requested imports that code does not already have
// before its first statement, and reports whether anything was inserted.
func (t *importTracker) apply(code string) (string, bool) {
	var statements []string
	for _, spec := range t.requested {
		if !hasNamedImport(code, spec) {
			statements = append(statements, fmt.Sprintf("import { %s } from %q;", spec.name, spec.module))
		}
	}
	if len(statements) == 0 {
		return code, false
	}

	pos := 0
	if loc := shebangRegexp.FindStringIndex(code); loc != nil {
		pos = loc[1]
	}
	for {
		pos = jsx_parser.SkipTrivia(code, pos)
		loc := directiveRegexp.FindStringIndex(code[pos:])
		if loc == nil {
			break
		}
		pos += loc[1]
	}

	indent := util.Indentation(code, pos)
	var b strings.Builder
	b.WriteString(code[:pos])
	for _, statement := range statements {
		b.WriteString(statement)
		b.WriteString("\n")
		b.WriteString(indent)
	}
	b.WriteString(code[pos:])
	return b.String(), true
}

// hasNamedImport reports whether code already binds spec.name from
// spec.module, either as `{ name }` or `{ other as name }`.
func hasNamedImport(code string, spec importSpec) bool {
	for _, match := range namedImportRegexp.FindAllStringSubmatch(code, -1) {
		if match[2]+match[3] != spec.module {
			continue
		}
		for _, specifier := range strings.Split(match[1], ",") {
			if localName(specifier) == spec.name {
				return true
			}
		}
	}
	return false
}

// localName returns the identifier an import specifier binds
func localName(specifier string) string {
	fields := strings.Fields(specifier)
	if len(fields) > 0 && fields[0] == "type" {
		// type-only imports bind nothing at runtime
		return ""
	}
	switch {
	case len(fields) == 1:
		return fields[0]
	case len(fields) == 3 && fields[1] == "as":
		return fields[2]
	}
	return ""
}
