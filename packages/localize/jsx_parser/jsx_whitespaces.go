package jsx_parser

import (
	"strings"

	"jsx-localize/packages/localize/util"
)

// NormalizeText collapses a literal JSX text run the way JSX line layout does:
//
//   - tabs count as spaces;
//   - every line but the first loses its leading spaces, every line but the
//     last its trailing spaces;
//   - remaining runs of spaces collapse to one;
//   - lines left empty are dropped and the survivors are joined by one space.
//
// A run made only of whitespace normalizes to "".
func NormalizeText(value string) string {
	lines := splitLines(value)
	last := len(lines) - 1

	var b strings.Builder
	wrote := false
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		if i > 0 {
			line = strings.TrimLeft(line, " ")
		}
		if i < last {
			line = strings.TrimRight(line, " ")
		}
		line = collapseSpaces(line)
		if line == "" {
			continue
		}
		if wrote {
			b.WriteByte(' ')
		}
		b.WriteString(line)
		wrote = true
	}
	return b.String()
}

func splitLines(value string) []string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")
	return strings.Split(value, "\n")
}

func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	prevSpace := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if util.IsHorizontalSpace(int(ch)) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteByte(ch)
	}
	return b.String()
}
