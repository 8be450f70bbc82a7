package jsx_parser_test

import (
	"testing"

	"jsx-localize/packages/localize/jsx_parser"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Hello world!", "Hello world!"},
		{"interior spaces collapse", "Hello    world!", "Hello world!"},
		{"same-line edges keep one space", "   Hello world!   ", " Hello world! "},
		{"tabs count as spaces", "Hello\t\tworld", "Hello world"},
		{"text on its own line", "\n    Hello world!\n  ", "Hello world!"},
		{"newline becomes a space", "\n    Hello\n    world!\n  ", "Hello world!"},
		{"blank lines vanish", "\n\n\n    Hello\n\n\n    world!\n\n\n  ", "Hello world!"},
		{"whitespace only", "  \n   \n   \n    \n  ", ""},
		{"single space", " ", " "},
		{"trailing text keeps leading space", "   !!!!!\n\n\n    ", " !!!!!"},
		{"leading text keeps trailing space", "\n   Hello     ", "Hello "},
		{"carriage returns", "Hello\r\n  world\r!", "Hello world !"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jsx_parser.NormalizeText(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if again := jsx_parser.NormalizeText(got); again != got {
				t.Errorf("NormalizeText is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
