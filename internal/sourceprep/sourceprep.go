// Package sourceprep implements the whole-file textual transform chain
// that runs before any line is classified: stripping carriage returns,
// joining backslash-continued lines, normalizing comma separators,
// collapsing runs of spaces, rewriting "0x" hex prefixes to "&", and
// removing ";" line comments.
package sourceprep

import "strings"

// Line is one preprocessed source line: its origin file, its 1-based line
// number in the post-transform text, its head token (mnemonic, a label
// ending in ':', or a directive beginning with '#'), and its remaining
// whitespace-separated operand tokens.
type Line struct {
	FilePath string
	Number   int
	Head     string
	Operands []string
}

// Transform runs the full textual pipeline over one file's raw contents and
// splits the result into non-empty, tokenized lines. The reference
// implementation indexes lines directly in the post-transform text — no
// line-number remapping back to the original file is performed, and this
// function preserves that behavior.
func Transform(filePath string, raw string) []Line {
	text := strings.ReplaceAll(raw, "\r", "")
	text = strings.ReplaceAll(text, "\\\n", " ")
	text = strings.ReplaceAll(text, ", ", " ")
	text = strings.ReplaceAll(text, ",", " ")
	for i := 0; i < 4; i++ {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	text = strings.ReplaceAll(text, "0x", "&")
	text = strings.TrimSpace(text)
	text = stripComments(text)

	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, rl := range rawLines {
		rl = strings.TrimSpace(rl)
		if rl == "" {
			continue
		}
		parts := strings.Split(rl, " ")
		lines = append(lines, Line{
			FilePath: filePath,
			Number:   i + 1,
			Head:     parts[0],
			Operands: parts[1:],
		})
	}
	return lines
}

// stripComments removes everything from any ';' to the end of its
// line, char by char — matching the reference's linear scan rather than a
// regex, since ';' inside a would-be line comment must not affect lines
// before or after it.
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	comment := false
	for _, c := range text {
		if c == ';' {
			comment = true
		}
		if c == '\n' {
			comment = false
		}
		if !comment {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// IsLabel reports whether a head token declares a label ("name:").
func IsLabel(head string) bool { return strings.HasSuffix(head, ":") }

// LabelName strips the trailing colon from a label head token.
func LabelName(head string) string { return strings.TrimSuffix(head, ":") }

// IsDirective reports whether a head token is a '#'-prefixed directive.
func IsDirective(head string) bool { return strings.HasPrefix(head, "#") }

// DirectiveName returns the directive name with its '#' prefix stripped,
// lowercased for case-insensitive matching.
func DirectiveName(head string) string {
	return strings.ToLower(strings.TrimPrefix(head, "#"))
}
