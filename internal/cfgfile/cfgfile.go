// Package cfgfile implements the "-cfg" flag-merge file: a small text file
// holding "-i/-o/-inter/-align" flags (single-dash spellings only, unlike the
// command line's "--inter"/"--align"), tokenized by Tokenize, whose values
// layer onto (rather than blindly replace) the flags already resolved from
// argv.
package cfgfile

import "strings"

// Flags mirrors the five command-line flags. A nil field means "not
// specified".
type Flags struct {
	Input  *string
	Output *string
	Cfg    *string
	Inter  *string
	Align  *string
}

// ResolveArgs scans tokens for "-i", "-o", "-cfg", "-inter", "-align"
// flags, each followed by its value, the way the reference's resolve_args
// does.
func ResolveArgs(tokens []string) Flags {
	var f Flags
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "-i":
			if i+1 < len(tokens) {
				v := tokens[i+1]
				f.Input = &v
				i++
			}
		case "-o":
			if i+1 < len(tokens) {
				v := tokens[i+1]
				f.Output = &v
				i++
			}
		case "-cfg":
			if i+1 < len(tokens) {
				v := tokens[i+1]
				f.Cfg = &v
				i++
			}
		case "-inter":
			if i+1 < len(tokens) {
				v := tokens[i+1]
				f.Inter = &v
				i++
			}
		case "-align":
			if i+1 < len(tokens) {
				v := tokens[i+1]
				f.Align = &v
				i++
			}
		}
	}
	return f
}

// Tokenize applies the cfg file's textual normalization chain (newlines to
// spaces, underscores and carriage returns stripped, comma separators
// normalized, runs of spaces collapsed) and splits on spaces.
func Tokenize(contents string) []string {
	text := strings.ReplaceAll(contents, "\n", " ")
	text = strings.ReplaceAll(text, "_", "")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "  ", " ")
	text = strings.ReplaceAll(text, ", ", " ")
	text = strings.ReplaceAll(text, ",", " ")

	var out []string
	for _, tok := range strings.Split(text, " ") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Merge layers cfg's fields onto base: a field from cfg only takes effect
// when cfg specifies it, so a flag the config file is silent on keeps
// whatever value the command line already gave it.
func Merge(base, cfg Flags) Flags {
	merged := base
	if cfg.Input != nil {
		merged.Input = cfg.Input
	}
	if cfg.Output != nil {
		merged.Output = cfg.Output
	}
	if cfg.Inter != nil {
		merged.Inter = cfg.Inter
	}
	if cfg.Align != nil {
		merged.Align = cfg.Align
	}
	return merged
}
