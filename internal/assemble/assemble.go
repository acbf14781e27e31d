// Package assemble wires source discovery, preprocessing, operand
// classification, instruction encoding, and layout/linking into the
// end-to-end pipeline the CLI drives.
package assemble

import (
	"fmt"
	"os"
	"strconv"

	"github.com/toby1364/vm64asm/internal/cfgfile"
	"github.com/toby1364/vm64asm/internal/diagnostics"
	"github.com/toby1364/vm64asm/internal/layout"
	"github.com/toby1364/vm64asm/internal/pixelsource"
	"github.com/toby1364/vm64asm/internal/sourceprep"
)

// Options collects the resolved command-line/config-file flags.
type Options struct {
	InputPath  string
	OutputPath string
	InterPath  string // empty means no listing is written.
	Align      uint64
}

// ResolveOptions merges CLI flags with an optional -cfg file's flags
// (cfg values only override fields the file actually specifies) and
// parses the alignment hex literal.
func ResolveOptions(cli cfgfile.Flags) (Options, error) {
	merged := cli
	if cli.Cfg != nil {
		contents, err := os.ReadFile(*cli.Cfg)
		if err != nil {
			return Options{}, fmt.Errorf("unable to read config file: %w", err)
		}
		fromCfg := cfgfile.ResolveArgs(cfgfile.Tokenize(string(contents)))
		merged = cfgfile.Merge(cli, fromCfg)
	}

	if merged.Input == nil {
		return Options{}, fmt.Errorf("input path must be specified")
	}
	if merged.Output == nil {
		return Options{}, fmt.Errorf("output path must be specified")
	}

	var align uint64
	if merged.Align != nil {
		v, err := strconv.ParseUint(*merged.Align, 16, 64)
		if err != nil {
			return Options{}, fmt.Errorf("invalid hex literal for alignment: %w", err)
		}
		align = v
	}

	opts := Options{InputPath: *merged.Input, OutputPath: *merged.Output, Align: align}
	if merged.Inter != nil {
		opts.InterPath = *merged.Inter
	}
	return opts, nil
}

// Result is the outcome of a successful end-to-end assembly run.
type Result struct {
	Image   []byte
	Listing string // empty unless Options.InterPath was set.
}

// Run executes the full pipeline: discover every ".asm" file under
// opts.InputPath, preprocess and encode every line, link and back-patch,
// and optionally render the annotated listing. Any diagnostic recorded
// during the run means the returned Result is not meaningful — callers
// should check diags.HasErrors() first.
func Run(opts Options, diags *diagnostics.Bag) Result {
	files, err := DiscoverFiles(opts.InputPath)
	if err != nil {
		diags.IO(diagnostics.Loc(opts.InputPath, 0), err.Error())
		return Result{}
	}

	var prepped []sourceprep.Line
	for _, path := range files {
		contents, err := os.ReadFile(path)
		if err != nil {
			diags.IO(diagnostics.Loc(path, 0), err.Error())
			continue
		}
		prepped = append(prepped, sourceprep.Transform(path, string(contents))...)
	}

	lines := BuildLines(prepped, diags)

	collab := layout.Collaborators{
		DecodeImage: pixelsource.Decode,
		ReadBytes:   os.ReadFile,
	}
	image := layout.Link(&lines, opts.InputPath, opts.Align, collab, diags)

	result := Result{Image: image}
	if opts.InterPath != "" {
		result.Listing = layout.Listing(lines, opts.Align)
	}
	return result
}

// Write persists the assembled image and, if requested, the listing.
func Write(opts Options, result Result) error {
	if err := os.WriteFile(opts.OutputPath, result.Image, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if opts.InterPath != "" {
		if err := os.WriteFile(opts.InterPath, []byte(result.Listing), 0o644); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
