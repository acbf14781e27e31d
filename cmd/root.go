package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toby1364/vm64asm/internal/assemble"
	"github.com/toby1364/vm64asm/internal/cfgfile"
	"github.com/toby1364/vm64asm/internal/diagnostics"
)

var rootCmd = &cobra.Command{
	Use:   "vm64asm",
	Short: "vm64asm assembles programs for the custom vm64 virtual machine",
	Long:  `vm64asm is a two-pass assembler: it classifies operands, encodes instructions, then links labels and data pointers into a final binary image.`,
	RunE:  runAssemble,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("input", "i", "", "input folder to recursively search for .asm source files")
	flags.StringP("output", "o", "", "output binary file path")
	flags.StringP("cfg", "c", "", "config file merging additional -i/-o/-inter/-align flags")
	flags.StringP("inter", "n", "", "write an annotated intermediate listing to this path")
	flags.String("align", "", "base address, as a hex literal, for the first emitted byte")
}

func runAssemble(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	cfgPath, _ := flags.GetString("cfg")
	inter, _ := flags.GetString("inter")
	align, _ := flags.GetString("align")

	cli := cfgfile.Flags{}
	if input != "" {
		cli.Input = &input
	}
	if output != "" {
		cli.Output = &output
	}
	if cfgPath != "" {
		cli.Cfg = &cfgPath
	}
	if inter != "" {
		cli.Inter = &inter
	}
	if align != "" {
		cli.Align = &align
	}

	opts, err := assemble.ResolveOptions(cli)
	if err != nil {
		return err
	}

	diags := diagnostics.New()
	result := assemble.Run(opts, diags)

	for _, e := range diags.Entries() {
		fmt.Fprintln(cmd.ErrOrStderr(), e.String())
	}
	if diags.HasErrors() {
		return fmt.Errorf("assembly failed with %d diagnostic(s)", diags.Count())
	}

	return assemble.Write(opts, result)
}
