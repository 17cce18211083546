package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindhiveoy/pyopenapi-gen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "pyopenapi-gen",
		Short: "Generate Python models from OpenAPI specs",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var p cli.GenerateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve schemas and emit models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(p)
		},
	}

	cmd.Flags().StringVarP(&p.ConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&p.Spec, "spec", "i", "", "OpenAPI spec file")
	cmd.Flags().StringVarP(&p.OutDir, "out", "o", "", "Output directory")
	cmd.Flags().StringVar(&p.PackageName, "package-name", "", "Python package name")
	cmd.Flags().IntVar(&p.MaxDepth, "max-depth", 0, "Maximum schema recursion depth (0 = default)")
	cmd.Flags().StringVar(&p.CycleStrategy, "cycle-strategy", "", "Cycle handling strategy")
	cmd.Flags().IntVar(&p.MaxCycles, "max-cycles", 0, "Abort past this many cycles (0 = unlimited)")
	cmd.Flags().BoolVarP(&p.Verbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <spec>",
		Short: "Validate an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(args[0])
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	var p cli.ParserParams
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze <spec>",
		Short: "Report reference cycles in a spec's schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunAnalyze(args[0], p, verbose, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&p.MaxDepth, "max-depth", 0, "Maximum schema recursion depth (0 = default)")
	cmd.Flags().StringVar(&p.CycleStrategy, "cycle-strategy", "", "Cycle handling strategy")
	cmd.Flags().IntVar(&p.MaxCycles, "max-cycles", 0, "Abort past this many cycles (0 = unlimited)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	return cmd
}
