// Command subscript compiles a Subscript source file to a single HTML
// file. It is the CLI collaborator §6 describes: a thin wrapper over the
// core's Compile entry point plus the serializer and template in this
// package.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/subscript-lang/subscript"
	"github.com/subscript-lang/subscript/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "subscript: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var sourcePath, outputPath string

	compileCmd := &cobra.Command{
		Use:           "compile",
		Short:         "Compile a Subscript source file to HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = defaultOutputPath(sourcePath)
			}
			return runCompile(sourcePath, outputPath)
		},
	}
	compileCmd.Flags().StringVar(&sourcePath, "source", "", "path to the Subscript source file (required)")
	compileCmd.Flags().StringVar(&outputPath, "output", "", "path to write the compiled HTML file (defaults to --source with a .html extension)")
	_ = compileCmd.MarkFlagRequired("source")

	root := &cobra.Command{
		Use:           "subscript",
		Short:         "Subscript markup compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(compileCmd)
	return root
}

func defaultOutputPath(sourcePath string) string {
	if ext := lastExt(sourcePath); ext != "" {
		return strings.TrimSuffix(sourcePath, ext) + ".html"
	}
	return sourcePath + ".html"
}

func lastExt(path string) string {
	dot := strings.LastIndexByte(path, '.')
	slash := strings.LastIndexByte(path, '/')
	if dot <= slash {
		return ""
	}
	return path[dot:]
}

func runCompile(sourcePath, outputPath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourcePath, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s is not valid UTF-8", sourcePath)
	}

	doc := subscript.Compile(string(data), config.Default())

	tocFragment := serializeTag(doc.TOCTree)
	bodyFragment := serializeAll(doc.BodyTree)

	page, err := renderPage(tocFragment, bodyFragment)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
