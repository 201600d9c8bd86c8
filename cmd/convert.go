// Package cmd — convert command.
// Runs the conversion engine on a single HTML file:
// extract → textify, optionally through a preview renderer.
package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/newsmail/core"
	"github.com/gaurav-prasanna/newsmail/core/extract"
	"github.com/gaurav-prasanna/newsmail/core/format"
	"github.com/gaurav-prasanna/newsmail/core/render"
	"github.com/gaurav-prasanna/newsmail/core/textify"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagInlineRefs bool
	flagMarkdown   bool
	flagPDF        bool
	flagOutput     string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.html>",
	Short: "Convert one HTML page to announcement text",
	Long: `Convert reads a built news page, extracts its body, and renders the
plain text that would go into the text/plain part of the announcement.

Examples:
  newsmail convert news/release.html
  newsmail convert news/release.html --inline-refs
  newsmail convert news/release.html --pdf -o archive/release.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagInlineRefs, "inline-refs", false,
		"Emit each link reference beneath the line that introduces it instead of at the end")

	// Preview formats (mutually exclusive; default is the mailed plain text).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Preview as Markdown")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Preview as an archival PDF")

	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if flagMarkdown && flagPDF {
		return fmt.Errorf("--markdown and --pdf are mutually exclusive")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	title, body, err := extract.New().Extract(string(raw))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	converter := newConverter()
	text, err := converter.Convert(body)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	data := []byte(text)
	if renderer := selectRenderer(); renderer != nil {
		a := core.Announcement{
			Page: core.Page{Path: args[0], Title: title, HTML: body},
			Text: text,
		}
		data, err = renderer.Render(a)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	if flagOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagOutput, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", flagOutput)
	return nil
}

// newConverter builds the core converter honoring the anchor flag.
func newConverter() core.Converter {
	opts := textify.Options{Anchors: format.EndOfDocument}
	if flagInlineRefs {
		opts.Anchors = format.AfterFirstUse
	}
	return textify.New(opts)
}

// selectRenderer returns the preview renderer, or nil for the plain
// mailed text.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	default:
		return nil
	}
}
