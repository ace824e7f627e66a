/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/masnyjimmy/specdoc/src/render"
	"github.com/spf13/cobra"
)

const (
	DefaultOutput         = "api-documentation.html"
	DefaultMarkdownOutput = "api-documentation.md"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type GenerateOptions struct {
	// Format is FormatHTML or FormatMarkdown.
	Format string
	Render render.Options
}

var (
	flagFormat        string
	flagNoRequestBody bool
	flagNoInfo        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <input> [output]",
	Short: "Generate an HTML documentation page from a document",
	Long: `Generate reads an OpenAPI 3.x or Swagger 2.0 document and writes a single
self-contained HTML page. Files ending in .json are read as JSON, anything
else as YAML. The page is written to api-documentation.html unless an output
path is given.

Examples:
  specdoc generate openapi.yaml
  specdoc generate swagger.json docs/index.html
  specdoc generate openapi.yaml --format markdown`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&flagFormat, "format", FormatHTML, "Output format: html or markdown")
	generateCmd.Flags().BoolVar(&flagNoRequestBody, "no-request-body", false, "Leave request bodies out of the page")
	generateCmd.Flags().BoolVar(&flagNoInfo, "no-info", false, "Leave the contact and license block out of the page")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opt := GenerateOptions{
		Format: flagFormat,
		Render: render.Options{
			OmitRequestBody: flagNoRequestBody,
			OmitInfo:        flagNoInfo,
		},
	}

	if opt.Format != FormatHTML && opt.Format != FormatMarkdown {
		return fmt.Errorf("unknown format %q, use %v or %v", opt.Format, FormatHTML, FormatMarkdown)
	}

	output := DefaultOutput
	if opt.Format == FormatMarkdown {
		output = DefaultMarkdownOutput
	}
	if len(args) > 1 {
		output = args[1]
	}

	if res := GenerateFile(output, args[0], opt); res != 0 {
		os.Exit(res)
	}

	return nil
}

func GenerateFile(output, input string, opt GenerateOptions) int {
	document, res := readDocument(input)

	if res != 0 {
		return res
	}

	log.Printf("Rendering %v..", opt.Format)

	var page string
	var err error

	switch opt.Format {
	case FormatMarkdown:
		page, err = render.RenderMarkdown(document, opt.Render)
	default:
		page, err = render.Render(document, opt.Render)
	}

	if err != nil {
		errorLogger.Printf("Unable to render documentation: %v", err)
		return exitRender
	}

	return writeOutput(output, []byte(page))
}
