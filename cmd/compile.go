/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/masnyjimmy/specdoc/src/compilation"
	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/spf13/cobra"
)

// Exit codes shared by the file commands, one per pipeline stage.
const (
	exitRead = iota + 1
	exitParse
	exitNormalize
	exitRender
	exitWrite
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:     "normalize",
	Aliases: []string{"compile"},
	Short:   "Write the normalized form of a document as JSON or YAML",
	Long: `Normalize reads an OpenAPI or Swagger document, checks that it has a version,
an info object and paths, and writes the normalized document. The output
extension selects the encoding: .json writes JSON, anything else YAML.

Normalizing an already normalized document gives the same document back.`,
	Run: func(cmd *cobra.Command, args []string) {

		output, _ := cmd.Flags().GetString("output")
		input, _ := cmd.Flags().GetString("input")

		if res := CompileFile(output, input); res != 0 {
			os.Exit(res)
		}
	},
}

var errorLogger *log.Logger = log.New(os.Stderr, "Error ", log.Ltime)

// readDocument loads and normalizes input, logging failures. A non-zero
// code is the exit code of the failed stage.
func readDocument(input string) (*compilation.Document, int) {
	log.Printf("Reading %v", input)

	bytes, err := os.ReadFile(input)

	if err != nil {
		errorLogger.Printf("Unable to read file \"%v\": %v", input, err)
		return nil, exitRead
	}

	log.Printf("Normalizing %v document..", docs.FormatFromPath(input))

	document, err := compilation.NormalizeBytes(bytes, docs.FormatFromPath(input))

	if errors.Is(err, docs.ErrParse) {
		errorLogger.Print(err)
		return nil, exitParse
	}

	if err != nil {
		errorLogger.Print(err)
		return nil, exitNormalize
	}

	return document, 0
}

func writeOutput(output string, bytes []byte) int {
	log.Printf("Writing to %v", output)

	if err := os.WriteFile(output, bytes, 0644); err != nil {
		errorLogger.Printf("Unable to write file %v: %v", output, err)
		return exitWrite
	}

	log.Printf("Finished succesfully :)")
	return 0
}

func CompileFile(output, input string) int {
	document, res := readDocument(input)

	if res != 0 {
		return res
	}

	var bytes []byte
	var err error

	ext := filepath.Ext(output)

	log.Printf("Output file extension: %v", ext)

	switch ext {
	case ".json":
		log.Printf("Type selected: json")
		bytes, err = compilation.CompileToJSON(document)
	case ".yaml", ".yml":
		log.Printf("Type selected: yaml")
		bytes, err = compilation.CompileToYAML(document)
	default:
		log.Printf("Unkown file extension, selecting yaml")
		bytes, err = compilation.CompileToYAML(document)
	}

	if err != nil {
		errorLogger.Printf("Unable to encode document: %v", err)
		return exitRender
	}

	return writeOutput(output, bytes)
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringP("input", "i", "openapi.yaml", "OpenAPI or Swagger document to read")
	normalizeCmd.Flags().StringP("output", "o", "openapi.json", "Output filepath")
	normalizeCmd.MarkFlagRequired("output")
	normalizeCmd.MarkFlagFilename("input", "yaml", "yml", "json")
	normalizeCmd.MarkFlagFilename("output", "yaml", "yml", "json")
}
