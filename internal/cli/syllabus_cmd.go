package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmtabor/studyarc/internal/cli/formatter"
	"github.com/jmtabor/studyarc/internal/importer"
	"github.com/jmtabor/studyarc/internal/service"
)

func newSyllabusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syllabus",
		Short: "Import or parse course syllabi",
	}

	cmd.AddCommand(
		newSyllabusImportCmd(app),
		newSyllabusParseCmd(app),
	)

	return cmd
}

func newSyllabusImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a structured syllabus JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportSyllabus(context.Background(), args[0])
			if err != nil {
				return err
			}
			printImportResult(result)
			return nil
		},
	}
}

func newSyllabusParseCmd(app *App) *cobra.Command {
	var outputPath string
	var noImport bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a raw syllabus text file with the local LLM",
		Long: "Reads free-form syllabus text, extracts structured course data via " +
			"the local LLM, and imports it. Requires STUDYARC_LLM_ENABLED=true.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Extractor == nil {
				return fmt.Errorf("syllabus parsing needs the LLM; set STUDYARC_LLM_ENABLED=true and run Ollama")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading syllabus file: %w", err)
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("Parsing syllabus...")
			}
			schema, err := app.Extractor.ParseSyllabus(context.Background(), string(raw))
			stop()
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := writeSchema(outputPath, schema); err != nil {
					return err
				}
				fmt.Printf("Wrote parsed syllabus to %s\n", outputPath)
			}
			if noImport {
				if outputPath == "" {
					return writeSchema("/dev/stdout", schema)
				}
				return nil
			}

			result, err := app.Imports.ImportSyllabusFromSchema(context.Background(), schema)
			if err != nil {
				return err
			}
			printImportResult(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the extracted schema JSON to a file")
	cmd.Flags().BoolVar(&noImport, "no-import", false, "parse only, skip the database import")

	return cmd
}

func writeSchema(path string, schema *importer.SyllabusSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	return nil
}

func printImportResult(result *service.ImportResult) {
	fmt.Printf("Imported %s\n", formatter.Bold(result.Course.Name))
	fmt.Printf("  %d events, %d grade categories, %d roadmap weeks\n",
		result.EventCount, result.CategoryCount, result.RoadmapCount)
}
