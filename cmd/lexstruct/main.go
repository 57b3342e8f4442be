package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/coolbeans/lexstruct/pkg/config"
	"github.com/coolbeans/lexstruct/pkg/generate"
	"github.com/coolbeans/lexstruct/pkg/pipeline"
	"github.com/coolbeans/lexstruct/pkg/reader"
	"github.com/coolbeans/lexstruct/pkg/results"
	"github.com/coolbeans/lexstruct/pkg/segment"
	"github.com/coolbeans/lexstruct/pkg/store"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexstruct",
		Short: "Structured extraction for Chinese legal documents",
		Long: `Lexstruct turns Chinese statutes, notices, and case reports into
structured JSON records.

It segments a document into articles on 第N条 markers, sends each
article to a language model with a strict JSON contract, and collects
one record per article:
  - 条文型 records for individual provisions
  - 文件型 records for whole-document notices and interpretations
  - 案例型 records for adjudicated cases
Failed extractions are kept as error placeholders so a run is always
accounted for article by article.`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(segmentCmd())
	rootCmd.AddCommand(processCmd())
	rootCmd.AddCommand(exportCmd())

	return rootCmd
}

// loadDocument reads, normalizes, and segments a source file. It returns the
// article units, the header context extracted before the first marker, and
// the normalized text itself.
func loadDocument(source, pdfBackend, method string) ([]segment.Unit, string, string, error) {
	if _, err := os.Stat(source); os.IsNotExist(err) {
		return nil, "", "", fmt.Errorf("source file not found: %s", source)
	}

	text, err := reader.ReadText(source, pdfBackend)
	if err != nil {
		return nil, "", "", err
	}
	text = segment.Normalize(text)
	docContext := segment.ExtractContextText(text)

	var units []segment.Unit
	switch method {
	case "state", "":
		units = segment.ScanLines(text)
	case "regex":
		for _, chunk := range segment.SplitRegex(text) {
			units = append(units, segment.ScanLines(chunk)...)
		}
	default:
		return nil, "", "", fmt.Errorf("unknown segmentation method: %s (use state or regex)", method)
	}

	return units, docContext, text, nil
}

// outputPath derives <stem>_<suffix>.json next to the source file.
func outputPath(source, suffix string) string {
	stem := strings.TrimSuffix(source, filepath.Ext(source))
	return stem + "_" + suffix + ".json"
}

func newClient(cfg config.Config) (generate.Client, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return generate.NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Timeout)
	default:
		return generate.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract structured records from a legal document",
		Long: `Parse a legal document into structured JSON records, one per article.

Supported formats: DOCX, PDF, TXT

Configuration comes from the environment (or a .env file):
  LLM_API_KEY, LLM_MODEL, LLM_BASE_URL, LLM_PROVIDER, PARSE_DELAY

Example:
  lexstruct parse --source 民法典.docx
  lexstruct parse --source 民法典.docx --output minfadian.json --delay 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			delayFlag, _ := cmd.Flags().GetString("delay")
			method, _ := cmd.Flags().GetString("method")
			pdfBackend, _ := cmd.Flags().GetString("pdf-backend")
			noContext, _ := cmd.Flags().GetBool("no-context")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}
			if output == "" {
				output = outputPath(source, "parsed")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if delayFlag != "" {
				d, err := time.ParseDuration(delayFlag)
				if err != nil {
					secs := 0.0
					if _, scanErr := fmt.Sscanf(delayFlag, "%f", &secs); scanErr != nil {
						return fmt.Errorf("invalid --delay: %q", delayFlag)
					}
					d = time.Duration(secs * float64(time.Second))
				}
				cfg.Delay = d
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Parsing legal document: %s\n", source)
			startTime := time.Now()

			fmt.Print("  1. Reading and segmenting... ")
			units, docContext, _, err := loadDocument(source, pdfBackend, method)
			if err != nil {
				return err
			}
			fmt.Printf("done (%d articles)\n", len(units))

			if noContext {
				docContext = ""
			} else if docContext != "" {
				fmt.Printf("  2. Document context: %d header line(s)\n", strings.Count(docContext, "\n")+1)
			} else {
				fmt.Println("  2. Document context: none found")
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}

			extractor := pipeline.NewExtractor(client, pipeline.DelayLimiter{Delay: cfg.Delay})
			extractor.DocumentContext = docContext
			extractor.Progress = func(index, total int) {
				fmt.Printf("  3. Extracting article %d/%d...\n", index+1, total)
			}

			records, runErr := extractor.Run(ctx, units)
			if runErr != nil {
				fmt.Printf("Run interrupted: %v (keeping %d completed records)\n", runErr, len(records))
			}

			if err := pipeline.WriteResults(output, records); err != nil {
				return err
			}

			elapsed := time.Since(startTime)
			fmt.Printf("\nExtraction complete in %v\n", elapsed.Round(time.Second))
			fmt.Printf("Run ID: %s\n", extractor.RunID())
			fmt.Printf("Results saved to: %s\n", output)

			flat, _ := results.Flatten(records)
			report := results.BuildReport(flat)
			fmt.Printf("  Total records:  %d\n", report.Total)
			fmt.Printf("  Valid records:  %d\n", report.Valid)
			if len(report.Errors) > 0 {
				fmt.Printf("  Failed:         %d\n", len(report.Errors))
			}
			return runErr
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path (docx, pdf, or txt)")
	cmd.Flags().StringP("output", "o", "", "Output file (default <source>_parsed.json)")
	cmd.Flags().String("delay", "", "Pause between model calls (e.g. 2, 1500ms); overrides PARSE_DELAY")
	cmd.Flags().String("method", "state", "Segmentation method (state, regex)")
	cmd.Flags().String("pdf-backend", "plain", "PDF extraction backend (plain, pages)")
	cmd.Flags().Bool("no-context", false, "Do not send document header context with each article")

	return cmd
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview how a document will be segmented",
		Long: `Segment a document and print the first articles without calling the
model. Useful for checking marker detection before a paid run.

Example:
  lexstruct preview --source 民法典.docx --max 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			maxUnits, _ := cmd.Flags().GetInt("max")
			method, _ := cmd.Flags().GetString("method")
			pdfBackend, _ := cmd.Flags().GetString("pdf-backend")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			units, docContext, text, err := loadDocument(source, pdfBackend, method)
			if err != nil {
				return err
			}

			fmt.Printf("Segmented %d article(s) from %s\n", len(units), source)
			if markers := segment.MarkerCount(text); markers != len(units) {
				fmt.Printf("warning: %d marker token(s) in the text but %d article(s) segmented\n",
					markers, len(units))
			}
			if docContext != "" {
				fmt.Println("\nDocument context:")
				for _, line := range strings.Split(docContext, "\n") {
					fmt.Printf("  %s\n", line)
				}
			}

			shown := len(units)
			if maxUnits > 0 && maxUnits < shown {
				shown = maxUnits
			}
			for i := 0; i < shown; i++ {
				fmt.Printf("\n[%d] %s\n", i+1, units[i].Title)
				content := units[i].Content
				if len([]rune(content)) > 100 {
					content = string([]rune(content)[:100]) + "..."
				}
				fmt.Printf("    %s\n", strings.ReplaceAll(content, "\n", "\n    "))
			}
			if shown < len(units) {
				fmt.Printf("\n... and %d more article(s)\n", len(units)-shown)
			}
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")
	cmd.Flags().IntP("max", "m", 5, "Maximum articles to print (0 for all)")
	cmd.Flags().String("method", "state", "Segmentation method (state, regex)")
	cmd.Flags().String("pdf-backend", "plain", "PDF extraction backend (plain, pages)")

	return cmd
}

func segmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Segment a document into articles and save them as JSON",
		Long: `Segment a document into title/content units and write them to a JSON
file without any model calls.

Example:
  lexstruct segment --source 民法典.docx --output articles.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			method, _ := cmd.Flags().GetString("method")
			pdfBackend, _ := cmd.Flags().GetString("pdf-backend")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}
			if output == "" {
				output = outputPath(source, "articles")
			}

			units, _, _, err := loadDocument(source, pdfBackend, method)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(units, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal articles: %w", err)
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Printf("Saved %d article(s) to: %s\n", len(units), output)
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")
	cmd.Flags().StringP("output", "o", "", "Output file (default <source>_articles.json)")
	cmd.Flags().String("method", "state", "Segmentation method (state, regex)")
	cmd.Flags().String("pdf-backend", "plain", "PDF extraction backend (plain, pages)")

	return cmd
}

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Flatten and validate a parsed result file",
		Long: `Flatten a raw extraction artifact, report field coverage, and write
the cleaned record set.

Example:
  lexstruct process --input 民法典_parsed.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}
			if output == "" {
				stem := strings.TrimSuffix(input, filepath.Ext(input))
				output = strings.TrimSuffix(stem, "_parsed") + "_processed.json"
			}

			items, err := results.Load(input)
			if err != nil {
				return err
			}

			records, notes := results.Flatten(items)
			for _, note := range notes {
				fmt.Printf("  warning: %s\n", note)
			}

			if err := results.WriteRecords(output, records); err != nil {
				return err
			}

			report := results.BuildReport(records)
			fmt.Printf("Processed %d record(s) from %s\n\n", report.Total, input)
			fmt.Printf("  Valid:          %d\n", report.Valid)
			fmt.Printf("  With content:   %d\n", report.WithContent)
			fmt.Printf("  With summary:   %d\n", report.WithSummary)
			fmt.Printf("  With keywords:  %d\n", report.WithKeywords)

			if len(report.Samples) > 0 {
				fmt.Println("\nSamples:")
				for _, s := range report.Samples {
					fmt.Printf("  %-8s content=%d chars, summary=%v, keywords=%d\n",
						s.ArticleNumber, s.ContentLength, s.HasSummary, s.KeywordsCount)
				}
			}
			if len(report.Errors) > 0 {
				fmt.Println("\nFailures:")
				for _, e := range report.Errors {
					fmt.Printf("  [%d] %s\n", e.Index, e.Error)
				}
			}

			fmt.Printf("\nCleaned records saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Raw result file from 'lexstruct parse'")
	cmd.Flags().StringP("output", "o", "", "Output file (default <input stem>_processed.json)")

	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to Postgres",
		Long: `Load a result file and insert its valid records into the legal_records
table. Error placeholders are skipped.

The connection string comes from --database-url or DATABASE_URL.

Example:
  lexstruct export --input 民法典_parsed.json --run-id minfadian-2026-08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			connStr, _ := cmd.Flags().GetString("database-url")
			runID, _ := cmd.Flags().GetString("run-id")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}
			if connStr == "" {
				connStr = os.Getenv("DATABASE_URL")
			}
			if connStr == "" {
				return fmt.Errorf("--database-url flag or DATABASE_URL is required")
			}
			if runID == "" {
				runID = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			}

			items, err := results.Load(input)
			if err != nil {
				return err
			}
			records, _ := results.Flatten(items)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := store.NewDB(ctx, connStr)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Initialize(ctx); err != nil {
				return err
			}

			n, err := db.InsertRecords(ctx, runID, records)
			if err != nil {
				return fmt.Errorf("export failed after %d record(s): %w", n, err)
			}

			fmt.Printf("Exported %d record(s) (run %s), skipped %d error placeholder(s)\n",
				n, runID, len(records)-n)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Result file from 'lexstruct parse' or 'lexstruct process'")
	cmd.Flags().String("database-url", "", "Postgres connection string (default DATABASE_URL)")
	cmd.Flags().String("run-id", "", "Run identifier stored with each record (default input stem)")

	return cmd
}
