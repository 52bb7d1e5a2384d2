package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/ratesched-go/pkg/ratesched"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
)

type insertFlags struct {
	catalog    string
	code       string
	part       int
	at         int
	outputPath string
	docID      string
	pretty     bool
}

func insertCmd() *cobra.Command {
	var flags insertFlags

	cmd := &cobra.Command{
		Use:   "insert [estimate.xlsx]",
		Short: "Insert a catalog item into an estimate part",
		Long: `insert looks up --code in the --catalog rate schedule and adds it to the
cost and measurement sheets of --part. The estimate is read from a file
argument (written to -o, or in place) or from the document store with --id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (flags.docID == "") == (len(args) == 0) {
				return fmt.Errorf("pass either an estimate file or --id")
			}

			item, err := lookupItem(flags.catalog, flags.code)
			if err != nil {
				return err
			}

			opts := ratesched.InsertOptions{
				BlankRows: blankRowsSetting(),
				Logger:    logger,
			}
			if cmd.Flags().Changed("at") {
				at := flags.at
				opts.InsertAtRow = &at
			}

			var result *models.InsertResult
			if flags.docID != "" {
				result, err = insertStored(cmd, flags.docID, flags.part, item, opts)
			} else {
				result, err = insertFile(args[0], flags.outputPath, flags.part, item, opts)
			}
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return writeOutput(cmd.OutOrStdout(), "", result, flags.pretty)
		},
	}

	cmd.Flags().StringVar(&flags.catalog, "catalog", "", "Rate schedule to take the item from")
	cmd.Flags().StringVar(&flags.code, "code", "", "Code of the catalog item")
	cmd.Flags().IntVar(&flags.part, "part", 0, "Estimate part number")
	cmd.Flags().IntVar(&flags.at, "at", 0, "0-based cost sheet row to insert at (default: append)")
	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output workbook (default: overwrite input, or write .xlsx beside a .xls input)")
	cmd.Flags().StringVar(&flags.docID, "id", "", "Stored document id instead of a file")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("part")
	return cmd
}

func lookupItem(catalogPath, code string) (models.CatalogItem, error) {
	res, err := ratesched.ParseFile(catalogPath, ratesched.ParseOptions{Logger: logger})
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("parse catalog: %w", err)
	}
	item, ok := res.FindByCode(code)
	if !ok {
		return models.CatalogItem{}, fmt.Errorf("code %q not found in %s", code, catalogPath)
	}
	return item, nil
}

func insertFile(inputPath, outputPath string, part int, item models.CatalogItem, opts ratesched.InsertOptions) (*models.InsertResult, error) {
	buf, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	out, result, err := ratesched.Insert(buf, part, item, opts)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, result.Format)
		if outputPath != inputPath {
			result.Warnings = append(result.Warnings, "output written to "+outputPath)
		}
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}

// defaultOutputPath overwrites the input unless its extension does not match
// the written format, in which case a sibling file with the right extension
// is used.
func defaultOutputPath(inputPath, format string) string {
	ext := filepath.Ext(inputPath)
	if strings.EqualFold(ext, "."+format) {
		return inputPath
	}
	return strings.TrimSuffix(inputPath, ext) + "." + format
}

func insertStored(cmd *cobra.Command, docID string, part int, item models.CatalogItem, opts ratesched.InsertOptions) (*models.InsertResult, error) {
	svc, closeFn, err := newService(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return svc.Insert(cmd.Context(), docID, part, item, opts)
}
