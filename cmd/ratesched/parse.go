package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/ratesched-go/pkg/ratesched"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/output"
)

func parseCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		items      string
	)

	cmd := &cobra.Command{
		Use:   "parse <schedule.xlsx|schedule.xls>",
		Short: "Parse a rate schedule into catalog items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ratesched.ParseFile(args[0], ratesched.ParseOptions{Logger: logger})
			if err != nil {
				return fmt.Errorf("parse failed: %w", err)
			}

			view, err := selectItems(res, items)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, view, pretty)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&items, "items", "all", "Items to output: flat, hierarchical, all")
	return cmd
}

func selectItems(res *models.ParseResult, items string) (any, error) {
	switch items {
	case "all":
		return res, nil
	case "flat":
		return struct {
			Items    []models.CatalogItem `json:"items"`
			Metadata models.ParseMetadata `json:"metadata"`
		}{res.Items, res.Metadata}, nil
	case "hierarchical":
		return struct {
			HierarchicalItems []models.HierarchicalCatalogItem `json:"hierarchical_items"`
			Metadata          models.ParseMetadata             `json:"metadata"`
		}{res.HierarchicalItems, res.Metadata}, nil
	default:
		return nil, fmt.Errorf("invalid items: %s (must be flat, hierarchical, or all)", items)
	}
}

// writeOutput writes v as JSON to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, v any, pretty bool) error {
	if path == "" {
		return output.WriteJSON(stdout, v, pretty)
	}

	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
