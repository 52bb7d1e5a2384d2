package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var docID string

	cmd := &cobra.Command{
		Use:   "import <estimate.xlsx>",
		Short: "Store an estimate workbook under an id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			svc, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			return svc.Import(cmd.Context(), docID, buf)
		},
	}

	cmd.Flags().StringVar(&docID, "id", "", "Document id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		docID      string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a stored estimate workbook to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			buf, err := svc.Export(cmd.Context(), docID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, buf, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docID, "id", "", "Document id")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
