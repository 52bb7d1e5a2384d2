package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/ratesched-go/pkg/ratesched"
	"go.uber.org/zap"
)

func pairsCmd() *cobra.Command {
	var (
		pretty bool
		docID  string
	)

	cmd := &cobra.Command{
		Use:   "pairs [estimate.xlsx]",
		Short: "List cost and measurement sheet pairs of an estimate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				report *ratesched.PairReport
				err    error
			)
			switch {
			case docID != "" && len(args) == 0:
				svc, closeFn, serr := newService(cmd.Context())
				if serr != nil {
					return serr
				}
				defer closeFn()
				report, err = svc.Pairs(cmd.Context(), docID)
			case docID == "" && len(args) == 1:
				var buf []byte
				buf, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				report, err = ratesched.LocatePairs(buf)
			default:
				return fmt.Errorf("pass either an estimate file or --id")
			}
			if err != nil {
				return err
			}

			for _, name := range report.UnmatchedCostSheets {
				logger.Warn("cost sheet has no measurement sheet", zap.String("sheet", name))
			}
			return writeOutput(cmd.OutOrStdout(), "", report, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&docID, "id", "", "Stored document id instead of a file")
	return cmd
}
