package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cognicore/issuefinder/internal/corpus"
)

func newSummaryCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "summary [corpus]",
		Short: "Show article count and publish period of a corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sum := corpus.Summarize(docs)

			if jsonOut {
				data, err := json.MarshalIndent(sum, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal summary: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Articles: %s\n", humanize.Comma(int64(sum.Documents)))
			if sum.Earliest != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Period:   %s ~ %s\n", sum.Earliest, sum.Latest)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output the summary as JSON")
	return cmd
}
