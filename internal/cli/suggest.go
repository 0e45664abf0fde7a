package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/issuefinder/internal/corpus"
	"github.com/cognicore/issuefinder/pkg/issuefinder"
	"github.com/cognicore/issuefinder/pkg/issuefinder/stoplist"
)

func newSuggestCmd(g *globalOptions) *cobra.Command {
	th := stoplist.DefaultThresholds()
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest-stopwords [corpus]",
		Short: "List keywords present in too many articles to be informative",
		Long: `Prints tokens whose document frequency exceeds --df-percent and that are
not stopwords yet, most frequent first. Add the ones you agree with to the
stopword list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			comp, err := buildComponents(cfg)
			if err != nil {
				return err
			}
			docs, err := corpus.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			analyzer := issuefinder.New(cfg.AnalyzerOptions(comp.Pipeline))
			candidates, err := analyzer.SuggestStopwords(cmd.Context(), docs, comp.Stopwords, th)
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stopword candidates.")
				return nil
			}
			if limit > 0 && len(candidates) > limit {
				candidates = candidates[:limit]
			}
			for _, c := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f%%\n", c.Token, c.DFPercent)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&th.DFPercent, "df-percent", th.DFPercent, "minimum share of articles containing the token")
	cmd.Flags().Int64Var(&th.MinDocs, "min-docs", th.MinDocs, "minimum corpus size for suggestions")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of candidates (0 for all)")
	return cmd
}
