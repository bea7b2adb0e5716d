package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-term/internal/words"
)

func newWordsCmd(opts *rootOptions) *cobra.Command {
	var sample int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Load the dictionary and report its size",
		Long: `Load the configured dictionary the same way a game would and print
how many five-letter words it holds.

Example: wordle words --words embedded --sample 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sample < 0 {
				return fmt.Errorf("--sample must not be negative, got %d", sample)
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cmd.Context(), cfg.Words)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d words from %s\n", dict.Len(), words.Describe(cfg.Words.Source))
			for _, w := range dict.Sample(sample) {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sample, "sample", 0, "also print N random words")
	return cmd
}
