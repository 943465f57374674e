package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbook/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate and inspect question banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a bank file against the schema and question rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions, %d chapters)\n",
			args[0], len(b.Questions), len(b.ChapterNumbers()))
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print a bank's chapters and question counts",
	Long:  "Print a bank's chapters and question counts. Without a file the --bank flag, the configured bank or the built-in bank is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   *bank.Bank
			err error
		)
		if len(args) == 1 {
			b, err = bank.Load(args[0])
		} else {
			cfg, cerr := loadConfig(cmd)
			if cerr != nil {
				return cerr
			}
			b, err = loadBank(cmd, cfg)
		}
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("questions")
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, b.Title)
		fmt.Fprintln(out, strings.Repeat("─", 48))
		counts := b.CountByChapter()
		for _, n := range b.ChapterNumbers() {
			fmt.Fprintf(out, "Chapter %-3d %-32s %4d\n", n, b.ChapterName(n), counts[n])
			if !verbose {
				continue
			}
			for _, q := range b.QuestionsIn(n) {
				fmt.Fprintf(out, "    - %s\n", q.Text)
			}
		}
		fmt.Fprintln(out, strings.Repeat("─", 48))
		fmt.Fprintf(out, "%-44s %4d\n", "Total", len(b.Questions))
		return nil
	},
}

func init() {
	bankShowCmd.Flags().Bool("questions", false, "List question text under each chapter")

	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
