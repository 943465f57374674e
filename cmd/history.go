package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbook/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		list, err := s.EventRepo().QueryAttempts(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No attempts recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-24s  %-4s  %7s  %5s  %-10s  %6s\n",
			"Timestamp", "Bank", "Via", "Score", "Pct", "Grade", "Time")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, a := range list {
			fmt.Fprintf(out, "%-19s  %-24s  %-4s  %3d/%-3d  %4d%%  %-10s  %6s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(a.BankTitle, 24),
				a.Source,
				a.Correct, a.Total,
				a.Percent,
				a.Grade,
				formatMs(a.DurationMs),
			)
		}

		sum, err := s.EventRepo().AttemptSummary(ctx)
		if err != nil {
			return fmt.Errorf("query summary: %w", err)
		}
		fmt.Fprintln(out, strings.Repeat("─", 90))
		fmt.Fprintf(out, "%d attempts, best %d%%, average %.1f%%\n",
			sum.Attempts, sum.BestPercent, sum.AvgPercent)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of attempts to show")
}

func formatMs(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
