package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/llm"
	"github.com/abhisek/quizbook/internal/logging"
	"github.com/abhisek/quizbook/internal/questiongen"
	"github.com/abhisek/quizbook/internal/quiz"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft new questions for a bank chapter with an LLM",
	Long: `Draft multiple-choice questions for one chapter of a bank file.

Drafts are checked for structure and for duplicates of questions already in
the bank. Accepted drafts are appended to the bank file unless --dry-run is
given. Rejected drafts are listed with the reason.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().Int("chapter", 0, "Chapter number to draft for (required)")
	draftCmd.Flags().Int("count", 5, "Number of questions to add")
	draftCmd.Flags().String("topic", "", "Optional notes narrowing the subject matter")
	draftCmd.Flags().Bool("dry-run", false, "Print drafts without saving the bank")
	_ = draftCmd.MarkFlagRequired("chapter")
}

func runDraft(cmd *cobra.Command, args []string) error {
	chapter, _ := cmd.Flags().GetInt("chapter")
	count, _ := cmd.Flags().GetInt("count")
	topic, _ := cmd.Flags().GetString("topic")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := bankPath(cmd, cfg)
	if path == "" {
		return errors.New("draft needs a bank file: pass --bank or set bank_path")
	}

	log, err := logging.New(cfg, logging.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	b, err := bank.Load(path)
	if err != nil {
		return err
	}

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Chapter %d: %s (%d existing)\n", chapter, b.ChapterName(chapter), len(b.QuestionsIn(chapter)))
	fmt.Fprintf(out, "Drafting %d questions with %s...\n\n", count, provider.ModelID())

	drafter := questiongen.New(provider, questiongen.DefaultConfig())
	res, err := drafter.Draft(ctx, questiongen.DraftInput{
		Chapter:     chapter,
		ChapterName: b.ChapterName(chapter),
		Topic:       topic,
		Count:       count,
		Existing:    b.Questions,
	})
	if err != nil && res == nil {
		return err
	}
	if err != nil {
		log.Warn("drafting stopped early", zap.Error(err))
		fmt.Fprintf(out, "Drafting stopped early: %v\n\n", err)
	}

	for i, q := range res.Accepted {
		printDraft(cmd, i+1, q)
	}
	for _, r := range res.Rejected {
		fmt.Fprintf(out, "✗ rejected %q: %v\n", r.Draft.Text, r.Err)
	}
	fmt.Fprintf(out, "\n%d accepted, %d rejected in %d round(s)\n",
		len(res.Accepted), len(res.Rejected), res.Rounds)

	if dryRun || len(res.Accepted) == 0 {
		return nil
	}

	b.Append(res.Accepted...)
	if err := b.Validate(); err != nil {
		return fmt.Errorf("bank invalid after append: %w", err)
	}
	if err := b.Save(path); err != nil {
		return err
	}
	log.Info("bank updated",
		zap.String("path", path),
		zap.Int("chapter", chapter),
		zap.Int("added", len(res.Accepted)))
	fmt.Fprintf(out, "Saved %s\n", path)
	return nil
}

func printDraft(cmd *cobra.Command, n int, q quiz.Question) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "── Draft %d ──\n", n)
	fmt.Fprintln(out, q.Text)
	for j, opt := range q.Options {
		mark := " "
		if j == q.Answer {
			mark = "✓"
		}
		fmt.Fprintf(out, "  %s %s) %s\n", mark, quiz.OptionLabel(j), opt)
	}
	fmt.Fprintf(out, "Explanation: %s\n\n", q.Explanation)
}
