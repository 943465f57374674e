package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbook/internal/app"
	"github.com/abhisek/quizbook/internal/bank"
	"github.com/abhisek/quizbook/internal/config"
	"github.com/abhisek/quizbook/internal/logging"
	"github.com/abhisek/quizbook/internal/store"
)

// loadConfig reads the config file named by --config, or the default search
// path when the flag is empty.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db_path (QUIZBOOK_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.ResolveDBPath(cfg.DBPath)
}

func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// bankPath returns --bank, falling back to the configured bank_path.
func bankPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return cfg.BankPath
}

func loadBank(cmd *cobra.Command, cfg *config.Config) (*bank.Bank, error) {
	b, err := bank.LoadOrDefault(bankPath(cmd, cfg))
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return b, nil
}

// runApp opens the store, loads the bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	log, err := logging.New(cfg, logging.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	b, err := loadBank(cmd, cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	log.Info("starting tui",
		zap.String("bank", b.Title),
		zap.Int("questions", len(b.Questions)))

	return app.Run(app.Options{
		Bank:      b,
		EventRepo: st.EventRepo(),
		Logger:    log,
	})
}
