package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizbook/internal/attempts"
	"github.com/abhisek/quizbook/internal/httpapi"
	"github.com/abhisek/quizbook/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Serve.Addr = addr
		}

		log, err := logging.New(cfg, logging.Stderr)
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

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("serving bank",
			zap.String("bank", b.Title),
			zap.Int("questions", len(b.Questions)),
			zap.Duration("session_ttl", cfg.Serve.SessionTTL))

		recorder := attempts.NewRecorder(st.EventRepo(), log)
		srv := httpapi.New(b, recorder, log, cfg.Serve)
		return srv.ListenAndServe(ctx, cfg.Serve.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
