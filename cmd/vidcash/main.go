package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/vidcash/internal/catalog"
	"github.com/jask/vidcash/internal/config"
	"github.com/jask/vidcash/internal/content"
	"github.com/jask/vidcash/internal/dashboard"
	"github.com/jask/vidcash/internal/logging"
	"github.com/jask/vidcash/internal/money"
	"github.com/jask/vidcash/internal/referral"
	"github.com/jask/vidcash/internal/submit"
	"github.com/jask/vidcash/internal/theme"
	"github.com/jask/vidcash/internal/tui"
	"github.com/jask/vidcash/internal/wizard"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vidcash:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "vidcash",
		Short: "VidCash - earn by watching, promote your videos",
		Long: `VidCash is a terminal client for the VidCash platform: browse the
packages, sign up and submit your activation payment, then follow your
earnings, referrals and withdrawals from the dashboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			app, closeLog, err := build(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/vidcash/config.toml)")
	cmd.Flags().String(config.FlagPage, "", "page to open on start (landing, auth, rules, faq, terms, privacy)")
	cmd.Flags().String(config.FlagTheme, "", "default theme when none is saved (light, dark)")
	return cmd
}

// build wires the UI from configuration.
func build(ctx context.Context, cfg config.Config) (*tui.App, func(), error) {
	log, closer, err := logging.New(logging.Config{Level: cfg.Log.Level, Path: cfg.Log.Path})
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	closeLog := func() { _ = closer.Close() }

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		if cat, err = catalog.Load(cfg.Catalog.Path); err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("catalog: %w", err)
		}
	}
	pages, err := content.Load()
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	log.Info().Str("start_page", string(cfg.StartPage())).Int("packages", cat.Len()).Msg("starting")
	app := tui.New(ctx, tui.Deps{
		Catalog:     cat,
		Pages:       pages,
		Theme:       theme.NewFile(cfg.Prefs.Path, cfg.Theme(), log),
		Clipboard:   referral.SystemClipboard{},
		Payments:    submit.Simulated[wizard.Request]{Delay: cfg.Wizard.SubmitDelay},
		Withdrawals: submit.Simulated[dashboard.WithdrawRequest]{Delay: cfg.Dashboard.WithdrawDelay},
		Log:         log,
	}, tui.Options{
		StartPage:     cfg.StartPage(),
		Money:         money.NewFormatter(cfg.UI.Locale, cfg.UI.Currency),
		ReferralBase:  cfg.Referral.BaseURL,
		MinWithdrawal: cfg.Dashboard.MinWithdrawal,
	})
	return app, closeLog, nil
}
