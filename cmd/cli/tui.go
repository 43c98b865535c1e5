package cli

import (
	"github.com/kcaldas/termblog/cmd/tui"
	"github.com/kcaldas/termblog/internal/di"
	"github.com/kcaldas/termblog/pkg/config"
	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/pager"
)

const debugLogFile = "termblog-debug.log"

func runTUI(cfg config.TerminalConfig) error {
	// The screen owns the terminal, so logs go to a file.
	logging.SetGlobalLogger(logging.NewFileLoggerFromEnv(debugLogFile))

	ui := tui.NewUIThread()
	sh, err := di.InitializeShell(cfg, di.Host{
		Post:      ui.Post,
		Clipboard: tui.NewClipboard(),
		Animator:  pager.NewTickerAnimator(ui.Post),
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	app, err := tui.NewApp(ui, sh, tui.Config{OutputMode: cfg.OutputMode})
	if err != nil {
		return err
	}
	return app.Run()
}
