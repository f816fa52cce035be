package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	return newLogger(os.Stderr, cfg)
}

// newLogger builds a charmbracelet handler behind slog and installs it as
// the default logger.
func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelColors := map[log.Level]lipgloss.AdaptiveColor{
		log.ErrorLevel: errorTxtColor,
		log.InfoLevel:  infoTxtColor,
		log.WarnLevel:  warnTxtColor,
		log.DebugLevel: debugTxtColor,
	}
	for level, color := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(level.String()).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}

	// ledger specific keys
	for _, key := range []string{"owner", "from", "to"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(infoTxtColor)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["prefix"] = lipgloss.NewStyle().Foreground(debugTxtColor)
	styles.Values["prefix"] = lipgloss.NewStyle().Bold(true)

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
