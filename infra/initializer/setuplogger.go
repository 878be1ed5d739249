package initializer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/fxcalc/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	okColor    = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

// levelBadges maps each level to its marker and colour.
var levelBadges = map[log.Level]struct {
	mark  string
	color lipgloss.AdaptiveColor
}{
	log.DebugLevel: {"🐛", debugColor},
	log.InfoLevel:  {"ℹ️", okColor},
	log.WarnLevel:  {"⚠️", warnColor},
	log.ErrorLevel: {"❌", errColor},
}

// highlighted keys are the ones worth spotting when scanning conversion logs.
var highlighted = map[string]lipgloss.AdaptiveColor{
	"from":       okColor,
	"to":         okColor,
	"rate":       okColor,
	"key":        okColor,
	"request_id": okColor,
	"fee_bound":  warnColor,
	"error":      errColor,
	"prefix":     debugColor,
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, badge := range levelBadges {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(badge.mark).
			Bold(true).
			Padding(0, 1).
			Foreground(badge.color)
	}
	for key, color := range highlighted {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// setupLogger builds the charmbracelet handler described by cfg, writing to w,
// and installs it as the slog default. Unknown formats fall back to text.
func setupLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	formatter, ok := formatters[strings.ToLower(cfg.Format)]
	if !ok {
		formatter = log.TextFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(logStyles())

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
