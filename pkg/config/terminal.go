package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

const (
	KeyContentDir    = "TERMBLOG_CONTENT_DIR"
	KeyHistorySize   = "TERMBLOG_HISTORY_SIZE"
	KeyScrollRatio   = "TERMBLOG_SCROLL_RATIO"
	KeyPromptPrefix  = "TERMBLOG_PROMPT_PREFIX"
	KeyDateFormat    = "TERMBLOG_DATE_FORMAT"
	KeyTheme         = "TERMBLOG_THEME"
	KeyGlamourStyle  = "TERMBLOG_GLAMOUR_STYLE"
	KeyWrapWidth     = "TERMBLOG_WRAP_WIDTH"
	KeyOutputMode    = "TERMBLOG_OUTPUT_MODE"
	KeyFileCommands  = "TERMBLOG_FILE_COMMANDS"
	KeyAsyncCommands = "TERMBLOG_ASYNC_COMMANDS"
	KeyCommandsDir   = "TERMBLOG_COMMANDS_DIR"
)

// TerminalConfig is everything the shell and its hosts read at startup.
type TerminalConfig struct {
	ContentDir      string
	HistoryCapacity int
	ScrollRatio     float64
	PromptPrefix    string
	DateFormat      string
	Theme           string
	GlamourStyle    string
	WrapWidth       int
	// OutputMode is the gocui color mode: "true", "256", "normal" or
	// "simulator".
	OutputMode    string
	FileCommands  []string
	AsyncCommands bool
	// CommandsDir holds user-defined text commands.
	CommandsDir string
}

// DefaultTerminalConfig is used for every key that is not set.
func DefaultTerminalConfig() TerminalConfig {
	return TerminalConfig{
		ContentDir:      "content",
		HistoryCapacity: 1000,
		ScrollRatio:     0.8,
		PromptPrefix:    ">",
		DateFormat:      "15:04:05",
		Theme:           "default",
		GlamourStyle:    "dark",
		WrapWidth:       80,
		OutputMode:      "true",
		FileCommands:    []string{"ls", "cd", "cat"},
		CommandsDir:     expandHome("~/.termblog/commands"),
	}
}

// GetTerminalConfig reads the terminal configuration from the environment.
// A leading ~ in directories is expanded.
func (m *DefaultManager) GetTerminalConfig() TerminalConfig {
	def := DefaultTerminalConfig()

	fileCommands := def.FileCommands
	if raw := m.GetStringWithDefault(KeyFileCommands, ""); raw != "" {
		fileCommands = splitList(raw)
	}

	return TerminalConfig{
		ContentDir:      expandHome(m.GetStringWithDefault(KeyContentDir, def.ContentDir)),
		HistoryCapacity: m.GetIntWithDefault(KeyHistorySize, def.HistoryCapacity),
		ScrollRatio:     m.GetFloatWithDefault(KeyScrollRatio, def.ScrollRatio),
		PromptPrefix:    m.GetStringWithDefault(KeyPromptPrefix, def.PromptPrefix),
		DateFormat:      m.GetStringWithDefault(KeyDateFormat, def.DateFormat),
		Theme:           m.GetStringWithDefault(KeyTheme, def.Theme),
		GlamourStyle:    m.GetStringWithDefault(KeyGlamourStyle, def.GlamourStyle),
		WrapWidth:       m.GetIntWithDefault(KeyWrapWidth, def.WrapWidth),
		OutputMode:      m.GetStringWithDefault(KeyOutputMode, def.OutputMode),
		FileCommands:    fileCommands,
		AsyncCommands:   m.GetBoolWithDefault(KeyAsyncCommands, def.AsyncCommands),
		CommandsDir:     expandHome(m.GetStringWithDefault(KeyCommandsDir, def.CommandsDir)),
	}
}

// LoadDotEnv loads the given env files (".env" when none are given) without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if expanded, err := homedir.Expand(p); err == nil {
		return expanded
	}
	return p
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
