package remotecontrol

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultSlots is the slot count of a remote built without configuration.
const DefaultSlots = 7

// HistoryMode selects how much undo history a remote keeps.
type HistoryMode string

const (
	// HistoryStack keeps every dispatched command (multi-level undo).
	HistoryStack HistoryMode = "stack"
	// HistoryLast keeps only the most recent command (one-level undo).
	HistoryLast HistoryMode = "last"
)

// UnmarshalText implements encoding.TextUnmarshaler so env can parse it.
// The mode is normalized here and checked by Config.Validate.
func (m *HistoryMode) UnmarshalText(text []byte) error {
	*m = HistoryMode(strings.ToLower(strings.TrimSpace(string(text))))
	return nil
}

// Config controls how a RemoteControl is built.
type Config struct {
	Slots        int         `env:"REMOTE_SLOTS"         envDefault:"7"`
	HistoryMode  HistoryMode `env:"REMOTE_HISTORY_MODE"  envDefault:"stack"`
	HistoryLimit int         `env:"REMOTE_HISTORY_LIMIT" envDefault:"0"`
	LogLevel     string      `env:"REMOTE_LOG_LEVEL"     envDefault:"info"`

	// AuditFile, when set, receives a JSON line per remote operation.
	AuditFile string `env:"REMOTE_AUDIT_FILE"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Slots:       DefaultSlots,
		HistoryMode: HistoryStack,
		LogLevel:    "info",
	}
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no remote can be built from.
func (c Config) Validate() error {
	if c.Slots <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSlotCount, c.Slots)
	}
	switch c.HistoryMode {
	case HistoryStack, HistoryLast:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHistoryMode, string(c.HistoryMode))
	}
	return nil
}

// NewHistory builds the History selected by the configuration.
func (c Config) NewHistory() History {
	if c.HistoryMode == HistoryLast {
		return NewLastCommandHistory()
	}
	return NewStackHistory(c.HistoryLimit)
}
