package remotecontrol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("REMOTE_SLOTS", "3")
	t.Setenv("REMOTE_HISTORY_MODE", " LAST ")
	t.Setenv("REMOTE_HISTORY_LIMIT", "10")
	t.Setenv("REMOTE_LOG_LEVEL", "debug")
	t.Setenv("REMOTE_AUDIT_FILE", "/tmp/remote.jsonl")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Slots:        3,
		HistoryMode:  HistoryLast,
		HistoryLimit: 10,
		LogLevel:     "debug",
		AuditFile:    "/tmp/remote.jsonl",
	}, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want error
	}{
		{name: "zero slots", key: "REMOTE_SLOTS", val: "0", want: ErrInvalidSlotCount},
		{name: "negative slots", key: "REMOTE_SLOTS", val: "-2", want: ErrInvalidSlotCount},
		{name: "unknown history mode", key: "REMOTE_HISTORY_MODE", val: "tree", want: ErrInvalidHistoryMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadConfig_Unparsable(t *testing.T) {
	t.Setenv("REMOTE_SLOTS", "seven")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestConfig_NewHistory(t *testing.T) {
	stack := Config{Slots: 1, HistoryMode: HistoryStack, HistoryLimit: 2}.NewHistory()
	for i := 0; i < 3; i++ {
		stack.Push(Entry{Slot: i})
	}
	assert.Equal(t, 2, stack.Len())

	last := Config{Slots: 1, HistoryMode: HistoryLast}.NewHistory()
	last.Push(Entry{Slot: 0})
	last.Push(Entry{Slot: 1})
	assert.Equal(t, 1, last.Len())

	e, ok := last.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, e.Slot)
}

func TestHistoryMode_UnmarshalText(t *testing.T) {
	var m HistoryMode
	require.NoError(t, m.UnmarshalText([]byte(" Stack\n")))
	assert.Equal(t, HistoryStack, m)

	require.NoError(t, m.UnmarshalText([]byte("queue")))
	err := Config{Slots: 1, HistoryMode: m}.Validate()
	assert.ErrorIs(t, err, ErrInvalidHistoryMode)
}
