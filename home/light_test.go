package home

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (Option, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return WithLogger(logrus.NewEntry(logger)), hook
}

func messages(hook *test.Hook, level logrus.Level) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestLight(t *testing.T) {
	opt, hook := newTestLogger(t)
	light := NewLight("Kitchen", opt)

	assert.False(t, light.IsOn())
	assert.Equal(t, "Kitchen", light.Location())

	light.TurnOn()
	assert.True(t, light.IsOn())
	light.TurnOn()
	assert.True(t, light.IsOn(), "turning on twice keeps it on")
	light.TurnOff()
	assert.False(t, light.IsOn())

	assert.Equal(t, []string{
		"Kitchen light is now ON",
		"Kitchen light is now ON",
		"Kitchen light is now OFF",
	}, messages(hook, logrus.InfoLevel))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "light", entry.Data["device"])
	assert.Equal(t, "Kitchen", entry.Data["location"])
}

func TestLightCommands(t *testing.T) {
	tests := []struct {
		name    string
		startOn bool
		on      bool
		wantOn  bool
	}{
		{name: "on from off", startOn: false, on: true, wantOn: true},
		{name: "on from on", startOn: true, on: true, wantOn: true},
		{name: "off from on", startOn: true, on: false, wantOn: false},
		{name: "off from off", startOn: false, on: false, wantOn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, _ := newTestLogger(t)
			light := NewLight("Hall", opt)
			if tt.startOn {
				light.TurnOn()
			}

			var invoke, reverse func()
			if tt.on {
				cmd := NewLightOnCommand(light)
				invoke, reverse = func() { cmd.Invoke(t.Context()) }, func() { cmd.Reverse(t.Context()) }
			} else {
				cmd := NewLightOffCommand(light)
				invoke, reverse = func() { cmd.Invoke(t.Context()) }, func() { cmd.Reverse(t.Context()) }
			}

			invoke()
			assert.Equal(t, tt.wantOn, light.IsOn())
			reverse()
			assert.Equal(t, tt.startOn, light.IsOn())
		})
	}
}

func TestLightCommand_ReverseBeforeInvoke(t *testing.T) {
	opt, hook := newTestLogger(t)
	light := NewLight("Hall", opt)
	light.TurnOn()
	hook.Reset()

	NewLightOffCommand(light).Reverse(t.Context())

	assert.True(t, light.IsOn())
	assert.Empty(t, hook.AllEntries())
}
