package remotecontrol_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rc "github.com/terraskye/remotecontrol"
	"github.com/terraskye/remotecontrol/fixtures"
	"github.com/terraskye/remotecontrol/home"
)

type livingRoom struct {
	light  *home.Light
	fan    *home.Fan
	stereo *home.Stereo
	hook   *test.Hook
}

func newLivingRoom() *livingRoom {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	opt := home.WithLogger(logrus.NewEntry(logger))
	return &livingRoom{
		light:  home.NewLight("Living Room", opt),
		fan:    home.NewFan("Living Room", opt),
		stereo: home.NewStereo("Living Room", opt),
		hook:   hook,
	}
}

func (r *livingRoom) devices() []string {
	var out []string
	for _, e := range r.hook.AllEntries() {
		out = append(out, e.Data["device"].(string))
	}
	return out
}

func TestRemoteControl_DescribeDefaults(t *testing.T) {
	remote := rc.NewRemoteControl()

	want := "------ Remote Control -------\n" +
		"[slot 0] NoCommand    NoCommand\n" +
		"[slot 1] NoCommand    NoCommand\n" +
		"[slot 2] NoCommand    NoCommand\n" +
		"[slot 3] NoCommand    NoCommand\n" +
		"[slot 4] NoCommand    NoCommand\n" +
		"[slot 5] NoCommand    NoCommand\n" +
		"[slot 6] NoCommand    NoCommand\n"

	assert.Equal(t, want, remote.Describe())
	assert.Equal(t, rc.DefaultSlots, remote.Slots())
	assert.Equal(t, remote.Describe(), remote.String())
}

func TestRemoteControl_DescribeBindings(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl(rc.WithSlots(4))

	party := rc.NewMacroCommand("PartyMode",
		home.NewLightOnCommand(room.light),
		home.NewFanHighCommand(room.fan),
		home.NewStereoOnWithCDCommand(room.stereo),
	)

	require.NoError(t, remote.Bind(0, home.NewLightOnCommand(room.light), home.NewLightOffCommand(room.light)))
	require.NoError(t, remote.Bind(1, home.NewFanHighCommand(room.fan), home.NewFanOffCommand(room.fan)))
	require.NoError(t, remote.Bind(2, home.NewStereoOnWithCDCommand(room.stereo), home.NewStereoOffCommand(room.stereo)))
	require.NoError(t, remote.Bind(3, party, nil))

	want := "------ Remote Control -------\n" +
		"[slot 0] LightOnCommand    LightOffCommand\n" +
		"[slot 1] FanHighCommand    FanOffCommand\n" +
		"[slot 2] StereoOnWithCDCommand    StereoOffCommand\n" +
		"[slot 3] PartyMode    NoCommand\n"

	assert.Equal(t, want, remote.Describe())
	assert.Empty(t, room.hook.AllEntries(), "Describe must not touch receivers")
	assert.False(t, remote.CanUndo(), "Describe must not touch history")
}

func TestRemoteControl_BindOutOfRange(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	before := remote.Describe()

	for _, slot := range []int{-1, rc.DefaultSlots, 100} {
		err := remote.Bind(slot, home.NewLightOnCommand(room.light), nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, rc.ErrSlotOutOfRange))

		var rangeErr *rc.SlotOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, slot, rangeErr.Slot)
		assert.Equal(t, rc.DefaultSlots, rangeErr.Slots)
	}

	assert.Equal(t, before, remote.Describe())
	assert.False(t, remote.CanUndo())
}

func TestRemoteControl_BindDoesNotTouchHistory(t *testing.T) {
	counter := &fixtures.Counter{}
	remote := rc.NewRemoteControl()

	require.NoError(t, remote.Bind(0, fixtures.NewAddCommand(counter, 1), nil))
	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	require.NoError(t, remote.Bind(0, fixtures.NewAddCommand(counter, 10), nil))

	assert.Len(t, remote.History(), 1)
	assert.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, 0, counter.Value, "undo reverses the command that was dispatched, not the new binding")
}

func TestRemoteControl_DispatchOutOfRange(t *testing.T) {
	remote := rc.NewRemoteControl(rc.WithSlots(2))

	err := remote.DispatchOn(t.Context(), 2)
	assert.ErrorIs(t, err, rc.ErrSlotOutOfRange)

	err = remote.DispatchOff(t.Context(), -1)
	assert.ErrorIs(t, err, rc.ErrSlotOutOfRange)

	assert.False(t, remote.CanUndo(), "rejected dispatches are not recorded")
}

func TestRemoteControl_DispatchUnboundSlot(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()

	require.NoError(t, remote.DispatchOn(t.Context(), 5))
	require.NoError(t, remote.DispatchOff(t.Context(), 6))

	assert.Empty(t, room.hook.AllEntries())
	assert.False(t, room.light.IsOn())

	history := remote.History()
	require.Len(t, history, 2)
	assert.Equal(t, "NoCommand", rc.CommandName(history[0].Command))

	assert.True(t, remote.UndoLast(t.Context()))
	assert.True(t, remote.UndoLast(t.Context()))
	assert.Empty(t, room.hook.AllEntries())
}

func TestRemoteControl_UndoOnEmptyHistory(t *testing.T) {
	logger, hook := test.NewNullLogger()
	remote := rc.NewRemoteControl(rc.WithLogger(logrus.NewEntry(logger)))

	assert.False(t, remote.UndoLast(t.Context()))
	assert.False(t, remote.UndoLast(t.Context()))

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, "no commands to undo", hook.LastEntry().Message)
}

func TestRemoteControl_DispatchThenUndoIsIdentity(t *testing.T) {
	for slot := 0; slot < rc.DefaultSlots; slot++ {
		for _, startOn := range []bool{false, true} {
			t.Run(fmt.Sprintf("slot %d start on=%v", slot, startOn), func(t *testing.T) {
				room := newLivingRoom()
				if startOn {
					room.light.TurnOn()
				}
				remote := rc.NewRemoteControl()
				require.NoError(t, remote.Bind(slot, home.NewLightOnCommand(room.light), home.NewLightOffCommand(room.light)))

				require.NoError(t, remote.DispatchOn(t.Context(), slot))
				assert.True(t, room.light.IsOn())

				require.True(t, remote.UndoLast(t.Context()))
				assert.Equal(t, startOn, room.light.IsOn())
			})
		}
	}
}

func TestRemoteControl_RepeatedDispatchKeepsLatestSnapshot(t *testing.T) {
	var value int
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(0, snapshotCommand("Inc", &value, func(v int) int { return v + 1 }), nil))

	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	require.Equal(t, 2, value)

	require.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, 1, value, "undo restores the state before the second invoke")
}

func TestRemoteControl_MultiLevelUndo(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(0, home.NewLightOnCommand(room.light), home.NewLightOffCommand(room.light)))
	require.NoError(t, remote.Bind(1, home.NewFanMediumCommand(room.fan), home.NewFanOffCommand(room.fan)))

	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	require.NoError(t, remote.DispatchOn(t.Context(), 1))
	require.NoError(t, remote.DispatchOff(t.Context(), 0))

	require.True(t, remote.UndoLast(t.Context()))
	assert.True(t, room.light.IsOn())
	assert.Equal(t, home.FanMedium, room.fan.Speed())

	require.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, home.FanOff, room.fan.Speed())

	require.True(t, remote.UndoLast(t.Context()))
	assert.False(t, room.light.IsOn())

	assert.False(t, remote.UndoLast(t.Context()))
}

func TestRemoteControl_LastCommandHistory(t *testing.T) {
	counter := &fixtures.Counter{}
	remote := rc.NewRemoteControl(rc.WithHistory(rc.NewLastCommandHistory()))
	require.NoError(t, remote.Bind(0, fixtures.NewAddCommand(counter, 1), fixtures.NewAddCommand(counter, 10)))

	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	require.NoError(t, remote.DispatchOff(t.Context(), 0))
	require.Equal(t, 11, counter.Value)

	assert.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, 1, counter.Value)
	assert.False(t, remote.UndoLast(t.Context()), "only one level of undo is kept")
	assert.Equal(t, 1, counter.Value)
}

func TestRemoteControl_HistoryEntries(t *testing.T) {
	spy := fixtures.NewSpyCommand().WithName("Spy").Build()
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(2, spy, spy))

	require.NoError(t, remote.DispatchOn(t.Context(), 2))
	onCtx := spy.LastCtx
	require.NoError(t, remote.DispatchOff(t.Context(), 2))

	history := remote.History()
	require.Len(t, history, 2)

	assert.Equal(t, rc.ButtonOff, history[0].Button)
	assert.Equal(t, rc.ButtonOn, history[1].Button)
	assert.Equal(t, 2, history[0].Slot)
	assert.NotEqual(t, uuid.Nil, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
	assert.False(t, history[0].DispatchedAt.Before(history[1].DispatchedAt))

	assert.Equal(t, history[1].ID, rc.DispatchIDFromContext(onCtx))
	assert.False(t, rc.IsReversing(onCtx))

	require.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, history[0].ID, rc.DispatchIDFromContext(spy.LastCtx))
	assert.True(t, rc.IsReversing(spy.LastCtx))

	invokes, reverses := spy.Counts()
	assert.Equal(t, 2, invokes)
	assert.Equal(t, 1, reverses)
}

func TestRemoteControl_ClearHistory(t *testing.T) {
	counter := &fixtures.Counter{}
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(0, fixtures.NewAddCommand(counter, 1), nil))
	require.NoError(t, remote.DispatchOn(t.Context(), 0))

	remote.ClearHistory()

	assert.False(t, remote.CanUndo())
	assert.False(t, remote.UndoLast(t.Context()))
	assert.Equal(t, 1, counter.Value, "clearing history does not reverse anything")
}

func TestRemoteControl_Binding(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	lightOn := home.NewLightOnCommand(room.light)
	require.NoError(t, remote.Bind(0, lightOn, nil))

	on, off, err := remote.Binding(0)
	require.NoError(t, err)
	assert.Same(t, lightOn, on)
	assert.Equal(t, rc.Null(), off)

	_, _, err = remote.Binding(42)
	assert.ErrorIs(t, err, rc.ErrSlotOutOfRange)
}

func TestNewRemoteControlFromConfig(t *testing.T) {
	remote, err := rc.NewRemoteControlFromConfig(rc.Config{Slots: 3, HistoryMode: rc.HistoryLast})
	require.NoError(t, err)
	assert.Equal(t, 3, remote.Slots())

	counter := &fixtures.Counter{}
	require.NoError(t, remote.Bind(2, fixtures.NewAddCommand(counter, 1), nil))
	require.NoError(t, remote.DispatchOn(t.Context(), 2))
	require.NoError(t, remote.DispatchOn(t.Context(), 2))
	assert.Len(t, remote.History(), 1)

	_, err = rc.NewRemoteControlFromConfig(rc.Config{Slots: 0, HistoryMode: rc.HistoryStack})
	assert.ErrorIs(t, err, rc.ErrInvalidSlotCount)

	_, err = rc.NewRemoteControlFromConfig(rc.Config{Slots: 2, HistoryMode: "tree"})
	assert.ErrorIs(t, err, rc.ErrInvalidHistoryMode)
}

// The scenarios below follow the living-room walkthrough: one receiver of
// each kind driven through a seven-slot remote.

func TestScenario_LightOnThenUndo(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(0, home.NewLightOnCommand(room.light), home.NewLightOffCommand(room.light)))
	require.False(t, room.light.IsOn())

	require.NoError(t, remote.DispatchOn(t.Context(), 0))
	assert.True(t, room.light.IsOn())

	require.True(t, remote.UndoLast(t.Context()))
	assert.False(t, room.light.IsOn())
}

func TestScenario_FanHighThenUndo(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(1, home.NewFanHighCommand(room.fan), home.NewFanOffCommand(room.fan)))
	require.Equal(t, home.FanOff, room.fan.Speed())

	require.NoError(t, remote.DispatchOn(t.Context(), 1))
	assert.Equal(t, home.FanHigh, room.fan.Speed())

	require.True(t, remote.UndoLast(t.Context()))
	assert.Equal(t, home.FanOff, room.fan.Speed())
}

func TestScenario_PartyMacroThenUndo(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	party := rc.NewMacroCommand("PartyMode",
		home.NewLightOnCommand(room.light),
		home.NewFanHighCommand(room.fan),
		home.NewStereoOnWithCDCommand(room.stereo),
	)
	require.NoError(t, remote.Bind(3, party, nil))
	before := room.stereo.State()

	require.NoError(t, remote.DispatchOn(t.Context(), 3))
	assert.True(t, room.light.IsOn())
	assert.Equal(t, home.FanHigh, room.fan.Speed())
	assert.True(t, room.stereo.IsOn())
	assert.Equal(t, home.SourceCD, room.stereo.Source())
	assert.Equal(t, home.CDVolume, room.stereo.Volume())

	room.hook.Reset()
	require.True(t, remote.UndoLast(t.Context()))

	assert.False(t, room.light.IsOn())
	assert.Equal(t, home.FanOff, room.fan.Speed())
	assert.Equal(t, before, room.stereo.State())

	devices := compact(room.devices())
	assert.Equal(t, []string{"stereo", "fan", "light"}, devices, "macro reverses in stereo, fan, light order")
}

func TestScenario_OffThenUndoRestores(t *testing.T) {
	room := newLivingRoom()
	remote := rc.NewRemoteControl()
	require.NoError(t, remote.Bind(0, home.NewLightOnCommand(room.light), home.NewLightOffCommand(room.light)))
	require.NoError(t, remote.Bind(1, home.NewFanHighCommand(room.fan), home.NewFanOffCommand(room.fan)))
	require.NoError(t, remote.Bind(2, home.NewStereoOnWithCDCommand(room.stereo), home.NewStereoOffCommand(room.stereo)))

	ctx := t.Context()
	for slot := 0; slot < 3; slot++ {
		require.NoError(t, remote.DispatchOn(ctx, slot))
		require.NoError(t, remote.DispatchOff(ctx, slot))
		require.True(t, remote.UndoLast(ctx))
	}

	assert.True(t, room.light.IsOn())
	assert.Equal(t, home.FanHigh, room.fan.Speed())
	assert.True(t, room.stereo.IsOn())
	assert.Equal(t, home.SourceCD, room.stereo.Source())
	assert.Equal(t, home.CDVolume, room.stereo.Volume())
}

// compact collapses consecutive duplicates.
func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if len(out) == 0 || !strings.EqualFold(out[len(out)-1], s) {
			out = append(out, s)
		}
	}
	return out
}
