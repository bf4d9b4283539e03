package home

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/terraskye/remotecontrol"
)

// FanSpeed is one of the fixed, ordered fan levels.
type FanSpeed int

const (
	FanOff FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

func (s FanSpeed) String() string {
	switch s {
	case FanOff:
		return "off"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the known levels.
func (s FanSpeed) Valid() bool {
	return s >= FanOff && s <= FanHigh
}

// Fan is a multi-speed device. It remembers the speed it had before the
// most recent change.
type Fan struct {
	location  string
	speed     FanSpeed
	prevSpeed FanSpeed
	log       *logrus.Entry
}

// NewFan creates a fan that starts switched off.
func NewFan(location string, opts ...Option) *Fan {
	o := newOptions("fan", location, opts)
	return &Fan{location: location, log: o.logger}
}

func (f *Fan) High()   { f.set(FanHigh) }
func (f *Fan) Medium() { f.set(FanMedium) }
func (f *Fan) Low()    { f.set(FanLow) }
func (f *Fan) Off()    { f.set(FanOff) }

// SetSpeed changes the speed. Unknown levels are ignored.
func (f *Fan) SetSpeed(speed FanSpeed) {
	if !speed.Valid() {
		f.log.Debugf("ignoring unknown fan speed %d", int(speed))
		return
	}
	f.set(speed)
}

func (f *Fan) set(speed FanSpeed) {
	f.prevSpeed = f.speed
	f.speed = speed
	if speed == FanOff {
		f.log.Infof("%s fan is off", f.location)
		return
	}
	f.log.Infof("%s fan is on %s", f.location, speed)
}

func (f *Fan) Speed() FanSpeed         { return f.speed }
func (f *Fan) PreviousSpeed() FanSpeed { return f.prevSpeed }
func (f *Fan) Location() string        { return f.location }

// fanRestorers maps every reachable previous speed to the mutator that
// recreates it.
var fanRestorers = map[FanSpeed]func(*Fan){
	FanOff:    (*Fan).Off,
	FanLow:    (*Fan).Low,
	FanMedium: (*Fan).Medium,
	FanHigh:   (*Fan).High,
}

var (
	_ remotecontrol.Command = (*FanHighCommand)(nil)
	_ remotecontrol.Command = (*FanMediumCommand)(nil)
	_ remotecontrol.Command = (*FanLowCommand)(nil)
	_ remotecontrol.Command = (*FanOffCommand)(nil)
)

// fanSpeedCommand sets a fan to a fixed speed and captures the speed it had
// before, so Reverse can restore it.
type fanSpeedCommand struct {
	fan       *Fan
	target    FanSpeed
	prevSpeed FanSpeed
	invoked   bool
}

func (c *fanSpeedCommand) Invoke(context.Context) {
	c.prevSpeed = c.fan.Speed()
	c.invoked = true
	fanRestorers[c.target](c.fan)
}

func (c *fanSpeedCommand) Reverse(context.Context) {
	if !c.invoked {
		return
	}
	fanRestorers[c.prevSpeed](c.fan)
}

// FanHighCommand sets a fan to high.
type FanHighCommand struct{ fanSpeedCommand }

func NewFanHighCommand(fan *Fan) *FanHighCommand {
	return &FanHighCommand{fanSpeedCommand{fan: fan, target: FanHigh}}
}

// FanMediumCommand sets a fan to medium.
type FanMediumCommand struct{ fanSpeedCommand }

func NewFanMediumCommand(fan *Fan) *FanMediumCommand {
	return &FanMediumCommand{fanSpeedCommand{fan: fan, target: FanMedium}}
}

// FanLowCommand sets a fan to low.
type FanLowCommand struct{ fanSpeedCommand }

func NewFanLowCommand(fan *Fan) *FanLowCommand {
	return &FanLowCommand{fanSpeedCommand{fan: fan, target: FanLow}}
}

// FanOffCommand switches a fan off.
type FanOffCommand struct{ fanSpeedCommand }

func NewFanOffCommand(fan *Fan) *FanOffCommand {
	return &FanOffCommand{fanSpeedCommand{fan: fan, target: FanOff}}
}
