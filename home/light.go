package home

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/terraskye/remotecontrol"
)

// Light is an on/off switch.
type Light struct {
	location string
	on       bool
	log      *logrus.Entry
}

// NewLight creates a light that starts switched off.
func NewLight(location string, opts ...Option) *Light {
	o := newOptions("light", location, opts)
	return &Light{location: location, log: o.logger}
}

func (l *Light) TurnOn() {
	l.on = true
	l.log.Infof("%s light is now ON", l.location)
}

func (l *Light) TurnOff() {
	l.on = false
	l.log.Infof("%s light is now OFF", l.location)
}

func (l *Light) IsOn() bool       { return l.on }
func (l *Light) Location() string { return l.location }

var (
	_ remotecontrol.Command = (*LightOnCommand)(nil)
	_ remotecontrol.Command = (*LightOffCommand)(nil)
)

// lightCommand remembers whether the light was on before the last Invoke.
type lightCommand struct {
	light   *Light
	wasOn   bool
	invoked bool
}

func (c *lightCommand) capture() {
	c.wasOn = c.light.IsOn()
	c.invoked = true
}

func (c *lightCommand) Reverse(context.Context) {
	if !c.invoked {
		return
	}
	if c.wasOn {
		c.light.TurnOn()
	} else {
		c.light.TurnOff()
	}
}

// LightOnCommand turns a light on.
type LightOnCommand struct{ lightCommand }

func NewLightOnCommand(light *Light) *LightOnCommand {
	return &LightOnCommand{lightCommand{light: light}}
}

func (c *LightOnCommand) Invoke(context.Context) {
	c.capture()
	c.light.TurnOn()
}

// LightOffCommand turns a light off.
type LightOffCommand struct{ lightCommand }

func NewLightOffCommand(light *Light) *LightOffCommand {
	return &LightOffCommand{lightCommand{light: light}}
}

func (c *LightOffCommand) Invoke(context.Context) {
	c.capture()
	c.light.TurnOff()
}
