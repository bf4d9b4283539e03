package home

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/terraskye/remotecontrol"
)

// Source is a stereo input.
type Source string

const (
	SourceCD    Source = "CD"
	SourceDVD   Source = "DVD"
	SourceRadio Source = "Radio"
)

func (s Source) Valid() bool {
	switch s {
	case SourceCD, SourceDVD, SourceRadio:
		return true
	default:
		return false
	}
}

// Stereo limits.
const (
	MinVolume    = 0
	MaxVolume    = 100
	MinFrequency = 87.5
	MaxFrequency = 108.0

	// CDVolume is the level StereoOnWithCDCommand plays at.
	CDVolume = 11
)

// StereoState is everything a command needs to put a stereo back the way
// it was.
type StereoState struct {
	On        bool
	Source    Source
	Volume    int
	Frequency float64
}

// Stereo is a multi-source device. Source, volume and frequency can only be
// changed while it is on.
type Stereo struct {
	location string
	state    StereoState
	log      *logrus.Entry
}

// NewStereo creates a stereo that starts off, on CD, at volume 0 and tuned
// to the bottom of the FM band.
func NewStereo(location string, opts ...Option) *Stereo {
	o := newOptions("stereo", location, opts)
	return &Stereo{
		location: location,
		state: StereoState{
			Source:    SourceCD,
			Frequency: MinFrequency,
		},
		log: o.logger,
	}
}

func (s *Stereo) On() {
	s.state.On = true
	s.log.Infof("%s stereo is ON", s.location)
}

func (s *Stereo) Off() {
	s.state.On = false
	s.log.Infof("%s stereo is OFF", s.location)
}

func (s *Stereo) SetCD()    { s.SetSource(SourceCD) }
func (s *Stereo) SetDVD()   { s.SetSource(SourceDVD) }
func (s *Stereo) SetRadio() { s.SetSource(SourceRadio) }

// SetSource switches the input. Ignored while off or for unknown sources.
func (s *Stereo) SetSource(src Source) {
	if !s.state.On {
		s.log.Debugf("ignoring source %q while off", src)
		return
	}
	if !src.Valid() {
		s.log.Debugf("ignoring unknown source %q", src)
		return
	}
	s.state.Source = src
	s.log.Infof("%s stereo is set for %s input", s.location, src)
	if src == SourceRadio {
		s.log.Infof("Current frequency: %.1f MHz", s.state.Frequency)
	}
}

// SetVolume sets the volume. Ignored while off or outside [0,100].
func (s *Stereo) SetVolume(level int) {
	if !s.state.On || level < MinVolume || level > MaxVolume {
		s.log.Debugf("ignoring volume %d", level)
		return
	}
	s.state.Volume = level
	s.log.Infof("%s stereo volume set to %d", s.location, level)
}

// SetFrequency tunes the radio. Ignored unless on, playing radio and inside
// the FM band.
func (s *Stereo) SetFrequency(freq float64) {
	if !s.state.On || s.state.Source != SourceRadio || freq < MinFrequency || freq > MaxFrequency {
		s.log.Debugf("ignoring frequency %.1f", freq)
		return
	}
	s.state.Frequency = freq
	s.log.Infof("%s radio frequency set to %.1f MHz", s.location, freq)
}

func (s *Stereo) IsOn() bool         { return s.state.On }
func (s *Stereo) Source() Source     { return s.state.Source }
func (s *Stereo) Volume() int        { return s.state.Volume }
func (s *Stereo) Frequency() float64 { return s.state.Frequency }
func (s *Stereo) Location() string   { return s.location }
func (s *Stereo) State() StereoState { return s.state }

var (
	_ remotecontrol.Command = (*StereoOnWithCDCommand)(nil)
	_ remotecontrol.Command = (*StereoOffCommand)(nil)
	_ remotecontrol.Command = (*StereoVolumeCommand)(nil)
)

// stereoCommand snapshots the whole stereo state on Invoke and replays it
// through the stereo's own mutators on Reverse.
type stereoCommand struct {
	stereo  *Stereo
	prev    StereoState
	invoked bool
}

func (c *stereoCommand) capture() {
	c.prev = c.stereo.State()
	c.invoked = true
}

func (c *stereoCommand) Reverse(context.Context) {
	if !c.invoked {
		return
	}
	s, prev := c.stereo, c.prev
	// settings can only be applied while powered
	s.On()
	s.SetSource(prev.Source)
	if prev.Source == SourceRadio {
		s.SetFrequency(prev.Frequency)
	}
	s.SetVolume(prev.Volume)
	if !prev.On {
		s.Off()
	}
}

// StereoOnWithCDCommand switches a stereo on, selects CD and sets the volume
// to CDVolume.
type StereoOnWithCDCommand struct{ stereoCommand }

func NewStereoOnWithCDCommand(stereo *Stereo) *StereoOnWithCDCommand {
	return &StereoOnWithCDCommand{stereoCommand{stereo: stereo}}
}

func (c *StereoOnWithCDCommand) Invoke(context.Context) {
	c.capture()
	c.stereo.On()
	c.stereo.SetCD()
	c.stereo.SetVolume(CDVolume)
}

// StereoOffCommand switches a stereo off. Reversing it restores source and
// volume as well as power.
type StereoOffCommand struct{ stereoCommand }

func NewStereoOffCommand(stereo *Stereo) *StereoOffCommand {
	return &StereoOffCommand{stereoCommand{stereo: stereo}}
}

func (c *StereoOffCommand) Invoke(context.Context) {
	c.capture()
	c.stereo.Off()
}

// StereoVolumeCommand sets a stereo to a fixed volume.
type StereoVolumeCommand struct {
	stereoCommand
	level int
}

func NewStereoVolumeCommand(stereo *Stereo, level int) *StereoVolumeCommand {
	return &StereoVolumeCommand{stereoCommand: stereoCommand{stereo: stereo}, level: level}
}

func (c *StereoVolumeCommand) Invoke(context.Context) {
	c.capture()
	c.stereo.SetVolume(c.level)
}
