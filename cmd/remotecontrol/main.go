// Command remotecontrol drives a living room through a seven-slot remote and
// prints the slot table after every button press.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/terraskye/remotecontrol"
	"github.com/terraskye/remotecontrol/audit"
	"github.com/terraskye/remotecontrol/home"
	"github.com/terraskye/remotecontrol/logging"
	"github.com/terraskye/remotecontrol/metrics"
	rcotel "github.com/terraskye/remotecontrol/otel"
)

func main() {
	if err := run(context.Background()); err != nil {
		logrus.WithError(err).Fatal("remote control demo failed")
	}
}

func run(ctx context.Context) error {
	cfg, err := remotecontrol.LoadConfig()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log := logrus.NewEntry(logger)

	slogLevel := slog.LevelInfo
	if level >= logrus.DebugLevel {
		slogLevel = slog.LevelDebug
	}
	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel}))

	rc, err := remotecontrol.NewRemoteControlFromConfig(cfg, remotecontrol.WithLogger(log))
	if err != nil {
		return err
	}

	var remote remotecontrol.Remote = rc
	if cfg.AuditFile != "" {
		journal, err := audit.OpenFile(cfg.AuditFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := journal.Err(); err != nil {
				log.WithError(err).Warn("audit journal incomplete")
			}
			journal.Close()
		}()
		remote = audit.WithRemoteAudit(journal, remote)
	}
	remote = metrics.WithRemoteMetrics(metrics.MustNew(prometheus.NewRegistry()), remote)
	remote = rcotel.WithRemoteTelemetry(remote, rcotel.WithOperation("living-room"))
	remote = logging.WithRemoteLogging(slogger, remote)

	opt := home.WithLogger(log)
	light := home.NewLight("Living Room", opt)
	fan := home.NewFan("Living Room", opt)
	stereo := home.NewStereo("Living Room", opt)

	wrap := func(cmd remotecontrol.Command) remotecontrol.Command {
		return logging.WithCommandLogging(log, rcotel.WithCommandTelemetry(cmd))
	}

	bindings := []struct {
		slot    int
		on, off remotecontrol.Command
	}{
		{0, home.NewLightOnCommand(light), home.NewLightOffCommand(light)},
		{1, home.NewFanHighCommand(fan), home.NewFanOffCommand(fan)},
		{2, home.NewStereoOnWithCDCommand(stereo), home.NewStereoOffCommand(stereo)},
	}
	for _, b := range bindings {
		if err := remote.Bind(b.slot, wrap(b.on), wrap(b.off)); err != nil {
			return err
		}
	}

	show := func() { fmt.Println(remote.Describe()) }
	press := func(slot int, on bool) error {
		if on {
			return remote.DispatchOn(ctx, slot)
		}
		return remote.DispatchOff(ctx, slot)
	}

	show()
	steps := []struct {
		slot int
		on   bool
		undo bool
	}{
		{slot: 0, on: true},
		{slot: 1, on: true},
		{slot: 1, on: false},
		{undo: true},
		{slot: 2, on: true},
		{slot: 2, on: false},
	}
	for _, s := range steps {
		if s.undo {
			remote.UndoLast(ctx)
		} else if err := press(s.slot, s.on); err != nil {
			return err
		}
		show()
	}

	// fresh instances: a command shared with slots 0 to 2 would share its snapshot
	party := remotecontrol.NewMacroCommand("PartyMode",
		wrap(home.NewLightOnCommand(light)),
		wrap(home.NewFanHighCommand(fan)),
		wrap(home.NewStereoOnWithCDCommand(stereo)),
	)
	if err := remote.Bind(3, party, nil); err != nil {
		return err
	}

	fmt.Println("--- Pushing Party Mode On---")
	if err := press(3, true); err != nil {
		return err
	}
	show()

	fmt.Println("--- Undoing Party Mode ---")
	remote.UndoLast(ctx)
	show()
	return nil
}
