package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/terraskye/remotecontrol"
)

type commandLogger struct {
	logger *logrus.Entry
	next   remotecontrol.Command
}

// WithCommandLogging wraps a Command with logging functionality.
// It logs the command name together with the dispatch id, slot and button
// taken from the context before Invoke and Reverse.
func WithCommandLogging(logger *logrus.Entry, next remotecontrol.Command) remotecontrol.Command {
	return &commandLogger{logger: logger, next: next}
}

func (c *commandLogger) Invoke(ctx context.Context) {
	c.entry(ctx).Infof("Invoke: %s", remotecontrol.CommandName(c.next))
	c.next.Invoke(ctx)
}

func (c *commandLogger) Reverse(ctx context.Context) {
	c.entry(ctx).Infof("Reverse: %s", remotecontrol.CommandName(c.next))
	c.next.Reverse(ctx)
}

// Name keeps the wrapped command's name visible in Describe.
func (c *commandLogger) Name() string {
	return remotecontrol.CommandName(c.next)
}

func (c *commandLogger) entry(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if id := remotecontrol.DispatchIDFromContext(ctx); id != uuid.Nil {
		fields["dispatch-id"] = id.String()
	}
	if slot, ok := remotecontrol.SlotFromContext(ctx); ok {
		fields["slot"] = slot
	}
	if button, ok := remotecontrol.ButtonFromContext(ctx); ok {
		fields["button"] = button.String()
	}
	return c.logger.WithContext(ctx).WithFields(fields)
}
