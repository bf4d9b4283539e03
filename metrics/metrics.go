// Package metrics exports remote control activity as prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraskye/remotecontrol"
)

// Metrics holds the collectors for one or more remotes.
type Metrics struct {
	Binds      *prometheus.CounterVec
	Dispatches *prometheus.CounterVec
	Undos      *prometheus.CounterVec
	Rejected   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Binds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remote_control_binds_total",
				Help: "Total number of slot bindings",
			},
			[]string{"slot"},
		),
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remote_control_dispatches_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"slot", "button"},
		),
		Undos: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remote_control_undos_total",
				Help: "Total number of undo requests by outcome",
			},
			[]string{"result"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remote_control_rejected_total",
				Help: "Total number of bind and dispatch calls rejected for an invalid slot",
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.Binds, m.Dispatches, m.Undos, m.Rejected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer) *Metrics {
	m, err := New(reg)
	if err != nil {
		panic("failed to register remote control metrics: " + err.Error())
	}
	return m
}

type remoteMetrics struct {
	m    *Metrics
	next remotecontrol.Remote
}

// WithRemoteMetrics wraps a Remote so every operation is counted in m.
func WithRemoteMetrics(m *Metrics, next remotecontrol.Remote) remotecontrol.Remote {
	return &remoteMetrics{m: m, next: next}
}

func (r *remoteMetrics) Bind(slot int, on, off remotecontrol.Command) error {
	err := r.next.Bind(slot, on, off)
	if r.rejected("bind", err) {
		return err
	}
	r.m.Binds.WithLabelValues(strconv.Itoa(slot)).Inc()
	return err
}

func (r *remoteMetrics) DispatchOn(ctx context.Context, slot int) error {
	err := r.next.DispatchOn(ctx, slot)
	r.dispatched(slot, remotecontrol.ButtonOn, err)
	return err
}

func (r *remoteMetrics) DispatchOff(ctx context.Context, slot int) error {
	err := r.next.DispatchOff(ctx, slot)
	r.dispatched(slot, remotecontrol.ButtonOff, err)
	return err
}

func (r *remoteMetrics) dispatched(slot int, button remotecontrol.Button, err error) {
	if r.rejected("dispatch_"+button.String(), err) {
		return
	}
	r.m.Dispatches.WithLabelValues(strconv.Itoa(slot), button.String()).Inc()
}

func (r *remoteMetrics) UndoLast(ctx context.Context) bool {
	undone := r.next.UndoLast(ctx)
	result := "applied"
	if !undone {
		result = "empty"
	}
	r.m.Undos.WithLabelValues(result).Inc()
	return undone
}

func (r *remoteMetrics) Describe() string {
	return r.next.Describe()
}

func (r *remoteMetrics) rejected(op string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, remotecontrol.ErrSlotOutOfRange) {
		r.m.Rejected.WithLabelValues(op).Inc()
	}
	return true
}
