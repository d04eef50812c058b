// Package observer provides hooks notified about the outcome of tool calls
// and estimate fallbacks, with logging, metrics, printing and fan-out implementations.
package observer

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/effective-security/vendrmcp/pkg/metricskey"
	"github.com/effective-security/vendrmcp/utils"
	"github.com/effective-security/xlog"
)

//go:generate mockgen -source=observer.go -destination=../mocks/mockobserver/observer_mock.gen.go -package mockobserver

// Tags are structured attributes of an event
type Tags map[string]string

// Tag keys
const (
	TagKind      = "kind"
	TagTool      = "tool"
	TagReason    = "reason"
	TagScopeID   = "scope_id"
	TagCompanyID = "company_id"
	TagArgs      = "args"
	TagDuration  = "duration"
)

// Event kinds
const (
	KindTool     = "tool"
	KindFallback = "fallback"
)

// ReasonInvalidInput is the reason tag of a call rejected by validation
const ReasonInvalidInput = "invalid_input"

// Observer is notified when an operation succeeds or fails.
type Observer interface {
	OnSuccess(ctx context.Context, op string, tags Tags)
	OnError(ctx context.Context, op string, err error, tags Tags)
}

// ensure that the observers implement the interface
var (
	_ Observer = (*Noop)(nil)
	_ Observer = (*Printer)(nil)
	_ Observer = (*PackageLogger)(nil)
	_ Observer = (*Metrics)(nil)
	_ Observer = (*Fanout)(nil)
	_ Observer = (*Stats)(nil)
)

// OrNoop returns o, or Noop if o is nil
func OrNoop(o Observer) Observer {
	if o == nil {
		return NewNoop()
	}
	return o
}

// Noop is an observer that does nothing.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (l *Noop) OnSuccess(ctx context.Context, op string, tags Tags) {}

func (l *Noop) OnError(ctx context.Context, op string, err error, tags Tags) {}

// Fanout is an observer that forwards the events to multiple observers.
type Fanout struct {
	observers []Observer
}

func NewFanout(observers ...Observer) *Fanout {
	return &Fanout{observers: observers}
}

func (l *Fanout) Add(o Observer) {
	l.observers = append(l.observers, o)
}

func (l *Fanout) OnSuccess(ctx context.Context, op string, tags Tags) {
	for _, o := range l.observers {
		o.OnSuccess(ctx, op, tags)
	}
}

func (l *Fanout) OnError(ctx context.Context, op string, err error, tags Tags) {
	for _, o := range l.observers {
		o.OnError(ctx, op, err, tags)
	}
}

// Mode defines the mode for printing
type Mode int

const (
	// ModeDefault prints the operation and the error
	ModeDefault Mode = iota
	// ModeVerbose prints the tags as well
	ModeVerbose
)

// Printer is an observer that prints to the Writer.
type Printer struct {
	Out  io.Writer
	Mode Mode

	lock sync.Mutex
}

func NewPrinter(out io.Writer, mode Mode) *Printer {
	return &Printer{Out: out, Mode: mode}
}

func (l *Printer) OnSuccess(ctx context.Context, op string, tags Tags) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.Out, "Success: %s\n", op)
	if l.Mode == ModeVerbose && len(tags) > 0 {
		fmt.Fprintf(l.Out, "Tags: %s\n", tags.String())
	}
}

func (l *Printer) OnError(ctx context.Context, op string, err error, tags Tags) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fmt.Fprintf(l.Out, "Error: %s: %s\n", op, err.Error())
	if l.Mode == ModeVerbose && len(tags) > 0 {
		fmt.Fprintf(l.Out, "Tags: %s\n", tags.String())
	}
}

// PackageLogger is an observer that writes to the logger.
type PackageLogger struct {
	logger *xlog.PackageLogger
}

func NewPackageLogger(logger *xlog.PackageLogger) *PackageLogger {
	return &PackageLogger{logger: logger}
}

func (l *PackageLogger) OnSuccess(ctx context.Context, op string, tags Tags) {
	l.logger.ContextKV(ctx, xlog.DEBUG, tags.kv("event", "success", "op", op)...)
}

func (l *PackageLogger) OnError(ctx context.Context, op string, err error, tags Tags) {
	level := xlog.ERROR
	if tags[TagReason] == ReasonInvalidInput || tags[TagKind] == KindFallback {
		level = xlog.WARNING
	}
	l.logger.ContextKV(ctx, level, tags.kv("event", "error", "op", op, "err", err.Error())...)
}

// Metrics is an observer that increments the counters of the event kind.
type Metrics struct{}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (l *Metrics) OnSuccess(ctx context.Context, op string, tags Tags) {
	switch tags[TagKind] {
	case KindTool:
		metricskey.StatsToolCallsSucceeded.IncrCounter(1, op)
	case KindFallback:
		metricskey.StatsFallbackUsed.IncrCounter(1, op)
	}
}

func (l *Metrics) OnError(ctx context.Context, op string, err error, tags Tags) {
	switch tags[TagKind] {
	case KindTool:
		if tags[TagReason] == ReasonInvalidInput {
			metricskey.StatsToolCallsInvalidInput.IncrCounter(1, op)
		}
		metricskey.StatsToolCallsFailed.IncrCounter(1, op)
	case KindFallback:
		metricskey.StatsFallbackFailed.IncrCounter(1, op)
	}
}

// Keys returns the sorted tag keys
func (t Tags) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// String returns the tags as sorted k=v pairs
func (t Tags) String() string {
	var b strings.Builder
	for i, k := range t.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%s", k, t[k])
	}
	return b.String()
}

// With returns a copy of the tags with the key set
func (t Tags) With(k, v string) Tags {
	res := make(Tags, len(t)+1)
	maps.Copy(res, t)
	res[k] = v
	return res
}

func (t Tags) kv(prefix ...any) []any {
	res := append([]any{}, prefix...)
	for _, k := range t.Keys() {
		v := t[k]
		if k == TagArgs {
			v = utils.Truncate(v, utils.Serializers.Tracing.MaxLength, utils.TruncationSuffix)
		}
		res = append(res, k, v)
	}
	return res
}
