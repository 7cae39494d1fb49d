package orion

import (
	"context"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/gpuenv/glimpse"
)

// Observer receives the events of the window that do not change
// the state of the driver.
type Observer interface {
	Observe(ev glimpse.Event)
}

type ObserverFunc func(ev glimpse.Event)

func (fn ObserverFunc) Observe(ev glimpse.Event) {
	fn(ev)
}

// Discard is an Observer that drops all events.
var Discard Observer = ObserverFunc(func(glimpse.Event) {})

// signature groups events that look alike in the log, e.g.
// all cursor movements or all presses of the same key.
type signature struct {
	Kind   glimpse.EventKind
	Key    glimpse.Key
	Button glimpse.MouseButton
	Action glimpse.Action
}

func signatureOf(ev glimpse.Event) signature {
	return signature{
		Kind:   ev.Kind,
		Key:    ev.Key,
		Button: ev.Button,
		Action: ev.Action,
	}
}

// LogObserver writes events to a logger at debug level. Events with the
// same signature are logged at most once per Interval, the number of
// suppressed events is reported with the next entry.
type LogObserver struct {
	Logger   *slog.Logger
	Interval time.Duration

	now  func() time.Time
	seen *lru.Cache[signature, *seenEvent]
}

type seenEvent struct {
	loggedAt   time.Time
	suppressed int
}

const logObserverCacheSize = 128

func NewLogObserver(logger *slog.Logger) *LogObserver {
	// only fails for non positive sizes
	seen, _ := lru.New[signature, *seenEvent](logObserverCacheSize)

	return &LogObserver{
		Logger:   logger,
		Interval: time.Second,
		now:      time.Now,
		seen:     seen,
	}
}

func (o *LogObserver) Observe(ev glimpse.Event) {
	if !o.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	now := o.now()
	sig := signatureOf(ev)

	prev, ok := o.seen.Get(sig)
	if ok && now.Sub(prev.loggedAt) < o.Interval {
		prev.suppressed++
		return
	}

	suppressed := 0
	if ok {
		suppressed = prev.suppressed
	}

	o.seen.Add(sig, &seenEvent{loggedAt: now})

	o.Logger.Debug("Unhandled event",
		slog.String("event", ev.String()),
		slog.Int("suppressed", suppressed),
	)
}
