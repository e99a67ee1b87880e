package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nerrad567/panelgate/internal/activity"
	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
	"github.com/nerrad567/panelgate/internal/infrastructure/mqtt"
)

// Verb is a device command carried on the lock topic.
type Verb string

const (
	VerbLock   Verb = "lock"
	VerbUnlock Verb = "unlock"
	VerbArm    Verb = "arm"
	VerbDisarm Verb = "disarm"
)

// IsValidVerb reports whether v is one of the known device commands.
func IsValidVerb(v Verb) bool {
	switch v {
	case VerbLock, VerbUnlock, VerbArm, VerbDisarm:
		return true
	}
	return false
}

// Sentinel errors for bridge operations.
var (
	// ErrTransportUnavailable indicates the broker connection is down or
	// the publish failed. Callers treat this as "command not delivered":
	// nothing is appended to the activity log.
	ErrTransportUnavailable = errors.New("bridge: transport unavailable")

	// ErrInvalidVerb indicates an unknown device command.
	ErrInvalidVerb = errors.New("bridge: invalid command verb")

	// ErrClosed indicates the bridge has been shut down.
	ErrClosed = errors.New("bridge: closed")
)

// Transport is the broker surface the bridge needs. *mqtt.Client
// satisfies it; tests substitute a fake.
type Transport interface {
	PublishString(topic, payload string, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
}

// Recorder receives one activity line per inbound sensor event.
type Recorder interface {
	Append(ctx context.Context, event string) (*activity.Entry, error)
}

// Mirror is the optional time-series sink for sensor history.
type Mirror interface {
	WriteSensorEvent(topic, payload string)
	WriteCommand(topic, verb, subject string)
}

// sensorEvent is one inbound message queued for recording.
type sensorEvent struct {
	topic   string
	payload string
}

// eventBuffer is how many inbound sensor events may queue while the
// recorder catches up. Beyond this, events are dropped with a warning
// rather than blocking the broker callback.
const eventBuffer = 256

// appendTimeout bounds a single activity append from the drain worker.
const appendTimeout = 5 * time.Second

// Deps contains the bridge's dependencies.
type Deps struct {
	Transport Transport
	Log       Recorder
	Mirror    Mirror // optional, may be nil
	Logger    *logging.Logger
	QoS       byte
}

// Bridge connects the broker to the activity log.
//
// Outbound, it publishes validated device commands to the lock topic.
// Inbound, it subscribes to the sensor wildcard and records every
// message as an activity line, decoupled from the broker callback by
// a buffered channel and a single drain worker so recording order
// matches arrival order.
type Bridge struct {
	transport Transport
	log       Recorder
	mirror    Mirror
	logger    *logging.Logger
	topics    mqtt.Topics
	qos       byte

	eventCh   chan sensorEvent
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a bridge. Call Start to begin consuming sensor events.
func New(deps Deps) *Bridge {
	return &Bridge{
		transport: deps.Transport,
		log:       deps.Log,
		mirror:    deps.Mirror,
		logger:    deps.Logger,
		qos:       deps.QoS,
		eventCh:   make(chan sensorEvent, eventBuffer),
		done:      make(chan struct{}),
	}
}

// Start subscribes to the sensor wildcard and launches the drain
// worker. The context bounds Start itself, not the worker's lifetime;
// use Close to stop the bridge.
func (b *Bridge) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := b.transport.Subscribe(b.topics.SensorWildcard(), b.qos, b.handleSensorMessage); err != nil {
		return fmt.Errorf("subscribing to sensor topics: %w", err)
	}

	b.wg.Add(1)
	go b.drainEvents()

	b.logger.Info("event bridge started", "topic", b.topics.SensorWildcard(), "qos", b.qos)
	return nil
}

// PublishCommand sends a device command to the lock topic.
//
// The subject is recorded in the optional mirror only; the activity
// line for a command is the caller's responsibility so that delivery
// failures leave no log entry behind.
func (b *Bridge) PublishCommand(verb Verb, subject string) error {
	if !IsValidVerb(verb) {
		return fmt.Errorf("%w: %q", ErrInvalidVerb, verb)
	}

	select {
	case <-b.done:
		return ErrClosed
	default:
	}

	topic := b.topics.DeviceLock()
	if err := b.transport.PublishString(topic, string(verb), b.qos, false); err != nil {
		b.logger.Error("command publish failed", "verb", verb, "error", err)
		return fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}

	if b.mirror != nil {
		b.mirror.WriteCommand(topic, string(verb), subject)
	}

	return nil
}

// handleSensorMessage runs on the broker callback goroutine. It must
// not block: full buffer means the event is dropped, not queued.
func (b *Bridge) handleSensorMessage(topic string, payload []byte) error {
	ev := sensorEvent{topic: topic, payload: string(payload)}

	select {
	case b.eventCh <- ev:
	case <-b.done:
		return ErrClosed
	default:
		b.logger.Warn("sensor event buffer full, dropping event", "topic", topic)
	}

	return nil
}

// drainEvents is the single worker that turns queued sensor events
// into activity lines. One worker keeps log order matching arrival
// order. A failed append is logged and skipped: a database hiccup
// must not stop sensor ingestion.
func (b *Bridge) drainEvents() {
	defer b.wg.Done()

	for {
		select {
		case ev := <-b.eventCh:
			b.recordEvent(ev)
		case <-b.done:
			// Drain whatever is still buffered before exiting.
			for {
				select {
				case ev := <-b.eventCh:
					b.recordEvent(ev)
				default:
					return
				}
			}
		}
	}
}

func (b *Bridge) recordEvent(ev sensorEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	line := fmt.Sprintf("[MQTT] %s: %s", ev.topic, ev.payload)
	if _, err := b.log.Append(ctx, line); err != nil {
		b.logger.Error("recording sensor event failed", "topic", ev.topic, "error", err)
	}

	if b.mirror != nil {
		b.mirror.WriteSensorEvent(ev.topic, ev.payload)
	}
}

// Close stops the drain worker after it has flushed buffered events.
// Safe to call more than once.
func (b *Bridge) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.wg.Wait()
		b.logger.Info("event bridge stopped")
	})
	return nil
}
