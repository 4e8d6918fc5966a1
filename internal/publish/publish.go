// Package publish delivers agent monitor snapshots to a sink: a NATS subject
// or a stream of JSON lines.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// DefaultSubject is the subject snapshots are published on when none is given.
const DefaultSubject = constants.DefaultNATSSubject

// Static errors for err113 compliance.
var (
	ErrInvalidSubject = errors.New("invalid subject")
	ErrClosed         = errors.New("publisher is closed")
)

// Snapshot is one poll of the agent monitor.
type Snapshot struct {
	Sequence  uint64                     `json:"sequence"`
	Timestamp time.Time                  `json:"timestamp"`
	Total     int                        `json:"total"`
	Agents    []convoso.AgentMonitorData `json:"agents"`
}

// Publisher sends snapshots to a sink.
type Publisher interface {
	Publish(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// conn is the subset of *nats.Conn the publisher uses.
type conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NATSConfig configures a NATS publisher.
type NATSConfig struct {
	URL     string
	Subject string
	// Name identifies the connection on the server.
	Name    string
	Timeout time.Duration
}

// NATSPublisher publishes snapshots as JSON messages on a NATS subject.
type NATSPublisher struct {
	conn    conn
	subject string

	mu     sync.Mutex
	closed bool
}

// NewNATSPublisher connects to the server described by config.
func NewNATSPublisher(config *NATSConfig) (*NATSPublisher, error) {
	url := config.URL
	if url == "" {
		url = nats.DefaultURL
	}

	opts := []nats.Option{nats.Name(config.Name)}
	if config.Timeout > 0 {
		opts = append(opts, nats.Timeout(config.Timeout))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	publisher, err := newNATSPublisher(nc, config.Subject)
	if err != nil {
		nc.Close()

		return nil, err
	}

	return publisher, nil
}

func newNATSPublisher(c conn, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	if !validSubject(subject) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}

	return &NATSPublisher{conn: c, subject: subject}, nil
}

// validSubject reports whether subject is a publishable NATS subject: dot
// separated non-empty tokens without whitespace or wildcards.
func validSubject(subject string) bool {
	if strings.ContainsAny(subject, " \t\r\n*>") {
		return false
	}

	for _, token := range strings.Split(subject, ".") {
		if token == "" {
			return false
		}
	}

	return true
}

// Subject returns the subject snapshots are published on.
func (p *NATSPublisher) Subject() string {
	return p.subject
}

// Publish encodes snapshot and waits until the server has received it.
func (p *NATSPublisher) Publish(ctx context.Context, snapshot *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	err = p.conn.Publish(p.subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", p.subject, err)
	}

	err = p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing %s: %w", p.subject, err)
	}

	return nil
}

// Close drains the connection. It is safe to call more than once.
func (p *NATSPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true

	return p.conn.Drain()
}

// WriterPublisher writes each snapshot as one JSON line.
type WriterPublisher struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriterPublisher returns a publisher writing to w.
func NewWriterPublisher(w io.Writer) *WriterPublisher {
	return &WriterPublisher{enc: json.NewEncoder(w)}
}

// Publish writes snapshot.
func (p *WriterPublisher) Publish(_ context.Context, snapshot *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.enc.Encode(snapshot)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Close is a no-op.
func (p *WriterPublisher) Close() error {
	return nil
}
