package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

type fakeConn struct {
	mu        sync.Mutex
	subjects  []string
	messages  [][]byte
	flushes   int
	drained   bool
	publishFn func() error
}

func (c *fakeConn) Publish(subj string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.publishFn != nil {
		if err := c.publishFn(); err != nil {
			return err
		}
	}

	c.subjects = append(c.subjects, subj)
	c.messages = append(c.messages, data)

	return nil
}

func (c *fakeConn) FlushWithContext(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++

	return nil
}

func (c *fakeConn) Drain() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drained = true

	return nil
}

func TestNATSPublisher(t *testing.T) {
	t.Parallel()

	t.Run("publishes json on subject", func(t *testing.T) {
		t.Parallel()

		c := &fakeConn{}
		p, err := newNATSPublisher(c, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultSubject, p.Subject())

		err = p.Publish(context.Background(), &Snapshot{Sequence: 1, Total: 1, Agents: []convoso.AgentMonitorData{{UserID: 7}}})
		require.NoError(t, err)

		require.Len(t, c.messages, 1)
		assert.Equal(t, DefaultSubject, c.subjects[0])
		assert.Equal(t, 1, c.flushes)

		var got Snapshot
		require.NoError(t, json.Unmarshal(c.messages[0], &got))
		assert.Equal(t, 7, got.Agents[0].UserID)
	})

	t.Run("rejects invalid subject", func(t *testing.T) {
		t.Parallel()

		_, err := newNATSPublisher(&fakeConn{}, "bad subject")
		require.ErrorIs(t, err, ErrInvalidSubject)
	})

	t.Run("publish error is wrapped", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		p, err := newNATSPublisher(&fakeConn{publishFn: func() error { return boom }}, "agents.live")
		require.NoError(t, err)

		err = p.Publish(context.Background(), &Snapshot{})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "publishing to agents.live")
	})

	t.Run("close drains once and blocks publish", func(t *testing.T) {
		t.Parallel()

		c := &fakeConn{}
		p, err := newNATSPublisher(c, "agents.live")
		require.NoError(t, err)

		require.NoError(t, p.Close())
		require.NoError(t, p.Close())
		assert.True(t, c.drained)
		require.ErrorIs(t, p.Publish(context.Background(), &Snapshot{}), ErrClosed)
	})
}

func TestWriterPublisher(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	p := NewWriterPublisher(&buf)
	require.NoError(t, p.Publish(context.Background(), &Snapshot{Sequence: 1}))
	require.NoError(t, p.Publish(context.Background(), &Snapshot{Sequence: 2}))
	require.NoError(t, p.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"sequence":2`)
}

type fakeMonitor struct {
	mu    sync.Mutex
	calls int
	fail  map[int]error
}

func (m *fakeMonitor) Search(context.Context, *convoso.AgentMonitorSearchParams) (*convoso.Result[convoso.AgentMonitorSearchResponse], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if err := m.fail[m.calls]; err != nil {
		return nil, err
	}

	return &convoso.Result[convoso.AgentMonitorSearchResponse]{
		Success: true,
		Data: &convoso.AgentMonitorSearchResponse{
			Success: true,
			Data:    []convoso.AgentMonitorData{{UserID: m.calls}, {UserID: 100}},
		},
	}, nil
}

func (m *fakeMonitor) Logout(context.Context, *convoso.AgentMonitorLogoutParams) (*convoso.Result[convoso.AgentMonitorLogoutResponse], error) {
	return nil, errors.New("not used")
}

type recordingPublisher struct {
	snapshots []*Snapshot
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, s *Snapshot) error {
	if p.err != nil {
		return p.err
	}

	p.snapshots = append(p.snapshots, s)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops after count and skips failed polls", func(t *testing.T) {
		t.Parallel()

		monitor := &fakeMonitor{fail: map[int]error{2: &convoso.APIError{Message: "down", StatusCode: 503}}}
		pub := &recordingPublisher{}
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		w := &Watcher{Monitor: monitor, Publisher: pub, Interval: time.Millisecond, Count: 2, now: func() time.Time { return fixed }}
		require.NoError(t, w.Run(context.Background()))

		require.Len(t, pub.snapshots, 2)
		assert.Equal(t, uint64(1), pub.snapshots[0].Sequence)
		assert.Equal(t, uint64(2), pub.snapshots[1].Sequence)
		assert.Equal(t, 3, pub.snapshots[1].Agents[0].UserID)
		assert.Equal(t, 2, pub.snapshots[0].Total)
		assert.Equal(t, fixed, pub.snapshots[0].Timestamp)
		assert.Equal(t, 3, monitor.calls)
	})

	t.Run("publish failure stops", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		w := &Watcher{Monitor: &fakeMonitor{}, Publisher: &recordingPublisher{err: boom}, Interval: time.Millisecond}
		require.ErrorIs(t, w.Run(context.Background()), boom)
	})

	t.Run("context cancel ends cleanly", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		w := &Watcher{Monitor: &fakeMonitor{}, Publisher: &recordingPublisher{}, Interval: 5 * time.Millisecond}
		require.NoError(t, w.Run(ctx))
	})

	t.Run("interval required", func(t *testing.T) {
		t.Parallel()

		w := &Watcher{Monitor: &fakeMonitor{}, Publisher: &recordingPublisher{}}
		require.ErrorIs(t, w.Run(context.Background()), ErrInvalidInterval)
	})
}
