// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/botfather-relay/models"
)

// Responder produces the bot's replies to an incoming text. IDs and dates of
// the returned messages are assigned by the memory transport.
type Responder func(text string) []models.Message

// ClickHandler produces the bot's answer to a button press on msg.
type ClickHandler func(msg models.Message, data []byte) (ClickAnswer, error)

// MemoryOption configures a [Memory] transport.
type MemoryOption func(*Memory)

// WithResponder sets the bot script.
func WithResponder(r Responder) MemoryOption {
	return func(m *Memory) { m.responder = r }
}

// WithClickHandler sets the button press script.
func WithClickHandler(h ClickHandler) MemoryOption {
	return func(m *Memory) { m.clickHandler = h }
}

// WithLogin makes the transport start unauthorized and accept only code
// (and password, when non-empty, as a second factor).
func WithLogin(code, password string) MemoryOption {
	return func(m *Memory) {
		m.authorized = false
		m.code = code
		m.password = password
	}
}

// WithClock overrides the clock used for message dates.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// Memory is an in-process scripted bot implementing [Transport].
// It is safe for concurrent use.
type Memory struct {
	mu sync.Mutex

	connected  bool
	authorized bool
	codeSent   bool
	code       string
	password   string
	pending2FA bool

	nextID   int64
	messages []models.Message
	faults   []error
	clicks   []int64

	responder    Responder
	clickHandler ClickHandler
	now          func() time.Time
}

// NewMemory returns an authorized, disconnected memory transport.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		authorized: true,
		nextID:     1,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Push appends messages that the bot sent on its own (backlog, late
// replies). It returns them with assigned IDs.
func (m *Memory) Push(msgs ...models.Message) []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appendLocked(msgs...)
}

// FailNext queues errors returned, in order, by the next data operations
// (Send, FetchSince, FetchLatest, GetMessage, Click).
func (m *Memory) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults = append(m.faults, errs...)
}

// Drop simulates a connection loss.
func (m *Memory) Drop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
}

// Revoke simulates the authorization being terminated remotely.
func (m *Memory) Revoke() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authorized = false
}

// Clicks returns the IDs of messages whose buttons were pressed, in order.
func (m *Memory) Clicks() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.clicks...)
}

// Connect implements [Transport].
func (m *Memory) Connect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = true
	return nil
}

// Disconnect implements [Transport].
func (m *Memory) Disconnect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// IsConnected implements [Transport].
func (m *Memory) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// IsAuthorized implements [Transport].
func (m *Memory) IsAuthorized(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return false, ErrDisconnected
	}
	return m.authorized, nil
}

// RequestCode implements [Transport].
func (m *Memory) RequestCode(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrDisconnected
	}
	m.codeSent = true
	return nil
}

// SignIn implements [Transport].
func (m *Memory) SignIn(_ context.Context, _ string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrDisconnected
	}
	if !m.codeSent || code != m.code {
		return ErrPhoneCodeInvalid
	}
	if m.password != "" {
		m.pending2FA = true
		return ErrSecondFactorRequired
	}
	m.authorized = true
	return nil
}

// SignInPassword implements [Transport].
func (m *Memory) SignInPassword(_ context.Context, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return ErrDisconnected
	}
	if !m.pending2FA || password != m.password {
		return ErrPhoneCodeInvalid
	}
	m.pending2FA = false
	m.authorized = true
	return nil
}

// Send implements [Transport]. The bot's replies, if any, are appended
// right after the sent message.
func (m *Memory) Send(_ context.Context, text string) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkLocked(); err != nil {
		return models.Message{}, err
	}

	sent := m.appendLocked(models.Message{Text: text})[0]
	if m.responder != nil {
		m.appendLocked(m.responder(text)...)
	}
	return sent, nil
}

// FetchSince implements [Transport].
func (m *Memory) FetchSince(_ context.Context, minID int64, limit int) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkLocked(); err != nil {
		return nil, err
	}

	var out []models.Message
	for _, msg := range m.messages {
		if msg.ID <= minID {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, msg)
	}
	return out, nil
}

// FetchLatest implements [Transport].
func (m *Memory) FetchLatest(_ context.Context, limit int) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkLocked(); err != nil {
		return nil, err
	}

	start := 0
	if limit > 0 && len(m.messages) > limit {
		start = len(m.messages) - limit
	}
	return append([]models.Message(nil), m.messages[start:]...), nil
}

// GetMessage implements [Transport].
func (m *Memory) GetMessage(_ context.Context, id int64) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkLocked(); err != nil {
		return models.Message{}, err
	}

	msg, ok := m.findLocked(id)
	if !ok {
		return models.Message{}, ErrMessageNotFound
	}
	return msg, nil
}

// Click implements [Transport].
func (m *Memory) Click(_ context.Context, messageID int64, data []byte) (ClickAnswer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkLocked(); err != nil {
		return ClickAnswer{}, err
	}

	msg, ok := m.findLocked(messageID)
	if !ok {
		return ClickAnswer{}, ErrMessageNotFound
	}
	m.clicks = append(m.clicks, messageID)

	if m.clickHandler == nil {
		return ClickAnswer{}, nil
	}
	return m.clickHandler(msg, data)
}

func (m *Memory) checkLocked() error {
	if !m.connected {
		return ErrDisconnected
	}
	if !m.authorized {
		return ErrAuthKeyUnregistered
	}
	if len(m.faults) > 0 {
		err := m.faults[0]
		m.faults = m.faults[1:]
		return err
	}
	return nil
}

func (m *Memory) appendLocked(msgs ...models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, msg := range msgs {
		msg.ID = m.nextID
		m.nextID++
		if msg.Date.IsZero() {
			msg.Date = m.now()
		}
		m.messages = append(m.messages, msg)
		out = append(out, msg)
	}
	return out
}

func (m *Memory) findLocked(id int64) (models.Message, bool) {
	i := sort.Search(len(m.messages), func(i int) bool { return m.messages[i].ID >= id })
	if i < len(m.messages) && m.messages[i].ID == id {
		return m.messages[i], true
	}
	return models.Message{}, false
}
