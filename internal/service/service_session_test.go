// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/mock"
	"github.com/MKhiriev/botfather-relay/internal/prompt"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── EnsureReady ───────────────────────────────────────────────────────────────

func TestSession_AlreadyAuthorizedSkipsLogin(t *testing.T) {
	p := &staticPrompt{}
	s := newStack(transport.NewMemory(), p).session

	assert.Equal(t, models.Unauthenticated, s.State())
	mustEnsureReady(t, s)
	assert.Equal(t, models.Authenticated, s.State())
	assert.Zero(t, p.codeAsked)
}

func TestSession_CodeLogin(t *testing.T) {
	p := &staticPrompt{code: "12345"}
	s := newStack(transport.NewMemory(transport.WithLogin("12345", "")), p).session

	mustEnsureReady(t, s)
	assert.Equal(t, models.Authenticated, s.State())
	assert.Equal(t, 1, p.codeAsked)
	assert.Zero(t, p.passAsked)

	// a ready session does not ask again
	mustEnsureReady(t, s)
	assert.Equal(t, 1, p.codeAsked)
}

func TestSession_SecondFactorLogin(t *testing.T) {
	p := &staticPrompt{code: "12345", password: "hunter2"}
	s := newStack(transport.NewMemory(transport.WithLogin("12345", "hunter2")), p).session

	mustEnsureReady(t, s)
	assert.Equal(t, models.Authenticated, s.State())
	assert.Equal(t, 1, p.codeAsked)
	assert.Equal(t, 1, p.passAsked)
}

func TestSession_WrongSecondFactor(t *testing.T) {
	p := &staticPrompt{code: "12345", password: "wrong"}
	s := newStack(transport.NewMemory(transport.WithLogin("12345", "hunter2")), p).session

	err := s.EnsureReady(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAuth)
	assert.Equal(t, models.Unauthenticated, s.State())
}

func TestSession_InvalidCodeInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)

	gomock.InOrder(
		notes.EXPECT().Get(gomock.Any(), prompt.CodeNoteKey).Return("00000", nil),
		notes.EXPECT().Delete(gomock.Any(), prompt.CodeNoteKey).Return(nil),
	)

	cached := prompt.NewCached(prompt.None{}, notes, logger.Nop())
	s := newStack(transport.NewMemory(transport.WithLogin("12345", "")), cached).session

	err := s.EnsureReady(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAuth)
	assert.ErrorIs(t, err, transport.ErrPhoneCodeInvalid)
	assert.Equal(t, models.Unauthenticated, s.State())
}

func TestSession_PromptDisabled(t *testing.T) {
	s := newStack(transport.NewMemory(transport.WithLogin("12345", "")), prompt.None{}).session

	err := s.EnsureReady(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAuth)
	assert.ErrorIs(t, err, prompt.ErrPromptDisabled)
	assert.Equal(t, models.Unauthenticated, s.State())
}

func TestSession_NoPhone(t *testing.T) {
	session := NewSessionService(transport.NewMemory(transport.WithLogin("1", "")), &staticPrompt{}, testPolicy(), "", logger.Nop())

	err := session.EnsureReady(context.Background())
	assert.ErrorIs(t, err, app.ErrAuth)
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestSession_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	boom := errors.New("dial tcp: connection refused")
	tr.EXPECT().IsConnected().Return(false).AnyTimes()
	tr.EXPECT().Connect(gomock.Any()).Return(boom).Times(3)

	s := newStack(tr, &staticPrompt{}).session
	err := s.EnsureReady(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrSession)
	assert.ErrorIs(t, err, app.ErrTransport)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.Unauthenticated, s.State())
}

func TestSession_FloodWaitDuringLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(false, nil)
	gomock.InOrder(
		tr.EXPECT().RequestCode(gomock.Any(), testPhone).Return(&transport.FloodWaitError{Wait: time.Hour}).Times(5),
		tr.EXPECT().RequestCode(gomock.Any(), testPhone).Return(nil),
	)
	tr.EXPECT().SignIn(gomock.Any(), testPhone, "555").Return(nil)

	s := newStack(tr, &staticPrompt{code: "555"}).session
	mustEnsureReady(t, s)
	assert.Equal(t, models.Authenticated, s.State())
}

// ── Do ────────────────────────────────────────────────────────────────────────

func TestSession_DisconnectThenReconnectWithoutCode(t *testing.T) {
	p := &staticPrompt{code: "12345"}
	m := transport.NewMemory(transport.WithLogin("12345", ""))
	s := newStack(m, p).session
	mustEnsureReady(t, s)

	m.FailNext(transport.ErrDisconnected)
	err := s.Do(context.Background(), func(ctx context.Context, t transport.Transport) error {
		_, err := t.FetchLatest(ctx, 1)
		return err
	})
	require.ErrorIs(t, err, transport.ErrDisconnected)
	assert.Equal(t, models.Disconnected, s.State())

	m.Drop()
	err = s.Do(context.Background(), func(ctx context.Context, t transport.Transport) error {
		_, err := t.FetchLatest(ctx, 1)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, models.Authenticated, s.State())
	assert.Equal(t, 1, p.codeAsked)
}

func TestSession_RevokedAuthorizationRequiresLogin(t *testing.T) {
	p := &staticPrompt{code: "12345"}
	m := transport.NewMemory(transport.WithLogin("12345", ""))
	st := newStack(m, p)
	mustEnsureReady(t, st.session)

	m.Revoke()
	_, err := st.messages.Send(context.Background(), "/start")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAuth)
	assert.Equal(t, models.Unauthenticated, st.session.State())

	_, err = st.messages.Send(context.Background(), "/start")
	require.NoError(t, err)
	assert.Equal(t, models.Authenticated, st.session.State())
	assert.Equal(t, 2, p.codeAsked)
}

func TestSession_DoSerializesOperations(t *testing.T) {
	s := newStack(transport.NewMemory(), &staticPrompt{}).session

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- s.Do(context.Background(), func(context.Context, transport.Transport) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Do(ctx, func(context.Context, transport.Transport) error {
		t.Error("second operation must not run while the first holds the session")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-done)
}

// ── Shutdown ──────────────────────────────────────────────────────────────────

func TestSession_Shutdown(t *testing.T) {
	m := transport.NewMemory()
	s := newStack(m, &staticPrompt{}).session
	mustEnsureReady(t, s)

	require.NoError(t, s.Shutdown(context.Background()))
	assert.Equal(t, models.Disconnected, s.State())
	assert.False(t, m.IsConnected())

	// idempotent
	require.NoError(t, s.Shutdown(context.Background()))

	err := s.EnsureReady(context.Background())
	assert.ErrorIs(t, err, app.ErrSession)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_ShutdownDisconnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)
	tr.EXPECT().Disconnect(gomock.Any()).Return(errors.New("gateway gone"))

	s := newStack(tr, &staticPrompt{}).session
	err := s.Shutdown(context.Background())
	assert.ErrorIs(t, err, app.ErrSession)
}

// ── transitions ───────────────────────────────────────────────────────────────

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.SessionState
		want     bool
	}{
		{models.Unauthenticated, models.AwaitingCode, true},
		{models.Unauthenticated, models.Authenticated, true},
		{models.Unauthenticated, models.AwaitingSecondFactor, false},
		{models.AwaitingCode, models.AwaitingSecondFactor, true},
		{models.AwaitingCode, models.Authenticated, true},
		{models.AwaitingSecondFactor, models.Authenticated, true},
		{models.AwaitingSecondFactor, models.AwaitingCode, false},
		{models.Authenticated, models.AwaitingCode, false},
		{models.Authenticated, models.Disconnected, true},
		{models.Authenticated, models.Unauthenticated, true},
		{models.Disconnected, models.Authenticated, true},
		{models.Disconnected, models.AwaitingCode, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}
