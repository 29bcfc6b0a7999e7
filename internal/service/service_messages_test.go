// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/mock"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func texts(msgs []models.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func scripted(replies map[string][]string) transport.Responder {
	return func(text string) []models.Message {
		var out []models.Message
		for _, r := range replies[text] {
			out = append(out, models.Message{Text: r})
		}
		return out
	}
}

// ── SendAndCollect ────────────────────────────────────────────────────────────

func TestSendAndCollect_RepliesInOrder(t *testing.T) {
	m := transport.NewMemory(transport.WithResponder(scripted(map[string][]string{
		"/newbot": {"first", "second", "third"},
	})))
	st := newStack(m, &staticPrompt{})

	replies, err := st.messages.SendAndCollect(context.Background(), "/newbot", 3, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, texts(replies))
	for i := 1; i < len(replies); i++ {
		assert.Greater(t, replies[i].ID, replies[i-1].ID)
	}
}

func TestSendAndCollect_BacklogExcluded(t *testing.T) {
	m := transport.NewMemory(transport.WithResponder(scripted(map[string][]string{
		"/mybots": {"fresh"},
	})))
	m.Push(models.Message{Text: "old one"}, models.Message{Text: "old two"})
	st := newStack(m, &staticPrompt{})

	replies, err := st.messages.SendAndCollect(context.Background(), "/mybots", 3, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, texts(replies))
}

func TestSendAndCollect_TruncatesToMax(t *testing.T) {
	m := transport.NewMemory(transport.WithResponder(scripted(map[string][]string{
		"/help": {"a", "b", "c", "d"},
	})))
	st := newStack(m, &staticPrompt{})

	replies, err := st.messages.SendAndCollect(context.Background(), "/help", 2, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts(replies))
}

func TestSendAndCollect_NoRepliesWithinWait(t *testing.T) {
	st := newStack(transport.NewMemory(), &staticPrompt{})

	start := time.Now()
	replies, err := st.messages.SendAndCollect(context.Background(), "/silence", 3, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSendAndCollect_LateRepliesPolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(true, nil)
	tr.EXPECT().Send(gomock.Any(), "/token").Return(models.Message{ID: 10, Text: "/token"}, nil)
	gomock.InOrder(
		tr.EXPECT().FetchSince(gomock.Any(), int64(10), 2).Return(nil, nil),
		tr.EXPECT().FetchSince(gomock.Any(), int64(10), 2).Return([]models.Message{{ID: 11, Text: "one"}}, nil),
		tr.EXPECT().FetchSince(gomock.Any(), int64(11), 1).Return([]models.Message{{ID: 12, Text: "two"}}, nil),
	)

	st := newStack(tr, &staticPrompt{})
	replies, err := st.messages.SendAndCollect(context.Background(), "/token", 2, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, texts(replies))
}

func TestSendAndCollect_IgnoresMessagesAtOrBelowFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(true, nil)
	tr.EXPECT().Send(gomock.Any(), "/x").Return(models.Message{ID: 5}, nil)
	tr.EXPECT().FetchSince(gomock.Any(), int64(5), 2).Return([]models.Message{
		{ID: 7, Text: "b"}, {ID: 4, Text: "stale"}, {ID: 5, Text: "self"}, {ID: 6, Text: "a"}, {ID: 6, Text: "a"},
	}, nil)

	st := newStack(tr, &staticPrompt{})
	replies, err := st.messages.SendAndCollect(context.Background(), "/x", 2, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts(replies))
}

func TestSendAndCollect_FloodWaitsAreNotCounted(t *testing.T) {
	m := transport.NewMemory(transport.WithResponder(scripted(map[string][]string{
		"/start": {"hi"},
	})))
	m.FailNext(
		&transport.FloodWaitError{Wait: 30 * time.Second},
		&transport.FloodWaitError{Wait: 30 * time.Second},
		&transport.FloodWaitError{Wait: 30 * time.Second},
		&transport.FloodWaitError{Wait: 30 * time.Second},
		&transport.FloodWaitError{Wait: 30 * time.Second},
	)
	st := newStack(m, &staticPrompt{})

	replies, err := st.messages.SendAndCollect(context.Background(), "/start", 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, texts(replies))
}

func TestSendAndCollect_TransientExhausted(t *testing.T) {
	m := transport.NewMemory()
	boom := errors.New("rpc timeout")
	m.FailNext(boom, boom, boom)
	st := newStack(m, &staticPrompt{})

	_, err := st.messages.SendAndCollect(context.Background(), "/start", 1, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrTransport)
	assert.ErrorIs(t, err, boom)
}

func TestSendAndCollect_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl) // no calls expected
	st := newStack(tr, &staticPrompt{})

	_, err := st.messages.SendAndCollect(context.Background(), "   ", 3, time.Second)
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = st.messages.SendAndCollect(context.Background(), "/start", 0, time.Second)
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidMaxReplies)
}

func TestSendAndCollect_CancelReturnsCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(true, nil)
	tr.EXPECT().Send(gomock.Any(), "/slow").Return(models.Message{ID: 1}, nil)
	tr.EXPECT().FetchSince(gomock.Any(), int64(1), 3).DoAndReturn(
		func(context.Context, int64, int) ([]models.Message, error) {
			cancel()
			return []models.Message{{ID: 2, Text: "partial"}}, nil
		})

	st := newStack(tr, &staticPrompt{})
	replies, err := st.messages.SendAndCollect(ctx, "/slow", 3, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"partial"}, texts(replies))
}

// ── Send / LatestReplies ──────────────────────────────────────────────────────

func TestSend(t *testing.T) {
	m := transport.NewMemory()
	st := newStack(m, &staticPrompt{})

	sent, err := st.messages.Send(context.Background(), "/start")
	require.NoError(t, err)
	assert.Equal(t, "/start", sent.Text)
	assert.Positive(t, sent.ID)

	_, err = st.messages.Send(context.Background(), "")
	assert.ErrorIs(t, err, app.ErrValidation)
}

func TestLatestReplies(t *testing.T) {
	m := transport.NewMemory()
	m.Push(models.Message{Text: "one"}, models.Message{Text: "two"}, models.Message{Text: "three"})
	st := newStack(m, &staticPrompt{})

	msgs, err := st.messages.LatestReplies(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, texts(msgs))

	msgs, err = st.messages.LatestReplies(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	_, err = st.messages.LatestReplies(context.Background(), 0)
	assert.ErrorIs(t, err, app.ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
