// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/botfather-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connected(t *testing.T, m *Memory) *Memory {
	t.Helper()
	require.NoError(t, m.Connect(context.Background()))
	return m
}

func TestMemory_RequiresConnection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.IsAuthorized(ctx)
	assert.ErrorIs(t, err, ErrDisconnected)
	_, err = m.Send(ctx, "hi")
	assert.ErrorIs(t, err, ErrDisconnected)

	connected(t, m)
	authorized, err := m.IsAuthorized(ctx)
	require.NoError(t, err)
	assert.True(t, authorized)

	m.Drop()
	assert.False(t, m.IsConnected())
	_, err = m.FetchLatest(ctx, 1)
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestMemory_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("code only", func(t *testing.T) {
		m := connected(t, NewMemory(WithLogin("12345", "")))

		authorized, err := m.IsAuthorized(ctx)
		require.NoError(t, err)
		assert.False(t, authorized)

		assert.ErrorIs(t, m.SignIn(ctx, "+1", "12345"), ErrPhoneCodeInvalid, "code must be requested first")
		require.NoError(t, m.RequestCode(ctx, "+1"))
		assert.ErrorIs(t, m.SignIn(ctx, "+1", "00000"), ErrPhoneCodeInvalid)
		require.NoError(t, m.SignIn(ctx, "+1", "12345"))

		authorized, err = m.IsAuthorized(ctx)
		require.NoError(t, err)
		assert.True(t, authorized)
	})

	t.Run("second factor", func(t *testing.T) {
		m := connected(t, NewMemory(WithLogin("12345", "hunter2")))

		assert.ErrorIs(t, m.SignInPassword(ctx, "hunter2"), ErrPhoneCodeInvalid, "password before code")
		require.NoError(t, m.RequestCode(ctx, "+1"))
		assert.ErrorIs(t, m.SignIn(ctx, "+1", "12345"), ErrSecondFactorRequired)
		assert.ErrorIs(t, m.SignInPassword(ctx, "wrong"), ErrPhoneCodeInvalid)
		require.NoError(t, m.SignInPassword(ctx, "hunter2"))

		_, err := m.Send(ctx, "hi")
		assert.NoError(t, err)
	})

	t.Run("revoked", func(t *testing.T) {
		m := connected(t, NewMemory())
		m.Revoke()

		_, err := m.Send(ctx, "hi")
		assert.ErrorIs(t, err, ErrAuthKeyUnregistered)
	})
}

func TestMemory_Conversation(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	m := connected(t, NewMemory(
		WithClock(func() time.Time { return now }),
		WithResponder(func(text string) []models.Message {
			return []models.Message{{Text: "echo " + text}, {Text: "done"}}
		}),
	))
	ctx := context.Background()

	backlog := m.Push(models.Message{Text: "old"})
	require.Len(t, backlog, 1)
	assert.Equal(t, int64(1), backlog[0].ID)

	sent, err := m.Send(ctx, "ping")
	require.NoError(t, err)
	assert.Equal(t, int64(2), sent.ID)
	assert.Equal(t, now, sent.Date)

	since, err := m.FetchSince(ctx, sent.ID, 10)
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "echo ping", since[0].Text)
	assert.Equal(t, int64(4), since[1].ID)

	limited, err := m.FetchSince(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(limited))

	latest, err := m.FetchLatest(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(latest))

	all, err := m.FetchLatest(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(all))

	msg, err := m.GetMessage(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "echo ping", msg.Text)

	_, err = m.GetMessage(ctx, 42)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMemory_FailNext(t *testing.T) {
	m := connected(t, NewMemory())
	ctx := context.Background()
	boom := errors.New("boom")

	m.FailNext(&FloodWaitError{Wait: 3 * time.Second}, boom)

	_, err := m.Send(ctx, "a")
	wait, ok := AsFloodWait(err)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, wait)

	_, err = m.FetchLatest(ctx, 1)
	assert.ErrorIs(t, err, boom)

	// faults are consumed by data operations only
	authorized, err := m.IsAuthorized(ctx)
	require.NoError(t, err)
	assert.True(t, authorized)

	_, err = m.Send(ctx, "b")
	assert.NoError(t, err)
}

func TestMemory_Click(t *testing.T) {
	m := connected(t, NewMemory())
	ctx := context.Background()
	msgs := m.Push(models.Message{Text: "pick", Buttons: models.ButtonGrid{{{Label: "A", Data: []byte("a")}}}})

	answer, err := m.Click(ctx, msgs[0].ID, []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, ClickAnswer{}, answer)

	_, err = m.Click(ctx, 77, []byte("a"))
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = m.Click(ctx, msgs[0].ID, []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []int64{msgs[0].ID, msgs[0].ID}, m.Clicks())
}

func TestBotFatherDemo(t *testing.T) {
	m := connected(t, NewBotFatherDemo())
	ctx := context.Background()

	say := func(text string) []models.Message {
		t.Helper()
		sent, err := m.Send(ctx, text)
		require.NoError(t, err)
		replies, err := m.FetchSince(ctx, sent.ID, 0)
		require.NoError(t, err)
		return replies
	}

	replies := say("/mybots")
	require.Len(t, replies, 1)
	assert.Equal(t, "You have currently no bots.", replies[0].Text)

	replies = say("/newbot")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "How are we going to call it?")

	say("Demo")
	replies = say("demo_user")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "must end in 'bot'")

	replies = say("@demo_bot")
	require.Len(t, replies, 2)
	assert.Contains(t, replies[0].Text, "Congratulations on your new bot Demo")
	assert.Contains(t, replies[1].Text, "token")

	replies = say("/mybots")
	require.Len(t, replies, 1)
	assert.Equal(t, [][]string{{"@demo_bot"}}, replies[0].Buttons.LabelRows())

	answer, err := m.Click(ctx, replies[0].ID, replies[0].Buttons[0][0].Data)
	require.NoError(t, err)
	assert.Equal(t, "Here it is: @demo_bot. What do you want to do with the bot?", answer.Text)

	replies = say("hello?")
	require.Len(t, replies, 1)
	assert.Equal(t, "Unrecognized command. Say what?", replies[0].Text)
}

func ids(msgs []models.Message) []int64 {
	out := make([]int64, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.ID)
	}
	return out
}
