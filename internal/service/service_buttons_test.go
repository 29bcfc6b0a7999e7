// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/mock"
	"github.com/MKhiriev/botfather-relay/internal/transport"
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// keyboard is a 2x2 grid: [[Foo, Bar], [Baz, Qux]].
func keyboard() models.ButtonGrid {
	return models.ButtonGrid{
		{{Label: "Foo", Data: []byte("foo")}, {Label: "Bar", Data: []byte("bar")}},
		{{Label: "Baz", Data: []byte("baz")}, {Label: "Qux", Data: []byte("qux")}},
	}
}

func newClickStack(t *testing.T) (stack, *transport.Memory, int64) {
	t.Helper()
	m := transport.NewMemory(transport.WithClickHandler(func(_ models.Message, data []byte) (transport.ClickAnswer, error) {
		return transport.ClickAnswer{Text: "pressed " + string(data)}, nil
	}))
	pushed := m.Push(models.Message{Text: "pick one", Buttons: keyboard()})
	return newStack(m, &staticPrompt{}), m, pushed[0].ID
}

// ── Click ─────────────────────────────────────────────────────────────────────

func TestClick_ByLabel(t *testing.T) {
	for _, label := range []string{"Foo", "foo", "@foo", " FOO "} {
		t.Run(label, func(t *testing.T) {
			st, m, id := newClickStack(t)

			res, err := st.buttons.Click(context.Background(), &id, models.ByLabel(label))
			require.NoError(t, err)
			assert.True(t, res.OK())
			assert.Equal(t, id, res.MessageID)
			assert.Equal(t, label, res.Button)
			assert.Equal(t, "pressed foo", res.Result)
			assert.Equal(t, []int64{id}, m.Clicks())
		})
	}
}

func TestClick_ByPosition(t *testing.T) {
	st, _, id := newClickStack(t)

	res, err := st.buttons.Click(context.Background(), &id, models.ByPosition(1, 0))
	require.NoError(t, err)
	assert.Equal(t, models.ClickStatusSuccess, res.Status)
	assert.Equal(t, "(1, 0)", res.Button)
	assert.Equal(t, "pressed baz", res.Result)
}

func TestClick_LatestMessageWhenNoID(t *testing.T) {
	st, _, id := newClickStack(t)

	res, err := st.buttons.Click(context.Background(), nil, models.ByLabel("Qux"))
	require.NoError(t, err)
	assert.Equal(t, id, res.MessageID)
	assert.Equal(t, "pressed qux", res.Result)
}

func TestClick_ResolutionFailures(t *testing.T) {
	tests := []struct {
		name   string
		sel    models.ButtonSelector
		result string
	}{
		{"unknown label", models.ByLabel("Nope"), "Button with text 'Nope' not found"},
		{"row out of range", models.ByPosition(5, 0), "Row 5 out of range"},
		{"column out of range", models.ByPosition(0, 5), "Column 5 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, m, id := newClickStack(t)

			res, err := st.buttons.Click(context.Background(), &id, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, models.ClickStatusError, res.Status)
			assert.Equal(t, tt.result, res.Result)
			assert.Equal(t, id, res.MessageID)
			assert.ErrorIs(t, res.Reason, app.ErrNotFound)
			assert.Empty(t, m.Clicks())
		})
	}
}

func TestClick_MessageWithoutButtons(t *testing.T) {
	m := transport.NewMemory()
	pushed := m.Push(models.Message{Text: "plain"})
	st := newStack(m, &staticPrompt{})

	res, err := st.buttons.Click(context.Background(), &pushed[0].ID, models.ByLabel("Foo"))
	require.NoError(t, err)
	assert.Equal(t, models.ClickStatusError, res.Status)
	assert.Equal(t, app.MsgNoButtons, res.Result)
}

func TestClick_MessageNotFound(t *testing.T) {
	st, _, _ := newClickStack(t)

	res, err := st.buttons.Click(context.Background(), ptr(int64(999)), models.ByLabel("Foo"))
	require.NoError(t, err)
	assert.Equal(t, models.ClickStatusError, res.Status)
	assert.Equal(t, app.MsgMessageNotFound, res.Result)
	assert.Equal(t, int64(999), res.MessageID)
}

func TestClick_EmptyConversation(t *testing.T) {
	st := newStack(transport.NewMemory(), &staticPrompt{})

	res, err := st.buttons.Click(context.Background(), nil, models.ByLabel("Foo"))
	require.NoError(t, err)
	assert.Equal(t, models.ClickStatusError, res.Status)
	assert.Equal(t, app.MsgNoMessages, res.Result)
}

func TestClick_LatestMessageNotFound(t *testing.T) {
	st, m, _ := newClickStack(t)
	m.FailNext(transport.ErrMessageNotFound)

	var res models.ClickResult
	var err error
	require.NotPanics(t, func() {
		res, err = st.buttons.Click(context.Background(), nil, models.ByLabel("Foo"))
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClickStatusError, res.Status)
	assert.Equal(t, app.MsgNoMessages, res.Result)
	assert.Zero(t, res.MessageID)
	assert.ErrorIs(t, res.Reason, app.ErrNotFound)
	assert.Empty(t, m.Clicks())
}

func TestClick_InvalidSelectorNeverReachesTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl) // no calls expected
	st := newStack(tr, &staticPrompt{})

	for _, sel := range []models.ButtonSelector{
		{},
		{Label: "Foo", Row: ptr(0), Col: ptr(0)},
		{Row: ptr(0)},
		{Row: ptr(-1), Col: ptr(0)},
	} {
		_, err := st.buttons.Click(context.Background(), nil, sel)
		assert.ErrorIs(t, err, app.ErrValidation)
	}
}

func TestClick_TransportFailureIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)
	boom := errors.New("rpc timeout")

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(true, nil)
	tr.EXPECT().GetMessage(gomock.Any(), int64(3)).Return(models.Message{ID: 3, Buttons: keyboard()}, nil)
	tr.EXPECT().Click(gomock.Any(), int64(3), []byte("bar")).Return(transport.ClickAnswer{}, boom).Times(3)

	st := newStack(tr, &staticPrompt{})
	_, err := st.buttons.Click(context.Background(), ptr(int64(3)), models.ByLabel("bar"))
	assert.ErrorIs(t, err, app.ErrTransport)
	assert.ErrorIs(t, err, boom)
}

func TestClick_AnswerWithoutText(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	tr.EXPECT().IsConnected().Return(true).AnyTimes()
	tr.EXPECT().IsAuthorized(gomock.Any()).Return(true, nil)
	tr.EXPECT().FetchLatest(gomock.Any(), 1).Return([]models.Message{{ID: 8, Buttons: keyboard()}}, nil)
	tr.EXPECT().Click(gomock.Any(), int64(8), []byte("foo")).Return(transport.ClickAnswer{}, nil)

	st := newStack(tr, &staticPrompt{})
	res, err := st.buttons.Click(context.Background(), nil, models.ByPosition(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "callback answer (alert=false, no text)", res.Result)
}

func TestClick_NotDeduplicated(t *testing.T) {
	st, m, id := newClickStack(t)

	for n := 0; n < 2; n++ {
		_, err := st.buttons.Click(context.Background(), &id, models.ByLabel("Foo"))
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{id, id}, m.Clicks())
}

// ── ListButtons ───────────────────────────────────────────────────────────────

func TestListButtons(t *testing.T) {
	st, _, id := newClickStack(t)

	msg, err := st.buttons.ListButtons(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, id, msg.ID)
	assert.Equal(t, [][]string{{"Foo", "Bar"}, {"Baz", "Qux"}}, msg.Buttons.LabelRows())

	_, err = st.buttons.ListButtons(context.Background(), ptr(int64(404)))
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "mybot", normalizeLabel("  @MyBot "))
	assert.Equal(t, "my bot", normalizeLabel("My Bot"))
	assert.Equal(t, "", normalizeLabel("@"))
}
