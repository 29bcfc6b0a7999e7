// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/mock"
	"github.com/MKhiriev/botfather-relay/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestTerminal(input string, tty bool, secret string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Terminal{
		in:         bufio.NewReader(strings.NewReader(input)),
		out:        out,
		isTerminal: func(int) bool { return tty },
		readPassword: func(int) ([]byte, error) {
			return []byte(secret), nil
		},
	}, out
}

// ── None ──────────────────────────────────────────────────────────────────────

func TestNone(t *testing.T) {
	_, err := None{}.Code(context.Background())
	assert.ErrorIs(t, err, ErrPromptDisabled)

	_, err = None{}.Password(context.Background())
	assert.ErrorIs(t, err, ErrPromptDisabled)
}

// ── Terminal ──────────────────────────────────────────────────────────────────

func TestTerminal_Code(t *testing.T) {
	term, out := newTestTerminal("  12345 \n", false, "")

	code, err := term.Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12345", code)
	assert.Contains(t, out.String(), "login code")
}

func TestTerminal_CodeWithoutTrailingNewline(t *testing.T) {
	term, _ := newTestTerminal("777", false, "")

	code, err := term.Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "777", code)
}

func TestTerminal_EmptyInput(t *testing.T) {
	term, _ := newTestTerminal("\n", false, "")

	_, err := term.Code(context.Background())
	assert.Error(t, err)
}

func TestTerminal_PasswordFromTTY(t *testing.T) {
	term, out := newTestTerminal("ignored\n", true, "hunter2")

	secret, err := term.Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)
	assert.NotContains(t, out.String(), "hunter2")
}

func TestTerminal_PasswordFromPipe(t *testing.T) {
	term, _ := newTestTerminal("piped-secret\n", false, "")

	secret, err := term.Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "piped-secret", secret)
}

func TestTerminal_CancelledContext(t *testing.T) {
	term, out := newTestTerminal("12345\n", false, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.Code(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

// ── Cached ────────────────────────────────────────────────────────────────────

func TestCached_UsesStoredCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	next := mock.NewMockCredentialPrompt(ctrl)

	notes.EXPECT().Get(gomock.Any(), CodeNoteKey).Return("55555", nil)

	code, err := NewCached(next, notes, logger.Nop()).Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "55555", code)
}

func TestCached_AsksAndStoresOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	next := mock.NewMockCredentialPrompt(ctrl)

	gomock.InOrder(
		notes.EXPECT().Get(gomock.Any(), CodeNoteKey).Return("", store.ErrNoteNotFound),
		next.EXPECT().Code(gomock.Any()).Return("24680", nil),
		notes.EXPECT().Put(gomock.Any(), CodeNoteKey, "24680").Return(nil),
	)

	code, err := NewCached(next, notes, logger.Nop()).Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "24680", code)
}

func TestCached_StoreFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	next := mock.NewMockCredentialPrompt(ctrl)

	notes.EXPECT().Get(gomock.Any(), CodeNoteKey).Return("", errors.New("disk I/O error"))
	next.EXPECT().Code(gomock.Any()).Return("13579", nil)
	notes.EXPECT().Put(gomock.Any(), CodeNoteKey, "13579").Return(errors.New("read-only database"))

	code, err := NewCached(next, notes, logger.Nop()).Code(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "13579", code)
}

func TestCached_PromptErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)

	notes.EXPECT().Get(gomock.Any(), CodeNoteKey).Return("", store.ErrNoteNotFound)

	_, err := NewCached(None{}, notes, logger.Nop()).Code(context.Background())
	assert.ErrorIs(t, err, ErrPromptDisabled)
}

func TestCached_PasswordIsNeverStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	next := mock.NewMockCredentialPrompt(ctrl)

	next.EXPECT().Password(gomock.Any()).Return("s3cret", nil)

	secret, err := NewCached(next, notes, logger.Nop()).Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret)
}

func TestCached_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)

	notes.EXPECT().Delete(gomock.Any(), CodeNoteKey).Return(nil)

	var inv Invalidator = NewCached(None{}, notes, logger.Nop())
	assert.NoError(t, inv.Invalidate(context.Background()))
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)

	assert.IsType(t, None{}, New(config.PromptNone, notes, &bytes.Buffer{}, logger.Nop()))
	assert.IsType(t, None{}, New("", nil, &bytes.Buffer{}, logger.Nop()))
	assert.IsType(t, &Terminal{}, New(config.PromptTerminal, nil, &bytes.Buffer{}, logger.Nop()))
	assert.IsType(t, &Cached{}, New(config.PromptTerminal, notes, &bytes.Buffer{}, logger.Nop()))
}
