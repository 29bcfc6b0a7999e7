// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/botfather-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "/newbot", want: "/newbot"},
		{name: "trims", in: "  /start \n", want: "/start"},
		{name: "keeps inner newline and tab", in: "a\nb\tc", want: "a\nb\tc"},
		{name: "strips control chars", in: "/new\x00bot\x1b", want: "/newbot"},
		{name: "only whitespace", in: " \t\r\n ", want: ""},
		{name: "unicode kept", in: "привет 👋", want: "привет 👋"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeMessage(tt.in))
		})
	}
}

func TestValidate_SendMessageRequest(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	req := &models.SendMessageRequest{Message: "  /mybots\x07 "}
	require.NoError(t, v.Validate(ctx, req))
	assert.Equal(t, "/mybots", req.Message)

	assert.ErrorIs(t, v.Validate(ctx, &models.SendMessageRequest{Message: "\x00 \n"}), ErrEmptyMessage)

	long := &models.SendMessageRequest{Message: strings.Repeat("я", MaxMessageLength+1)}
	assert.ErrorIs(t, v.Validate(ctx, long), ErrMessageTooLong)

	exact := &models.SendMessageRequest{Message: strings.Repeat("я", MaxMessageLength)}
	assert.NoError(t, v.Validate(ctx, exact))
}

func TestValidate_Selector(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ByLabel("Foo")))
	assert.NoError(t, v.Validate(ctx, models.ByPosition(0, 2)))
	assert.ErrorIs(t, v.Validate(ctx, models.ButtonSelector{}), models.ErrSelectorEmpty)
	assert.ErrorIs(t, v.Validate(ctx, models.ByLabel(" \t ")), models.ErrSelectorBlankLabel)

	sel := models.ByPosition(-1, 0)
	assert.ErrorIs(t, v.Validate(ctx, &sel), models.ErrSelectorNegativePos)
}

func TestValidate_UnsupportedAndUnknown(t *testing.T) {
	v := NewMessageValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, &models.SendMessageRequest{Message: "x"}, "token"), ErrUnknownField)
}
