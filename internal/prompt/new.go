// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"io"
	"os"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/store"
)

// New builds the prompt selected by kind. Terminal prompts read from stdin
// and write their questions to out. When notes is non-nil the login code is
// cached in it.
func New(kind string, notes store.NoteRepository, out io.Writer, log *logger.Logger) CredentialPrompt {
	if kind != config.PromptTerminal {
		return None{}
	}

	var p CredentialPrompt = NewTerminal(os.Stdin, out)
	if notes != nil {
		p = NewCached(p, notes, log)
	}
	return p
}
