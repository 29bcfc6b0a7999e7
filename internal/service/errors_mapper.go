// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/transport"
)

// mapTransportError classifies an error that came back through the retry
// policy into the application taxonomy.
func mapTransportError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, app.ErrAuth),
		errors.Is(err, app.ErrTransport),
		errors.Is(err, app.ErrSession),
		errors.Is(err, app.ErrNotFound),
		errors.Is(err, app.ErrValidation),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, transport.ErrMessageNotFound):
		return fmt.Errorf("%w: %w", app.ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", app.ErrTransport, err)
	}
}
