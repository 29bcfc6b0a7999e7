// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid relay settings (for example,
	// an empty listen address or a non-positive rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTransportConfigs indicates invalid transport settings (for
	// example, an unknown kind or a gateway without an address).
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidRetryConfigs indicates invalid retry settings.
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
)
