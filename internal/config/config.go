// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Transport kinds accepted in [Transport.Kind].
const (
	TransportGateway = "gateway"
	TransportMemory  = "memory"
)

// Credential prompt kinds accepted in [Session.Prompt].
const (
	PromptTerminal = "terminal"
	PromptNone     = "none"
)

// StructuredConfig is the top-level configuration container for the relay
// and the CLI. It is populated by merging flags, environment variables, an
// optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the HTTP relay settings.
	Server Server `envPrefix:"SERVER_"`

	// Transport holds the chat transport settings.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Session holds authentication and reply-correlation settings.
	Session Session `envPrefix:"SESSION_"`

	// Retry holds the transport retry policy.
	Retry Retry `envPrefix:"RETRY_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file, chosen by extension.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Server holds network, admission and reply settings of the HTTP relay.
type Server struct {
	// HTTPAddress is the TCP address the relay listens on, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BearerToken, when non-empty, must be presented in the Authorization
	// header of every relay request.
	// Env: SERVER_BEARER_TOKEN
	BearerToken string `env:"BEARER_TOKEN"`

	// RateLimit is the number of admitted requests per client address per
	// window.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the fixed admission window (e.g. "60s").
	// Env: SERVER_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// RequestTimeout bounds a single relay request end to end.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxReplies is how many bot replies POST /send_message collects.
	// Env: SERVER_MAX_REPLIES
	MaxReplies int `env:"MAX_REPLIES"`

	// ReplyWait is how long POST /send_message waits for replies.
	// Env: SERVER_REPLY_WAIT
	ReplyWait time.Duration `env:"REPLY_WAIT"`
}

// Transport holds settings of the chat transport.
type Transport struct {
	// Kind selects the implementation: "gateway" or "memory".
	// Env: TRANSPORT_KIND
	Kind string `env:"KIND"`

	// GatewayAddress is the base URL of the transport gateway.
	// Env: TRANSPORT_GATEWAY_ADDRESS
	GatewayAddress string `env:"GATEWAY_ADDRESS"`

	// GatewayToken authenticates the relay against the gateway.
	// Env: TRANSPORT_GATEWAY_TOKEN
	GatewayToken string `env:"GATEWAY_TOKEN"`

	// RequestTimeout bounds a single gateway call.
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Peer is the bot the session talks to (e.g. "@BotFather").
	// Env: TRANSPORT_PEER
	Peer string `env:"PEER"`

	// Phone is the account phone number used for code login.
	// Env: TRANSPORT_PHONE
	Phone string `env:"PHONE"`

	// APIID and APIHash are the provider application credentials.
	// Env: TRANSPORT_API_ID, TRANSPORT_API_HASH
	APIID   int    `env:"API_ID"`
	APIHash string `env:"API_HASH"`

	// SessionName names the provider session kept by the gateway.
	// Env: TRANSPORT_SESSION_NAME
	SessionName string `env:"SESSION_NAME"`
}

// Session holds authentication and correlation settings.
type Session struct {
	// CacheDSN is the SQLite file holding the credential note.
	// Env: SESSION_CACHE_DSN
	CacheDSN string `env:"CACHE_DSN"`

	// Prompt selects how login codes and 2FA secrets are obtained:
	// "terminal" or "none".
	// Env: SESSION_PROMPT
	Prompt string `env:"PROMPT"`

	// PollInterval is the delay between reply polls.
	// Env: SESSION_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Retry holds the bounded retry settings for ordinary transient failures.
// Provider-mandated waits are never bounded by these values.
type Retry struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// Delay is the fixed pause between attempts.
	// Env: RETRY_DELAY
	Delay time.Duration `env:"DELAY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, receives log output instead of the default stream.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// GetCLIConfig loads the configuration used by the command-line front end.
// Flags belong to the CLI subcommands, so only the environment, the config
// file and the defaults are consulted.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile().
		withDefaults().
		build()
}
