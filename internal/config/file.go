// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from strings like "5s" in
// both JSON and YAML config files.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	return d.parse(s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
type fileConfig struct {
	Server struct {
		Address        string   `json:"address" yaml:"address"`
		BearerToken    string   `json:"bearer_token" yaml:"bearer_token"`
		RateLimit      int      `json:"rate_limit" yaml:"rate_limit"`
		RateWindow     Duration `json:"rate_window" yaml:"rate_window"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxReplies     int      `json:"max_replies" yaml:"max_replies"`
		ReplyWait      Duration `json:"reply_wait" yaml:"reply_wait"`
	} `json:"server" yaml:"server"`
	Transport struct {
		Kind           string   `json:"kind" yaml:"kind"`
		GatewayAddress string   `json:"gateway_address" yaml:"gateway_address"`
		GatewayToken   string   `json:"gateway_token" yaml:"gateway_token"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		Peer           string   `json:"peer" yaml:"peer"`
		Phone          string   `json:"phone" yaml:"phone"`
		APIID          int      `json:"api_id" yaml:"api_id"`
		APIHash        string   `json:"api_hash" yaml:"api_hash"`
		SessionName    string   `json:"session_name" yaml:"session_name"`
	} `json:"transport" yaml:"transport"`
	Session struct {
		CacheDSN     string   `json:"cache_dsn" yaml:"cache_dsn"`
		Prompt       string   `json:"prompt" yaml:"prompt"`
		PollInterval Duration `json:"poll_interval" yaml:"poll_interval"`
	} `json:"session" yaml:"session"`
	Retry struct {
		MaxAttempts int      `json:"max_attempts" yaml:"max_attempts"`
		Delay       Duration `json:"delay" yaml:"delay"`
	} `json:"retry" yaml:"retry"`
	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a config file and decodes it as JSON or YAML depending on
// its extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    fc.Server.Address,
			BearerToken:    fc.Server.BearerToken,
			RateLimit:      fc.Server.RateLimit,
			RateWindow:     time.Duration(fc.Server.RateWindow),
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MaxReplies:     fc.Server.MaxReplies,
			ReplyWait:      time.Duration(fc.Server.ReplyWait),
		},
		Transport: Transport{
			Kind:           fc.Transport.Kind,
			GatewayAddress: fc.Transport.GatewayAddress,
			GatewayToken:   fc.Transport.GatewayToken,
			RequestTimeout: time.Duration(fc.Transport.RequestTimeout),
			Peer:           fc.Transport.Peer,
			Phone:          fc.Transport.Phone,
			APIID:          fc.Transport.APIID,
			APIHash:        fc.Transport.APIHash,
			SessionName:    fc.Transport.SessionName,
		},
		Session: Session{
			CacheDSN:     fc.Session.CacheDSN,
			Prompt:       fc.Session.Prompt,
			PollInterval: time.Duration(fc.Session.PollInterval),
		},
		Retry: Retry{
			MaxAttempts: fc.Retry.MaxAttempts,
			Delay:       time.Duration(fc.Retry.Delay),
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}
}
