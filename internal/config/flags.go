// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the relay command-line flags from args (without the
// program name).
//
// Flags:
//
//	-a, --address          relay address in format [host]:[port]
//	-c, --config           JSON or YAML config file path
//	    --bearer-token     bearer token required from relay callers
//	    --rate-limit       admitted requests per client per window
//	    --rate-window      rate limit window (e.g., "60s")
//	    --request-timeout  relay request timeout (e.g., "30s", "1m")
//	    --max-replies      replies collected per relayed message
//	    --reply-wait       reply wait budget (e.g., "5s")
//	    --transport        transport kind: gateway or memory
//	    --gateway          transport gateway base URL
//	    --peer             bot username the session talks to
//	    --log-level        log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	cfg := &StructuredConfig{}

	fs := pflag.NewFlagSet("relay", pflag.ContinueOnError)
	fs.VarP(&address, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.Server.BearerToken, "bearer-token", "", "Bearer token required from callers")
	fs.IntVar(&cfg.Server.RateLimit, "rate-limit", 0, "Admitted requests per client per window")
	fs.DurationVar(&cfg.Server.RateWindow, "rate-window", 0, "Rate limit window (e.g., 60s)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Server.MaxReplies, "max-replies", 0, "Replies collected per relayed message")
	fs.DurationVar(&cfg.Server.ReplyWait, "reply-wait", 0, "Reply wait budget (e.g., 5s)")
	fs.StringVar(&cfg.Transport.Kind, "transport", "", "Transport kind: gateway or memory")
	fs.StringVar(&cfg.Transport.GatewayAddress, "gateway", "", "Transport gateway base URL")
	fs.StringVar(&cfg.Transport.Peer, "peer", "", "Bot username the session talks to")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
