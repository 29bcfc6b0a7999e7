// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal asks on the console. The second-factor secret is read without
// echo when the input is a terminal.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	fd           int
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewTerminal prompts on out and reads answers from in.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:           bufio.NewReader(in),
		out:          out,
		fd:           int(in.Fd()),
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

func (t *Terminal) Code(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, "Enter the login code you received: ")
	return t.readLine()
}

func (t *Terminal) Password(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, "Two-step verification is enabled. Enter your password: ")

	if t.isTerminal(t.fd) {
		secret, err := t.readPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		if len(secret) == 0 {
			return "", errors.New("empty password")
		}
		return string(secret), nil
	}
	return t.readLine()
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("empty input")
	}
	return line, nil
}
