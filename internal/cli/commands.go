// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/botfather-relay/internal/app"
	"github.com/MKhiriev/botfather-relay/internal/service"
	"github.com/MKhiriev/botfather-relay/internal/validators"
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/spf13/pflag"
)

var errUnexpectedArgs = errors.New("unexpected positional arguments")

func (a *App) root(ctx context.Context) *Command {
	return &Command{
		Name:    "botfather",
		Summary: "Talk to BotFather from the command line. Every command prints JSON.",
		Usage:   "botfather <command> [flags]",
		Subcommands: []*Command{
			a.sendMessageCommand(ctx),
			a.getRepliesCommand(ctx),
			a.clickButtonCommand(ctx),
			a.listButtonsCommand(ctx),
			a.relayCommand(ctx),
			a.versionCommand(),
		},
	}
}

func (a *App) sendMessageCommand(ctx context.Context) *Command {
	var msg string
	return &Command{
		Name:    "send-message",
		Summary: "Send a message to the bot",
		Usage:   "botfather send-message --msg TEXT",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("send-message", pflag.ContinueOnError)
			fs.StringVar(&msg, "msg", "", "message text (required)")
			return fs
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			if msg == "" {
				return errors.New("--msg is required")
			}

			return a.withServices(ctx, func(s *service.Services) error {
				sent, err := s.MessageService.Send(ctx, msg)
				if err != nil {
					return err
				}
				return writeJSON(a.stdout, models.SentMessage{ID: sent.ID, Text: sent.Text})
			})
		},
	}
}

func (a *App) getRepliesCommand(ctx context.Context) *Command {
	var limit int
	return &Command{
		Name:    "get-replies",
		Summary: "Print the latest messages of the conversation",
		Usage:   "botfather get-replies [--limit N]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("get-replies", pflag.ContinueOnError)
			fs.IntVar(&limit, "limit", 1, "number of messages to print")
			return fs
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			if limit < 1 {
				return fmt.Errorf("%w: --limit must be at least 1", app.ErrValidation)
			}

			return a.withServices(ctx, func(s *service.Services) error {
				msgs, err := s.MessageService.LatestReplies(ctx, limit)
				if err != nil {
					return err
				}
				replies := make([]models.Reply, 0, len(msgs))
				for _, m := range msgs {
					replies = append(replies, models.NewReply(m))
				}
				return writeJSON(a.stdout, replies)
			})
		},
	}
}

func (a *App) clickButtonCommand(ctx context.Context) *Command {
	var (
		fs       *pflag.FlagSet
		msgID    int64
		label    string
		row, col int
	)
	return &Command{
		Name:    "click-button",
		Summary: "Press an inline button by text or by position",
		Usage:   "botfather click-button [--msg-id ID] (--button-text TEXT | --row R --col C)",
		Flags: func() *pflag.FlagSet {
			fs = pflag.NewFlagSet("click-button", pflag.ContinueOnError)
			fs.Int64Var(&msgID, "msg-id", 0, "message holding the button (default: latest message)")
			fs.StringVar(&label, "button-text", "", "button label, case-insensitive")
			fs.IntVar(&row, "row", 0, "zero-based button row")
			fs.IntVar(&col, "col", 0, "zero-based button column")
			return fs
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}

			sel := models.ButtonSelector{Label: label}
			if fs.Changed("row") {
				sel.Row = &row
			}
			if fs.Changed("col") {
				sel.Col = &col
			}
			if err := validators.NewMessageValidator().Validate(ctx, sel); err != nil {
				return fmt.Errorf("%w: %w", app.ErrValidation, err)
			}

			return a.withServices(ctx, func(s *service.Services) error {
				res, err := s.ButtonService.Click(ctx, optionalID(fs, "msg-id", msgID), sel)
				if err != nil {
					return err
				}
				if err = writeJSON(a.stdout, res); err != nil {
					return err
				}
				if !res.OK() {
					return &ExitError{Code: 1}
				}
				return nil
			})
		},
	}
}

func (a *App) listButtonsCommand(ctx context.Context) *Command {
	var (
		fs    *pflag.FlagSet
		msgID int64
	)
	return &Command{
		Name:    "list-buttons",
		Summary: "Print the inline keyboard of a message",
		Usage:   "botfather list-buttons [--msg-id ID]",
		Flags: func() *pflag.FlagSet {
			fs = pflag.NewFlagSet("list-buttons", pflag.ContinueOnError)
			fs.Int64Var(&msgID, "msg-id", 0, "message to inspect (default: latest message)")
			return fs
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}

			return a.withServices(ctx, func(s *service.Services) error {
				msg, err := s.ButtonService.ListButtons(ctx, optionalID(fs, "msg-id", msgID))
				if err != nil {
					return err
				}
				buttons := msg.Buttons.LabelRows()
				if buttons == nil {
					buttons = [][]string{}
				}
				return writeJSON(a.stdout, models.ButtonListing{ID: msg.ID, Buttons: buttons})
			})
		},
	}
}

func (a *App) relayCommand(ctx context.Context) *Command {
	var msg, address, token string
	return &Command{
		Name:    "relay",
		Summary: "Send a message through a running relay server",
		Usage:   "botfather relay --msg TEXT [--url URL] [--token TOKEN]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("relay", pflag.ContinueOnError)
			fs.StringVar(&msg, "msg", "", "message text (required)")
			fs.StringVar(&address, "url", relayURL(a.cfg.Server.HTTPAddress), "relay base URL")
			fs.StringVar(&token, "token", a.cfg.Server.BearerToken, "relay bearer token")
			return fs
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			if msg == "" {
				return errors.New("--msg is required")
			}

			client, err := a.newRelay(address, token, a.cfg.Server.RequestTimeout)
			if err != nil {
				return err
			}
			resp, err := client.SendMessage(ctx, msg)
			if err != nil {
				return err
			}
			return writeJSON(a.stdout, resp)
		},
	}
}

func (a *App) versionCommand() *Command {
	return &Command{
		Name:    "version",
		Summary: "Print build information",
		Usage:   "botfather version",
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			a.buildInfo.Print(a.stdout)
			return nil
		},
	}
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %v", errUnexpectedArgs, args)
	}
	return nil
}

// optionalID returns nil unless the flag was given on the command line.
func optionalID(fs *pflag.FlagSet, name string, id int64) *int64 {
	if !fs.Changed(name) {
		return nil
	}
	return &id
}

func relayURL(address string) string {
	u := url.URL{Scheme: "http", Host: address}
	return u.String()
}
