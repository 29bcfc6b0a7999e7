// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/botfather-relay/internal/config"
	"github.com/MKhiriev/botfather-relay/internal/logger"
	"github.com/MKhiriev/botfather-relay/internal/utils"
	"github.com/MKhiriev/botfather-relay/models"
	"github.com/go-resty/resty/v2"
)

// Gateway RPC error names. They follow the provider's own error names so
// the gateway can forward them untouched.
const (
	rpcFloodWait           = "FLOOD_WAIT"
	rpcPasswordNeeded      = "SESSION_PASSWORD_NEEDED"
	rpcPhoneCodeInvalid    = "PHONE_CODE_INVALID"
	rpcPhoneCodeExpired    = "PHONE_CODE_EXPIRED"
	rpcSessionRevoked      = "SESSION_REVOKED"
	rpcUserDeactivated     = "USER_DEACTIVATED"
	rpcUserDeactivatedBan  = "USER_DEACTIVATED_BAN"
	rpcAuthKeyUnregistered = "AUTH_KEY_UNREGISTERED"
	rpcMessageIDInvalid    = "MESSAGE_ID_INVALID"
	rpcDisconnected        = "DISCONNECTED"
)

var rpcSentinels = map[string]error{
	rpcPasswordNeeded:      ErrSecondFactorRequired,
	rpcPhoneCodeInvalid:    ErrPhoneCodeInvalid,
	rpcPhoneCodeExpired:    ErrPhoneCodeInvalid,
	rpcSessionRevoked:      ErrSessionRevoked,
	rpcUserDeactivated:     ErrUserDeactivated,
	rpcUserDeactivatedBan:  ErrUserDeactivated,
	rpcAuthKeyUnregistered: ErrAuthKeyUnregistered,
	rpcMessageIDInvalid:    ErrMessageNotFound,
	rpcDisconnected:        ErrDisconnected,
}

type gatewayButton struct {
	Text string `json:"text"`
	Data []byte `json:"data"`
}

type gatewayMessage struct {
	ID      int64             `json:"id"`
	Text    string            `json:"text"`
	Date    time.Time         `json:"date"`
	Buttons [][]gatewayButton `json:"buttons,omitempty"`
}

type gatewayError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Seconds int    `json:"seconds"`
}

type connectRequest struct {
	APIID       int    `json:"api_id"`
	APIHash     string `json:"api_hash"`
	SessionName string `json:"session_name"`
}

type authorizedResponse struct {
	Authorized bool `json:"authorized"`
}

type signInRequest struct {
	Phone    string `json:"phone,omitempty"`
	Code     string `json:"code,omitempty"`
	Password string `json:"password,omitempty"`
}

type sendRequest struct {
	Text string `json:"text"`
}

type clickRequest struct {
	Data []byte `json:"data"`
}

// Gateway is a [Transport] backed by an HTTP gateway process that owns the
// provider session. The gateway is addressed per peer, so one Gateway value
// is bound to exactly one bot.
type Gateway struct {
	client    *utils.HTTPClient
	cfg       config.Transport
	connected atomic.Bool

	logger *logger.Logger
}

// NewGateway builds a gateway transport from cfg. It returns an error when
// the gateway address is missing or malformed.
func NewGateway(cfg config.Transport, log *logger.Logger) (*Gateway, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.GatewayAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetPathParam("peer", cfg.Peer)
	if cfg.GatewayToken != "" {
		client.SetAuthToken(cfg.GatewayToken)
	}

	return &Gateway{client: client, cfg: cfg, logger: log}, nil
}

// Connect implements [Transport].
func (g *Gateway) Connect(ctx context.Context) error {
	if g.connected.Load() {
		return nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(connectRequest{APIID: g.cfg.APIID, APIHash: g.cfg.APIHash, SessionName: g.cfg.SessionName}).
		Post("/v1/connect")
	if err = checkResponse(resp, err, "connect"); err != nil {
		return err
	}

	g.connected.Store(true)
	g.logger.Debug().Str("peer", g.cfg.Peer).Msg("gateway connected")
	return nil
}

// Disconnect implements [Transport].
func (g *Gateway) Disconnect(ctx context.Context) error {
	if !g.connected.Load() {
		return nil
	}

	resp, err := g.client.R().SetContext(ctx).Post("/v1/disconnect")
	g.connected.Store(false)
	return checkResponse(resp, err, "disconnect")
}

// IsConnected implements [Transport].
func (g *Gateway) IsConnected() bool {
	return g.connected.Load()
}

// IsAuthorized implements [Transport].
func (g *Gateway) IsAuthorized(ctx context.Context) (bool, error) {
	var out authorizedResponse
	resp, err := g.client.R().SetContext(ctx).SetResult(&out).Get("/v1/authorized")
	if err = g.check(resp, err, "authorized"); err != nil {
		return false, err
	}
	return out.Authorized, nil
}

// RequestCode implements [Transport].
func (g *Gateway) RequestCode(ctx context.Context, phone string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(signInRequest{Phone: phone}).
		Post("/v1/auth/code")
	return g.check(resp, err, "request code")
}

// SignIn implements [Transport].
func (g *Gateway) SignIn(ctx context.Context, phone, code string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(signInRequest{Phone: phone, Code: code}).
		Post("/v1/auth/sign-in")
	return g.check(resp, err, "sign in")
}

// SignInPassword implements [Transport].
func (g *Gateway) SignInPassword(ctx context.Context, password string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(signInRequest{Password: password}).
		Post("/v1/auth/password")
	return g.check(resp, err, "sign in password")
}

// Send implements [Transport].
func (g *Gateway) Send(ctx context.Context, text string) (models.Message, error) {
	var out gatewayMessage
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(sendRequest{Text: text}).
		SetResult(&out).
		Post("/v1/peers/{peer}/messages")
	if err = g.check(resp, err, "send"); err != nil {
		return models.Message{}, err
	}
	return out.toModel(), nil
}

// FetchSince implements [Transport].
func (g *Gateway) FetchSince(ctx context.Context, minID int64, limit int) ([]models.Message, error) {
	return g.fetch(ctx, map[string]string{
		"min_id": strconv.FormatInt(minID, 10),
		"limit":  strconv.Itoa(limit),
		"order":  "asc",
	})
}

// FetchLatest implements [Transport].
func (g *Gateway) FetchLatest(ctx context.Context, limit int) ([]models.Message, error) {
	return g.fetch(ctx, map[string]string{
		"limit": strconv.Itoa(limit),
		"order": "latest",
	})
}

// GetMessage implements [Transport].
func (g *Gateway) GetMessage(ctx context.Context, id int64) (models.Message, error) {
	var out gatewayMessage
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		Get("/v1/peers/{peer}/messages/{id}")
	if err = g.check(resp, err, "get message"); err != nil {
		return models.Message{}, err
	}
	return out.toModel(), nil
}

// Click implements [Transport].
func (g *Gateway) Click(ctx context.Context, messageID int64, data []byte) (ClickAnswer, error) {
	var out ClickAnswer
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(messageID, 10)).
		SetBody(clickRequest{Data: data}).
		SetResult(&out).
		Post("/v1/peers/{peer}/messages/{id}/click")
	if err = g.check(resp, err, "click"); err != nil {
		return ClickAnswer{}, err
	}
	return out, nil
}

func (g *Gateway) fetch(ctx context.Context, query map[string]string) ([]models.Message, error) {
	var out []gatewayMessage
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&out).
		Get("/v1/peers/{peer}/messages")
	if err = g.check(resp, err, "fetch"); err != nil {
		return nil, err
	}

	msgs := make([]models.Message, 0, len(out))
	for _, m := range out {
		msgs = append(msgs, m.toModel())
	}
	return msgs, nil
}

// check maps the response and drops the connected flag when the gateway
// reports that the provider connection is gone.
func (g *Gateway) check(resp *resty.Response, err error, op string) error {
	err = checkResponse(resp, err, op)
	if err != nil && errors.Is(err, ErrDisconnected) {
		g.connected.Store(false)
	}
	return err
}

func checkResponse(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("gateway %s request: %w", op, err)
	}
	if err = mapGatewayError(resp); err != nil {
		return fmt.Errorf("gateway %s: %w", op, err)
	}
	return nil
}

func mapGatewayError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body gatewayError
	_ = json.Unmarshal(resp.Body(), &body)
	name := strings.ToUpper(strings.TrimSpace(body.Error))

	if name == rpcFloodWait || strings.HasPrefix(name, rpcFloodWait+"_") {
		return &FloodWaitError{Wait: time.Duration(body.Seconds) * time.Second}
	}
	if sentinel, ok := rpcSentinels[name]; ok {
		return sentinel
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrMessageNotFound
	case http.StatusServiceUnavailable:
		return ErrDisconnected
	}

	detail := body.Message
	if detail == "" {
		detail = strings.TrimSpace(string(resp.Body()))
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func (m gatewayMessage) toModel() models.Message {
	msg := models.Message{ID: m.ID, Text: m.Text, Date: m.Date}
	if len(m.Buttons) == 0 {
		return msg
	}

	msg.Buttons = make(models.ButtonGrid, 0, len(m.Buttons))
	for _, row := range m.Buttons {
		buttons := make([]models.Button, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, models.Button{Label: b.Text, Data: b.Data})
		}
		msg.Buttons = append(msg.Buttons, buttons)
	}
	return msg
}
