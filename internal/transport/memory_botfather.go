// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/botfather-relay/models"
)

// botFatherScript is a tiny imitation of the BotFather dialogue used by the
// offline demo mode. It only covers the /newbot and /mybots flows.
type botFatherScript struct {
	mu      sync.Mutex
	step    string
	pending string
	bots    []string
}

// NewBotFatherDemo returns a memory transport that plays a minimal BotFather.
func NewBotFatherDemo() *Memory {
	s := &botFatherScript{}
	return NewMemory(WithResponder(s.respond), WithClickHandler(s.click))
}

func (s *botFatherScript) respond(text string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	switch {
	case text == "/start" || text == "/help":
		s.step = ""
		return []models.Message{{Text: "I can help you create and manage Telegram bots.\n\n/newbot - create a new bot\n/mybots - edit your bots"}}
	case text == "/newbot":
		s.step = "name"
		return []models.Message{{Text: "Alright, a new bot. How are we going to call it? Please choose a name for your bot."}}
	case text == "/mybots":
		s.step = ""
		if len(s.bots) == 0 {
			return []models.Message{{Text: "You have currently no bots."}}
		}
		grid := make(models.ButtonGrid, 0, len(s.bots))
		for _, bot := range s.bots {
			grid = append(grid, []models.Button{{Label: "@" + bot, Data: []byte("bot:" + bot)}})
		}
		return []models.Message{{Text: "Choose a bot from the list below:", Buttons: grid}}
	case s.step == "name":
		s.step = "username"
		s.pending = text
		return []models.Message{{Text: "Good. Now let's choose a username for your bot. It must end in `bot`."}}
	case s.step == "username":
		if !strings.HasSuffix(strings.ToLower(text), "bot") {
			return []models.Message{{Text: "Sorry, the username must end in 'bot'."}}
		}
		s.step = ""
		s.bots = append(s.bots, strings.TrimPrefix(text, "@"))
		return []models.Message{
			{Text: fmt.Sprintf("Done! Congratulations on your new bot %s. You will find it at t.me/%s.", s.pending, strings.TrimPrefix(text, "@"))},
			{Text: "Use this token to access the HTTP API:\n0000000000:DEMO-TOKEN"},
		}
	default:
		return []models.Message{{Text: "Unrecognized command. Say what?"}}
	}
}

func (s *botFatherScript) click(msg models.Message, data []byte) (ClickAnswer, error) {
	bot, ok := strings.CutPrefix(string(data), "bot:")
	if !ok {
		return ClickAnswer{}, nil
	}
	return ClickAnswer{Text: fmt.Sprintf("Here it is: @%s. What do you want to do with the bot?", bot)}, nil
}
