// Package realtime pushes dashboard messages to connected retailer accounts over websockets.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"offerengine/config"
	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSendBuffer = 16

// Hub tracks websocket clients grouped into one room per account.
type Hub struct {
	logger     *slog.Logger
	sendBuffer int

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*Client]struct{}
}

// HubParams holds dependencies for the Hub
type HubParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates the hub and ties its run loop to the fx lifecycle.
func NewHub(params HubParams) *Hub {
	sendBuffer := defaultSendBuffer
	if params.Config.Realtime != nil && params.Config.Realtime.SendBuffer > 0 {
		sendBuffer = params.Config.Realtime.SendBuffer
	}

	hub := newHub(params.Logger, sendBuffer)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run()

			return nil
		},
		OnStop: func(context.Context) error {
			hub.Stop()

			return nil
		},
	})

	return hub
}

func newHub(logger *slog.Logger, sendBuffer int) *Hub {
	return &Hub{
		logger:     logger,
		sendBuffer: sendBuffer,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[uuid.UUID]map[*Client]struct{}),
	}
}

// Run processes registrations until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.accountID]
			if !ok {
				room = make(map[*Client]struct{})
				h.rooms[client.accountID] = room
			}
			room[client] = struct{}{}
			h.mu.Unlock()

			h.logger.Debug("Realtime client registered", slog.String("account_id", client.accountID.String()))

		case client := <-h.unregister:
			h.remove(client)

		case <-h.done:
			h.mu.Lock()
			for accountID, room := range h.rooms {
				for client := range room {
					close(client.send)
				}
				delete(h.rooms, accountID)
			}
			h.mu.Unlock()

			return
		}
	}
}

// Stop closes every client and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// SendToAccount delivers message to every connection of the account and returns how many
// connections accepted it. Slow connections drop the message.
func (h *Hub) SendToAccount(accountID uuid.UUID, message *entity.RealtimeMessage) int {
	payload, err := json.Marshal(message)
	if err != nil {
		h.logger.Warn("Failed to encode realtime message", slog.Any("error", err))

		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.rooms[accountID] {
		select {
		case client.send <- payload:
			delivered++
		default:
			h.logger.Warn("Realtime client buffer full, dropping message",
				slog.String("account_id", accountID.String()),
			)
		}
	}

	return delivered
}

// ConnectionCount returns the number of open connections of an account.
func (h *Hub) ConnectionCount(accountID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[accountID])
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.accountID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}

	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, client.accountID)
	}
}

func (h *Hub) enqueue(ch chan *Client, client *Client) bool {
	select {
	case ch <- client:
		return true
	case <-h.done:
		return false
	}
}
