package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub управляет всеми клиентами; клиенты сгруппированы по id сессии.
type Hub struct {
	clients        map[*Client]bool
	sessionClients map[string][]*Client
	register       chan *Client
	unregister     chan *Client
	// закрывается при остановке Run
	done           chan struct{}
	mu             sync.RWMutex
	logger         *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		sessionClients: make(map[string][]*Client),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
		logger:         logger.Named("ws-hub"),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
			}
			h.clients = make(map[*Client]bool)
			h.sessionClients = make(map[string][]*Client)
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.sessionClients[client.SessionID] = append(h.sessionClients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Клиент зарегистрирован", zap.String("sessionID", client.SessionID), zap.Uint64("adminID", client.AdminID))
		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		}
	}
}

// Join регистрирует клиента; false, если хаб уже остановлен.
func (h *Hub) Join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// remove вызывается под h.mu.
func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	clients := h.sessionClients[client.SessionID]
	for i, c := range clients {
		if c == client {
			h.sessionClients[client.SessionID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.sessionClients[client.SessionID]) == 0 {
		delete(h.sessionClients, client.SessionID)
	}
	h.logger.Info("Клиент отсоединен", zap.String("sessionID", client.SessionID))
}

// Sessions - сессии, у которых есть хотя бы одно живое соединение.
func (h *Hub) Sessions() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.sessionClients))
	for id := range h.sessionClients {
		out = append(out, id)
	}
	return out
}

func (h *Hub) SendToSession(sessionID string, payload interface{}, messageType string) error {
	messageBytes, err := encode(payload, messageType)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	clients, ok := h.sessionClients[sessionID]
	if !ok {
		h.logger.Debug("Нет активных соединений", zap.String("sessionID", sessionID))
		return nil
	}
	for _, client := range clients {
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("Буфер клиента переполнен, сообщение пропущено", zap.String("sessionID", sessionID))
		}
	}
	return nil
}

// CloseSession отправляет последнее сообщение и отключает все соединения сессии.
func (h *Hub) CloseSession(sessionID string, payload interface{}, messageType string) {
	messageBytes, err := encode(payload, messageType)
	if err != nil {
		h.logger.Error("Ошибка сериализации сообщения", zap.Error(err))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range append([]*Client(nil), h.sessionClients[sessionID]...) {
		if messageBytes != nil {
			select {
			case client.Send <- messageBytes:
			default:
			}
		}
		h.remove(client)
	}
}

func encode(payload interface{}, messageType string) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:      messageType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
}
