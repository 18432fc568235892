package service

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is a websocket connection and its outbound send buffer.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans one broadcast stream out to every registered Client, dropping
// messages to a client whose send buffer is full rather than blocking the
// broadcaster on a slow reader.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}

// EvaluationStream broadcasts per-scenario progress events from a running
// evaluation matrix to every connected websocket client.
type EvaluationStream struct {
	hub  *Hub
	once sync.Once
}

// NewEvaluationStream creates a stream with its broadcast loop not yet
// started; the loop starts lazily on the first Register or Broadcast call.
func NewEvaluationStream() *EvaluationStream {
	return &EvaluationStream{hub: newHub()}
}

func (s *EvaluationStream) ensureRunning() {
	s.once.Do(func() { go s.hub.run() })
}

// Register adds conn as a listener and starts its write pump. The returned
// function unregisters the client and should be deferred by the caller.
func (s *EvaluationStream) Register(conn *websocket.Conn) func() {
	s.ensureRunning()
	client := &Client{Conn: conn, Send: make(chan []byte, 32)}
	s.hub.register <- client

	go func() {
		for message := range client.Send {
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				break
			}
		}
	}()

	return func() { s.hub.unregister <- client }
}

// Broadcast pushes message to every currently registered client.
func (s *EvaluationStream) Broadcast(message []byte) {
	s.ensureRunning()
	s.hub.broadcast <- message
}
