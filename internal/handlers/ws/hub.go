package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/triafrota/tria-backend/internal/domain/ports"
)

// writeWait limita o tempo de escrita por cliente para que uma conexão
// travada não segure o broadcast dos demais
const writeWait = 10 * time.Second

// Client representa uma conexão websocket ativa
type Client struct {
	conn *websocket.Conn
}

// Hub mantém o conjunto de clientes conectados e distribui os eventos
// da frota para todos eles. Implementa ports.EventPublisher.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	logger     ports.Logger
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processa registros, desconexões e broadcasts até Stop ser
// chamado. Deve rodar em uma goroutine própria.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				client.conn.Close()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug("cliente websocket conectado")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.conn.Close()
			}
			h.mu.Unlock()
			h.logger.Debug("cliente websocket desconectado")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Warn("falha ao escrever no websocket", "error", err)
					client.conn.Close()
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop encerra o loop de eventos e derruba as conexões ativas
func (h *Hub) Stop() {
	close(h.done)
}

// Publish serializa o evento como {"type": ..., "data": ...} e o envia
// para todos os clientes conectados
func (h *Hub) Publish(eventType string, payload interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		h.logger.Error("falha ao serializar evento", "type", eventType, "error", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast descartado, canal cheio", "type", eventType)
	}
}

// ServeWs faz o upgrade da conexão HTTP e registra o cliente no hub
func (h *Hub) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("falha no upgrade do websocket", "error", err)
		return
	}

	client := &Client{conn: conn}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		defer func() {
			select {
			case h.unregister <- client:
			case <-h.done:
			}
		}()
		for {
			// lê apenas para detectar a desconexão
			if _, _, err := client.conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
