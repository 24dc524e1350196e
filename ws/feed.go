package ws

import (
	"log"
	"net/http"
	"sync"

	"tillpoint/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is what ancillary displays (kitchen screen, customer display)
// receive when an order is committed.
type OrderEvent struct {
	Type     string `json:"type"`
	OrderID  uint   `json:"orderId"`
	Code     string `json:"code"`
	Total    int64  `json:"total"`
	ItemQty  int    `json:"itemQty"`
	PlacedAt string `json:"placedAt"`
}

// FeedHub fans committed orders out to connected displays. One terminal,
// one feed: no rooms.
type FeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 8),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderPlaced implements services.Notifier. Non-blocking: a full buffer
// drops the event rather than stalling checkout.
func (h *FeedHub) OrderPlaced(o *entity.Order) {
	qty := 0
	for _, it := range o.Items {
		qty += it.Qty
	}
	ev := OrderEvent{
		Type:     "order.created",
		OrderID:  o.ID,
		Code:     o.Code,
		Total:    o.Total,
		ItemQty:  qty,
		PlacedAt: o.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	select {
	case h.broadcast <- ev:
	default:
		log.Println("ws feed buffer full, dropping event")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/feed
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain keeps the read side alive so pings and closes are processed; the
// feed never expects client messages.
func (h *FeedHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
