package SSE

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
)

// RefreshBroadcaster fans table-change hints out to connected dashboards.
// Mutating handlers broadcast the name of the table that changed so open
// dashboards know to reload their session.
type RefreshBroadcaster struct {
	mu      sync.Mutex
	clients map[chan string]bool
}

func NewRefreshBroadcaster() *RefreshBroadcaster {
	return &RefreshBroadcaster{
		clients: make(map[chan string]bool),
	}
}

// Register creates a buffered hint channel for a new dashboard connection.
func (b *RefreshBroadcaster) Register() chan string {
	client := make(chan string, 8)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
	return client
}

// Unregister removes a client and closes its channel. Only Unregister ever
// closes a channel, and it is idempotent, so a client Broadcast has already
// dropped is safe to unregister again.
func (b *RefreshBroadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.clients[client] {
		delete(b.clients, client)
		close(client)
	}
}

// Broadcast sends a hint to every connected client. A client whose buffer is
// full is dropped rather than waited on; its channel stays open until the
// owning handler unregisters it.
func (b *RefreshBroadcaster) Broadcast(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- message:
		default:
			delete(b.clients, client)
		}
	}
}

var Broadcaster = NewRefreshBroadcaster()

func RequestSSE(c *gin.Context) {
	// Set headers for SSE

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	clientChan := Broadcaster.Register()
	defer Broadcaster.Unregister(clientChan)

	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case message := <-clientChan:
			fmt.Fprintf(c.Writer, "data: %s\n\n", message)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			// Client disconnected
			return
		}
	}
}
