// Package events serves the real-time update stream: a per-connection
// fixed-period ticker pushing simulated task-update frames, torn down when
// the client disconnects. No application state flows through it.
package events

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const updatePeriod = 8 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type frame struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message,omitempty"`
	Data      *stats `json:"data,omitempty"`
}

type stats struct {
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	RecentActivity string `json:"recentActivity"`
}

func connectedFrame() frame {
	return frame{
		Type:      "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   "Connected to real-time updates",
	}
}

func updateFrame() frame {
	return frame{
		Type:      "task_update",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data: &stats{
			TotalTasks:     rand.Intn(20) + 5,
			CompletedTasks: rand.Intn(15) + 2,
			RecentActivity: "Task " + strconv.Itoa(rand.Intn(100)) + " updated",
		},
	}
}

// Handler upgrades the request to a websocket and streams update frames
// every 8 seconds until the client goes away.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		go stream(conn)
	}
}

func stream(conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})

	// read pump: we expect no client messages, only close frames
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(connectedFrame()); err != nil {
		return
	}

	ticker := time.NewTicker(updatePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteJSON(updateFrame()); err != nil {
				return
			}
		}
	}
}
