package handler

import (
	"context"
	log "log/slog"
	"net/http"
	"time"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct{}

func NewWsHandler() *WsHandler {
	return &WsHandler{}
}

// Connect membuka koneksi websocket dan meneruskan statistik postingan
// dari bus redis ke klien. Koneksi tidak butuh login: statistik bersifat
// publik dan hanya mengalir satu arah.
func (s *WsHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("upgrade websocket gagal", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	pubsub := redis.Subscribe(context.Background(), consts.PostStatsChannel)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("koneksi websocket statistik terbuka", "remote", c.ClientIP())

	stopChan := make(chan struct{})

	// Baca hanya untuk mendeteksi klien menutup koneksi.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Warn("push statistik websocket gagal", "err", err)
				return
			}
		case <-stopChan:
			log.Info("koneksi websocket statistik ditutup", "remote", c.ClientIP())
			return
		}
	}
}
