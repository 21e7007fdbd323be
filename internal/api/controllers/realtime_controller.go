package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kindred/internal/realtime"
	mem "kindred/pkg/memcache"
	"kindred/pkg/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientBuffer   = 32
	maxInboundSize = 512
)

type RealtimeController struct {
	hub      *realtime.Hub
	tokens   *utils.TokenIssuer
	denylist mem.TokenDenylist
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewRealtimeController(hub *realtime.Hub, tokens *utils.TokenIssuer, denylist mem.TokenDenylist, log *zap.Logger) *RealtimeController {
	return &RealtimeController{
		hub:      hub,
		tokens:   tokens,
		denylist: denylist,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Connect godoc
// @Summary Realtime events
// @Description Websocket carrying friend_request, friend_accepted, message and emotion_alert events.
// @Description Browsers cannot set headers on websocket requests, so the token is a query parameter.
// @Tags Realtime
// @Param token query string true "Bearer token"
// @Router /ws [get]
func (r *RealtimeController) Connect(c *gin.Context) {
	claims, err := r.tokens.ValidateToken(c.Query("token"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if revoked, err := r.denylist.IsRevoked(c.Request.Context(), claims.ID); err != nil || revoked {
		utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
		return
	}
	userID := uuid.MustParse(claims.UserID)

	conn, err := r.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		r.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	client := r.hub.Subscribe(userID, clientBuffer)
	go r.writePump(conn, client)
	r.readPump(conn, userID, client)
}

// readPump discards inbound frames and unsubscribes when the peer goes away.
func (r *RealtimeController) readPump(conn *websocket.Conn, userID uuid.UUID, client realtime.Client) {
	defer func() {
		r.hub.Unsubscribe(userID, client)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxInboundSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (r *RealtimeController) writePump(conn *websocket.Conn, client realtime.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
