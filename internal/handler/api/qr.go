package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase/qrsession"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxClientMsgSize = 512
)

// streamCommand is the only message a stream client sends.
type streamCommand struct {
	Type string `json:"type"`
}

type QRHandler struct {
	svc      *qrsession.Service
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewQRHandler(svc *qrsession.Service, cfg config.CORSConfig, logger *slog.Logger) *QRHandler {
	return &QRHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(cfg.AllowOrigins, origin)
			},
		},
		logger: logger,
	}
}

// @Summary Current QR code
// @Description Load the member's current QR token, issuing a new one if needed
// @Tags qr
// @Security BearerAuth
// @Produce json
// @Success 200 {object} qrsession.Snapshot
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /qr [get]
func (h *QRHandler) Current(c *gin.Context) {
	h.load(c, false)
}

// @Summary Refresh QR code
// @Description Force a new QR token
// @Tags qr
// @Security BearerAuth
// @Produce json
// @Success 200 {object} qrsession.Snapshot
// @Failure 401 {object} httperr.Response
// @Router /qr/refresh [post]
func (h *QRHandler) Refresh(c *gin.Context) {
	h.load(c, true)
}

func (h *QRHandler) load(c *gin.Context, force bool) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	snap, err := h.svc.Current(c.Request.Context(), s, force)
	if err != nil {
		abortWithError(c, err, snap.Error)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary Export QR code
// @Description Payload for sharing or printing the current code
// @Tags qr
// @Security BearerAuth
// @Produce json
// @Success 200 {object} qr.Export
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /qr/export [get]
func (h *QRHandler) Export(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}
	export, err := h.svc.Export(c.Request.Context(), s)
	if err != nil {
		if errs.Is(err, errs.ErrQRUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "QR code unavailable", nil)
			return
		}
		abortWithError(c, err, "QR code unavailable")
		return
	}
	c.JSON(http.StatusOK, export)
}

// @Summary QR display stream
// @Description WebSocket pushing a snapshot on every state change. Send {"type":"refresh"} to force a refresh.
// @Tags qr
// @Security BearerAuth
// @Router /qr/stream [get]
func (h *QRHandler) Stream(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("QR stream upgrade failed", slog.String("error", err.Error()))
		return
	}

	ctrl := h.svc.Open(s)
	updates, unsubscribe := ctrl.Subscribe()
	logger := h.logger.With(slog.String("qr_session_id", ctrl.ID()), slog.String("user_id", s.CurrentUser().ID))
	logger.Info("QR stream opened")

	go ctrl.Load(context.Background(), false)

	go h.readPump(conn, ctrl)
	h.writePump(conn, updates)

	unsubscribe()
	ctrl.Close()
	logger.Info("QR stream closed")
}

// readPump handles refresh commands and closes the controller when the
// client goes away.
func (h *QRHandler) readPump(conn *websocket.Conn, ctrl *qrsession.Controller) {
	defer ctrl.Close()

	conn.SetReadLimit(maxClientMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd streamCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			continue
		}
		if cmd.Type == "refresh" {
			go ctrl.Refresh(context.Background())
		}
	}
}

func (h *QRHandler) writePump(conn *websocket.Conn, updates <-chan qrsession.Snapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case snap, ok := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
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
