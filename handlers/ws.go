package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const buildKey = "build_id"

type WSHandler struct {
	M *melody.Melody
}

// BuildEvent is pushed to every session watching a build. It carries no
// user identity since watchers are not authenticated.
type BuildEvent struct {
	Type   string `json:"type"`
	SentAt int64  `json:"sent_at"`
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 64 * 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		buildID, _ := s.Get(buildKey)
		utils.LogWebSocket("connected", asString(buildID))
	})

	m.HandleDisconnect(func(s *melody.Session) {
		buildID, _ := s.Get(buildKey)
		utils.LogWebSocket("disconnected", asString(buildID))
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeWarn("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request and subscribes the session to one build.
func (h *WSHandler) HandleWS(c *gin.Context) {
	buildID := c.Param("id")
	if buildID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Build id is required"})
		return
	}

	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{buildKey: buildID}); err != nil {
		utils.SafeWarn("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate sends an event to every client watching buildID.
func (h *WSHandler) BroadcastUpdate(buildID, updateType, userID string) {
	msg, err := json.Marshal(BuildEvent{Type: updateType, SentAt: time.Now().Unix()})
	if err != nil {
		return
	}
	utils.LogBuildAction("Broadcast "+updateType, buildID, userID)

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get(buildKey)
		return exists && id == buildID
	})
	if err != nil {
		utils.SafeWarn("⚠️ Error broadcasting to build %s: %v", utils.MaskID(buildID), err)
	}
}

// Close drops every session during shutdown.
func (h *WSHandler) Close() error {
	return h.M.Close()
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
