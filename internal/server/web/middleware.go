package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "sessionID"

// session resolves the signed session cookie to a session id, starting a new
// session when the cookie is missing, expired or forged. The cookie is
// re-issued on every request so an active session does not expire.
func (h *Handler) session(c *gin.Context) {
	ctx := c.Request.Context()

	var id string
	if token, err := c.Cookie(common.SessionCookieName); err == nil && token != "" {
		id, err = auth.SessionIDFromToken(token, h.opts.SessionSecret)
		if err != nil {
			h.logger.Debug(ctx, "session token rejected", "error", err)
			id = ""
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	token, err := auth.GenerateSessionToken(id, h.opts.SessionSecret, h.opts.SessionTTL)
	if err != nil {
		h.logger.Error(ctx, "session token signing failed", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, token, int(h.opts.SessionTTL.Seconds()), "/", "", false, true)
	c.Set(sessionKey, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.logger.Info(c.Request.Context(), "request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start).String(),
	)
}
