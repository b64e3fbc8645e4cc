package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
)

func (s *Server) getNotifierConfig(c *gin.Context) {
	cfg, err := s.store.GetNotifierConfig(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// putNotifierConfig persists the document; the config watcher re-arms the
// scheduler, so no scheduling happens here.
func (s *Server) putNotifierConfig(c *gin.Context) {
	var cfg domain.NotifierConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	if err := s.store.SaveNotifierConfig(c.Request.Context(), cfg); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// testSend runs one digest cycle immediately, outside the schedule.
func (s *Server) testSend(c *gin.Context) {
	result, err := s.digest.Handle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sent":           result.Sent,
		"account_alerts": result.AccountAlerts,
		"slot_alerts":    result.SlotAlerts,
		"message":        result.Message,
	})
}
