package handlers

import (
	"errors"
	"net/http"

	"tripwise/models"
	"tripwise/services/planner"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the conversational trip planner over HTTP.
type PlannerHandler struct {
	Service planner.PlannerService
	Logger  *zap.Logger
}

func NewPlannerHandler(svc planner.PlannerService, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{Service: svc, Logger: logger}
}

// StartSession opens a new planning conversation.
func (h *PlannerHandler) StartSession(c *gin.Context) {
	resp, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to start planner session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitTurn processes one user message for an existing session.
func (h *PlannerHandler) SubmitTurn(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req models.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid turn payload", err.Error())
		return
	}

	resp, err := h.Service.SubmitTurn(c.Request.Context(), sessionID, req.Text)
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Session not found", sessionID)
		return
	case errors.Is(err, planner.ErrSessionCorrupt):
		// The state machine's core guarantee is broken; the session is
		// unusable and is surfaced as a hard error.
		h.Logger.Error("Planner session corrupt", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Session state is corrupt", "please start a new session")
		return
	case err != nil:
		h.Logger.Error("Failed to process turn", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process turn", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EndSession discards a session.
func (h *PlannerHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.EndSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("Failed to end planner session", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to end session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended", "sessionId": sessionID})
}

// MatchPackages ranks the catalog against a profile supplied directly,
// without a conversation.
func (h *PlannerHandler) MatchPackages(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid match payload", err.Error())
		return
	}

	ranked, err := h.Service.MatchPackages(c.Request.Context(), req.Profile, req.Limit)
	if err != nil {
		h.Logger.Error("Failed to match packages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to match packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates": ranked,
		"noMatch":    len(ranked) == 0,
	})
}
