package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	Crew crewRequest `json:"crew"`
}

func (h *Handler) Search(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req searchRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.Actions.Search(c.Request.Context(), userID, req.Crew.membership())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type stealRequest struct {
	VictimID   int64       `json:"victim_id"`
	Crew       crewRequest `json:"crew"`
	VictimCrew crewRequest `json:"victim_crew"`
}

func (h *Handler) Steal(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req stealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Actions.Steal(c.Request.Context(), userID, req.VictimID,
		req.Crew.membership(), req.VictimCrew.membership())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) PassiveEarn(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	credited, err := h.Actions.PassiveEarn(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credited": credited})
}

type dailyRequest struct {
	Crew crewRequest `json:"crew"`
}

func (h *Handler) Daily(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dailyRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.Actions.Daily(c.Request.Context(), userID, req.Crew.membership())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
