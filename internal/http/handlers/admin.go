package handlers

import (
	"net/http"
	"strconv"

	"pirate_economy/internal/domain"

	"github.com/gin-gonic/gin"
)

type adminCoinsRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

func (h *Handler) GiveCoins(c *gin.Context) {
	var req adminCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	adminID, _ := getUserID(c)
	newBalance, err := h.Ledger.AddCoins(c.Request.Context(), req.UserID, req.Amount,
		domain.TxAdminGrant, map[string]any{"admin_id": adminID, "reason": req.Reason})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": req.UserID, "balance": newBalance})
}

func (h *Handler) TakeCoins(c *gin.Context) {
	var req adminCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	adminID, _ := getUserID(c)
	newBalance, err := h.Ledger.AddCoins(c.Request.Context(), req.UserID, -req.Amount,
		domain.TxAdminRevoke, map[string]any{"admin_id": adminID, "reason": req.Reason})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": req.UserID, "balance": newBalance})
}

type crewRoleRequest struct {
	CommunityID     int64  `json:"community_id" binding:"required"`
	RoleID          int64  `json:"role_id" binding:"required"`
	RoleName        string `json:"role_name"`
	CaptainRoleID   int64  `json:"captain_role_id"`
	FirstMateRoleID int64  `json:"first_mate_role_id"`
}

func (h *Handler) AddCrewRole(c *gin.Context) {
	var req crewRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.Crews.AddRole(c.Request.Context(), domain.CrewRole{
		CommunityID:     req.CommunityID,
		RoleID:          req.RoleID,
		RoleName:        req.RoleName,
		CaptainRoleID:   req.CaptainRoleID,
		FirstMateRoleID: req.FirstMateRoleID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

func (h *Handler) RemoveCrewRole(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("community_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid community id"})
		return
	}
	roleID, err := strconv.ParseInt(c.Param("role_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role id"})
		return
	}

	if err := h.Crews.RemoveRole(c.Request.Context(), communityID, roleID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *Handler) ListCrewRoles(c *gin.Context) {
	communityID, err := strconv.ParseInt(c.Param("community_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid community id"})
		return
	}

	roles, err := h.Crews.ListRoles(c.Request.Context(), communityID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}
