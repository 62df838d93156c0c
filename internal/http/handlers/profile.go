package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// Me returns the caller's account with per-action cooldown remainders, so the
// chat adapter can render "try again in Ns" without its own clock math.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var account *domain.UserAccount
	err := h.Store.View(c.Request.Context(), func(tx pgx.Tx) error {
		var err error
		account, err = repository.GetAccount(c.Request.Context(), tx, userID)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	now := time.Now().Unix()
	cooldowns := gin.H{}
	for kind, last := range map[domain.ActionKind]int64{
		domain.ActionPassiveEarn: account.LastPassive,
		domain.ActionSearch:      account.LastSearch,
		domain.ActionSteal:       account.LastSteal,
		domain.ActionDaily:       account.LastDaily,
	} {
		cooldowns[string(kind)] = domain.CooldownRemaining(last, now, kind)
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      account.UserID,
		"balance":      account.Balance,
		"total_earned": account.TotalEarned,
		"effects":      account.Effects,
		"cooldowns":    cooldowns,
		"created_at":   account.CreatedAt,
	})
}

func (h *Handler) MyHistory(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	history, err := h.Ledger.History(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": history})
}
