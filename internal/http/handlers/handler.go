package handlers

import (
	"errors"
	"net/http"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/service"
	"pirate_economy/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store     *store.Store
	Ledger    *service.LedgerService
	Actions   *service.ActionService
	Shop      *service.ShopService
	Inventory *service.InventoryService
	Crews     *service.CrewService

	LeaderboardLimit int
}

func NewHandler(st *store.Store, leaderboardLimit int) *Handler {
	return &Handler{
		Store:            st,
		Ledger:           service.NewLedgerService(st),
		Actions:          service.NewActionService(st),
		Shop:             service.NewShopService(st),
		Inventory:        service.NewInventoryService(st),
		Crews:            service.NewCrewService(st),
		LeaderboardLimit: leaderboardLimit,
	}
}

func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// crewRequest is the pre-resolved crew membership the chat adapter attaches
// to action requests. The engine never talks to the chat platform itself.
type crewRequest struct {
	InCrew   bool   `json:"in_crew"`
	CrewName string `json:"crew_name"`
}

func (r crewRequest) membership() domain.CrewMembership {
	return domain.CrewMembership{IsMember: r.InCrew, CrewName: r.CrewName}
}

// writeError maps engine sentinels to HTTP statuses. Unknown errors are
// storage failures and surface as 500 without leaking detail.
func writeError(c *gin.Context, err error) {
	var cdErr *domain.CooldownActiveError
	if errors.As(err, &cdErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":               "cooldown active",
			"action":              string(cdErr.Action),
			"retry_after_seconds": cdErr.Remaining,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSelfTarget),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrNotConsumable),
		errors.Is(err, domain.ErrNotWeapon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownItem),
		errors.Is(err, domain.ErrCrewRoleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCrewRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientQuantity),
		errors.Is(err, domain.ErrVictimTooPoor),
		errors.Is(err, domain.ErrAlreadyActive),
		errors.Is(err, domain.ErrCrewRoleExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
