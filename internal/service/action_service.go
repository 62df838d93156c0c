package service

import (
	"context"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/game"
	"pirate_economy/internal/logger"
	"pirate_economy/internal/metrics"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
)

// Passive and daily reward tuning.
const (
	PassiveEarnCoins = 1
	DailyReward      = 100
)

// Publisher receives resolved action events for the live feed. A nil
// publisher drops them.
type Publisher interface {
	Publish(event any)
}

// ActionService orchestrates the randomized actions. Each action is one
// store.Update: gate check, modifier reads, rolls, ledger and inventory
// mutations and the cooldown record all commit or abort together.
type ActionService struct {
	store *store.Store
	gate  CooldownGate
	feed  Publisher
}

func NewActionService(st *store.Store) *ActionService {
	return &ActionService{store: st, gate: NewCooldownGate()}
}

// SetPublisher attaches the live event feed.
func (s *ActionService) SetPublisher(p Publisher) {
	s.feed = p
}

func (s *ActionService) publish(event any) {
	if s.feed != nil {
		s.feed.Publish(event)
	}
}

// SearchResult is what a resolved search reports back to the adapter.
type SearchResult struct {
	CoinsFound       int64              `json:"coins_found"`
	ItemFound        string             `json:"item_found,omitempty"`
	CrewBonusApplied bool               `json:"crew_bonus_applied"`
	NewBalance       int64              `json:"balance"`
	Effects          domain.EffectState `json:"effects"`
}

// Search rolls for coins and loot. Modifiers come from the pre-roll effect
// and inventory state; active consumables lose one durability strictly after
// the modifiers were applied.
func (s *ActionService) Search(ctx context.Context, userID int64, crew domain.CrewMembership) (*SearchResult, error) {
	var res SearchResult

	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.gate.Check(ctx, tx, userID, domain.ActionSearch); err != nil {
			return err
		}

		effects, err := repository.GetEffects(ctx, tx, userID)
		if err != nil {
			return err
		}
		inventory, err := repository.GetInventoryMap(ctx, tx, userID)
		if err != nil {
			return err
		}

		plan := game.BuildSearchPlan(effects, inventory, crew.IsMember)
		if plan.ConsumeShipMaintenance {
			if err := repository.RemoveItem(ctx, tx, userID, domain.ItemShipMaintenance, 1); err != nil {
				return err
			}
		}
		if plan.ConsumeTreasureMap {
			if err := repository.RemoveItem(ctx, tx, userID, domain.ItemTreasureMap, 1); err != nil {
				return err
			}
		}

		out := game.ResolveSearch(plan, crew.IsMember)

		if out.Coins > 0 {
			if _, err := repository.AddBalance(ctx, tx, userID, out.Coins); err != nil {
				return err
			}
			if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
				UserID: userID,
				Type:   domain.TxSearch,
				Amount: out.Coins,
				Meta:   map[string]any{"coin_roll": out.CoinRoll, "crew_bonus": crew.IsMember},
			}); err != nil {
				return err
			}
		}
		if out.ItemFound != "" {
			if err := repository.AddItem(ctx, tx, userID, out.ItemFound, 1); err != nil {
				return err
			}
		}

		// Durability tick uses the pre-roll state, after modifiers.
		ticked := domain.ApplyDurabilityTick(effects)
		if ticked != effects {
			if err := repository.SetEffects(ctx, tx, userID, ticked); err != nil {
				return err
			}
		}

		if err := s.gate.Record(ctx, tx, userID, domain.ActionSearch); err != nil {
			return err
		}

		balance, err := repository.GetBalance(ctx, tx, userID)
		if err != nil {
			return err
		}

		res = SearchResult{
			CoinsFound:       out.Coins,
			ItemFound:        out.ItemFound,
			CrewBonusApplied: crew.IsMember && out.Coins > 0,
			NewBalance:       balance,
			Effects:          ticked,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "empty"
	if res.CoinsFound > 0 || res.ItemFound != "" {
		outcome = "found"
	}
	metrics.ActionsTotal.WithLabelValues("search", outcome).Inc()
	if res.CoinsFound > 0 {
		metrics.CoinsMinted.Add(float64(res.CoinsFound))
	}
	s.publish(FeedEvent{
		Type:   "search",
		UserID: userID,
		Amount: res.CoinsFound,
		Item:   res.ItemFound,
	})
	logger.Debug("search resolved", "user_id", userID, "coins", res.CoinsFound, "item", res.ItemFound)

	return &res, nil
}

// StealResult is what a resolved steal attempt reports back.
type StealResult struct {
	Success       bool  `json:"success"`
	Amount        int64 `json:"amount"`
	SuccessChance int   `json:"success_chance"`
	Roll          int   `json:"roll"`
	ThiefBalance  int64 `json:"thief_balance"`
}

// Steal attempts to take a cut of the victim's balance. The cooldown is
// recorded unconditionally before the outcome branches; on failure the thief
// pays a small penalty to the victim when affordable.
func (s *ActionService) Steal(ctx context.Context, thiefID, victimID int64, thiefCrew, victimCrew domain.CrewMembership) (*StealResult, error) {
	if victimID <= 0 {
		return nil, domain.ErrInvalidTarget
	}
	if thiefID == victimID {
		return nil, domain.ErrSelfTarget
	}

	var res StealResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		if err := repository.EnsureUser(ctx, tx, thiefID); err != nil {
			return err
		}
		if err := s.gate.Check(ctx, tx, thiefID, domain.ActionSteal); err != nil {
			return err
		}

		thiefBalance, err := repository.GetBalance(ctx, tx, thiefID)
		if err != nil {
			return err
		}
		victimBalance, err := repository.GetBalance(ctx, tx, victimID)
		if err != nil {
			return err
		}
		if victimBalance < game.MinVictimBalance {
			return domain.ErrVictimTooPoor
		}

		effects, err := repository.GetEffects(ctx, tx, thiefID)
		if err != nil {
			return err
		}

		res.SuccessChance = game.StealSuccessChance(thiefCrew.IsMember, victimCrew.IsMember, effects.EquippedWeapon)
		res.Roll = game.RollPercent()
		res.Success = res.Roll <= res.SuccessChance

		if err := s.gate.Record(ctx, tx, thiefID, domain.ActionSteal); err != nil {
			return err
		}

		meta := map[string]any{"roll": res.Roll, "chance": res.SuccessChance}
		if res.Success {
			res.Amount = game.StolenAmount(victimBalance)
			if err := transferTx(ctx, tx, victimID, thiefID, res.Amount, domain.TxSteal, meta); err != nil {
				return err
			}
		} else {
			penalty := game.StealPenalty(thiefBalance)
			if penalty > 0 {
				if err := transferTx(ctx, tx, thiefID, victimID, penalty, domain.TxStealPenalty, meta); err != nil {
					return err
				}
			}
			res.Amount = penalty
		}

		res.ThiefBalance, err = repository.GetBalance(ctx, tx, thiefID)
		return err
	})
	if err != nil {
		return nil, err
	}

	outcome := "failed"
	if res.Success {
		outcome = "success"
	}
	metrics.ActionsTotal.WithLabelValues("steal", outcome).Inc()
	if res.Amount > 0 {
		metrics.CoinsTransferred.Add(float64(res.Amount))
	}
	s.publish(FeedEvent{
		Type:     "steal",
		UserID:   thiefID,
		TargetID: victimID,
		Amount:   res.Amount,
		Success:  &res.Success,
	})
	logger.Debug("steal resolved", "thief_id", thiefID, "victim_id", victimID,
		"success", res.Success, "amount", res.Amount)

	return &res, nil
}

// PassiveEarn credits the per-message trickle, gated at one credit per
// minute. The adapter calls this for every qualifying chat message.
func (s *ActionService) PassiveEarn(ctx context.Context, userID int64) (int64, error) {
	var credited int64
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.gate.Check(ctx, tx, userID, domain.ActionPassiveEarn); err != nil {
			return err
		}
		if _, err := repository.AddBalance(ctx, tx, userID, PassiveEarnCoins); err != nil {
			return err
		}
		if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
			UserID: userID,
			Type:   domain.TxPassive,
			Amount: PassiveEarnCoins,
		}); err != nil {
			return err
		}
		credited = PassiveEarnCoins
		return s.gate.Record(ctx, tx, userID, domain.ActionPassiveEarn)
	})
	if err != nil {
		return 0, err
	}
	metrics.ActionsTotal.WithLabelValues("passive_earn", "credited").Inc()
	metrics.CoinsMinted.Add(float64(credited))
	return credited, nil
}

// DailyResult reports a claimed daily ration.
type DailyResult struct {
	Amount           int64 `json:"amount"`
	CrewBonusApplied bool  `json:"crew_bonus_applied"`
	NewBalance       int64 `json:"balance"`
}

// Daily pays the fixed ration, with the crew multiplier applied and floored,
// once per 24h.
func (s *ActionService) Daily(ctx context.Context, userID int64, crew domain.CrewMembership) (*DailyResult, error) {
	amount := int64(DailyReward)
	if crew.IsMember {
		amount = int64(float64(DailyReward) * game.CrewCoinMultiplier)
	}

	var res DailyResult
	err := s.store.Update(ctx, func(tx pgx.Tx) error {
		if err := repository.EnsureUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.gate.Check(ctx, tx, userID, domain.ActionDaily); err != nil {
			return err
		}
		balance, err := repository.AddBalance(ctx, tx, userID, amount)
		if err != nil {
			return err
		}
		if err := repository.RecordTransaction(ctx, tx, &domain.Transaction{
			UserID: userID,
			Type:   domain.TxDaily,
			Amount: amount,
			Meta:   map[string]any{"crew_bonus": crew.IsMember},
		}); err != nil {
			return err
		}
		if err := s.gate.Record(ctx, tx, userID, domain.ActionDaily); err != nil {
			return err
		}
		res = DailyResult{Amount: amount, CrewBonusApplied: crew.IsMember, NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ActionsTotal.WithLabelValues("daily", "claimed").Inc()
	metrics.CoinsMinted.Add(float64(amount))
	return &res, nil
}

// FeedEvent is the wire shape broadcast on the live feed.
type FeedEvent struct {
	Type     string `json:"type"`
	UserID   int64  `json:"user_id"`
	TargetID int64  `json:"target_id,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
	Item     string `json:"item,omitempty"`
	Success  *bool  `json:"success,omitempty"`
}
