package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pirate_economy/internal/domain"
	"pirate_economy/internal/repository"
	"pirate_economy/internal/service"
	"pirate_economy/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	applyMigrations(t, db)

	st := store.New(db)
	if err := st.Update(context.Background(), func(tx pgx.Tx) error {
		return repository.SeedCatalog(context.Background(), tx)
	}); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return st
}

// fresh ids per run so reruns against the same database do not collide
func newUserID() int64 {
	return time.Now().UnixNano()
}

func TestLedgerCreditAndStats(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	userID := newUserID()

	balance, err := ledger.AddCoins(context.Background(), userID, 500, domain.TxAdminGrant, nil)
	if err != nil {
		t.Fatalf("add coins: %v", err)
	}
	if balance != 500 {
		t.Fatalf("balance = %d; want 500", balance)
	}

	gotBalance, totalEarned, err := ledger.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if gotBalance != 500 || totalEarned != 500 {
		t.Fatalf("stats = (%d, %d); want (500, 500)", gotBalance, totalEarned)
	}

	// debit reduces balance but not total earned
	if _, err := ledger.AddCoins(context.Background(), userID, -200, domain.TxAdminRevoke, nil); err != nil {
		t.Fatalf("debit: %v", err)
	}
	gotBalance, totalEarned, err = ledger.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if gotBalance != 300 || totalEarned != 500 {
		t.Fatalf("stats after debit = (%d, %d); want (300, 500)", gotBalance, totalEarned)
	}
}

func TestLedgerOverdraftRejected(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	userID := newUserID()

	if _, err := ledger.AddCoins(context.Background(), userID, 50, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	_, err := ledger.AddCoins(context.Background(), userID, -100, domain.TxAdminRevoke, nil)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("overdraft = %v; want ErrInsufficientFunds", err)
	}

	// nothing moved
	balance, err := ledger.GetBalance(context.Background(), userID)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance != 50 {
		t.Fatalf("balance = %d; want 50", balance)
	}
}

func TestTransferConservesCoins(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	fromID := newUserID()
	toID := fromID + 1

	if _, err := ledger.AddCoins(context.Background(), fromID, 300, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	if err := ledger.Transfer(context.Background(), fromID, toID, 120, "gift", nil); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	fromBalance, _ := ledger.GetBalance(context.Background(), fromID)
	toBalance, _ := ledger.GetBalance(context.Background(), toID)
	if fromBalance != 180 || toBalance != 120 {
		t.Fatalf("balances = (%d, %d); want (180, 120)", fromBalance, toBalance)
	}
	if fromBalance+toBalance != 300 {
		t.Fatalf("coins not conserved: %d", fromBalance+toBalance)
	}

	// transfers leave total_earned alone on both sides
	_, fromEarned, _ := ledger.GetStats(context.Background(), fromID)
	_, toEarned, _ := ledger.GetStats(context.Background(), toID)
	if fromEarned != 300 || toEarned != 0 {
		t.Fatalf("total earned = (%d, %d); want (300, 0)", fromEarned, toEarned)
	}
}

func TestBuySellRoundTrip(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	shop := service.NewShopService(st)
	userID := newUserID()
	noCrew := domain.CrewMembership{}

	if _, err := ledger.AddCoins(context.Background(), userID, 500, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	buy, err := shop.Buy(context.Background(), userID, domain.ItemCutlass, 1, noCrew)
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if buy.TotalCost != 350 || buy.NewBalance != 150 {
		t.Fatalf("buy = cost %d balance %d; want 350, 150", buy.TotalCost, buy.NewBalance)
	}

	sell, err := shop.Sell(context.Background(), userID, domain.ItemCutlass, 1)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if sell.Proceeds != 175 || sell.NewBalance != 325 {
		t.Fatalf("sell = proceeds %d balance %d; want 175, 325", sell.Proceeds, sell.NewBalance)
	}

	// selling redistributes, it does not earn
	_, totalEarned, _ := ledger.GetStats(context.Background(), userID)
	if totalEarned != 500 {
		t.Fatalf("total earned = %d; want 500", totalEarned)
	}

	// the stack is gone
	_, err = shop.Sell(context.Background(), userID, domain.ItemCutlass, 1)
	if !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("second sell = %v; want ErrInsufficientQuantity", err)
	}
}

func TestBuyCrewGate(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	shop := service.NewShopService(st)
	userID := newUserID()

	if _, err := ledger.AddCoins(context.Background(), userID, 5000, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	_, err := shop.Buy(context.Background(), userID, domain.ItemCannon, 1, domain.CrewMembership{})
	if !errors.Is(err, domain.ErrCrewRequired) {
		t.Fatalf("non-crew buy = %v; want ErrCrewRequired", err)
	}

	if _, err := shop.Buy(context.Background(), userID, domain.ItemCannon, 1, domain.CrewMembership{IsMember: true}); err != nil {
		t.Fatalf("crew buy: %v", err)
	}
}

func TestBuyInsufficientFundsIsAtomic(t *testing.T) {
	st := setupStore(t)
	shop := service.NewShopService(st)
	inv := service.NewInventoryService(st)
	userID := newUserID()

	_, err := shop.Buy(context.Background(), userID, domain.ItemCompass, 2, domain.CrewMembership{})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("broke buy = %v; want ErrInsufficientFunds", err)
	}

	view, err := inv.Inventory(context.Background(), userID)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("items credited despite failed buy: %+v", view.Items)
	}
}

func TestSearchRespectsCooldown(t *testing.T) {
	st := setupStore(t)
	actions := service.NewActionService(st)
	userID := newUserID()
	noCrew := domain.CrewMembership{}

	if _, err := actions.Search(context.Background(), userID, noCrew); err != nil {
		t.Fatalf("first search: %v", err)
	}

	_, err := actions.Search(context.Background(), userID, noCrew)
	if !errors.Is(err, domain.ErrCooldownActive) {
		t.Fatalf("second search = %v; want cooldown error", err)
	}
	var cdErr *domain.CooldownActiveError
	if !errors.As(err, &cdErr) {
		t.Fatalf("error does not carry remaining wait: %v", err)
	}
	if cdErr.Remaining <= 0 || cdErr.Remaining > domain.SearchCooldown {
		t.Fatalf("remaining = %d", cdErr.Remaining)
	}
}

func TestStealTransfersExactly(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	actions := service.NewActionService(st)
	thiefID := newUserID()
	victimID := thiefID + 1
	noCrew := domain.CrewMembership{}

	if _, err := ledger.AddCoins(context.Background(), thiefID, 100, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit thief: %v", err)
	}
	if _, err := ledger.AddCoins(context.Background(), victimID, 1000, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit victim: %v", err)
	}

	res, err := actions.Steal(context.Background(), thiefID, victimID, noCrew, noCrew)
	if err != nil {
		t.Fatalf("steal: %v", err)
	}

	thiefBalance, _ := ledger.GetBalance(context.Background(), thiefID)
	victimBalance, _ := ledger.GetBalance(context.Background(), victimID)

	if thiefBalance+victimBalance != 1100 {
		t.Fatalf("coins not conserved: %d", thiefBalance+victimBalance)
	}
	if res.Success {
		if thiefBalance != 100+res.Amount || victimBalance != 1000-res.Amount {
			t.Fatalf("success balances (%d, %d) vs amount %d", thiefBalance, victimBalance, res.Amount)
		}
	} else {
		if thiefBalance != 100-res.Amount || victimBalance != 1000+res.Amount {
			t.Fatalf("failure balances (%d, %d) vs penalty %d", thiefBalance, victimBalance, res.Amount)
		}
	}

	// second attempt inside the window is refused
	if _, err := actions.Steal(context.Background(), thiefID, victimID, noCrew, noCrew); !errors.Is(err, domain.ErrCooldownActive) {
		t.Fatalf("second steal = %v; want cooldown error", err)
	}
}

func TestStealVictimTooPoor(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	actions := service.NewActionService(st)
	thiefID := newUserID()
	victimID := thiefID + 1
	noCrew := domain.CrewMembership{}

	if _, err := ledger.AddCoins(context.Background(), victimID, 5, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit victim: %v", err)
	}

	_, err := actions.Steal(context.Background(), thiefID, victimID, noCrew, noCrew)
	if !errors.Is(err, domain.ErrVictimTooPoor) {
		t.Fatalf("steal = %v; want ErrVictimTooPoor", err)
	}
}

func TestUseCompassThenSearchTicksDurability(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	shop := service.NewShopService(st)
	inv := service.NewInventoryService(st)
	actions := service.NewActionService(st)
	userID := newUserID()
	noCrew := domain.CrewMembership{}

	if _, err := ledger.AddCoins(context.Background(), userID, 200, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if _, err := shop.Buy(context.Background(), userID, domain.ItemCompass, 1, noCrew); err != nil {
		t.Fatalf("buy compass: %v", err)
	}

	use, err := inv.UseItem(context.Background(), userID, domain.ItemCompass)
	if err != nil {
		t.Fatalf("use compass: %v", err)
	}
	if !use.Effects.CompassActive || use.Effects.CompassDurability != domain.ConsumableDurability {
		t.Fatalf("effects after use: %+v", use.Effects)
	}

	// a second activation while running is refused
	if _, err := inv.UseItem(context.Background(), userID, domain.ItemCompass); !errors.Is(err, domain.ErrInsufficientQuantity) && !errors.Is(err, domain.ErrAlreadyActive) {
		t.Fatalf("second use = %v; want ErrAlreadyActive or empty stack", err)
	}

	res, err := actions.Search(context.Background(), userID, noCrew)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !res.Effects.CompassActive || res.Effects.CompassDurability != domain.ConsumableDurability-1 {
		t.Fatalf("effects after search: %+v", res.Effects)
	}
}

func TestEquipWeapon(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	shop := service.NewShopService(st)
	inv := service.NewInventoryService(st)
	userID := newUserID()
	noCrew := domain.CrewMembership{}

	if _, err := ledger.AddCoins(context.Background(), userID, 600, domain.TxAdminGrant, nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	// cannot equip what you do not own
	if _, err := inv.Equip(context.Background(), userID, domain.ItemCutlass); !errors.Is(err, domain.ErrInsufficientQuantity) {
		t.Fatalf("equip unowned = %v; want ErrInsufficientQuantity", err)
	}

	if _, err := shop.Buy(context.Background(), userID, domain.ItemCutlass, 1, noCrew); err != nil {
		t.Fatalf("buy cutlass: %v", err)
	}

	res, err := inv.Equip(context.Background(), userID, domain.ItemCutlass)
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	if res.Weapon != domain.ItemCutlass || res.StealBonus != 10 {
		t.Fatalf("equip result: %+v", res)
	}

	// equipping does not consume the weapon
	view, err := inv.Inventory(context.Background(), userID)
	if err != nil {
		t.Fatalf("inventory: %v", err)
	}
	found := false
	for _, item := range view.Items {
		if item.ItemName == domain.ItemCutlass && item.Quantity == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("cutlass missing after equip: %+v", view.Items)
	}
}

func TestDailyRespectsCooldownAndCrewBonus(t *testing.T) {
	st := setupStore(t)
	actions := service.NewActionService(st)

	plain := newUserID()
	res, err := actions.Daily(context.Background(), plain, domain.CrewMembership{})
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if res.Amount != service.DailyReward {
		t.Fatalf("daily amount = %d; want %d", res.Amount, service.DailyReward)
	}

	if _, err := actions.Daily(context.Background(), plain, domain.CrewMembership{}); !errors.Is(err, domain.ErrCooldownActive) {
		t.Fatalf("second daily = %v; want cooldown error", err)
	}

	crewed := plain + 1
	res, err = actions.Daily(context.Background(), crewed, domain.CrewMembership{IsMember: true})
	if err != nil {
		t.Fatalf("crew daily: %v", err)
	}
	if res.Amount != int64(float64(service.DailyReward)*1.5) {
		t.Fatalf("crew daily amount = %d", res.Amount)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)

	base := newUserID()
	amounts := []int64{300, 100, 200}
	for i, amount := range amounts {
		if _, err := ledger.AddCoins(context.Background(), base+int64(i), amount, domain.TxAdminGrant, nil); err != nil {
			t.Fatalf("credit: %v", err)
		}
	}

	entries, err := ledger.Leaderboard(context.Background(), 100)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.Balance > prev.Balance {
			t.Fatalf("leaderboard out of order at %d: %d after %d", i, cur.Balance, prev.Balance)
		}
		if cur.Balance == prev.Balance && cur.UserID < prev.UserID {
			t.Fatalf("tie not broken by user id at %d", i)
		}
		if cur.Rank != prev.Rank+1 {
			t.Fatalf("ranks not sequential at %d", i)
		}
	}
}

func TestCrewRoleRegistry(t *testing.T) {
	st := setupStore(t)
	crews := service.NewCrewService(st)
	communityID := newUserID()

	role := domain.CrewRole{CommunityID: communityID, RoleID: 11, RoleName: "Black Pearl"}
	if err := crews.AddRole(context.Background(), role); err != nil {
		t.Fatalf("add role: %v", err)
	}
	if err := crews.AddRole(context.Background(), role); !errors.Is(err, domain.ErrCrewRoleExists) {
		t.Fatalf("duplicate add = %v; want ErrCrewRoleExists", err)
	}

	membership, err := crews.Resolve(context.Background(), communityID, []int64{11, 99})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !membership.IsMember || membership.CrewName != "Black Pearl" {
		t.Fatalf("membership = %+v", membership)
	}

	if err := crews.RemoveRole(context.Background(), communityID, 11); err != nil {
		t.Fatalf("remove role: %v", err)
	}
	if err := crews.RemoveRole(context.Background(), communityID, 11); !errors.Is(err, domain.ErrCrewRoleNotFound) {
		t.Fatalf("second remove = %v; want ErrCrewRoleNotFound", err)
	}
}

func TestTransactionHistoryRecordsMoves(t *testing.T) {
	st := setupStore(t)
	ledger := service.NewLedgerService(st)
	userID := newUserID()

	if _, err := ledger.AddCoins(context.Background(), userID, 100, domain.TxAdminGrant, map[string]any{"reason": "seed"}); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := ledger.Transfer(context.Background(), userID, userID+1, 40, "gift", nil); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	history, err := ledger.History(context.Background(), userID, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d entries; want 2", len(history))
	}

	// newest first
	if history[0].Type != "gift_out" || history[0].Amount != -40 {
		t.Fatalf("latest entry: %+v", history[0])
	}
	if history[1].Type != domain.TxAdminGrant || history[1].Amount != 100 {
		t.Fatalf("first entry: %+v", history[1])
	}
}
