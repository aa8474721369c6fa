package reftypes

import (
	"testing"

	"github.com/fastprodman/assetledger/internal/infra/pgtestutil"
	"github.com/fastprodman/assetledger/internal/ledger"
)

func TestRefTypes_ActiveOnly(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedReferenceData(t, db)

	ctx := t.Context()

	_, err := db.ExecContext(ctx, `UPDATE asset_type SET is_active = FALSE WHERE id = $1`, pgtestutil.AssetCash)
	if err != nil {
		t.Fatalf("deactivate asset: %v", err)
	}

	repo := New(db)

	assets, err := repo.ActiveAssetTypes(ctx)
	if err != nil {
		t.Fatalf("asset types: %v", err)
	}

	if len(assets) != 1 || assets[0].ID != pgtestutil.AssetPoints {
		t.Fatalf("want only points, got %+v", assets)
	}

	actions, err := repo.ActiveActionTypes(ctx)
	if err != nil {
		t.Fatalf("action types: %v", err)
	}

	if len(actions) != 6 {
		t.Fatalf("want 6 action types, got %d", len(actions))
	}

	freeze := actions[pgtestutil.ActionFreeze-1]
	if freeze.Name != "freeze" ||
		freeze.AvailableBalance != ledger.ChangeDec ||
		freeze.FrozenBalance != ledger.ChangeInc ||
		freeze.TotalIncome != ledger.ChangeNone ||
		freeze.TotalExpense != ledger.ChangeNone {
		t.Fatalf("unexpected freeze rules: %+v", freeze)
	}
}
