// Package refdata holds the immutable snapshot of active asset and action
// types the ledger validates against. Build it once with Load before serving
// traffic and pass the *Cache to whoever needs it.
package refdata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fastprodman/assetledger/internal/ledger"
	"github.com/fastprodman/assetledger/internal/repos/reftypes"
)

var (
	ErrNotInitialized   = errors.New("reference data not initialized")
	ErrUnknownAssetType = fmt.Errorf("asset type: %w", ledger.ErrNotFound)
	ErrUnknownAction    = fmt.Errorf("action type: %w", ledger.ErrNotFound)
)

type Cache struct {
	assetTypes  []ledger.AssetType
	actionTypes []ledger.ActionType
	assetByID   map[int32]ledger.AssetType
	actionByID  map[int32]ledger.ActionType
}

// Load reads the active reference rows once.
func Load(ctx context.Context, src reftypes.RefTypes) (*Cache, error) {
	assets, err := src.ActiveAssetTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load asset types: %w", err)
	}

	actions, err := src.ActiveActionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load action types: %w", err)
	}

	return New(assets, actions), nil
}

// New builds a cache from already-loaded rows. Inactive rows are dropped.
func New(assets []ledger.AssetType, actions []ledger.ActionType) *Cache {
	c := &Cache{
		assetByID:  make(map[int32]ledger.AssetType, len(assets)),
		actionByID: make(map[int32]ledger.ActionType, len(actions)),
	}

	for _, a := range assets {
		if a.IsActive {
			c.assetByID[a.ID] = a
			c.assetTypes = append(c.assetTypes, a)
		}
	}

	for _, a := range actions {
		if a.IsActive {
			c.actionByID[a.ID] = a
			c.actionTypes = append(c.actionTypes, a)
		}
	}

	sort.Slice(c.assetTypes, func(i, j int) bool { return c.assetTypes[i].ID < c.assetTypes[j].ID })
	sort.Slice(c.actionTypes, func(i, j int) bool { return c.actionTypes[i].ID < c.actionTypes[j].ID })

	return c
}

func (c *Cache) ready() bool {
	return c != nil && c.assetByID != nil && c.actionByID != nil
}

// AssetTypes returns a copy of the active asset types ordered by id.
func (c *Cache) AssetTypes() ([]ledger.AssetType, error) {
	if !c.ready() {
		return nil, ErrNotInitialized
	}

	return append([]ledger.AssetType(nil), c.assetTypes...), nil
}

// AssetTypeIDs returns the active asset type ids in ascending order.
func (c *Cache) AssetTypeIDs() ([]int32, error) {
	if !c.ready() {
		return nil, ErrNotInitialized
	}

	ids := make([]int32, len(c.assetTypes))
	for i, a := range c.assetTypes {
		ids[i] = a.ID
	}

	return ids, nil
}

func (c *Cache) AssetType(id int32) (ledger.AssetType, error) {
	if !c.ready() {
		return ledger.AssetType{}, ErrNotInitialized
	}

	a, ok := c.assetByID[id]
	if !ok {
		return ledger.AssetType{}, fmt.Errorf("%w: id %d", ErrUnknownAssetType, id)
	}

	return a, nil
}

func (c *Cache) IsActiveAssetType(id int32) (bool, error) {
	if !c.ready() {
		return false, ErrNotInitialized
	}

	_, ok := c.assetByID[id]

	return ok, nil
}

// ActionTypes returns a copy of the active action types ordered by id.
func (c *Cache) ActionTypes() ([]ledger.ActionType, error) {
	if !c.ready() {
		return nil, ErrNotInitialized
	}

	return append([]ledger.ActionType(nil), c.actionTypes...), nil
}

func (c *Cache) ActionType(id int32) (ledger.ActionType, error) {
	if !c.ready() {
		return ledger.ActionType{}, ErrNotInitialized
	}

	a, ok := c.actionByID[id]
	if !ok {
		return ledger.ActionType{}, fmt.Errorf("%w: id %d", ErrUnknownAction, id)
	}

	return a, nil
}

func (c *Cache) IsActiveActionType(id int32) (bool, error) {
	if !c.ready() {
		return false, ErrNotInitialized
	}

	_, ok := c.actionByID[id]

	return ok, nil
}
