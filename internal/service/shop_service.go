package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

type ShopService struct {
	repo    repository.ShopRepositoryI
	catalog progression.Catalog
}

func NewShopService(shopRepo repository.ShopRepositoryI, catalog progression.Catalog) *ShopService {
	if shopRepo == nil {
		log.Fatal("provided nil shopRepo")
	}
	return &ShopService{
		repo:    shopRepo,
		catalog: catalog,
	}
}

func (ss *ShopService) ListItems(ctx context.Context) (map[string][]entity.ShopItem, error) {
	items, err := ss.repo.ListItems(ctx)
	if err != nil {
		return nil, errors.New("shop repository error: " + err.Error())
	}
	grouped := make(map[string][]entity.ShopItem)
	for _, item := range items {
		grouped[item.Type] = append(grouped[item.Type], item)
	}
	return grouped, nil
}

// BuyItem deducts the item's cost and records ownership in one transaction.
// The collector badge is re-evaluated from the new owned count inside the
// same transaction, so the tier can never lag the purchase.
func (ss *ShopService) BuyItem(ctx context.Context, uid, itemID uuid.UUID) error {
	item, err := ss.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("shop repository error: " + err.Error())
	}
	err = ss.repo.Purchase(ctx, uid, item, func(ownedCount int, badges []entity.UserBadge) []entity.UserBadge {
		tier := ss.catalog.HighestTier(progression.BadgeCollector, float64(ownedCount))
		return progression.Promote(badges, progression.BadgeCollector, tier)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound),
			errors.Is(err, errorvalues.ErrItemNotFound),
			errors.Is(err, errorvalues.ErrItemOwned),
			errors.Is(err, errorvalues.ErrInsufficientFunds):
			return err
		}
		return errors.New("shop repository error: " + err.Error())
	}
	return nil
}

func (ss *ShopService) EquipItem(ctx context.Context, uid, itemID uuid.UUID) error {
	item, err := ss.repo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("shop repository error: " + err.Error())
	}
	owns, err := ss.repo.OwnsItem(ctx, uid, item.ID)
	if err != nil {
		return errors.New("shop repository error: " + err.Error())
	}
	if !owns {
		return errorvalues.ErrItemNotOwned
	}
	err = ss.repo.SetEquipment(ctx, uid, item.Type, item.Name)
	if err != nil {
		return errors.New("shop repository error: " + err.Error())
	}
	return nil
}

func (ss *ShopService) UnequipItem(ctx context.Context, uid uuid.UUID, slot string) error {
	defaults := entity.DefaultEquipment()
	fallback, ok := defaults[slot]
	if !ok {
		return errors.New("validation error: unknown equipment slot " + slot)
	}
	err := ss.repo.SetEquipment(ctx, uid, slot, fallback)
	if err != nil {
		return errors.New("shop repository error: " + err.Error())
	}
	return nil
}
