package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
)

type BadgesService struct {
	usersRepo repository.UsersRepositoryI
	catalog   progression.Catalog
}

func NewBadgesService(usersRepo repository.UsersRepositoryI, catalog progression.Catalog) *BadgesService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &BadgesService{
		usersRepo: usersRepo,
		catalog:   catalog,
	}
}

// GetUserBadges joins the user's earned tiers with catalog reference data.
// At tier 0 the base description is shown; earned tiers show the tier's own
// description and image.
func (bs *BadgesService) GetUserBadges(ctx context.Context, uid uuid.UUID) ([]BadgeView, error) {
	user, err := bs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	views := make([]BadgeView, 0, len(user.Badges))
	for _, ub := range user.Badges {
		badge, ok := bs.catalog.Get(ub.BadgeID)
		if !ok {
			continue
		}
		view := BadgeView{
			BadgeID:             badge.ID,
			Title:               badge.Title,
			Description:         badge.BaseDescription,
			HighestTierAchieved: ub.HighestTierAchieved,
		}
		for _, tier := range badge.Tiers {
			if tier.Tier == ub.HighestTierAchieved {
				view.Description = tier.TierDescription
				view.ImageURL = tier.ImageURL
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}
