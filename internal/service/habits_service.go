package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
)

type HabitsService struct {
	repo    repository.HabitsRepositoryI
	catalog progression.Catalog
	now     func() time.Time
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, catalog progression.Catalog) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo:    habitsRepo,
		catalog: catalog,
		now:     time.Now,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	h := entity.Habit{
		UserID: uid,
		Title:  req.Title,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

// CompleteHabit applies today's completion atomically. The benign guard
// (habit already completed within the last day) comes back as an outcome,
// not an error: the caller shows a notice and nothing was written.
func (hs *HabitsService) CompleteHabit(ctx context.Context, habitID, userID uuid.UUID) (*CompletionOutcome, error) {
	now := hs.now()
	res, err := hs.repo.CompleteHabit(ctx, userID, habitID, func(user *entity.User, habit *entity.Habit) (*progression.CompletionResult, error) {
		return progression.ComputeCompletion(user, habit, hs.catalog, now)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitAlreadyCompleted):
			return &CompletionOutcome{AlreadyCompleted: true}, nil
		case errors.Is(err, errorvalues.ErrHabitNotFound),
			errors.Is(err, errorvalues.ErrUserNotFound),
			errors.Is(err, errorvalues.ErrWrongOwner),
			errors.Is(err, errorvalues.ErrMalformedRecord):
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return &CompletionOutcome{Result: res}, nil
}
