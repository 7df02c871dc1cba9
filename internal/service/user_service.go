package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/internal/repository"
	"github.com/limbo/palseverance/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const defaultPetName = "Pal"

// Every account starts with these badges recorded at tier 0.
var seedBadges = []string{
	progression.BadgeHabitStreak,
	progression.BadgeWealthBuilder,
	progression.BadgeCollector,
}

type UserService struct {
	repo     repository.UsersRepositoryI
	shopRepo repository.ShopRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, shopRepo repository.ShopRepositoryI) *UserService {
	if usersRepo == nil || shopRepo == nil {
		log.Fatal("provided nil repos to user service")
	}
	return &UserService{
		repo:     usersRepo,
		shopRepo: shopRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
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
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	petName := req.PetName
	if petName == "" {
		petName = defaultPetName
	}
	user := entity.User{
		Name:           req.Name,
		PasswordHash:   passwordHash,
		PetName:        petName,
		HappinessMeter: 100,
	}
	err = us.repo.Create(ctx, &user, seedBadges, entity.DefaultEquipment())
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return &user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	equipment, err := us.shopRepo.GetEquipment(ctx, id)
	if err != nil {
		return nil, errors.New("getting equipment error: " + err.Error())
	}
	owned, err := us.shopRepo.ListOwnedItemIDs(ctx, id)
	if err != nil {
		return nil, errors.New("listing owned items error: " + err.Error())
	}
	return &Profile{
		User:       user,
		Equipment:  equipment,
		OwnedItems: owned,
	}, nil
}

func (us *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, req *UpdateSettingsRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	err = us.repo.UpdateSettings(ctx, id, req.Name, req.PetName)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrUserExists):
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deleting error: " + err.Error())
	}
	return nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
