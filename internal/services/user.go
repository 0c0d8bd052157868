package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/db"
	"github.com/yungbote/portfolio-backend/internal/data/repos"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService interface {
	Create(ctx context.Context, in types.UserInput) (*types.User, error)
	Get(ctx context.Context, id uint) (*types.User, error)
	GetByUsername(ctx context.Context, username string) (*types.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	cost     int
}

func NewUserService(gdb *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: gdb, log: serviceLog, userRepo: userRepo, cost: bcrypt.DefaultCost}
}

// Create stores the user with a bcrypt hash in place of the password.
func (us *userService) Create(ctx context.Context, in types.UserInput) (*types.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), us.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := us.userRepo.Create(ctx, nil, &types.User{Username: in.Username, Password: string(hash)})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (us *userService) Get(ctx context.Context, id uint) (*types.User, error) {
	user, err := us.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (us *userService) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	user, err := us.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (us *userService) VerifyPassword(ctx context.Context, username, password string) (*types.User, error) {
	user, err := us.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
