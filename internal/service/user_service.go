package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/policy"
	"garments-order-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// Interfaz que debe implementar repository
type UserRepository interface {
	Insert(ctx context.Context, u *model.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context, search, role, status string) ([]*model.User, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (int64, error)
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Register crea la cuenta si no existe. Si el email ya está, no toca nada:
// el registro es registrar-o-nada, nunca sobreescribe.
func (s *UserService) Register(ctx context.Context, req dto.RegisterUserRequest) (string, bool, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", false, err
	}
	if existing != nil {
		return "", false, nil
	}

	user := &model.User{
		Email:       req.Email,
		Name:        req.Name,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        model.RoleUser, // el rol lo fija el servidor
		Status:      model.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// GetRole: un email desconocido cuenta como rol "user" (el más débil).
func (s *UserService) GetRole(ctx context.Context, email string) (*dto.UserRoleResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return &dto.UserRoleResponse{Role: model.RoleUser}, nil
	}
	if err != nil {
		return nil, err
	}

	return &dto.UserRoleResponse{
		Role:            user.Role,
		Status:          user.Status,
		SuspendReason:   user.SuspendReason,
		SuspendFeedback: user.SuspendFeedback,
	}, nil
}

func (s *UserService) List(ctx context.Context, search, role, status string) ([]*model.User, error) {
	return s.users.FindAll(ctx, search, role, status)
}

// UpdateRole aplica solo los campos presentes. Suspender estampa suspendedAt.
func (s *UserService) UpdateRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (int64, error) {
	set := bson.M{}
	if req.Role != "" {
		set["role"] = req.Role
	}
	if req.Status != "" {
		set["status"] = req.Status
		if req.Status == model.StatusSuspended {
			set["suspendedAt"] = time.Now().UTC()
		}
	}
	if req.SuspendReason != "" {
		set["suspendReason"] = req.SuspendReason
	}
	if req.SuspendFeedback != "" {
		set["suspendFeedback"] = req.SuspendFeedback
	}

	if len(set) == 0 {
		return 0, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	return s.users.UpdateByID(ctx, id, set)
}

// ResolveActor arma la entrada de la política a partir del email del token.
// Cuenta inexistente => Account nil, que la política traduce a NO_USER.
func (s *UserService) ResolveActor(ctx context.Context, email string) (policy.Input, error) {
	account, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return policy.Input{Email: email}, nil
	}
	if err != nil {
		return policy.Input{}, err
	}
	return policy.Input{Email: email, Account: account}, nil
}
