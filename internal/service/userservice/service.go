package userservice

import (
	"context"
	"fmt"

	"userhub/internal/domain"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
	"userhub/internal/pkg/validator"
)

// UserRepository define o contrato que este Serviço espera da camada de Persistência.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindAllSortedByName(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByFilter(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, id int64, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// Service orquestra validação, persistência e mapeamento de usuários.
type Service struct {
	repo     UserRepository
	validate *validator.Validator
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewService cria uma nova instância do Serviço de Usuário.
func NewService(repo UserRepository, v *validator.Validator, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		logger:   log,
		metrics:  m,
	}
}

func (s *Service) list(users []domain.User, err error, notFoundMsg string) ([]dto.User, error) {
	if err != nil {
		return nil, apperror.Propagate("Failed to fetch users", err)
	}
	if len(users) == 0 {
		return nil, apperror.NewNotFoundError(notFoundMsg)
	}
	return dto.FromUsers(users), nil
}

// GetAll retorna todos os usuários. Lista vazia é NotFound.
func (s *Service) GetAll(ctx context.Context) ([]dto.User, error) {
	users, err := s.repo.FindAll(ctx)
	return s.list(users, err, "Users not found")
}

// GetAllSortedByName retorna todos os usuários ordenados por nome.
func (s *Service) GetAllSortedByName(ctx context.Context) ([]dto.User, error) {
	users, err := s.repo.FindAllSortedByName(ctx)
	return s.list(users, err, "Users not found")
}

// GetByID busca um usuário pelo id.
func (s *Service) GetByID(ctx context.Context, id int64) (dto.User, error) {
	// 1. Validação
	if err := s.validate.Check("id", id, "gt=0"); err != nil {
		return dto.User{}, err
	}

	// 2. Persistência
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.User{}, apperror.Propagate("Failed to fetch user", err)
	}

	// 3. Mapeamento
	return dto.FromUser(user), nil
}

// Filter retorna os usuários que casam com qualquer critério informado.
func (s *Service) Filter(ctx context.Context, filter dto.UserFilter) ([]dto.User, error) {
	if err := s.validate.Struct(filter); err != nil {
		return nil, err
	}

	users, err := s.repo.FindByFilter(ctx, filter.ToEntity())
	return s.list(users, err, "Users not found by filter")
}

// Count retorna o total de usuários; zero é tratado como NotFound.
func (s *Service) Count(ctx context.Context) (dto.CountResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return dto.CountResponse{}, apperror.Propagate("Failed to count users", err)
	}
	if total == 0 {
		return dto.CountResponse{}, apperror.NewNotFoundError("Users not found")
	}
	return dto.CountResponse{Count: total}, nil
}

// Create valida o payload e persiste um novo usuário.
func (s *Service) Create(ctx context.Context, payload dto.User) (dto.User, error) {
	// 1. Validação de todos os campos
	if err := s.validate.Struct(payload); err != nil {
		return dto.User{}, err
	}

	// 2. Persistência (o id é gerado pelo PostgreSQL)
	created, err := s.repo.Create(ctx, payload.ToEntity())
	if err != nil {
		return dto.User{}, apperror.Propagate("Failed to create user", err)
	}

	s.metrics.IncrementCreated("user")
	s.logger.Info("Usuário criado", map[string]interface{}{"id": created.ID})
	return dto.FromUser(created), nil
}

// Update substitui todos os campos mutáveis do usuário.
func (s *Service) Update(ctx context.Context, id int64, payload dto.User) (dto.User, error) {
	if err := s.validate.Check("id", id, "gt=0"); err != nil {
		return dto.User{}, err
	}
	if err := s.validate.Struct(payload); err != nil {
		return dto.User{}, err
	}

	updated, err := s.repo.Update(ctx, id, payload.ToEntity())
	if err != nil {
		return dto.User{}, apperror.Propagate("Failed to update user", err)
	}

	s.logger.Info("Usuário atualizado", map[string]interface{}{"id": id})
	return dto.FromUser(updated), nil
}

// Delete remove o usuário pelo id.
func (s *Service) Delete(ctx context.Context, id int64) (dto.Message, error) {
	if err := s.validate.Check("id", id, "gt=0"); err != nil {
		return dto.Message{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return dto.Message{}, apperror.Propagate("Failed to delete user", err)
	}

	s.metrics.IncrementDeleted("user")
	s.logger.Info("Usuário removido", map[string]interface{}{"id": id})
	return dto.Message{Message: fmt.Sprintf("User with id %d was successfully deleted", id)}, nil
}
