package passportservice

import (
	"context"
	"fmt"
	"time"

	"userhub/internal/domain"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
	"userhub/internal/pkg/validator"
)

// PassportRepository define o contrato que este Serviço espera da camada de Persistência.
type PassportRepository interface {
	FindAll(ctx context.Context) ([]domain.UserPassport, error)
	FindByNumber(ctx context.Context, number int) (domain.UserPassport, error)
	FindByNationality(ctx context.Context, nationality string) ([]domain.UserPassport, error)
	Create(ctx context.Context, passport domain.UserPassport) (domain.UserPassport, error)
	UpdateByNumber(ctx context.Context, number int, passport domain.UserPassport) (domain.UserPassport, error)
	DeleteByNumber(ctx context.Context, number int) error
}

// Service orquestra validação, persistência e mapeamento de passaportes.
// now é injetável para que a classificação válido/expirado seja testável.
type Service struct {
	repo     PassportRepository
	validate *validator.Validator
	logger   logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(repo PassportRepository, v *validator.Validator, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		logger:   log,
		metrics:  m,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado em GetValid e GetExpired.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) list(passports []domain.UserPassport, err error, notFoundMsg string) ([]dto.UserPassport, error) {
	if err != nil {
		return nil, apperror.Propagate("Failed to fetch passports", err)
	}
	if len(passports) == 0 {
		return nil, apperror.NewNotFoundError(notFoundMsg)
	}
	return dto.FromUserPassports(passports), nil
}

func (s *Service) GetAll(ctx context.Context) ([]dto.UserPassport, error) {
	passports, err := s.repo.FindAll(ctx)
	return s.list(passports, err, "Passports not found")
}

func (s *Service) GetByNumber(ctx context.Context, number int) (dto.UserPassport, error) {
	if err := s.validate.Check("passportNumber", number, "passport_number"); err != nil {
		return dto.UserPassport{}, err
	}

	passport, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return dto.UserPassport{}, apperror.Propagate("Failed to fetch passport", err)
	}
	return dto.FromUserPassport(passport), nil
}

func (s *Service) GetByNationality(ctx context.Context, nationality string) ([]dto.UserPassport, error) {
	if err := s.validate.Check("nationality", nationality, "required,nationality"); err != nil {
		return nil, err
	}

	passports, err := s.repo.FindByNationality(ctx, nationality)
	return s.list(passports, err, fmt.Sprintf("Passports with nationality %s not found", nationality))
}

// GetValid retorna os passaportes sem expiração ou com expiração posterior a hoje.
func (s *Service) GetValid(ctx context.Context) ([]dto.UserPassport, error) {
	return s.classify(ctx, domain.UserPassport.IsValidAt, "Valid passports not found")
}

// GetExpired retorna os passaportes com expiração anterior a hoje.
func (s *Service) GetExpired(ctx context.Context) ([]dto.UserPassport, error) {
	return s.classify(ctx, domain.UserPassport.IsExpiredAt, "Expired passports not found")
}

func (s *Service) classify(ctx context.Context, keep func(domain.UserPassport, time.Time) (bool, error), notFoundMsg string) ([]dto.UserPassport, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Propagate("Failed to fetch passports", err)
	}

	now := s.now()
	selected := make([]domain.UserPassport, 0, len(all))
	for _, p := range all {
		ok, err := keep(p, now)
		if err != nil {
			// Data gravada fora dos formatos aceitos: inconsistência no banco.
			return nil, apperror.NewInternalError(
				fmt.Sprintf("Failed to parse expire date of passport %d", p.PassportNumber), err)
		}
		if ok {
			selected = append(selected, p)
		}
	}

	return s.list(selected, nil, notFoundMsg)
}

func (s *Service) Create(ctx context.Context, payload dto.UserPassport) (dto.UserPassport, error) {
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserPassport{}, err
	}

	created, err := s.repo.Create(ctx, payload.ToEntity())
	if err != nil {
		return dto.UserPassport{}, apperror.Propagate("Failed to create passport", err)
	}

	s.metrics.IncrementCreated("passport")
	s.logger.Info("Passaporte criado", map[string]interface{}{"id": created.ID})
	return dto.FromUserPassport(created), nil
}

func (s *Service) UpdateByNumber(ctx context.Context, number int, payload dto.UserPassport) (dto.UserPassport, error) {
	if err := s.validate.Check("passportNumber", number, "passport_number"); err != nil {
		return dto.UserPassport{}, err
	}
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserPassport{}, err
	}

	updated, err := s.repo.UpdateByNumber(ctx, number, payload.ToEntity())
	if err != nil {
		return dto.UserPassport{}, apperror.Propagate("Failed to update passport", err)
	}

	s.logger.Info("Passaporte atualizado", map[string]interface{}{"passportNumber": number})
	return dto.FromUserPassport(updated), nil
}

func (s *Service) DeleteByNumber(ctx context.Context, number int) (dto.Message, error) {
	if err := s.validate.Check("passportNumber", number, "passport_number"); err != nil {
		return dto.Message{}, err
	}

	if err := s.repo.DeleteByNumber(ctx, number); err != nil {
		return dto.Message{}, apperror.Propagate("Failed to delete passport", err)
	}

	s.metrics.IncrementDeleted("passport")
	s.logger.Info("Passaporte removido", map[string]interface{}{"passportNumber": number})
	return dto.Message{Message: fmt.Sprintf("Passport with number %d was successfully deleted", number)}, nil
}
