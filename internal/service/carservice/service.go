package carservice

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

// CarRepository define o contrato que este Serviço espera da camada de Persistência.
type CarRepository interface {
	FindAll(ctx context.Context) ([]domain.UserCar, error)
	FindByVinCode(ctx context.Context, vinCode string) (domain.UserCar, error)
	FindByGraduationYear(ctx context.Context, year int) (domain.UserCar, error)
	FindByUserNameAndEmail(ctx context.Context, userName, email string) ([]domain.UserCar, error)
	FindByBrandAndModel(ctx context.Context, brand, model string) ([]domain.UserCar, error)
	Create(ctx context.Context, car domain.UserCar) (domain.UserCar, error)
	UpdateByVinCode(ctx context.Context, vinCode string, car domain.UserCar) (domain.UserCar, error)
	DeleteByVinCode(ctx context.Context, vinCode string) error
}

// Service orquestra validação, persistência e mapeamento de carros.
type Service struct {
	repo     CarRepository
	validate *validator.Validator
	logger   logger.Logger
	metrics  *metrics.Metrics
}

func NewService(repo CarRepository, v *validator.Validator, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		logger:   log,
		metrics:  m,
	}
}

func (s *Service) list(cars []domain.UserCar, err error, notFoundMsg string) ([]dto.UserCar, error) {
	if err != nil {
		return nil, apperror.Propagate("Failed to fetch cars", err)
	}
	if len(cars) == 0 {
		return nil, apperror.NewNotFoundError(notFoundMsg)
	}
	return dto.FromUserCars(cars), nil
}

func (s *Service) one(car domain.UserCar, err error) (dto.UserCar, error) {
	if err != nil {
		return dto.UserCar{}, apperror.Propagate("Failed to fetch car", err)
	}
	return dto.FromUserCar(car), nil
}

func (s *Service) GetAll(ctx context.Context) ([]dto.UserCar, error) {
	cars, err := s.repo.FindAll(ctx)
	return s.list(cars, err, "Cars not found")
}

func (s *Service) GetByVinCode(ctx context.Context, vinCode string) (dto.UserCar, error) {
	if err := s.validate.Check("carVinCode", vinCode, "alnum_id"); err != nil {
		return dto.UserCar{}, err
	}
	return s.one(s.repo.FindByVinCode(ctx, vinCode))
}

func (s *Service) GetByGraduationYear(ctx context.Context, year int) (dto.UserCar, error) {
	if err := s.validate.Check("graduationYear", year, "year"); err != nil {
		return dto.UserCar{}, err
	}
	return s.one(s.repo.FindByGraduationYear(ctx, year))
}

func (s *Service) GetByUserNameAndEmail(ctx context.Context, userName, email string) ([]dto.UserCar, error) {
	if err := s.validate.Check("userName", userName, "alnum_id"); err != nil {
		return nil, err
	}
	if err := s.validate.Check("userEmail", email, "email_address"); err != nil {
		return nil, err
	}

	cars, err := s.repo.FindByUserNameAndEmail(ctx, userName, email)
	return s.list(cars, err, fmt.Sprintf("Cars of user %s with email %s not found", userName, email))
}

func (s *Service) GetByBrandAndModel(ctx context.Context, brand, model string) ([]dto.UserCar, error) {
	if err := s.validate.Check("brandCar", brand, "brand"); err != nil {
		return nil, err
	}
	if err := s.validate.Check("model", model, "model"); err != nil {
		return nil, err
	}

	cars, err := s.repo.FindByBrandAndModel(ctx, brand, model)
	return s.list(cars, err, fmt.Sprintf("Cars of brand %s and model %s not found", brand, model))
}

func (s *Service) Create(ctx context.Context, payload dto.UserCar) (dto.UserCar, error) {
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserCar{}, err
	}

	created, err := s.repo.Create(ctx, payload.ToEntity())
	if err != nil {
		return dto.UserCar{}, apperror.Propagate("Failed to create car", err)
	}

	s.metrics.IncrementCreated("car")
	s.logger.Info("Carro criado", map[string]interface{}{"id": created.ID, "vin": created.CarVinCode})
	return dto.FromUserCar(created), nil
}

// UpdateByVinCode substitui os campos mutáveis. O VIN do path prevalece sobre o do corpo.
func (s *Service) UpdateByVinCode(ctx context.Context, vinCode string, payload dto.UserCar) (dto.UserCar, error) {
	if err := s.validate.Check("carVinCode", vinCode, "alnum_id"); err != nil {
		return dto.UserCar{}, err
	}
	payload.CarVinCode = &vinCode
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserCar{}, err
	}

	updated, err := s.repo.UpdateByVinCode(ctx, vinCode, payload.ToEntity())
	if err != nil {
		return dto.UserCar{}, apperror.Propagate("Failed to update car", err)
	}

	s.logger.Info("Carro atualizado", map[string]interface{}{"vin": vinCode})
	return dto.FromUserCar(updated), nil
}

func (s *Service) DeleteByVinCode(ctx context.Context, vinCode string) (dto.Message, error) {
	if err := s.validate.Check("carVinCode", vinCode, "alnum_id"); err != nil {
		return dto.Message{}, err
	}

	if err := s.repo.DeleteByVinCode(ctx, vinCode); err != nil {
		return dto.Message{}, apperror.Propagate("Failed to delete car", err)
	}

	s.metrics.IncrementDeleted("car")
	s.logger.Info("Carro removido", map[string]interface{}{"vin": vinCode})
	return dto.Message{Message: fmt.Sprintf("Car with vin code %s was successfully deleted", vinCode)}, nil
}
