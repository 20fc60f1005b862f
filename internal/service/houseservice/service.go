package houseservice

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

// HouseRepository define o contrato que este Serviço espera da camada de Persistência.
type HouseRepository interface {
	FindAll(ctx context.Context) ([]domain.UserHouse, error)
	FindByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (domain.UserHouse, error)
	FindByTown(ctx context.Context, town string) ([]domain.UserHouse, error)
	FindByCountry(ctx context.Context, country string) ([]domain.UserHouse, error)
	Create(ctx context.Context, house domain.UserHouse) (domain.UserHouse, error)
	UpdateByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int, house domain.UserHouse) (domain.UserHouse, error)
	DeleteByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) error
}

// numberTag limita casa e apartamento ao intervalo da coluna INTEGER.
const numberTag = "gte=0,lte=2147483647"

// Service orquestra validação, persistência e mapeamento de casas.
type Service struct {
	repo     HouseRepository
	validate *validator.Validator
	logger   logger.Logger
	metrics  *metrics.Metrics
}

func NewService(repo HouseRepository, v *validator.Validator, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		logger:   log,
		metrics:  m,
	}
}

func (s *Service) checkKey(houseNumber, flatNumber int) error {
	if err := s.validate.Check("houseNumber", houseNumber, numberTag); err != nil {
		return err
	}
	return s.validate.Check("flatNumber", flatNumber, numberTag)
}

func (s *Service) list(houses []domain.UserHouse, err error, notFoundMsg string) ([]dto.UserHouse, error) {
	if err != nil {
		return nil, apperror.Propagate("Failed to fetch houses", err)
	}
	if len(houses) == 0 {
		return nil, apperror.NewNotFoundError(notFoundMsg)
	}
	return dto.FromUserHouses(houses), nil
}

func (s *Service) GetAll(ctx context.Context) ([]dto.UserHouse, error) {
	houses, err := s.repo.FindAll(ctx)
	return s.list(houses, err, "Houses not found")
}

func (s *Service) GetByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (dto.UserHouse, error) {
	if err := s.checkKey(houseNumber, flatNumber); err != nil {
		return dto.UserHouse{}, err
	}

	house, err := s.repo.FindByHouseAndFlat(ctx, houseNumber, flatNumber)
	if err != nil {
		return dto.UserHouse{}, apperror.Propagate("Failed to fetch house", err)
	}
	return dto.FromUserHouse(house), nil
}

func (s *Service) GetByTown(ctx context.Context, town string) ([]dto.UserHouse, error) {
	if err := s.validate.Check("town", town, "town"); err != nil {
		return nil, err
	}

	houses, err := s.repo.FindByTown(ctx, town)
	return s.list(houses, err, fmt.Sprintf("Houses in town %s not found", town))
}

// GetByCountry aceita apenas países suportados (sem diferenciar maiúsculas).
func (s *Service) GetByCountry(ctx context.Context, country string) ([]dto.UserHouse, error) {
	if err := s.validate.Check("country", country, "supported_country"); err != nil {
		return nil, err
	}

	houses, err := s.repo.FindByCountry(ctx, country)
	return s.list(houses, err, fmt.Sprintf("Houses in country %s not found", country))
}

func (s *Service) Create(ctx context.Context, payload dto.UserHouse) (dto.UserHouse, error) {
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserHouse{}, err
	}

	created, err := s.repo.Create(ctx, payload.ToEntity())
	if err != nil {
		return dto.UserHouse{}, apperror.Propagate("Failed to create house", err)
	}

	s.metrics.IncrementCreated("house")
	s.logger.Info("Casa criada", map[string]interface{}{"id": created.ID})
	return dto.FromUserHouse(created), nil
}

func (s *Service) UpdateByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int, payload dto.UserHouse) (dto.UserHouse, error) {
	if err := s.checkKey(houseNumber, flatNumber); err != nil {
		return dto.UserHouse{}, err
	}
	if err := s.validate.Struct(payload); err != nil {
		return dto.UserHouse{}, err
	}

	updated, err := s.repo.UpdateByHouseAndFlat(ctx, houseNumber, flatNumber, payload.ToEntity())
	if err != nil {
		return dto.UserHouse{}, apperror.Propagate("Failed to update house", err)
	}

	s.logger.Info("Casa atualizada", map[string]interface{}{"houseNumber": houseNumber, "flatNumber": flatNumber})
	return dto.FromUserHouse(updated), nil
}

func (s *Service) DeleteByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (dto.Message, error) {
	if err := s.checkKey(houseNumber, flatNumber); err != nil {
		return dto.Message{}, err
	}

	if err := s.repo.DeleteByHouseAndFlat(ctx, houseNumber, flatNumber); err != nil {
		return dto.Message{}, apperror.Propagate("Failed to delete house", err)
	}

	s.metrics.IncrementDeleted("house")
	s.logger.Info("Casa removida", map[string]interface{}{"houseNumber": houseNumber, "flatNumber": flatNumber})
	return dto.Message{Message: fmt.Sprintf("House with house number %d and flat number %d was successfully deleted", houseNumber, flatNumber)}, nil
}
