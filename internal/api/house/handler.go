package house

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userhub/internal/api/respond"
	"userhub/internal/dto"
	"userhub/internal/pkg/logger"
)

// HouseService define o contrato que o Handler espera da camada de Serviço.
type HouseService interface {
	GetAll(ctx context.Context) ([]dto.UserHouse, error)
	GetByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (dto.UserHouse, error)
	GetByTown(ctx context.Context, town string) ([]dto.UserHouse, error)
	GetByCountry(ctx context.Context, country string) ([]dto.UserHouse, error)
	Create(ctx context.Context, payload dto.UserHouse) (dto.UserHouse, error)
	UpdateByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int, payload dto.UserHouse) (dto.UserHouse, error)
	DeleteByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (dto.Message, error)
}

// Handler agrupa os endpoints de /users/house.
type Handler struct {
	Service HouseService
	Logger  logger.Logger
}

func NewHandler(svc HouseService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// key lê o par (houseNumber, flatNumber) dos parâmetros de rota informados.
func key(r *http.Request, houseParam, flatParam string) (int, int, error) {
	houseNumber, err := respond.IntParam(r, houseParam)
	if err != nil {
		return 0, 0, err
	}
	flatNumber, err := respond.IntParam(r, flatParam)
	if err != nil {
		return 0, 0, err
	}
	return houseNumber, flatNumber, nil
}

// GetAllHandler lida com GET /users/house.
// @Summary Lista imóveis
// @Tags houses
// @Produce json
// @Success 200 {array} dto.UserHouse
// @Failure 404 {object} domain.ErrorResponse "Nenhum imóvel cadastrado"
// @Router /users/house [get]
func (h *Handler) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	houses, err := h.Service.GetAll(r.Context())
	respond.JSON(w, r, h.Logger, houses, err, http.StatusOK)
}

// GetByHouseAndFlatHandler lida com GET /users/house/{houseNumber}/{flatNumber}.
// @Summary Busca imóvel por número da casa e do apartamento
// @Tags houses
// @Produce json
// @Param houseNumber path int true "Número da casa"
// @Param flatNumber path int true "Número do apartamento"
// @Success 200 {object} dto.UserHouse
// @Failure 400 {object} domain.ErrorResponse "Número inválido"
// @Failure 404 {object} domain.ErrorResponse "Imóvel não encontrado"
// @Router /users/house/{houseNumber}/{flatNumber} [get]
func (h *Handler) GetByHouseAndFlatHandler(w http.ResponseWriter, r *http.Request) {
	houseNumber, flatNumber, err := key(r, "houseNumber", "flatNumber")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	house, err := h.Service.GetByHouseAndFlat(r.Context(), houseNumber, flatNumber)
	respond.JSON(w, r, h.Logger, house, err, http.StatusOK)
}

// GetByTownHandler lida com GET /users/house/town/{town}.
// @Summary Lista imóveis de uma cidade
// @Tags houses
// @Produce json
// @Param town path string true "Cidade"
// @Success 200 {array} dto.UserHouse
// @Failure 400 {object} domain.ErrorResponse "Cidade inválida"
// @Failure 404 {object} domain.ErrorResponse "Nenhum imóvel encontrado"
// @Router /users/house/town/{town} [get]
func (h *Handler) GetByTownHandler(w http.ResponseWriter, r *http.Request) {
	houses, err := h.Service.GetByTown(r.Context(), chi.URLParam(r, "town"))
	respond.JSON(w, r, h.Logger, houses, err, http.StatusOK)
}

// GetByCountryHandler lida com GET /users/house/country/{country}.
// @Summary Lista imóveis de um país suportado
// @Tags houses
// @Produce json
// @Param country path string true "País (UKRAINE, POLAND, PORTUGAL, ...)"
// @Success 200 {array} dto.UserHouse
// @Failure 400 {object} domain.ErrorResponse "País não suportado"
// @Failure 404 {object} domain.ErrorResponse "Nenhum imóvel encontrado"
// @Router /users/house/country/{country} [get]
func (h *Handler) GetByCountryHandler(w http.ResponseWriter, r *http.Request) {
	houses, err := h.Service.GetByCountry(r.Context(), chi.URLParam(r, "country"))
	respond.JSON(w, r, h.Logger, houses, err, http.StatusOK)
}

// CreateHandler lida com POST /users/house/add.
// @Summary Cadastra um imóvel
// @Tags houses
// @Accept json
// @Produce json
// @Param house body dto.UserHouse true "Dados do imóvel"
// @Success 200 {object} dto.UserHouse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Imóvel já cadastrado"
// @Router /users/house/add [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload dto.UserHouse
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	respond.JSON(w, r, h.Logger, created, err, http.StatusOK)
}

// UpdateHandler lida com PUT /users/house/update/houseNumber/{h}/flatNumber/{f}.
// @Summary Atualiza um imóvel
// @Tags houses
// @Accept json
// @Produce json
// @Param h path int true "Número da casa"
// @Param f path int true "Número do apartamento"
// @Param house body dto.UserHouse true "Dados do imóvel"
// @Success 200 {object} dto.UserHouse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Imóvel não encontrado"
// @Router /users/house/update/houseNumber/{h}/flatNumber/{f} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	houseNumber, flatNumber, err := key(r, "h", "f")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	var payload dto.UserHouse
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	updated, err := h.Service.UpdateByHouseAndFlat(r.Context(), houseNumber, flatNumber, payload)
	respond.JSON(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /users/house/{houseNumber}/{flatNumber}.
// @Summary Remove um imóvel
// @Tags houses
// @Produce json
// @Param houseNumber path int true "Número da casa"
// @Param flatNumber path int true "Número do apartamento"
// @Success 200 {object} dto.Message
// @Failure 400 {object} domain.ErrorResponse "Número inválido"
// @Failure 404 {object} domain.ErrorResponse "Imóvel não encontrado"
// @Router /users/house/{houseNumber}/{flatNumber} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	houseNumber, flatNumber, err := key(r, "houseNumber", "flatNumber")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	msg, err := h.Service.DeleteByHouseAndFlat(r.Context(), houseNumber, flatNumber)
	respond.JSON(w, r, h.Logger, msg, err, http.StatusOK)
}
