package car

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userhub/internal/api/respond"
	"userhub/internal/dto"
	"userhub/internal/pkg/logger"
)

// CarService define o contrato que o Handler espera da camada de Serviço.
type CarService interface {
	GetAll(ctx context.Context) ([]dto.UserCar, error)
	GetByVinCode(ctx context.Context, vinCode string) (dto.UserCar, error)
	GetByGraduationYear(ctx context.Context, year int) (dto.UserCar, error)
	GetByUserNameAndEmail(ctx context.Context, userName, email string) ([]dto.UserCar, error)
	GetByBrandAndModel(ctx context.Context, brand, model string) ([]dto.UserCar, error)
	Create(ctx context.Context, payload dto.UserCar) (dto.UserCar, error)
	UpdateByVinCode(ctx context.Context, vinCode string, payload dto.UserCar) (dto.UserCar, error)
	DeleteByVinCode(ctx context.Context, vinCode string) (dto.Message, error)
}

// Handler agrupa os endpoints de /users/car.
type Handler struct {
	Service CarService
	Logger  logger.Logger
}

func NewHandler(svc CarService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetAllHandler lida com GET /users/car.
// @Summary Lista carros
// @Tags cars
// @Produce json
// @Success 200 {array} dto.UserCar
// @Failure 404 {object} domain.ErrorResponse "Nenhum carro cadastrado"
// @Router /users/car [get]
func (h *Handler) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.GetAll(r.Context())
	respond.JSON(w, r, h.Logger, cars, err, http.StatusOK)
}

// GetByVinCodeHandler lida com GET /users/car/{vinCode}.
// @Summary Busca carro pelo código VIN
// @Tags cars
// @Produce json
// @Param vinCode path string true "Código VIN"
// @Success 200 {object} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Código VIN inválido"
// @Failure 404 {object} domain.ErrorResponse "Carro não encontrado"
// @Router /users/car/{vinCode} [get]
func (h *Handler) GetByVinCodeHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetByVinCode(r.Context(), chi.URLParam(r, "vinCode"))
	respond.JSON(w, r, h.Logger, c, err, http.StatusOK)
}

// GetByGraduationYearHandler lida com GET /users/car/graduationYear/{year}.
// @Summary Busca carro pelo ano de fabricação
// @Tags cars
// @Produce json
// @Param year path int true "Ano de fabricação"
// @Success 200 {object} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Ano inválido"
// @Failure 404 {object} domain.ErrorResponse "Carro não encontrado"
// @Router /users/car/graduationYear/{year} [get]
func (h *Handler) GetByGraduationYearHandler(w http.ResponseWriter, r *http.Request) {
	year, err := respond.IntParam(r, "year")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	c, err := h.Service.GetByGraduationYear(r.Context(), year)
	respond.JSON(w, r, h.Logger, c, err, http.StatusOK)
}

// GetByUserNameAndEmailHandler lida com GET /users/car/userName/{name}/email/{email}.
// @Summary Lista carros de um dono
// @Tags cars
// @Produce json
// @Param name path string true "Nome do dono"
// @Param email path string true "Email do dono"
// @Success 200 {array} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Failure 404 {object} domain.ErrorResponse "Nenhum carro encontrado"
// @Router /users/car/userName/{name}/email/{email} [get]
func (h *Handler) GetByUserNameAndEmailHandler(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.GetByUserNameAndEmail(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "email"))
	respond.JSON(w, r, h.Logger, cars, err, http.StatusOK)
}

// GetByBrandAndModelHandler lida com GET /users/car/brancCar/{brand}/model/{model}.
// O segmento "brancCar" é mantido por compatibilidade com clientes existentes.
// @Summary Lista carros por marca e modelo
// @Tags cars
// @Produce json
// @Param brand path string true "Marca"
// @Param model path string true "Modelo"
// @Success 200 {array} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Failure 404 {object} domain.ErrorResponse "Nenhum carro encontrado"
// @Router /users/car/brancCar/{brand}/model/{model} [get]
func (h *Handler) GetByBrandAndModelHandler(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.GetByBrandAndModel(r.Context(), chi.URLParam(r, "brand"), chi.URLParam(r, "model"))
	respond.JSON(w, r, h.Logger, cars, err, http.StatusOK)
}

// CreateHandler lida com POST /users/car.
// @Summary Cadastra um carro
// @Tags cars
// @Accept json
// @Produce json
// @Param car body dto.UserCar true "Dados do carro"
// @Success 200 {object} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Código VIN já cadastrado"
// @Router /users/car [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload dto.UserCar
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	respond.JSON(w, r, h.Logger, created, err, http.StatusOK)
}

// UpdateByVinCodeHandler lida com PUT /users/car/update/{vinCode}.
// O VIN do path prevalece sobre o do corpo.
// @Summary Atualiza um carro
// @Tags cars
// @Accept json
// @Produce json
// @Param vinCode path string true "Código VIN"
// @Param car body dto.UserCar true "Dados do carro"
// @Success 200 {object} dto.UserCar
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Carro não encontrado"
// @Router /users/car/update/{vinCode} [put]
func (h *Handler) UpdateByVinCodeHandler(w http.ResponseWriter, r *http.Request) {
	var payload dto.UserCar
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	updated, err := h.Service.UpdateByVinCode(r.Context(), chi.URLParam(r, "vinCode"), payload)
	respond.JSON(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteByVinCodeHandler lida com DELETE /users/car/delete/{vinCode}.
// @Summary Remove um carro
// @Tags cars
// @Produce json
// @Param vinCode path string true "Código VIN"
// @Success 200 {object} dto.Message
// @Failure 400 {object} domain.ErrorResponse "Código VIN inválido"
// @Failure 404 {object} domain.ErrorResponse "Carro não encontrado"
// @Router /users/car/delete/{vinCode} [delete]
func (h *Handler) DeleteByVinCodeHandler(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Service.DeleteByVinCode(r.Context(), chi.URLParam(r, "vinCode"))
	respond.JSON(w, r, h.Logger, msg, err, http.StatusOK)
}
