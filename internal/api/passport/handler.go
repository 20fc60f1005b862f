package passport

import (
	"context"
	"net/http"

	"userhub/internal/api/respond"
	"userhub/internal/dto"
	"userhub/internal/pkg/logger"
)

// PassportService define o contrato que o Handler espera da camada de Serviço.
type PassportService interface {
	GetAll(ctx context.Context) ([]dto.UserPassport, error)
	GetByNumber(ctx context.Context, number int) (dto.UserPassport, error)
	GetByNationality(ctx context.Context, nationality string) ([]dto.UserPassport, error)
	GetValid(ctx context.Context) ([]dto.UserPassport, error)
	GetExpired(ctx context.Context) ([]dto.UserPassport, error)
	Create(ctx context.Context, payload dto.UserPassport) (dto.UserPassport, error)
	UpdateByNumber(ctx context.Context, number int, payload dto.UserPassport) (dto.UserPassport, error)
	DeleteByNumber(ctx context.Context, number int) (dto.Message, error)
}

// Handler agrupa os endpoints de /users/passport.
type Handler struct {
	Service PassportService
	Logger  logger.Logger
}

func NewHandler(svc PassportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetAllHandler lida com GET /users/passport.
// @Summary Lista passaportes
// @Tags passports
// @Produce json
// @Success 200 {array} dto.UserPassport
// @Failure 404 {object} domain.ErrorResponse "Nenhum passaporte cadastrado"
// @Router /users/passport [get]
func (h *Handler) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	passports, err := h.Service.GetAll(r.Context())
	respond.JSON(w, r, h.Logger, passports, err, http.StatusOK)
}

// GetByNumberHandler lida com GET /users/passport/{passportNumber}.
// @Summary Busca passaporte pelo número
// @Tags passports
// @Produce json
// @Param passportNumber path int true "Número do passaporte (9 dígitos)"
// @Success 200 {object} dto.UserPassport
// @Failure 400 {object} domain.ErrorResponse "Número inválido"
// @Failure 404 {object} domain.ErrorResponse "Passaporte não encontrado"
// @Router /users/passport/{passportNumber} [get]
func (h *Handler) GetByNumberHandler(w http.ResponseWriter, r *http.Request) {
	number, err := respond.IntParam(r, "passportNumber")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	p, err := h.Service.GetByNumber(r.Context(), number)
	respond.JSON(w, r, h.Logger, p, err, http.StatusOK)
}

// GetByNationalityHandler lida com GET /users/passport/nationality?nationality=.
// @Summary Lista passaportes por nacionalidade
// @Tags passports
// @Produce json
// @Param nationality query string true "Nacionalidade"
// @Success 200 {array} dto.UserPassport
// @Failure 400 {object} domain.ErrorResponse "Nacionalidade inválida"
// @Failure 404 {object} domain.ErrorResponse "Nenhum passaporte encontrado"
// @Router /users/passport/nationality [get]
func (h *Handler) GetByNationalityHandler(w http.ResponseWriter, r *http.Request) {
	passports, err := h.Service.GetByNationality(r.Context(), r.URL.Query().Get("nationality"))
	respond.JSON(w, r, h.Logger, passports, err, http.StatusOK)
}

// GetValidHandler lida com GET /users/passport/valid.
// @Summary Lista passaportes válidos
// @Description Passaportes sem data de validade ou com validade posterior a hoje.
// @Tags passports
// @Produce json
// @Success 200 {array} dto.UserPassport
// @Failure 404 {object} domain.ErrorResponse "Nenhum passaporte válido"
// @Failure 500 {object} domain.ErrorResponse "Data de validade armazenada ilegível"
// @Router /users/passport/valid [get]
func (h *Handler) GetValidHandler(w http.ResponseWriter, r *http.Request) {
	passports, err := h.Service.GetValid(r.Context())
	respond.JSON(w, r, h.Logger, passports, err, http.StatusOK)
}

// GetExpiredHandler lida com GET /users/passport/expired.
// @Summary Lista passaportes vencidos
// @Tags passports
// @Produce json
// @Success 200 {array} dto.UserPassport
// @Failure 404 {object} domain.ErrorResponse "Nenhum passaporte vencido"
// @Failure 500 {object} domain.ErrorResponse "Data de validade armazenada ilegível"
// @Router /users/passport/expired [get]
func (h *Handler) GetExpiredHandler(w http.ResponseWriter, r *http.Request) {
	passports, err := h.Service.GetExpired(r.Context())
	respond.JSON(w, r, h.Logger, passports, err, http.StatusOK)
}

// CreateHandler lida com POST /users/passport.
// @Summary Cadastra um passaporte
// @Tags passports
// @Accept json
// @Produce json
// @Param passport body dto.UserPassport true "Dados do passaporte"
// @Success 200 {object} dto.UserPassport
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Número de passaporte já cadastrado"
// @Router /users/passport [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload dto.UserPassport
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	respond.JSON(w, r, h.Logger, created, err, http.StatusOK)
}

// UpdateByNumberHandler lida com PUT /users/passport/{passportNumber}.
// @Summary Atualiza um passaporte
// @Tags passports
// @Accept json
// @Produce json
// @Param passportNumber path int true "Número do passaporte"
// @Param passport body dto.UserPassport true "Dados do passaporte"
// @Success 200 {object} dto.UserPassport
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Passaporte não encontrado"
// @Router /users/passport/{passportNumber} [put]
func (h *Handler) UpdateByNumberHandler(w http.ResponseWriter, r *http.Request) {
	number, err := respond.IntParam(r, "passportNumber")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	var payload dto.UserPassport
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	updated, err := h.Service.UpdateByNumber(r.Context(), number, payload)
	respond.JSON(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteByNumberHandler lida com DELETE /users/passport?passportNumber=.
// @Summary Remove um passaporte
// @Tags passports
// @Produce json
// @Param passportNumber query int true "Número do passaporte"
// @Success 200 {object} dto.Message
// @Failure 400 {object} domain.ErrorResponse "Número inválido"
// @Failure 404 {object} domain.ErrorResponse "Passaporte não encontrado"
// @Router /users/passport [delete]
func (h *Handler) DeleteByNumberHandler(w http.ResponseWriter, r *http.Request) {
	number, err := respond.IntQuery(r, "passportNumber")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	msg, err := h.Service.DeleteByNumber(r.Context(), number)
	respond.JSON(w, r, h.Logger, msg, err, http.StatusOK)
}
