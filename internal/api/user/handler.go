package user

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"userhub/internal/api/respond"
	"userhub/internal/dto"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
)

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	GetAll(ctx context.Context) ([]dto.User, error)
	GetAllSortedByName(ctx context.Context) ([]dto.User, error)
	GetByID(ctx context.Context, id int64) (dto.User, error)
	Filter(ctx context.Context, filter dto.UserFilter) ([]dto.User, error)
	Count(ctx context.Context) (dto.CountResponse, error)
	Create(ctx context.Context, payload dto.User) (dto.User, error)
	Update(ctx context.Context, id int64, payload dto.User) (dto.User, error)
	Delete(ctx context.Context, id int64) (dto.Message, error)
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// GetAllHandler lida com GET /users.
// @Summary Lista usuários
// @Tags users
// @Produce json
// @Success 200 {array} dto.User
// @Failure 404 {object} domain.ErrorResponse "Nenhum usuário cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /users [get]
func (h *Handler) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll(r.Context())
	respond.JSON(w, r, h.Logger, users, err, http.StatusOK)
}

// GetAllSortedHandler lida com GET /users/sort.
// @Summary Lista usuários ordenados por nome
// @Tags users
// @Produce json
// @Success 200 {array} dto.User
// @Failure 404 {object} domain.ErrorResponse "Nenhum usuário cadastrado"
// @Router /users/sort [get]
func (h *Handler) GetAllSortedHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllSortedByName(r.Context())
	respond.JSON(w, r, h.Logger, users, err, http.StatusOK)
}

// CountHandler lida com GET /users/count.
// @Summary Conta usuários
// @Tags users
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 404 {object} domain.ErrorResponse "Nenhum usuário cadastrado"
// @Router /users/count [get]
func (h *Handler) CountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.Count(r.Context())
	respond.JSON(w, r, h.Logger, count, err, http.StatusOK)
}

// GetByIDHandler lida com GET /users/{id}.
// @Summary Busca usuário por id
// @Tags users
// @Produce json
// @Param id path int true "Id do usuário"
// @Success 200 {object} dto.User
// @Failure 400 {object} domain.ErrorResponse "Id inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /users/{id} [get]
func (h *Handler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IntParam(r, "id")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	u, err := h.Service.GetByID(r.Context(), int64(id))
	respond.JSON(w, r, h.Logger, u, err, http.StatusOK)
}

// FilterHandler lida com GET /users/filter.
// Os critérios são combinados com OU; sem nenhum critério a resposta é 404.
// @Summary Filtra usuários
// @Tags users
// @Produce json
// @Param name query string false "Nome"
// @Param age query int false "Idade"
// @Param email query string false "Email"
// @Param phone query string false "Telefone"
// @Success 200 {array} dto.User
// @Failure 400 {object} domain.ErrorResponse "Critério inválido"
// @Failure 404 {object} domain.ErrorResponse "Nenhum usuário encontrado"
// @Router /users/filter [get]
func (h *Handler) FilterHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	users, err := h.Service.Filter(r.Context(), filter)
	respond.JSON(w, r, h.Logger, users, err, http.StatusOK)
}

func parseFilter(r *http.Request) (dto.UserFilter, error) {
	q := r.URL.Query()
	var f dto.UserFilter

	optional := func(key string) *string {
		if !q.Has(key) {
			return nil
		}
		v := q.Get(key)
		return &v
	}

	f.Name = optional("name")
	f.Email = optional("email")
	f.Phone = optional("phone")

	if raw := optional("age"); raw != nil {
		age, err := strconv.Atoi(*raw)
		if err != nil {
			return f, apperror.NewValidationError(fmt.Sprintf("Invalid age value: %s", *raw))
		}
		f.Age = &age
	}
	return f, nil
}

// CreateHandler lida com POST /users.
// @Summary Cria um usuário
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.User true "Dados do usuário"
// @Success 200 {object} dto.User
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Email ou telefone já cadastrado"
// @Router /users [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var payload dto.User
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	created, err := h.Service.Create(r.Context(), payload)
	respond.JSON(w, r, h.Logger, created, err, http.StatusOK)
}

// UpdateHandler lida com PUT /users/{id}.
// @Summary Atualiza um usuário
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "Id do usuário"
// @Param user body dto.User true "Dados do usuário"
// @Success 200 {object} dto.User
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /users/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IntParam(r, "id")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	var payload dto.User
	if err := respond.DecodeBody(r, &payload); err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	updated, err := h.Service.Update(r.Context(), int64(id), payload)
	respond.JSON(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /users?id=.
// @Summary Remove um usuário
// @Tags users
// @Produce json
// @Param id query int true "Id do usuário"
// @Success 200 {object} dto.Message
// @Failure 400 {object} domain.ErrorResponse "Id inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /users [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IntQuery(r, "id")
	if err != nil {
		respond.JSON(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	msg, err := h.Service.Delete(r.Context(), int64(id))
	respond.JSON(w, r, h.Logger, msg, err, http.StatusOK)
}
