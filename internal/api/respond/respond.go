// Package respond concentra a escrita das respostas HTTP dos handlers.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/middleware"
)

// JSON processa o resultado do serviço e envia a resposta padronizada ao cliente.
// Com err nil, data é serializado com successStatus; caso contrário o erro é
// traduzido por apperror.MapToHTTPStatus.
func JSON(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		write(w, log, successStatus, data)
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	requestID, _ := middleware.GetRequestID(r.Context())

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s (%s %s, request_id=%s)", category, r.Method, r.URL.Path, requestID), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"request_id": requestID,
			"path":       r.URL.Path,
			"message":    message,
		})
	}

	write(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

func write(w http.ResponseWriter, log logger.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// DecodeBody lê o corpo JSON da requisição em dest.
func DecodeBody(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperror.NewValidationError("Invalid JSON payload: " + err.Error())
	}
	return nil
}

// IntParam lê um parâmetro de rota numérico.
func IntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("Invalid %s value: %s", name, raw))
	}
	return v, nil
}

// IntQuery lê um parâmetro de query numérico obrigatório.
func IntQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, apperror.NewValidationError(name + " is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.NewValidationError(fmt.Sprintf("Invalid %s value: %s", name, raw))
	}
	return v, nil
}
