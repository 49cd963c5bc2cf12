package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/services"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

var log = logrus.WithField("component", "controllers")

// TransformHandler serves the synchronous HTTP transformation endpoints.
type TransformHandler struct {
	service  *services.TransformService
	validate *validator.Validate
}

func NewTransformHandler(service *services.TransformService) *TransformHandler {
	return &TransformHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleTransform handles POST /api/transform.
func (h *TransformHandler) HandleTransform(w http.ResponseWriter, r *http.Request) {
	var req domains.TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	result, err := h.service.Transform(&req)
	if err != nil {
		status, code := statusForError(err)
		if status == http.StatusInternalServerError {
			log.Errorf("transform failed: %v", err)
		}
		writeError(w, status, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// HandlePlatforms handles GET /api/platforms.
func (h *TransformHandler) HandlePlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"platforms": h.service.SupportedPlatforms(),
	})
}

// HandleHealth handles GET /health.
func (h *TransformHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

// statusForError maps error kinds to HTTP status codes: failed validation is
// the client's record (422), an unknown pair or job type is a 404, anything
// else is a 500.
func statusForError(err error) (int, string) {
	switch err.(type) {
	case *transform.ValidationError:
		return http.StatusUnprocessableEntity, "validation_error"
	case *transform.NotFoundError:
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "transformation_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, domains.ErrorResponse{Error: code, Message: message})
}
