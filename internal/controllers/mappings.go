package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/mapper"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/repository"
)

// MappingsHandler serves the field mapping CRUD endpoints. Writes clear the
// mapper cache so the next transform sees fresh rows.
type MappingsHandler struct {
	repo     *repository.FieldMappingRepository
	mapper   *mapper.Mapper
	validate *validator.Validate
}

func NewMappingsHandler(repo *repository.FieldMappingRepository, fieldMapper *mapper.Mapper) *MappingsHandler {
	return &MappingsHandler{
		repo:     repo,
		mapper:   fieldMapper,
		validate: validator.New(),
	}
}

type upsertMappingRequest struct {
	JobTypeID          int    `json:"job_type_id" validate:"required,gt=0"`
	SourcePlatform     string `json:"source_platform" validate:"required"`
	TargetEntity       string `json:"target_entity" validate:"required"`
	SourceField        string `json:"source_field" validate:"required"`
	TargetField        string `json:"target_field" validate:"required"`
	TransformationRule string `json:"transformation_rule"`
	IsRequired         bool   `json:"is_required"`
	Description        string `json:"description"`
}

func (h *MappingsHandler) HandleListMappings(w http.ResponseWriter, r *http.Request) {
	sourcePlatform := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("source_platform")))
	targetEntity := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("target_entity")))

	mappings, err := h.repo.List(sourcePlatform, targetEntity)
	if err != nil {
		log.Errorf("failed to list mappings: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load mappings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mappings": mappings,
		"count":    len(mappings),
	})
}

func (h *MappingsHandler) HandleUpsertMapping(w http.ResponseWriter, r *http.Request) {
	var req upsertMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	row, err := h.repo.Upsert(&models.FieldMapping{
		JobTypeID:          req.JobTypeID,
		SourcePlatform:     strings.ToLower(strings.TrimSpace(req.SourcePlatform)),
		TargetEntity:       strings.ToLower(strings.TrimSpace(req.TargetEntity)),
		SourceField:        strings.TrimSpace(req.SourceField),
		TargetField:        strings.TrimSpace(req.TargetField),
		TransformationRule: strings.TrimSpace(req.TransformationRule),
		IsRequired:         req.IsRequired,
		Description:        strings.TrimSpace(req.Description),
	})
	if err != nil {
		log.Errorf("failed to upsert mapping: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to save mapping")
		return
	}

	h.mapper.ClearCache()

	writeJSON(w, http.StatusOK, map[string]interface{}{"mapping": row})
}

func (h *MappingsHandler) HandleDeleteMapping(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "id is required")
		return
	}

	if err := h.repo.DeleteByID(id); err != nil {
		log.Errorf("failed to delete mapping %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to delete mapping")
		return
	}

	h.mapper.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}
