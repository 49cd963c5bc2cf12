package controllers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/repository"
)

// JobTypesHandler serves the job type catalog and per-job-type YAML
// transformation configs.
type JobTypesHandler struct {
	jobTypes *repository.JobTypeRepository
	configs  *repository.TransformationConfigRepository
}

func NewJobTypesHandler(jobTypes *repository.JobTypeRepository, configs *repository.TransformationConfigRepository) *JobTypesHandler {
	return &JobTypesHandler{
		jobTypes: jobTypes,
		configs:  configs,
	}
}

func (h *JobTypesHandler) HandleListJobTypes(w http.ResponseWriter, r *http.Request) {
	jobTypes, err := h.jobTypes.List()
	if err != nil {
		log.Errorf("failed to list job types: %v", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load job types")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_types": jobTypes,
		"count":     len(jobTypes),
	})
}

func (h *JobTypesHandler) HandleGetJobType(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])

	jobType, err := h.jobTypes.FindByCode(code)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not_found", "unknown job type: "+code)
		return
	}
	if err != nil {
		log.Errorf("failed to load job type %s: %v", code, err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load job type")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"job_type": jobType})
}

func (h *JobTypesHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])

	cfg, err := h.configs.FindByJobTypeCode(code)
	if err != nil {
		log.Errorf("failed to load config for %s: %v", code, err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load config")
		return
	}
	if cfg == nil {
		writeError(w, http.StatusNotFound, "not_found", "no config for job type: "+code)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_type_code": cfg.JobTypeCode,
		"config":        cfg.Config,
	})
}

type upsertConfigRequest struct {
	ConfigYAML string `json:"config_yaml"`
}

func (h *JobTypesHandler) HandleUpsertConfig(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])

	var req upsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.ConfigYAML) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "config_yaml is required")
		return
	}

	cfg := &models.TransformationConfig{
		JobTypeCode: code,
		RawYAML:     req.ConfigYAML,
	}
	if err := h.configs.Upsert(cfg); err != nil {
		// Upsert validates the YAML before touching storage.
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_type_code": cfg.JobTypeCode,
		"config":        cfg.Config,
	})
}
