package services

import (
	"strconv"
	"strings"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/dispatch"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

// TransformService is the single entry point for transformation requests,
// shared by the HTTP handlers and the broker consumer.
type TransformService struct {
	registry *dispatch.Registry
}

func NewTransformService(registry *dispatch.Registry) *TransformService {
	return &TransformService{registry: registry}
}

// Transform routes a request through the dispatcher registry. A numeric
// job_type_id takes precedence over job_type_code when both are present.
func (s *TransformService) Transform(req *domains.TransformRequest) (map[string]interface{}, error) {
	jobType := req.JobTypeCode
	if req.JobTypeID != 0 {
		jobType = strconv.Itoa(req.JobTypeID)
	}
	if jobType == "" {
		return nil, transform.NewValidationError("invalid transform request", "job_type_code")
	}

	ctx := &transform.Context{
		JobTypeID:   req.JobTypeID,
		JobTypeCode: req.JobTypeCode,
		JobGroupID:  req.JobGroupID,
	}

	return s.registry.Transform(req.SourcePlatform, req.TargetPlatform, jobType, req.Data, ctx)
}

// SupportedPlatforms returns the registered source platforms and the targets
// each can transform to.
func (s *TransformService) SupportedPlatforms() map[string][]string {
	supported := map[string][]string{}
	for _, pair := range s.registry.SupportedPairs() {
		parts := strings.Split(pair, " -> ")
		if len(parts) != 2 {
			continue
		}
		supported[parts[0]] = append(supported[parts[0]], parts[1])
	}
	return supported
}
