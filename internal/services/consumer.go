package services

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/broker"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/transform"
)

var log = logrus.WithField("component", "services")

// ConsumerService bridges broker requests into the transform service.
type ConsumerService struct {
	auth      *AuthService
	transform *TransformService
}

func NewConsumerService(auth *AuthService, transformService *TransformService) *ConsumerService {
	return &ConsumerService{
		auth:      auth,
		transform: transformService,
	}
}

// RegisterHandlers wires the transform handler into the consumer.
func (s *ConsumerService) RegisterHandlers(consumer *broker.Consumer) {
	consumer.RegisterHandler(s.handleTransform)
}

func (s *ConsumerService) handleTransform(req *domains.TransformRequest) *domains.TransformResponse {
	service, err := s.auth.ValidateAPIKey(req.APIKey)
	if err != nil {
		return errorResponse(req.RequestID, "unauthorized", err.Error())
	}

	if err := s.auth.ValidateAction(service, "transform"); err != nil {
		return errorResponse(req.RequestID, "forbidden", err.Error())
	}

	if err := s.auth.ValidatePlatform(service, req.SourcePlatform); err != nil {
		return errorResponse(req.RequestID, "forbidden", err.Error())
	}

	result, err := s.transform.Transform(req)
	if err != nil {
		log.Warnf("transform request %s failed: %v", req.RequestID, err)
		return errorResponse(req.RequestID, errorCode(err), err.Error())
	}

	return &domains.TransformResponse{
		RequestID: req.RequestID,
		Success:   true,
		Data:      result,
	}
}

// errorCode folds error kinds into the broker error vocabulary.
func errorCode(err error) string {
	switch err.(type) {
	case *transform.ValidationError:
		return "validation_error"
	case *transform.NotFoundError:
		return "not_found"
	default:
		return "transformation_error"
	}
}

func errorResponse(requestID, code, message string) *domains.TransformResponse {
	return &domains.TransformResponse{
		RequestID: requestID,
		Success:   false,
		Error: &domains.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
