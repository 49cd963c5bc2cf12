package models

import "time"

// TrustedService is a caller allowed to submit transform requests over the
// broker. allowed_actions gates the operation ("transform", or "*");
// allowed_platforms optionally pins the service to specific source platforms,
// empty meaning any.
type TrustedService struct {
	ID               string
	APIKey           string
	Name             string
	AllowedActions   []string
	AllowedPlatforms []string
	IsActive         bool
	CreatedAt        time.Time
}

func (s *TrustedService) CanPerformAction(action string) bool {
	if !s.IsActive {
		return false
	}
	for _, a := range s.AllowedActions {
		if a == action || a == "*" {
			return true
		}
	}
	return false
}

func (s *TrustedService) CanTransformPlatform(platform string) bool {
	if !s.IsActive {
		return false
	}
	if len(s.AllowedPlatforms) == 0 {
		return true
	}
	for _, p := range s.AllowedPlatforms {
		if p == platform || p == "*" {
			return true
		}
	}
	return false
}
