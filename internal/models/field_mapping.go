package models

import "time"

type FieldMapping struct {
	ID                 string
	JobTypeID          int
	SourcePlatform     string
	TargetEntity       string
	SourceField        string
	TargetField        string
	TransformationRule string
	IsRequired         bool
	Description        string
	CreatedAt          time.Time
}
