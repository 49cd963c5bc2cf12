package models

type JobType struct {
	ID               int
	Code             string
	Name             string
	SourcePlatformID int
	TargetPlatformID int
	IsExtractionOnly bool
	Dependencies     []int
}
