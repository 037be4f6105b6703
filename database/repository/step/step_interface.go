package stepRepo

import "posada/models"

// StepRepository defines access to the conversation step catalog. The catalog
// is written only by the seeder; the dialogue engine just reads it.
type StepRepository interface {
	// GetByID retrieves a step by its catalog id. Returns (nil, nil) when the
	// catalog has no such step.
	GetByID(id string) (*models.Step, error)
	// GetAll retrieves the whole catalog.
	GetAll() ([]models.Step, error)
	// ReplaceAll drops the catalog and inserts the given steps.
	ReplaceAll(steps []models.Step) error
}
