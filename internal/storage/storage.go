package storage

import (
	"context"

	"liquiditysim/internal/model"
)

// Storage defines a sink for simulation records.
type Storage interface {
	PutSimulations(ctx context.Context, records []model.SimulationRecord) error
}
