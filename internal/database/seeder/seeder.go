package seeder

import (
	"context"
	"fmt"
	"log"

	"campus-start/internal/database"
)

// Seeder inserts demo data. Implementations must be idempotent; running a
// seeder twice leaves the database unchanged.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Logger *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB, seeders ...Seeder) error {
	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seeder] applied name=%s", s.Name())
		}
	}
	return nil
}
