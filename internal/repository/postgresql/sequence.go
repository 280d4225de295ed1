package postgresql

import (
	"context"
	"fmt"

	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

// SequenceRepository allocates monotonically increasing per-organization
// numbers for human-readable identifiers (invoice and withholding
// instruction numbers). The counter row is bumped with a single atomic
// upsert, so concurrent writers from the same organization cannot be
// handed the same value.
type SequenceRepository interface {
	Next(ctx context.Context, organizationID, name string, year int) (int64, error)
}

type sequenceRepositoryImpl struct {
	db *database.DB
}

func NewSequenceRepository(db *database.DB) SequenceRepository {
	return &sequenceRepositoryImpl{db: db}
}

func (r *sequenceRepositoryImpl) Next(ctx context.Context, organizationID, name string, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organization_sequences (organization_id, name, year, value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (organization_id, name, year)
		DO UPDATE SET value = organization_sequences.value + 1
		RETURNING value
	`

	var value int64
	err := q.QueryRow(ctx, query, organizationID, name, year).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence number: %w", err)
	}

	return value, nil
}
