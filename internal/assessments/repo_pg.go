package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"water-backend/water/param"
	"water-backend/water/pipeline"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO assessments (
	id, user_id, params, potable, p_potable, p_not_potable, confidence,
	risk_factors, recommendations, model_version, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	paramsPayload, err := json.Marshal(rec.Params)
	if err != nil {
		return err
	}
	risks := rec.RiskFactors
	if risks == nil {
		risks = []pipeline.RiskFactor{}
	}
	risksPayload, err := json.Marshal(risks)
	if err != nil {
		return err
	}
	recs := rec.Recommendations
	if recs == nil {
		recs = []string{}
	}
	recsPayload, err := json.Marshal(recs)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		paramsPayload,
		rec.Potable,
		rec.PPotable,
		rec.PNotPotable,
		rec.Confidence,
		risksPayload,
		recsPayload,
		rec.ModelVersion,
		rec.CreatedAt,
	)
	return err
}

// GetByID returns an assessment owned by the given user.
func (r *PGRepo) GetByID(ctx context.Context, userID, assessmentID string) (Record, error) {
	const query = `
SELECT id, user_id, params, potable, p_potable, p_not_potable, confidence,
       risk_factors, recommendations, model_version, created_at
FROM assessments
WHERE id = $1 AND user_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, assessmentID, userID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// ListByUser lists assessments for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, user_id, params, potable, p_potable, p_not_potable, confidence,
       risk_factors, recommendations, model_version, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var paramsRaw []byte
	var risksRaw []byte
	var recsRaw []byte
	if err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&paramsRaw,
		&rec.Potable,
		&rec.PPotable,
		&rec.PNotPotable,
		&rec.Confidence,
		&risksRaw,
		&recsRaw,
		&rec.ModelVersion,
		&rec.CreatedAt,
	); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(paramsRaw, &rec.Params); err != nil {
		rec.Params = param.Set{}
	}
	if len(risksRaw) > 0 {
		if err := json.Unmarshal(risksRaw, &rec.RiskFactors); err != nil {
			rec.RiskFactors = []pipeline.RiskFactor{}
		}
	}
	if len(recsRaw) > 0 {
		if err := json.Unmarshal(recsRaw, &rec.Recommendations); err != nil {
			rec.Recommendations = []string{}
		}
	}
	return rec, nil
}
