package assessments

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"github.com/google/uuid"

	"water-backend/internal/shared/metrics"
	"water-backend/internal/shared/telemetry"
	"water-backend/water/param"
	"water-backend/water/pipeline"
)

// Service contains business logic for assessments.
type Service struct {
	Repo   Repo
	Engine *pipeline.Engine
}

// Assess runs the pipeline on the given parameter set and persists the result.
func (s *Service) Assess(ctx context.Context, userID string, set param.Set) (Record, error) {
	if userID == "" {
		return Record{}, errors.New("userID is required")
	}

	metrics.IncAssessmentStarted()
	startedAt := time.Now().UTC()

	assessment, err := s.Engine.Assess(set)
	if err != nil {
		metrics.IncAssessmentFailed()
		return Record{}, err
	}

	rec := Record{
		ID:              uuid.NewString(),
		UserID:          userID,
		Params:          assessment.Params,
		Potable:         assessment.Prediction.Potable,
		PPotable:        assessment.Prediction.PPotable,
		PNotPotable:     assessment.Prediction.PNotPotable,
		Confidence:      assessment.Confidence,
		RiskFactors:     assessment.RiskFactors,
		Recommendations: assessment.Recommendations,
		ModelVersion:    s.Engine.Model.Version(),
		CreatedAt:       assessment.GeneratedAt,
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncAssessmentFailed()
		return Record{}, err
	}

	completedAt := time.Now().UTC()
	metrics.IncAssessmentCompleted()
	metrics.ObserveAssessmentDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	if !rec.Potable {
		metrics.IncAssessmentUnsafe()
	}
	telemetry.Info("assessment.complete", map[string]any{
		"user_id":       userID,
		"assessment_id": rec.ID,
		"potable":       rec.Potable,
		"confidence":    rec.Confidence,
		"risk_count":    len(rec.RiskFactors),
		"model_version": rec.ModelVersion,
		"missing_count": set.MissingCount(),
	})

	return rec, nil
}

// Get returns an assessment owned by the user.
func (s *Service) Get(ctx context.Context, userID, assessmentID string) (Record, error) {
	if assessmentID == "" {
		return Record{}, errors.New("assessmentID is required")
	}
	return s.Repo.GetByID(ctx, userID, assessmentID)
}

// List returns assessments for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// ExportCSV renders a stored assessment as a one-row CSV file.
func (s *Service) ExportCSV(ctx context.Context, userID, assessmentID string) ([]byte, error) {
	rec, err := s.Get(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	assessment := toAssessment(rec)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(pipeline.ExportHeaders()); err != nil {
		return nil, err
	}
	if err := w.Write(assessment.ExportRow()); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Visuals derives the visualization series for a stored assessment.
func (s *Service) Visuals(ctx context.Context, userID, assessmentID string) (pipeline.Projections, error) {
	rec, err := s.Get(ctx, userID, assessmentID)
	if err != nil {
		return pipeline.Projections{}, err
	}
	return s.Engine.Project(toAssessment(rec)), nil
}
