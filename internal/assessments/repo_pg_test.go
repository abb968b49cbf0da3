package assessments

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"water-backend/water/param"
	"water-backend/water/pipeline"
)

func ptr(v float64) *float64 { return &v }

func sampleRecord() Record {
	return Record{
		ID:     "a0000000-0000-0000-0000-000000000001",
		UserID: "user-1",
		Params: param.Set{
			PH:        ptr(7.0),
			Hardness:  ptr(200),
			Turbidity: ptr(3.0),
		},
		Potable:     false,
		PPotable:    0.38,
		PNotPotable: 0.62,
		Confidence:  62.0,
		RiskFactors: []pipeline.RiskFactor{
			{Param: param.Turbidity, Observed: 8.0, Message: "High turbidity (>5.0 NTU): 8.00"},
		},
		Recommendations: []string{"Do not consume this water until proper treatment"},
		ModelVersion:    "potability-logreg:test",
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := sampleRecord()

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs(
			rec.ID,
			rec.UserID,
			sqlmock.AnyArg(), // params jsonb
			rec.Potable,
			rec.PPotable,
			rec.PNotPotable,
			rec.Confidence,
			sqlmock.AnyArg(), // risk_factors jsonb
			sqlmock.AnyArg(), // recommendations jsonb
			rec.ModelVersion,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func recordColumns() []string {
	return []string{
		"id", "user_id", "params", "potable", "p_potable", "p_not_potable",
		"confidence", "risk_factors", "recommendations", "model_version", "created_at",
	}
}

func recordRow(t *testing.T, rec Record) []driverValue {
	t.Helper()
	paramsRaw, err := json.Marshal(rec.Params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	risksRaw, err := json.Marshal(rec.RiskFactors)
	if err != nil {
		t.Fatalf("marshal risks: %v", err)
	}
	recsRaw, err := json.Marshal(rec.Recommendations)
	if err != nil {
		t.Fatalf("marshal recommendations: %v", err)
	}
	return []driverValue{
		rec.ID, rec.UserID, paramsRaw, rec.Potable, rec.PPotable, rec.PNotPotable,
		rec.Confidence, risksRaw, recsRaw, rec.ModelVersion, rec.CreatedAt,
	}
}

type driverValue = driver.Value

func TestPGRepoGetByIDRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	want := sampleRecord()

	rows := sqlmock.NewRows(recordColumns()).AddRow(recordRow(t, want)...)
	mock.ExpectQuery("SELECT id, user_id, params").
		WithArgs(want.ID, want.UserID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), want.UserID, want.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != want.ID || got.Potable != want.Potable || got.Confidence != want.Confidence {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Params.PH == nil || *got.Params.PH != 7.0 {
		t.Fatalf("params jsonb did not round-trip: %+v", got.Params)
	}
	if len(got.RiskFactors) != 1 || got.RiskFactors[0].Param != param.Turbidity {
		t.Fatalf("risk factors jsonb did not round-trip: %+v", got.RiskFactors)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, params").
		WithArgs("missing", "user-1").
		WillReturnRows(sqlmock.NewRows(recordColumns()))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := sampleRecord()

	rows := sqlmock.NewRows(recordColumns()).AddRow(recordRow(t, rec)...)
	mock.ExpectQuery("SELECT id, user_id, params").
		WithArgs(rec.UserID, 100, 0).
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), rec.UserID, 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 1 || out[0].ID != rec.ID {
		t.Fatalf("unexpected list: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
