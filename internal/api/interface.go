package api

import (
	"context"
	"encoding/json"

	"github.com/strickvl/beemind/internal/models"
)

// GoalParams holds the fields for creating a new goal. Slug, Title,
// GoalType and GUnits are required by the server; exactly two of GoalDate,
// GoalVal and Rate must be set, the third is derived.
type GoalParams struct {
	Slug     string
	Title    string
	GoalType string
	GUnits   string
	GoalDate *int64
	GoalVal  *float64
	Rate     *float64
}

// GoalUpdate holds the mutable fields of an existing goal. Nil fields are
// left unchanged.
type GoalUpdate struct {
	Title     *string
	YAxis     *string
	FinePrint *string
}

// BulkDatapointResult reports the outcome of a bulk datapoint create: the
// datapoints the server stored and the raw entries it rejected.
type BulkDatapointResult struct {
	Successes []models.Datapoint `json:"successes"`
	Errors    json.RawMessage    `json:"errors,omitempty"`
}

// DatapointQuery narrows a datapoint listing.
type DatapointQuery struct {
	Sort  string
	Count int
	Page  int
	Per   int
}

// DatapointUpdate holds the mutable fields of an existing datapoint.
// Nil fields are left unchanged.
type DatapointUpdate struct {
	Value     *float64
	Timestamp *int64
	Comment   *string
}

// Service is the data-access surface the UI consumes.
//
//go:generate mockgen -source=interface.go -destination=apimock/mock_service.go -package=apimock
type Service interface {
	GetAllGoals(ctx context.Context) ([]models.Goal, error)
	GetArchivedGoals(ctx context.Context) ([]models.Goal, error)
	GetGoal(ctx context.Context, slug string) (models.Goal, error)
	CreateGoal(ctx context.Context, p GoalParams) (models.Goal, error)
	UpdateGoal(ctx context.Context, slug string, upd GoalUpdate) (models.Goal, error)
	GetDatapoints(ctx context.Context, slug string, q DatapointQuery) ([]models.Datapoint, error)
	CreateDatapoint(ctx context.Context, slug string, value float64, comment string) (models.Datapoint, error)
	CreateAllDatapoints(ctx context.Context, slug string, points []models.Datapoint) (BulkDatapointResult, error)
	UpdateDatapoint(ctx context.Context, slug, id string, upd DatapointUpdate) (models.Datapoint, error)
	DeleteDatapoint(ctx context.Context, slug, id string) (models.Datapoint, error)
	GetUser(ctx context.Context) (models.User, error)
}

var _ Service = (*Client)(nil)
