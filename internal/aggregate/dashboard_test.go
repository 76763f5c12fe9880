package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"planner/internal/aggregate"
	"planner/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDashboard_CountsAllThreeSources(t *testing.T) {
	// Arrange
	dash := aggregate.NewDashboard(
		stubProjects{rows: []model.Project{
			{ID: uuid.New(), Name: "Launch", CompletedAt: strPtr("2024-05-01T10:00:00Z")},
			{ID: uuid.New(), Name: "Q3 plan", Status: strPtr("in_progress")},
		}},
		stubTasks{rows: []model.Task{
			{ID: uuid.New(), Title: "Ship it", Status: strPtr("completed")},
		}},
		stubMeetings{rows: []model.Meeting{
			{ID: uuid.New(), CreatedBy: uuid.New()},
		}},
		zap.NewNop(),
	)

	// Act
	stats := dash.Load(context.Background(), testUser())

	// Assert
	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Equal(t, 1, stats.TotalMeetings)
	assert.Equal(t, 3, stats.TotalTodos)
	assert.Equal(t, 2, stats.CompletedTodos)
	assert.Equal(t, 1, stats.PendingTodos)
}

func TestDashboard_FailedFetchContributesZero(t *testing.T) {
	// Arrange: meetings are down, the other cards still count
	dash := aggregate.NewDashboard(
		stubProjects{rows: []model.Project{{ID: uuid.New(), Name: "Launch"}}},
		stubTasks{rows: []model.Task{{ID: uuid.New(), Title: "Ship it"}}},
		stubMeetings{err: errors.New("meetings table on fire")},
		zap.NewNop(),
	)

	// Act
	stats := dash.Load(context.Background(), testUser())

	// Assert
	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.Zero(t, stats.TotalMeetings)
	assert.Equal(t, 2, stats.TotalTodos)
}

func TestDashboard_NilUserReturnsZeroStats(t *testing.T) {
	dash := aggregate.NewDashboard(
		stubProjects{err: errors.New("should not be called")},
		stubTasks{err: errors.New("should not be called")},
		stubMeetings{err: errors.New("should not be called")},
		zap.NewNop(),
	)

	stats := dash.Load(context.Background(), nil)

	assert.Equal(t, aggregate.Stats{}, stats)
}
