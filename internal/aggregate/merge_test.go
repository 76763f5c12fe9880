package aggregate_test

import (
	"context"
	"errors"
	"testing"

	"planner/internal/aggregate"
	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Fakes shared by the merge and dashboard tests.
type stubProjects struct {
	rows []model.Project
	err  error
}

func (s stubProjects) ListByOwner(context.Context, uuid.UUID) ([]model.Project, error) {
	return s.rows, s.err
}

type stubTasks struct {
	rows []model.Task
	err  error
}

func (s stubTasks) ListForUser(context.Context, uuid.UUID) ([]model.Task, error) {
	return s.rows, s.err
}

type stubMeetings struct {
	rows []model.Meeting
	err  error
}

func (s stubMeetings) ListByCreator(context.Context, uuid.UUID) ([]model.Meeting, error) {
	return s.rows, s.err
}

func testUser() *supabase.User {
	return &supabase.User{ID: uuid.New(), Email: "ada@example.com"}
}

func TestMerger_ProjectsBeforeTasks(t *testing.T) {
	// Arrange
	projectID := uuid.New()
	merger := aggregate.NewMerger(
		stubProjects{rows: []model.Project{{ID: projectID, Name: "Launch"}}},
		stubTasks{rows: []model.Task{{ID: uuid.New(), Title: "Ship it"}}},
		zap.NewNop(),
	)

	// Act
	items := merger.Merged(context.Background(), testUser())

	// Assert
	require.Len(t, items, 2)
	assert.Equal(t, aggregate.ItemTypeProject, items[0].Type)
	assert.Equal(t, "Launch", items[0].Title)
	assert.Equal(t, aggregate.ItemTypeTask, items[1].Type)
	assert.Equal(t, "Ship it", items[1].Title)
}

func TestMerger_ProjectNameOnlyWhenParentFetched(t *testing.T) {
	// Arrange
	knownID := uuid.New()
	orphanID := uuid.New()
	merger := aggregate.NewMerger(
		stubProjects{rows: []model.Project{{ID: knownID, Name: "Launch"}}},
		stubTasks{rows: []model.Task{
			{ID: uuid.New(), Title: "linked", ProjectID: &knownID},
			{ID: uuid.New(), Title: "orphan", ProjectID: &orphanID},
			{ID: uuid.New(), Title: "standalone"},
		}},
		zap.NewNop(),
	)

	// Act
	items := merger.Merged(context.Background(), testUser())

	// Assert
	require.Len(t, items, 4)
	byTitle := map[string]aggregate.Item{}
	for _, item := range items {
		byTitle[item.Title] = item
	}
	require.NotNil(t, byTitle["linked"].ProjectName)
	assert.Equal(t, "Launch", *byTitle["linked"].ProjectName)
	assert.Nil(t, byTitle["orphan"].ProjectName)
	assert.Nil(t, byTitle["standalone"].ProjectName)
}

func TestMerger_FailedTasksFetchStillYieldsProjects(t *testing.T) {
	// Arrange
	merger := aggregate.NewMerger(
		stubProjects{rows: []model.Project{{ID: uuid.New(), Name: "Launch"}}},
		stubTasks{err: errors.New("tasks table on fire")},
		zap.NewNop(),
	)

	// Act
	items := merger.Merged(context.Background(), testUser())

	// Assert
	require.Len(t, items, 1)
	assert.Equal(t, aggregate.ItemTypeProject, items[0].Type)
}

func TestMerger_NilUserYieldsEmpty(t *testing.T) {
	merger := aggregate.NewMerger(
		stubProjects{err: errors.New("should not be called")},
		stubTasks{err: errors.New("should not be called")},
		zap.NewNop(),
	)

	items := merger.Merged(context.Background(), nil)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMerger_UntitledFallbacks(t *testing.T) {
	// Arrange
	merger := aggregate.NewMerger(
		stubProjects{rows: []model.Project{{ID: uuid.New()}}},
		stubTasks{rows: []model.Task{{ID: uuid.New()}}},
		zap.NewNop(),
	)

	// Act
	items := merger.Merged(context.Background(), testUser())

	// Assert
	require.Len(t, items, 2)
	assert.Equal(t, "Untitled Project", items[0].Title)
	assert.Equal(t, "Untitled Task", items[1].Title)
}
