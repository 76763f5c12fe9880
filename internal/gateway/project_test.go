package gateway_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planner/internal/bus"
	"planner/internal/gateway"
	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBackend(t *testing.T, handler http.HandlerFunc) (*supabase.Client, *bus.Bus) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := supabase.New(server.URL, "anon-key", 5*time.Second, zap.NewNop())
	return client, bus.New(zap.NewNop())
}

func TestProjectGateway_ListByOwner_EmptyIsNotNil(t *testing.T) {
	// Arrange
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"created_at.desc"}, r.URL.Query()["order"])
		_, _ = w.Write([]byte(`[]`))
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	// Act
	projects, err := g.ListByOwner(context.Background(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectGateway_GetByID_NotFound(t *testing.T) {
	// Arrange: zero rows through a single-object request answers 406
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"message":"JSON object requested, multiple (or no) rows returned"}`))
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	// Act
	project, err := g.GetByID(context.Background(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectGateway_CreatePublishesRefresh(t *testing.T) {
	// Arrange
	projectID := uuid.New()
	ownerID := uuid.New()
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fmt.Sprintf(`{"id":%q,"name":"Launch","owner_id":%q}`, projectID, ownerID)))
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	var published []string
	b.Subscribe(bus.TopicProjects, func(args ...any) { published = append(published, bus.TopicProjects) })

	// Act
	project, err := g.Create(context.Background(), model.ProjectInput{
		Name:    "Launch",
		OwnerID: ownerID.String(),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
	assert.Equal(t, []string{bus.TopicProjects}, published)
}

func TestProjectGateway_CreateValidationSkipsNetwork(t *testing.T) {
	// Arrange
	var requests int
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) { requests++ })
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	// Act
	_, err := g.Create(context.Background(), model.ProjectInput{Name: "", OwnerID: uuid.NewString()})

	// Assert
	assert.ErrorIs(t, err, gateway.ErrValidation)
	assert.Zero(t, requests)
}

func TestProjectGateway_DeletePublishesDashboardAndProjects(t *testing.T) {
	// Arrange
	id := uuid.New()
	ownerID := uuid.New()
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, []string{"eq." + id.String()}, r.URL.Query()["id"])
		assert.Equal(t, []string{"eq." + ownerID.String()}, r.URL.Query()["owner_id"])
		w.WriteHeader(http.StatusNoContent)
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	var topics []string
	b.Subscribe(bus.TopicDashboard, func(args ...any) { topics = append(topics, bus.TopicDashboard) })
	b.Subscribe(bus.TopicProjects, func(args ...any) { topics = append(topics, bus.TopicProjects) })

	// Act
	err := g.Delete(context.Background(), id, ownerID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{bus.TopicDashboard, bus.TopicProjects}, topics)
}

func TestProjectGateway_PanickingSubscriberCannotMaskDelete(t *testing.T) {
	// Arrange
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())
	b.Subscribe(bus.TopicDashboard, func(args ...any) { panic("subscriber bug") })

	// Act
	err := g.Delete(context.Background(), uuid.New(), uuid.New())

	// Assert: the delete already succeeded and stays successful
	assert.NoError(t, err)
}

func TestProjectGateway_BackendErrorSurfaces(t *testing.T) {
	// Arrange
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"row-level security"}`))
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	// Act
	_, err := g.ListByOwner(context.Background(), uuid.New())

	// Assert
	var apiErr *supabase.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestProjectGateway_ListDecodesRows(t *testing.T) {
	// Arrange
	id := uuid.New()
	owner := uuid.New()
	client, b := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fmt.Sprintf(
			`[{"id":%q,"name":"Launch","owner_id":%q,"status":"on_going","due_date":"2024-05-01"}]`,
			id, owner)))
	})
	g := gateway.NewProjectGateway(client, b, zap.NewNop())

	// Act
	projects, err := g.ListByOwner(context.Background(), owner)

	// Assert
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Launch", projects[0].Name)
	require.NotNil(t, projects[0].Status)
	assert.Equal(t, "on_going", *projects[0].Status)
	require.NotNil(t, projects[0].DueDate)
	assert.Equal(t, "2024-05-01", *projects[0].DueDate)
}
