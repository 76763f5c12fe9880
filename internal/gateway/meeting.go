package gateway

import (
	"context"
	"fmt"
	"time"

	"planner/internal/bus"
	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MeetingGateway struct {
	client *supabase.Client
	bus    *bus.Bus
	log    *zap.Logger
}

type MeetingGatewayInterface interface {
	List(ctx context.Context) ([]model.Meeting, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]model.Meeting, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error)
	Create(ctx context.Context, input model.MeetingInput) (*model.Meeting, error)
	Update(ctx context.Context, id uuid.UUID, patch model.MeetingPatch) (*model.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ MeetingGatewayInterface = (*MeetingGateway)(nil)

func NewMeetingGateway(client *supabase.Client, b *bus.Bus, log *zap.Logger) *MeetingGateway {
	return &MeetingGateway{client: client, bus: b, log: log}
}

// List returns every meeting visible to the caller, soonest first.
func (g *MeetingGateway) List(ctx context.Context) ([]model.Meeting, error) {
	meetings := []model.Meeting{}
	err := g.client.From("meetings").
		Select().
		Order("scheduled_for", true).
		ExecuteInto(ctx, &meetings)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}

func (g *MeetingGateway) ListByCreator(ctx context.Context, userID uuid.UUID) ([]model.Meeting, error) {
	meetings := []model.Meeting{}
	err := g.client.From("meetings").
		Select().
		Eq("created_by", userID.String()).
		Order("scheduled_for", true).
		ExecuteInto(ctx, &meetings)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}

func (g *MeetingGateway) GetByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error) {
	var meeting model.Meeting
	err := g.client.From("meetings").
		Select().
		Eq("id", id.String()).
		Single().
		ExecuteInto(ctx, &meeting)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return &meeting, nil
}

// Create validates the form fields before touching the network: title and a
// plausible URL are required, and a provided start time may not be in the
// past. Duration defaults to 60 minutes, status to scheduled.
func (g *MeetingGateway) Create(ctx context.Context, input model.MeetingInput) (*model.Meeting, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.ScheduledFor != nil {
		when, err := time.Parse(time.RFC3339, *input.ScheduledFor)
		if err != nil {
			return nil, fmt.Errorf("%w: scheduled_for is not a valid timestamp", ErrValidation)
		}
		if when.Before(time.Now()) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, ErrScheduledInPast)
		}
	}
	if input.DurationMin == nil {
		defaultDuration := 60
		input.DurationMin = &defaultDuration
	}
	if input.Status == nil {
		scheduled := model.MeetingStatusScheduled
		input.Status = &scheduled
	}

	var meeting model.Meeting
	err := g.client.From("meetings").
		Insert(input).
		Single().
		ExecuteInto(ctx, &meeting)
	if err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	g.bus.Publish(bus.TopicMeetings)
	return &meeting, nil
}

func (g *MeetingGateway) Update(ctx context.Context, id uuid.UUID, patch model.MeetingPatch) (*model.Meeting, error) {
	var meeting model.Meeting
	err := g.client.From("meetings").
		Update(patch).
		Eq("id", id.String()).
		Single().
		ExecuteInto(ctx, &meeting)
	if err != nil {
		return nil, fmt.Errorf("update meeting: %w", err)
	}

	g.bus.Publish(bus.TopicMeetings)
	return &meeting, nil
}

func (g *MeetingGateway) Delete(ctx context.Context, id uuid.UUID) error {
	err := g.client.From("meetings").
		Delete().
		Eq("id", id.String()).
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	g.bus.Publish(bus.TopicMeetings)
	return nil
}
