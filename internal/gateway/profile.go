package gateway

import (
	"context"
	"fmt"

	"planner/internal/model"
	"planner/internal/supabase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileGateway struct {
	client *supabase.Client
	log    *zap.Logger
}

func NewProfileGateway(client *supabase.Client, log *zap.Logger) *ProfileGateway {
	return &ProfileGateway{client: client, log: log}
}

func (g *ProfileGateway) Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := g.client.From("profiles").
		Select().
		Eq("id", userID.String()).
		Single().
		ExecuteInto(ctx, &profile)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert writes the profile row keyed by the auth user id; repeated calls
// with the same id are safe.
func (g *ProfileGateway) Upsert(ctx context.Context, userID uuid.UUID, fullName string) error {
	row := model.Profile{ID: userID, FullName: fullName}
	err := g.client.From("profiles").
		Upsert(row).
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
