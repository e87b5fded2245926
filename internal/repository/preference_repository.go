package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// PreferenceRepository stores per-viewer calendar preferences
type PreferenceRepository interface {
	// HiddenProjects returns the ids of the projects the viewer has hidden
	HiddenProjects(ctx context.Context, viewerID uint64) (map[string]bool, error)

	// SetProjectVisibility shows or hides a project on the viewer's calendar
	SetProjectVisibility(ctx context.Context, viewerID, projectID uint64, visible bool) error
}

type preferenceRepository struct {
	client *redis.Client
}

// NewPreferenceRepository creates a new Redis-backed preference repository
func NewPreferenceRepository(client *redis.Client) PreferenceRepository {
	return &preferenceRepository{client: client}
}

func hiddenProjectsKey(viewerID uint64) string {
	return fmt.Sprintf("calendar:hidden_projects:%d", viewerID)
}

func (r *preferenceRepository) HiddenProjects(ctx context.Context, viewerID uint64) (map[string]bool, error) {
	members, err := r.client.SMembers(ctx, hiddenProjectsKey(viewerID)).Result()
	if err == redis.Nil {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hidden projects: %w", err)
	}

	hidden := make(map[string]bool, len(members))
	for _, m := range members {
		hidden[m] = true
	}
	return hidden, nil
}

func (r *preferenceRepository) SetProjectVisibility(ctx context.Context, viewerID, projectID uint64, visible bool) error {
	key := hiddenProjectsKey(viewerID)
	member := strconv.FormatUint(projectID, 10)

	var err error
	if visible {
		err = r.client.SRem(ctx, key, member).Err()
	} else {
		err = r.client.SAdd(ctx, key, member).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to set project visibility: %w", err)
	}
	return nil
}
