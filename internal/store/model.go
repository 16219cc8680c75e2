package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edubox/adapt/ent"
	"github.com/edubox/adapt/ent/clusterartifact"

	"github.com/edubox/adapt/internal/behavior"
)

// ModelRepo stores trained cluster models as opaque versioned blobs.
// It satisfies behavior.ModelRepo.
type ModelRepo = behavior.ModelRepo

type modelRepo struct {
	client *ent.Client
}

func (r *modelRepo) SaveModel(ctx context.Context, m *behavior.Model) error {
	dataMap, err := modelToMap(m)
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}

	_, err = r.client.ClusterArtifact.Create().
		SetVersion(m.Version).
		SetSampleCount(m.SampleCount).
		SetData(dataMap).
		SetCreatedAt(m.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cluster artifact: %w", err)
	}
	return nil
}

func (r *modelRepo) LatestModel(ctx context.Context) (*behavior.Model, bool, error) {
	row, err := r.client.ClusterArtifact.Query().
		Order(ent.Desc(clusterartifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query latest artifact: %w", err)
	}

	m, err := modelFromMap(row.Data)
	if err != nil {
		return nil, false, fmt.Errorf("decode artifact %s: %w", row.Version, err)
	}
	return m, true, nil
}

// modelToMap converts a model to the generic map the JSON column stores.
func modelToMap(m *behavior.Model) (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func modelFromMap(data map[string]any) (*behavior.Model, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m behavior.Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
