package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yuiseki/sysquiz/ent"
	"github.com/yuiseki/sysquiz/ent/blob"
	"github.com/yuiseki/sysquiz/internal/quiz"
)

const (
	keySettings   = "settings"
	keyStatistics = "statistics"
)

// loadBlob unmarshals the blob stored under key into out. Returns false if
// the blob is missing or unreadable; out is treated as pre-filled defaults,
// so present fields overwrite defaults and absent ones keep them.
func loadBlob(ctx context.Context, client *ent.Client, key string, out any) bool {
	b, err := client.Blob.Query().Where(blob.Key(key)).Only(ctx)
	if err != nil {
		return false
	}
	raw, err := json.Marshal(b.Data)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// saveBlob upserts value as a JSON document under key.
func saveBlob(ctx context.Context, client *ent.Client, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("remarshal %s: %w", key, err)
	}

	existing, err := client.Blob.Query().Where(blob.Key(key)).Only(ctx)
	switch {
	case err == nil:
		err = client.Blob.UpdateOne(existing).SetData(data).Exec(ctx)
	case ent.IsNotFound(err):
		err = client.Blob.Create().SetKey(key).SetData(data).Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// deleteBlob removes the blob under key. Missing blobs are not an error.
func deleteBlob(ctx context.Context, client *ent.Client, key string) error {
	_, err := client.Blob.Delete().Where(blob.Key(key)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// settingsRepo implements SettingsRepo over the blob table.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Load(ctx context.Context) quiz.Settings {
	s := quiz.DefaultSettings()
	loadBlob(ctx, r.client, keySettings, &s)
	return s.Normalized()
}

func (r *settingsRepo) Save(ctx context.Context, s quiz.Settings) error {
	return saveBlob(ctx, r.client, keySettings, s.Normalized())
}

func (r *settingsRepo) Reset(ctx context.Context) error {
	return deleteBlob(ctx, r.client, keySettings)
}

// statsRepo implements StatsRepo over the blob table.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Load(ctx context.Context) quiz.Statistics {
	var s quiz.Statistics
	loadBlob(ctx, r.client, keyStatistics, &s)
	if s.TotalGamesPlayed < 0 || s.TotalCorrectAnswers < 0 || s.HighestStreak < 0 {
		return quiz.Statistics{}
	}
	return s
}

func (r *statsRepo) Save(ctx context.Context, s quiz.Statistics) error {
	return saveBlob(ctx, r.client, keyStatistics, s)
}

func (r *statsRepo) Reset(ctx context.Context) error {
	return deleteBlob(ctx, r.client, keyStatistics)
}
