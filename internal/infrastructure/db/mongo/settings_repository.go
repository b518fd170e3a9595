package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/hr-system/internal/core/domain"
)

const (
	collectionSettings = "settings"
	settingsDocID      = "company"
)

// SettingsRepository persists the singleton company settings document under a
// fixed id, mirroring a settings/company document path.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

type mongoSettings struct {
	ID               string `bson:"_id"`
	CompanyName      string `bson:"company_name"`
	Timezone         string `bson:"timezone"`
	DefaultWorkHours string `bson:"default_work_hours"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSettings
	if err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Never saved yet: zero-value settings, not an error.
			return &domain.CompanySettings{}, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &domain.CompanySettings{
		CompanyName:      ms.CompanyName,
		Timezone:         ms.Timezone,
		DefaultWorkHours: ms.DefaultWorkHours,
	}, nil
}

func (r *SettingsRepository) Put(ctx context.Context, s *domain.CompanySettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSettings{
		ID:               settingsDocID,
		CompanyName:      s.CompanyName,
		Timezone:         s.Timezone,
		DefaultWorkHours: s.DefaultWorkHours,
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
