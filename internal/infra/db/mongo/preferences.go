package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelgo/internal/domain/preferences"
)

type PreferencesStore struct {
	col *mongo.Collection
}

func NewPreferencesStore(db *mongo.Database) *PreferencesStore {
	return &PreferencesStore{col: db.Collection("preferences")}
}

func (s *PreferencesStore) Get(ctx context.Context, clientID string) (preferences.Preferences, error) {
	var prefs preferences.Preferences
	if err := s.col.FindOne(ctx, bson.M{"_id": clientID}).Decode(&prefs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return preferences.Preferences{}, preferences.ErrNotFound
		}
		return preferences.Preferences{}, err
	}
	return prefs, nil
}

func (s *PreferencesStore) Save(ctx context.Context, prefs preferences.Preferences) error {
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": prefs.ClientID}, prefs, options.Replace().SetUpsert(true))
	return err
}

var _ preferences.Store = (*PreferencesStore)(nil)
