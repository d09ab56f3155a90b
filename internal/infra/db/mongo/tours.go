package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelgo/internal/domain/tours"
)

const toursCollection = "tours"

// TourSource serves the tour collection from MongoDB in insertion order.
type TourSource struct {
	col *mongo.Collection
}

func NewTourSource(db *mongo.Database) *TourSource {
	return &TourSource{col: db.Collection(toursCollection)}
}

type tourDocument struct {
	tours.Tour `bson:",inline"`
	Position   int `bson:"position"`
}

func (s *TourSource) LoadTours(ctx context.Context) ([]tours.Tour, error) {
	cur, err := s.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: find tours: %w", err)
	}
	defer cur.Close(ctx)

	list := []tours.Tour{}
	for cur.Next(ctx) {
		var doc tourDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo: decode tour: %w", err)
		}
		list = append(list, doc.Tour)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate tours: %w", err)
	}
	return list, nil
}

// ReplaceAll swaps the stored collection for list, keeping list order.
func (s *TourSource) ReplaceAll(ctx context.Context, list []tours.Tour) error {
	if _, err := s.col.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("mongo: clear tours: %w", err)
	}
	if len(list) == 0 {
		return nil
	}
	docs := make([]any, 0, len(list))
	for i, tour := range list {
		docs = append(docs, tourDocument{Tour: tour, Position: i})
	}
	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo: insert tours: %w", err)
	}
	return nil
}

var _ tours.Source = (*TourSource)(nil)
