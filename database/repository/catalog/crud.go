package catalogRepo

import (
	"context"
	"fmt"

	"tripwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll returns every travel package in stable insertion order.
func (r *mongoCatalogRepo) GetAll(ctx context.Context) ([]models.TravelPackage, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.TravelPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}

// GetByID returns a single travel package by its ID.
func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &pkg, nil
}
