package catalogRepo

import (
	"context"

	"tripwise/database"
	"tripwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository loads the travel package catalog. The catalog is read
// once at process start; the planner never writes to it.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.TravelPackage, error)
	GetByID(ctx context.Context, id string) (*models.TravelPackage, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &mongoCatalogRepo{
		coll: database.Database().Collection("packages"),
	}
}
