package leadsRepo

import (
	"context"
	"errors"

	"jdservices/database"
	"jdservices/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrLeadNotFound is returned when no lead matches the given ID.
var ErrLeadNotFound = errors.New("lead not found")

type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	GetByService(ctx context.Context, service models.Service) ([]models.Lead, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("jdservices")
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}
