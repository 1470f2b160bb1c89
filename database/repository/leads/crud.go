package leadsRepo

import (
	"context"
	"errors"
	"time"

	"jdservices/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new lead record and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	lead.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// GetByService fetches all leads captured for a given service.
func (r *mongoLeadRepo) GetByService(ctx context.Context, service models.Service) ([]models.Lead, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"submission.service": service})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// DeleteByID removes a lead by ID.
func (r *mongoLeadRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrLeadNotFound
	}
	return nil
}
