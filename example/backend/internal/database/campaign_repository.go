package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kodausch/advertising-go-client/example/backend/internal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const campaignCollection = "campaigns"

type CampaignRepository struct {
	collection *mongo.Collection
}

func NewCampaignRepository(ctx context.Context, database *mongo.Database) (*CampaignRepository, error) {
	collection := database.Collection(campaignCollection)
	if err := createIndex(ctx, collection, bson.D{{Key: "id", Value: 1}}, options.Index().SetUnique(true)); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &CampaignRepository{
		collection: collection,
	}, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *internal.Campaign) error {
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return internal.NewConflictError(fmt.Errorf("campaign with id %s already exists", campaign.Id))
		}
		return err
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*internal.Campaign, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *CampaignRepository) GetLatestActive(ctx context.Context) (*internal.Campaign, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findOne(ctx, bson.M{"active": true}, opts)
}

func (r *CampaignRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*internal.Campaign, error) {
	var campaign internal.Campaign
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&campaign)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, internal.NewNotFoundError(fmt.Errorf("campaign not found: %w", err))
		}
		return nil, err
	}
	return &campaign, nil
}
