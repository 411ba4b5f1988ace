package internal

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	CampaignService struct {
		repository CampaignRepository
	}

	CampaignRepository interface {
		Create(ctx context.Context, campaign *Campaign) error
		GetByID(ctx context.Context, id string) (*Campaign, error)
		GetLatestActive(ctx context.Context) (*Campaign, error)
	}

	// Campaign is one advert the source can hand out. URL is served verbatim as
	// the advert body.
	Campaign struct {
		Id     string `json:"id" bson:"id"`
		Name   string `json:"name" bson:"name"`
		URL    string `json:"url" bson:"url"`
		Active bool   `json:"active" bson:"active"`

		CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	}
)

func NewCampaignService(repository CampaignRepository) *CampaignService {
	return &CampaignService{
		repository: repository,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign *Campaign) error {
	campaign.URL = strings.TrimSpace(campaign.URL)
	if campaign.URL == "" {
		return NewInvalidRequestError(errors.New("campaign url cannot be empty"))
	}

	u, err := url.Parse(campaign.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return NewInvalidRequestError(fmt.Errorf("campaign url %q is not an absolute url", campaign.URL))
	}
	if u.RawQuery != "" {
		// clients append their own query string
		return NewInvalidRequestError(fmt.Errorf("campaign url %q must not carry a query", campaign.URL))
	}

	if campaign.Id == "" {
		campaign.Id = uuid.NewString()
	}

	return s.repository.Create(ctx, campaign)
}

func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*Campaign, error) {
	if id == "" {
		return nil, NewInvalidRequestError(errors.New("id cannot be empty"))
	}

	campaign, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

func (s *CampaignService) GetLatestCampaign(ctx context.Context) (*Campaign, error) {
	campaign, err := s.repository.GetLatestActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest campaign: %w", err)
	}

	return campaign, nil
}
