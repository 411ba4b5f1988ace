package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kodausch/advertising-go-client/example/backend/internal"
	"go.uber.org/zap"
)

type (
	AdvertHandler struct {
		campaignService CampaignService
		logger          *zap.SugaredLogger
	}

	CampaignService interface {
		CreateCampaign(ctx context.Context, campaign *internal.Campaign) error
		GetCampaign(ctx context.Context, id string) (*internal.Campaign, error)
		GetLatestCampaign(ctx context.Context) (*internal.Campaign, error)
	}
)

func NewAdvertHandler(svc CampaignService, logger *zap.SugaredLogger) *AdvertHandler {
	return &AdvertHandler{
		campaignService: svc,
		logger:          logger,
	}
}

// GetLatestAdvert serves the landing url of the newest active campaign as plain
// text. Clients match their keyword against this body.
func (h *AdvertHandler) GetLatestAdvert(c *gin.Context) {
	campaign, err := h.campaignService.GetLatestCampaign(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to retrieve latest campaign", "error", err)
		c.JSON(NewProblemFromError(err, WithInstance(c.Request.URL.Path)))
		return
	}

	c.String(http.StatusOK, campaign.URL)
}

func (h *AdvertHandler) GetAdvert(c *gin.Context) {
	id := c.Param("id")

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to retrieve campaign", "id", id, "error", err)
		c.JSON(NewProblemFromError(err, WithInstance(c.Request.URL.Path)))
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *AdvertHandler) CreateAdvert(c *gin.Context) {
	var campaign internal.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, NewProblem(http.StatusBadRequest, "Invalid request payload", WithError(err)))
		return
	}

	if err := h.campaignService.CreateCampaign(c.Request.Context(), &campaign); err != nil {
		h.logger.Errorw("failed to create campaign", "error", err)
		c.JSON(NewProblemFromError(err, WithInstance(c.Request.URL.Path)))
		return
	}

	c.JSON(http.StatusCreated, campaign)
}
