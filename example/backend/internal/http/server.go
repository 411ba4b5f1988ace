package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(campaignService CampaignService, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	advertHandler := NewAdvertHandler(campaignService, logger)
	eventHandler := NewEventHandler(logger)

	api := router.Group("/api/v1")
	{
		adverts := api.Group("/adverts")
		{
			adverts.POST("", advertHandler.CreateAdvert)
			adverts.GET("/latest", advertHandler.GetLatestAdvert)
			adverts.GET("/:id", advertHandler.GetAdvert)
		}

		api.POST("/events", eventHandler.ReceiveEvents)
	}

	return router
}

func StartServer(campaignService CampaignService, logger *zap.SugaredLogger, addr ...string) error {
	return NewRouter(campaignService, logger).Run(addr...)
}
