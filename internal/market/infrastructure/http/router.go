package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewRouter(marketHandler *MarketHandler, packHandler *PackHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cards := router.Group("/cards")
	{
		cards.GET("/listings/:cardName", marketHandler.GetListings)
		cards.GET("/:cardName/:number", marketHandler.GetCard)

		authorized := cards.Group("", NewIdentityMiddleware())
		{
			authorized.POST("/list/:cardName/:number", marketHandler.ListCard)
			authorized.POST("/buy/:cardName/:number", marketHandler.BuyCard)
			authorized.POST("/quicksell/:cardName/:number", marketHandler.QuicksellCard)
		}
	}

	packs := router.Group("/packs")
	{
		packs.GET("", packHandler.GetPacks)
		packs.POST("/open/:packName", NewIdentityMiddleware(), packHandler.OpenPack)
	}

	router.GET("/users/me", NewIdentityMiddleware(), marketHandler.GetProfile)

	return router
}
