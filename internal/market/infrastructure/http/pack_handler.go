package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalandadze/GwentMarketplace/internal/market/application"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

const packNameKey = "packName"

type packResponse struct {
	Name          string     `json:"name"`
	Price         int64      `json:"price"`
	Probabilities [4]float64 `json:"probabilities"`
	CardCount     int        `json:"cardCount"`
}

type PackHandler struct {
	openPackCase *application.OpenPackCase
	logger       logging.Logger
}

func NewPackHandler(openPackCase *application.OpenPackCase, logger logging.Logger) *PackHandler {
	return &PackHandler{
		openPackCase: openPackCase,
		logger:       logger,
	}
}

func (h *PackHandler) OpenPack(c *gin.Context) {
	packName := c.Param(packNameKey)

	minted, err := h.openPackCase.OpenPack(c, packName, principalEmail(c))
	if err != nil {
		h.logger.Warn("pack opening rejected", "pack", packName, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, convertCards(minted))
}

func (h *PackHandler) GetPacks(c *gin.Context) {
	packs := h.openPackCase.AllPacks()

	response := make([]packResponse, 0, len(packs))
	for _, pack := range packs {
		response = append(response, packResponse{
			Name:          pack.Name,
			Price:         pack.Price,
			Probabilities: pack.Probabilities,
			CardCount:     pack.CardCount,
		})
	}

	c.JSON(http.StatusOK, response)
}
