package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kalandadze/GwentMarketplace/internal/market/application"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

const (
	cardNameKey   = "cardName"
	copyNumberKey = "number"
	priceKey      = "price"
)

type cardResponse struct {
	Template   string `json:"template"`
	CopyNumber int    `json:"number"`
}

type offerResponse struct {
	Template   string `json:"template"`
	CopyNumber int    `json:"number"`
	Price      int64  `json:"price"`
	SellerID   *int64 `json:"sellerId,omitempty"`
	System     bool   `json:"system"`
}

type profileResponse struct {
	Email      string            `json:"email"`
	Username   string            `json:"username"`
	Balance    int64             `json:"balance"`
	Collection []cardResponse    `json:"collection"`
	Listings   []listingResponse `json:"listings"`
}

type listingResponse struct {
	Template   string `json:"template"`
	CopyNumber int    `json:"number"`
	Price      int64  `json:"price"`
}

type MarketHandler struct {
	listCase     *application.ListCardCase
	buyCase      *application.BuyCardCase
	sellCase     *application.QuicksellCase
	listingsCase *application.ListingsCase
	cardInfoCase *application.CardInfoCase
	profileCase  *application.ProfileCase
	logger       logging.Logger
}

func NewMarketHandler(
	listCase *application.ListCardCase,
	buyCase *application.BuyCardCase,
	sellCase *application.QuicksellCase,
	listingsCase *application.ListingsCase,
	cardInfoCase *application.CardInfoCase,
	profileCase *application.ProfileCase,
	logger logging.Logger,
) *MarketHandler {
	return &MarketHandler{
		listCase:     listCase,
		buyCase:      buyCase,
		sellCase:     sellCase,
		listingsCase: listingsCase,
		cardInfoCase: cardInfoCase,
		profileCase:  profileCase,
		logger:       logger,
	}
}

func (h *MarketHandler) ListCard(c *gin.Context) {
	cardName, copyNumber, ok := cardParams(c)
	if !ok {
		return
	}

	price, err := strconv.ParseInt(c.Query(priceKey), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid price"})
		return
	}

	err = h.listCase.ListCard(c, principalEmail(c), cardName, copyNumber, price)
	if err != nil {
		h.logger.Warn("list card rejected", "card", cardName, "number", copyNumber, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "card successfully listed"})
}

func (h *MarketHandler) BuyCard(c *gin.Context) {
	cardName, copyNumber, ok := cardParams(c)
	if !ok {
		return
	}

	err := h.buyCase.BuyCard(c, principalEmail(c), cardName, copyNumber)
	if err != nil {
		h.logger.Warn("buy card rejected", "card", cardName, "number", copyNumber, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "card successfully bought"})
}

func (h *MarketHandler) QuicksellCard(c *gin.Context) {
	cardName, copyNumber, ok := cardParams(c)
	if !ok {
		return
	}

	err := h.sellCase.Quicksell(c, principalEmail(c), cardName, copyNumber)
	if err != nil {
		h.logger.Warn("quicksell rejected", "card", cardName, "number", copyNumber, "error", err.Error())
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "card successfully sold"})
}

func (h *MarketHandler) GetListings(c *gin.Context) {
	offers, err := h.listingsCase.GetOffers(c, c.Param(cardNameKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		item := offerResponse{
			Template:   offer.TemplateName,
			CopyNumber: offer.CopyNumber,
			Price:      offer.Price,
			System:     offer.System,
		}
		if !offer.System {
			sellerID := offer.SellerID
			item.SellerID = &sellerID
		}

		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

func (h *MarketHandler) GetCard(c *gin.Context) {
	cardName, copyNumber, ok := cardParams(c)
	if !ok {
		return
	}

	info, err := h.cardInfoCase.GetCardInfo(c, cardName, copyNumber)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template": info.Instance.TemplateName,
		"number":   info.Instance.CopyNumber,
		"copies":   info.Copies,
	})
}

func (h *MarketHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileCase.GetProfile(c, principalEmail(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, convertProfile(profile))
}

func convertProfile(profile application.Profile) profileResponse {
	response := profileResponse{
		Email:      profile.User.Email,
		Username:   profile.User.Username,
		Balance:    profile.User.Balance,
		Collection: make([]cardResponse, 0, len(profile.Collection)),
		Listings:   make([]listingResponse, 0, len(profile.Listings)),
	}

	for _, instance := range profile.Collection {
		response.Collection = append(response.Collection, cardResponse{
			Template:   instance.TemplateName,
			CopyNumber: instance.CopyNumber,
		})
	}

	for _, listing := range profile.Listings {
		response.Listings = append(response.Listings, listingResponse{
			Template:   listing.TemplateName,
			CopyNumber: listing.CopyNumber,
			Price:      listing.Price,
		})
	}

	return response
}

func cardParams(c *gin.Context) (string, int, bool) {
	cardName := c.Param(cardNameKey)

	copyNumber, err := strconv.Atoi(c.Param(copyNumberKey))
	if err != nil || copyNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid copy number"})
		return "", 0, false
	}

	return cardName, copyNumber, true
}

func convertCards(instances []domain.CardInstance) []cardResponse {
	cards := make([]cardResponse, 0, len(instances))
	for _, instance := range instances {
		cards = append(cards, cardResponse{
			Template:   instance.TemplateName,
			CopyNumber: instance.CopyNumber,
		})
	}

	return cards
}
