package domain

import "fmt"

const (
	priceCommon    int64 = 500
	priceRare      int64 = 2000
	priceEpic      int64 = 5000
	priceLegendary int64 = 10000
)

// BasePrice maps a rarity to the system price used for direct sales out of
// the unowned pool. An unrecognized rarity means a broken catalog, not user
// error.
func BasePrice(rarity Rarity) (int64, error) {
	switch rarity {
	case RarityCommon:
		return priceCommon, nil
	case RarityRare:
		return priceRare, nil
	case RarityEpic:
		return priceEpic, nil
	case RarityLegendary:
		return priceLegendary, nil
	default:
		return 0, &UnknownRarityError{Msg: fmt.Sprintf("unexpected rarity: %s", rarity)}
	}
}

// QuicksellPrice is half the base price, floored.
func QuicksellPrice(rarity Rarity) (int64, error) {
	price, err := BasePrice(rarity)
	if err != nil {
		return 0, err
	}

	return price / 2, nil
}
