package domain

import "fmt"

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Rarities lists the recognized rarities in draw order.
var Rarities = [4]Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// CardTemplate is an immutable catalog entry. Instances reference it by Name.
type CardTemplate struct {
	ID         int64
	Name       string
	Set        string
	Category   string
	Ability    string
	Flavor     string
	Rarity     Rarity
	Faction    string
	Type       string
	Power      int
	Provision  int
	ImageUrl   string
	FactionUrl string
}

// Owner tags a card instance as either held by a user or sitting in the
// unowned system pool, without a nullable id leaking around.
type Owner struct {
	userID int64
	owned  bool
}

func OwnedBy(userID int64) Owner {
	return Owner{userID: userID, owned: true}
}

func SystemPool() Owner {
	return Owner{}
}

func (o Owner) UserID() (int64, bool) {
	return o.userID, o.owned
}

func (o Owner) IsSystem() bool {
	return !o.owned
}

// CardInstance is one ownable copy of a template, addressed by the
// (TemplateName, CopyNumber) compound key. Copy numbers start at 1 and are
// never reused.
type CardInstance struct {
	ID           int64
	TemplateName string
	CopyNumber   int
	Owner        Owner
}

func (c CardInstance) String() string {
	return fmt.Sprintf("%s #%d", c.TemplateName, c.CopyNumber)
}

// Listing is a seller's live offer of one specific instance. While listed the
// instance's owner is cleared, so a card is never simultaneously tradeable
// and on sale.
type Listing struct {
	ID           int64
	TemplateName string
	CopyNumber   int
	SellerID     int64
	Price        int64
}
