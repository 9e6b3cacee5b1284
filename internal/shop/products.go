package shop

import "github.com/dokkaebistudio/kanghwa-server/internal/domain"

// Product is one claimable shop entry. All products are free one-time
// claims keyed by a purchased flag on the player row.
type Product struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Gold       int64                 `json:"gold,omitempty"`
	Protection domain.ProtectionTier `json:"protection,omitempty"`
	Count      int                   `json:"count,omitempty"`
}

// Product IDs
const (
	ProductGoldSmall  = "gold_small"
	ProductGoldMedium = "gold_medium"
	ProductGoldLarge  = "gold_large"
	ProductProtLow    = "prot_low"
	ProductProtMid    = "prot_mid"
	ProductProtHigh   = "prot_high"
)

// ProtectionPackCount is how many tokens a protection pack grants.
const ProtectionPackCount = 5

// products is the fixed catalog.
var products = []Product{
	{ID: ProductGoldSmall, Name: "골드 주머니", Gold: 10000},
	{ID: ProductGoldMedium, Name: "골드 자루", Gold: 50000},
	{ID: ProductGoldLarge, Name: "골드 상자", Gold: 100000},
	{ID: ProductProtLow, Name: "하급 파괴방지권 묶음", Protection: domain.ProtectionLow, Count: ProtectionPackCount},
	{ID: ProductProtMid, Name: "중급 파괴방지권 묶음", Protection: domain.ProtectionMid, Count: ProtectionPackCount},
	{ID: ProductProtHigh, Name: "상급 파괴방지권 묶음", Protection: domain.ProtectionHigh, Count: ProtectionPackCount},
}

// productByID looks up a catalog entry.
func productByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// purchased reads the player's claim flag for a product.
func purchased(player *domain.Player, productID string) bool {
	switch productID {
	case ProductGoldSmall:
		return player.PurchasedGoldSmall
	case ProductGoldMedium:
		return player.PurchasedGoldMedium
	case ProductGoldLarge:
		return player.PurchasedGoldLarge
	case ProductProtLow:
		return player.PurchasedProtLow
	case ProductProtMid:
		return player.PurchasedProtMid
	case ProductProtHigh:
		return player.PurchasedProtHigh
	}
	return false
}

// markPurchased sets the player's claim flag for a product.
func markPurchased(player *domain.Player, productID string) {
	switch productID {
	case ProductGoldSmall:
		player.PurchasedGoldSmall = true
	case ProductGoldMedium:
		player.PurchasedGoldMedium = true
	case ProductGoldLarge:
		player.PurchasedGoldLarge = true
	case ProductProtLow:
		player.PurchasedProtLow = true
	case ProductProtMid:
		player.PurchasedProtMid = true
	case ProductProtHigh:
		player.PurchasedProtHigh = true
	}
}
