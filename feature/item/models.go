package item

import "league-assets/core/assets"

// Item is one purchasable item.
type Item struct {
	assets.Base
	ID      int    `json:"id"`
	Summary string `json:"summary"`
	// RequiredChampion is set for champion-exclusive items.
	RequiredChampion string `json:"requiredChampion,omitempty"`
	Gold             Gold   `json:"gold"`
}

// Gold is an item's price.
type Gold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}
