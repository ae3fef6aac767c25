package champion

import (
	"math"

	"league-assets/core/assets"
)

// Champion is one playable champion.
type Champion struct {
	assets.Base
	ID    string `json:"id"`
	Key   int    `json:"key"`
	Title string `json:"title"`
	Stats Stats  `json:"stats"`
}

// ScalingStat is a stat that grows with champion level.
type ScalingStat struct {
	Base     float64 `json:"base"`
	PerLevel float64 `json:"perLevel"`
}

// Value is the stat at level (1-18).
func (s ScalingStat) Value(level int) float64 {
	return s.Base + s.PerLevel*growth(level)
}

// RegeneratingStat is a resource with a maximum and a regeneration rate.
type RegeneratingStat struct {
	Max   ScalingStat `json:"max"`
	Regen ScalingStat `json:"regen"`
}

// AttackSpeed grows by a percentage of its base per level instead of a flat amount.
type AttackSpeed struct {
	Base               float64 `json:"base"`
	PercentagePerLevel float64 `json:"percentagePerLevel"`
}

// Value is the attack speed at level (1-18).
func (s AttackSpeed) Value(level int) float64 {
	return s.Base * (1 + 0.01*s.PercentagePerLevel*growth(level))
}

// Stats are a champion's base statistics.
type Stats struct {
	MovementSpeed float64          `json:"movementSpeed"`
	AttackRange   float64          `json:"attackRange"`
	Health        RegeneratingStat `json:"health"`
	Mana          RegeneratingStat `json:"mana"`
	Armor         ScalingStat      `json:"armor"`
	MagicResist   ScalingStat      `json:"magicResist"`
	AttackDamage  ScalingStat      `json:"attackDamage"`
	AttackSpeed   AttackSpeed      `json:"attackSpeed"`
}

// growth is the fraction of the per-level bonus gained by level. It is not linear.
func growth(level int) float64 {
	l := float64(level)
	return (7*(math.Pow(l, 2)-1) + 267*(l-1)) / 400
}

// ByKey indexes champions by their numeric key, as used by the dynamic API.
func ByKey(contents map[string]*Champion) map[int]*Champion {
	out := make(map[int]*Champion, len(contents))
	for _, c := range contents {
		out[c.Key] = c
	}
	return out
}
