package runes

import "league-assets/core/assets"

// Path is one rune tree, such as Precision or Domination.
type Path struct {
	assets.Base
	ID    int      `json:"id"`
	Key   string   `json:"key"`
	Slots [][]Rune `json:"slots"`
}

// Rune is a single choice within a slot of a path.
type Rune struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	ImageName   string `json:"imageName"`
}

// Find returns the rune with id anywhere in the path.
func (p *Path) Find(id int) (Rune, bool) {
	for _, slot := range p.Slots {
		for _, r := range slot {
			if r.ID == id {
				return r, true
			}
		}
	}
	return Rune{}, false
}

// runeNames lists every rune name of the path, in slot order.
func runeNames(slots [][]Rune) []string {
	names := []string{}
	for _, slot := range slots {
		for _, r := range slot {
			names = append(names, r.Name)
		}
	}
	return names
}
