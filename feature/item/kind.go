package item

import (
	"strconv"

	"league-assets/core/assets"
	"league-assets/core/decode"
	"league-assets/core/search"
	"league-assets/core/utils"
)

// Identifier names items in remote URLs and persistence keys.
const Identifier = "item"

// Kind describes the item asset kind.
var Kind = assets.Kind[int, *Item]{
	Identifier: Identifier,
	Decode:     Decode,
	ParseID:    assets.IntID,
}

// Decode reads an item payload. Both shapes key items by their numeric id under "data".
func Decode(payload []byte, shape decode.Shape, version string) (map[int]*Item, error) {
	root, err := decode.Parse(payload)
	if err != nil {
		return nil, err
	}
	data, err := root.Object("data")
	if err != nil {
		return nil, err
	}

	out := make(map[int]*Item)
	err = data.Each(func(key string, v decode.Value) error {
		id, err := strconv.Atoi(key)
		if err != nil {
			return &decode.Error{Path: v.Path(), Err: decode.ErrType}
		}

		var it *Item
		if shape == decode.API {
			it, err = decodeAPI(id, v, version)
		} else {
			it, err = decodeSimple(id, v, version)
		}
		if err != nil {
			return err
		}
		out[it.ID] = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeAPI(id int, v decode.Value, version string) (*Item, error) {
	it := &Item{ID: id}
	it.Version = version
	var err error

	if it.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return nil, err
	}
	if it.Description, err = decode.Required(v, "description", decode.String); err != nil {
		return nil, err
	}
	if it.Summary, err = decode.Optional(v, "plaintext", decode.String, ""); err != nil {
		return nil, err
	}
	if it.RequiredChampion, err = decode.Optional(v, "requiredChampion", decode.String, ""); err != nil {
		return nil, err
	}

	colloq, err := decode.Optional(v, "colloq", decode.String, "")
	if err != nil {
		return nil, err
	}
	it.SearchTerms = searchTerms(it.Name, colloq)

	image, err := v.Object("image")
	if err != nil {
		return nil, err
	}
	if it.ImageName, err = decode.Required(image, "full", decode.String); err != nil {
		return nil, err
	}

	if it.Gold, err = decodeGold(v); err != nil {
		return nil, err
	}
	return it, nil
}

// searchTerms turns the source's ";"-separated nicknames into alternate names.
// The name without spaces is added so "infinityedge" still finds "Infinity Edge".
func searchTerms(name, colloq string) []string {
	terms := []string{}
	for _, t := range utils.SplitNonEmpty(colloq, ";") {
		if t = search.SimpleLetters(t, true); t != "" {
			terms = append(terms, t)
		}
	}
	if squashed := search.SimpleLetters(name, false); squashed != "" {
		terms = append(terms, squashed)
	}
	return utils.Dedupe(terms)
}

func decodeGold(v decode.Value) (Gold, error) {
	var (
		g   Gold
		err error
	)
	gold := v.Get("gold")
	if !gold.Exists() {
		return g, nil
	}
	if g.Base, err = decode.Optional(gold, "base", decode.Int, 0); err != nil {
		return g, err
	}
	if g.Total, err = decode.Optional(gold, "total", decode.Int, 0); err != nil {
		return g, err
	}
	if g.Sell, err = decode.Optional(gold, "sell", decode.Int, 0); err != nil {
		return g, err
	}
	if g.Purchasable, err = decode.Optional(gold, "purchasable", decode.Bool, false); err != nil {
		return g, err
	}
	return g, nil
}

func decodeSimple(id int, v decode.Value, version string) (*Item, error) {
	it := &Item{}
	var err error

	if it.ID, err = decode.Optional(v, "id", decode.Int, id); err != nil {
		return nil, err
	}
	if it.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return nil, err
	}
	if it.Description, err = decode.Optional(v, "description", decode.String, ""); err != nil {
		return nil, err
	}
	if it.Summary, err = decode.Optional(v, "summary", decode.String, ""); err != nil {
		return nil, err
	}
	if it.RequiredChampion, err = decode.Optional(v, "requiredChampion", decode.String, ""); err != nil {
		return nil, err
	}
	if it.SearchTerms, err = decode.Optional(v, "searchTerms", decode.Strings, nil); err != nil {
		return nil, err
	}
	if it.ImageName, err = decode.Required(v, "imageName", decode.String); err != nil {
		return nil, err
	}
	if it.Version, err = decode.Optional(v, "version", decode.String, version); err != nil {
		return nil, err
	}
	if it.Gold, err = decodeGold(v); err != nil {
		return nil, err
	}
	return it, nil
}
