package runes

import (
	"strconv"

	"league-assets/core/assets"
	"league-assets/core/decode"
)

// Identifier names rune paths in remote URLs and persistence keys.
const Identifier = "runesReforged"

// Kind describes the rune path asset kind. Rune images are not versioned.
var Kind = assets.Kind[int, *Path]{
	Identifier: Identifier,
	Decode:     Decode,
	ParseID:    assets.IntID,
	ImagePath: func(_, image string) string {
		return "/cdn/img/" + image
	},
}

// field names differ between the two shapes; the structure does not.
// wrapped also marks the source's markup-laden descriptions.
type fields struct {
	image       string
	summary     string
	description string
	wrapped     bool
}

var (
	apiFields    = fields{image: "icon", summary: "shortDesc", description: "longDesc", wrapped: true}
	simpleFields = fields{image: "imageName", summary: "summary", description: "description"}
)

// Decode reads a rune payload. The API shape is a top-level array of paths whose
// slots wrap their runes in {"runes": [...]}; the simple shape keys paths by id
// under "data" with slots as plain arrays.
func Decode(payload []byte, shape decode.Shape, version string) (map[int]*Path, error) {
	root, err := decode.Parse(payload)
	if err != nil {
		return nil, err
	}

	out := make(map[int]*Path)
	if shape == decode.API {
		err = root.Elements(func(_ int, v decode.Value) error {
			id, err := decode.Required(v, "id", decode.Int)
			if err != nil {
				return err
			}
			p, err := decodePath(v, id, version, apiFields)
			if err != nil {
				return err
			}
			out[p.ID] = p
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	data, err := root.Object("data")
	if err != nil {
		return nil, err
	}
	err = data.Each(func(key string, v decode.Value) error {
		fallback, convErr := strconv.Atoi(key)
		if convErr != nil {
			return &decode.Error{Path: v.Path(), Err: decode.ErrType}
		}
		id, err := decode.Optional(v, "id", decode.Int, fallback)
		if err != nil {
			return err
		}
		p, err := decodePath(v, id, version, simpleFields)
		if err != nil {
			return err
		}
		out[p.ID] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodePath(v decode.Value, id int, version string, f fields) (*Path, error) {
	p := &Path{ID: id, Slots: [][]Rune{}}
	var err error

	if p.Key, err = decode.Required(v, "key", decode.String); err != nil {
		return nil, err
	}
	if p.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return nil, err
	}
	if p.ImageName, err = decode.Required(v, f.image, decode.String); err != nil {
		return nil, err
	}
	if p.Version, err = decode.Optional(v, "version", decode.String, version); err != nil {
		return nil, err
	}

	slots, err := v.Array("slots")
	if err != nil {
		return nil, err
	}
	err = slots.Elements(func(_ int, slot decode.Value) error {
		row, err := decodeSlot(slot, f)
		if err != nil {
			return err
		}
		p.Slots = append(p.Slots, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.SearchTerms, err = decode.Optional(v, "searchTerms", decode.Strings, nil); err != nil {
		return nil, err
	}
	if p.SearchTerms == nil {
		p.SearchTerms = runeNames(p.Slots)
	}
	return p, nil
}

func decodeSlot(slot decode.Value, f fields) ([]Rune, error) {
	if f.wrapped {
		var err error
		if slot, err = slot.Array("runes"); err != nil {
			return nil, err
		}
	}

	row := []Rune{}
	err := slot.Elements(func(_ int, v decode.Value) error {
		r, err := decodeRune(v, f)
		if err != nil {
			return err
		}
		row = append(row, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func decodeRune(v decode.Value, f fields) (Rune, error) {
	var (
		r   Rune
		err error
	)
	if r.ID, err = decode.Required(v, "id", decode.Int); err != nil {
		return r, err
	}
	if r.Key, err = decode.Required(v, "key", decode.String); err != nil {
		return r, err
	}
	if r.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return r, err
	}
	if r.Summary, err = decode.Required(v, f.summary, decode.String); err != nil {
		return r, err
	}
	if r.Description, err = decode.Required(v, f.description, decode.String); err != nil {
		return r, err
	}
	if r.ImageName, err = decode.Required(v, f.image, decode.String); err != nil {
		return r, err
	}
	if f.wrapped {
		r.Summary = assets.PrettyDescription(r.Summary)
		r.Description = assets.PrettyDescription(r.Description)
	}
	return r, nil
}
