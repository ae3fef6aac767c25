package champion

import (
	"strings"

	"league-assets/core/assets"
	"league-assets/core/decode"
	"league-assets/core/search"
	"league-assets/core/utils"
)

// Identifier names champions in remote URLs and persistence keys.
const Identifier = "champion"

// Kind describes the champion asset kind.
var Kind = assets.Kind[string, *Champion]{
	Identifier: Identifier,
	Decode:     Decode,
	ParseID:    assets.StringID,
}

// Decode reads a champion payload. In the API shape champions live under "data"
// with the numeric key as a string, "blurb" as the description, "tags" as search
// terms, the image under "image.full" and stats as flat raw keys.
func Decode(payload []byte, shape decode.Shape, version string) (map[string]*Champion, error) {
	root, err := decode.Parse(payload)
	if err != nil {
		return nil, err
	}
	data, err := root.Object("data")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Champion)
	err = data.Each(func(id string, v decode.Value) error {
		var (
			c   *Champion
			err error
		)
		if shape == decode.API {
			c, err = decodeAPI(v, version)
		} else {
			c, err = decodeSimple(id, v, version)
		}
		if err != nil {
			return err
		}
		out[c.ID] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeAPI(v decode.Value, version string) (*Champion, error) {
	c := &Champion{}
	var err error

	if c.ID, err = decode.Required(v, "id", decode.String); err != nil {
		return nil, err
	}
	if c.Key, err = decode.Required(v, "key", decode.IntString); err != nil {
		return nil, err
	}
	if c.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return nil, err
	}
	if c.Title, err = decode.Required(v, "title", decode.String); err != nil {
		return nil, err
	}
	if c.Version, err = decode.Optional(v, "version", decode.String, version); err != nil {
		return nil, err
	}
	if c.Description, err = decode.Required(v, "blurb", decode.String); err != nil {
		return nil, err
	}
	c.Description = assets.PrettyDescription(c.Description)
	tags, err := decode.Required(v, "tags", decode.Strings)
	if err != nil {
		return nil, err
	}
	c.SearchTerms = searchTerms(c.Name, tags)

	image, err := v.Object("image")
	if err != nil {
		return nil, err
	}
	if c.ImageName, err = decode.Required(image, "full", decode.String); err != nil {
		return nil, err
	}

	raw, err := v.Object("stats")
	if err != nil {
		return nil, err
	}
	if c.Stats, err = decodeRawStats(raw); err != nil {
		return nil, err
	}
	return c, nil
}

// searchTerms reduces the tags to simple letters and, for names of several words,
// adds every trailing run of words joined without spaces: "Miss Fortune" gains
// "fortune" and "missfortune".
func searchTerms(name string, tags []string) []string {
	terms := []string{}
	for _, t := range tags {
		if t = search.SimpleLetters(t, true); t != "" {
			terms = append(terms, t)
		}
	}
	words := strings.Fields(search.SimpleLetters(name, true))
	if len(words) > 1 {
		for i := len(words) - 1; i >= 0; i-- {
			terms = append(terms, strings.Join(words[i:], ""))
		}
	}
	return utils.Dedupe(terms)
}

func decodeRawStats(v decode.Value) (Stats, error) {
	var (
		s   Stats
		err error
	)
	scaling := func(name string) (ScalingStat, error) {
		base, err := decode.Required(v, name, decode.Float)
		if err != nil {
			return ScalingStat{}, err
		}
		per, err := decode.Required(v, name+"perlevel", decode.Float)
		if err != nil {
			return ScalingStat{}, err
		}
		return ScalingStat{Base: base, PerLevel: per}, nil
	}
	regenerating := func(name string) (RegeneratingStat, error) {
		top, err := scaling(name)
		if err != nil {
			return RegeneratingStat{}, err
		}
		regen, err := scaling(name + "regen")
		if err != nil {
			return RegeneratingStat{}, err
		}
		return RegeneratingStat{Max: top, Regen: regen}, nil
	}

	if s.MovementSpeed, err = decode.Required(v, "movespeed", decode.Float); err != nil {
		return s, err
	}
	if s.AttackRange, err = decode.Required(v, "attackrange", decode.Float); err != nil {
		return s, err
	}
	if s.Health, err = regenerating("hp"); err != nil {
		return s, err
	}
	if s.Mana, err = regenerating("mp"); err != nil {
		return s, err
	}
	if s.Armor, err = scaling("armor"); err != nil {
		return s, err
	}
	if s.MagicResist, err = scaling("spellblock"); err != nil {
		return s, err
	}
	if s.AttackDamage, err = scaling("attackdamage"); err != nil {
		return s, err
	}
	if s.AttackSpeed.Base, err = decode.Required(v, "attackspeed", decode.Float); err != nil {
		return s, err
	}
	if s.AttackSpeed.PercentagePerLevel, err = decode.Required(v, "attackspeedperlevel", decode.Float); err != nil {
		return s, err
	}
	return s, nil
}

func decodeSimple(id string, v decode.Value, version string) (*Champion, error) {
	c := &Champion{}
	var err error

	if c.ID, err = decode.Optional(v, "id", decode.String, id); err != nil {
		return nil, err
	}
	if c.Key, err = decode.Required(v, "key", decode.Int); err != nil {
		return nil, err
	}
	if c.Name, err = decode.Required(v, "name", decode.String); err != nil {
		return nil, err
	}
	if c.Title, err = decode.Optional(v, "title", decode.String, ""); err != nil {
		return nil, err
	}
	if c.Description, err = decode.Optional(v, "description", decode.String, ""); err != nil {
		return nil, err
	}
	if c.SearchTerms, err = decode.Optional(v, "searchTerms", decode.Strings, nil); err != nil {
		return nil, err
	}
	if c.ImageName, err = decode.Required(v, "imageName", decode.String); err != nil {
		return nil, err
	}
	if c.Version, err = decode.Optional(v, "version", decode.String, version); err != nil {
		return nil, err
	}

	if stats := v.Get("stats"); stats.Exists() {
		if c.Stats, err = decodeStats(stats); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// decodeStats reads stats in the cache's own layout.
func decodeStats(v decode.Value) (Stats, error) {
	var (
		s   Stats
		err error
	)
	scaling := func(parent decode.Value, name string) (ScalingStat, error) {
		obj, err := parent.Object(name)
		if err != nil {
			return ScalingStat{}, err
		}
		base, err := decode.Required(obj, "base", decode.Float)
		if err != nil {
			return ScalingStat{}, err
		}
		per, err := decode.Required(obj, "perLevel", decode.Float)
		if err != nil {
			return ScalingStat{}, err
		}
		return ScalingStat{Base: base, PerLevel: per}, nil
	}
	regenerating := func(name string) (RegeneratingStat, error) {
		obj, err := v.Object(name)
		if err != nil {
			return RegeneratingStat{}, err
		}
		top, err := scaling(obj, "max")
		if err != nil {
			return RegeneratingStat{}, err
		}
		regen, err := scaling(obj, "regen")
		if err != nil {
			return RegeneratingStat{}, err
		}
		return RegeneratingStat{Max: top, Regen: regen}, nil
	}

	if s.MovementSpeed, err = decode.Required(v, "movementSpeed", decode.Float); err != nil {
		return s, err
	}
	if s.AttackRange, err = decode.Required(v, "attackRange", decode.Float); err != nil {
		return s, err
	}
	if s.Health, err = regenerating("health"); err != nil {
		return s, err
	}
	if s.Mana, err = regenerating("mana"); err != nil {
		return s, err
	}
	if s.Armor, err = scaling(v, "armor"); err != nil {
		return s, err
	}
	if s.MagicResist, err = scaling(v, "magicResist"); err != nil {
		return s, err
	}
	if s.AttackDamage, err = scaling(v, "attackDamage"); err != nil {
		return s, err
	}

	as, err := v.Object("attackSpeed")
	if err != nil {
		return s, err
	}
	if s.AttackSpeed.Base, err = decode.Required(as, "base", decode.Float); err != nil {
		return s, err
	}
	if s.AttackSpeed.PercentagePerLevel, err = decode.Required(as, "percentagePerLevel", decode.Float); err != nil {
		return s, err
	}
	return s, nil
}
