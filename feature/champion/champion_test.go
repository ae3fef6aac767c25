package champion_test

import (
	"context"
	"errors"
	"testing"

	"league-assets/core/assets"
	"league-assets/core/decode"
	"league-assets/core/search"
	"league-assets/feature/champion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiPayload = `{
  "type": "champion",
  "format": "standAloneComplex",
  "version": "7.4.1",
  "data": {
    "Ahri": {
      "version": "7.4.1",
      "id": "Ahri",
      "key": "103",
      "name": "Ahri",
      "title": "the Nine-Tailed Fox",
      "blurb": "Unlike other foxes that roamed the woods of southern Ionia...",
      "tags": ["Mage", "Assassin"],
      "image": {"full": "Ahri.png", "sprite": "champion0.png"},
      "stats": {
        "hp": 514.4, "hpperlevel": 80,
        "mp": 334, "mpperlevel": 50,
        "movespeed": 330, "armor": 20.88, "armorperlevel": 3.5,
        "spellblock": 30, "spellblockperlevel": 0,
        "attackrange": 550,
        "hpregen": 6.508, "hpregenperlevel": 0.6,
        "mpregen": 6, "mpregenperlevel": 0.8,
        "attackdamage": 53.04, "attackdamageperlevel": 3,
        "attackspeed": 0.668, "attackspeedperlevel": 2
      }
    },
    "Annie": {
      "version": "7.4.1",
      "id": "Annie",
      "key": "1",
      "name": "Annie",
      "title": "the Dark Child",
      "blurb": "There have always been those within Noxus...",
      "tags": ["Mage"],
      "image": {"full": "Annie.png"},
      "stats": {
        "hp": 511.68, "hpperlevel": 76,
        "mp": 334, "mpperlevel": 50,
        "movespeed": 335, "armor": 19.22, "armorperlevel": 4,
        "spellblock": 30, "spellblockperlevel": 0,
        "attackrange": 625,
        "hpregen": 5.424, "hpregenperlevel": 0.55,
        "mpregen": 8, "mpregenperlevel": 0.8,
        "attackdamage": 50.41, "attackdamageperlevel": 2.625,
        "attackspeed": 0.579, "attackspeedperlevel": 1.36
      }
    }
  }
}`

func TestDecodeAPI(t *testing.T) {
	contents, err := champion.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)
	require.Len(t, contents, 2)

	ahri := contents["Ahri"]
	require.NotNil(t, ahri)
	assert.Equal(t, 103, ahri.Key)
	assert.Equal(t, "Ahri", ahri.Name)
	assert.Equal(t, "the Nine-Tailed Fox", ahri.Title)
	assert.Equal(t, "Ahri.png", ahri.ImageName)
	assert.Equal(t, "7.4.1", ahri.Version)
	assert.Equal(t, []string{"mage", "assassin"}, ahri.SearchTerms)
	assert.Contains(t, ahri.Description, "foxes")

	assert.Equal(t, 514.4, ahri.Stats.Health.Max.Base)
	assert.Equal(t, 80.0, ahri.Stats.Health.Max.PerLevel)
	assert.Equal(t, 6.508, ahri.Stats.Health.Regen.Base)
	assert.Equal(t, 0.8, ahri.Stats.Mana.Regen.PerLevel)
	assert.Equal(t, 30.0, ahri.Stats.MagicResist.Base)
	assert.Equal(t, 550.0, ahri.Stats.AttackRange)
	assert.Equal(t, 330.0, ahri.Stats.MovementSpeed)
	assert.Equal(t, 0.668, ahri.Stats.AttackSpeed.Base)
	assert.Equal(t, 2.0, ahri.Stats.AttackSpeed.PercentagePerLevel)
}

func TestDecodeAPIMissingField(t *testing.T) {
	payload := `{"data": {"Ahri": {"id": "Ahri", "key": "103", "name": "Ahri"}}}`

	_, err := champion.Decode([]byte(payload), decode.API, "7.4.1")
	require.Error(t, err)

	var de *decode.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "data.Ahri.title", de.Path)
	assert.ErrorIs(t, err, decode.ErrMissing)
}

func TestDecodeAPIBadKey(t *testing.T) {
	payload := `{"data": {"Ahri": {"id": "Ahri", "key": "one-oh-three"}}}`

	_, err := champion.Decode([]byte(payload), decode.API, "7.4.1")
	assert.ErrorIs(t, err, decode.ErrType)
}

func TestDecodeSimple(t *testing.T) {
	payload := `{"data": {"Ahri": {"key": 103, "name": "Ahri", "imageName": "Ahri.png", "searchTerms": ["fox"]}}}`

	contents, err := champion.Decode([]byte(payload), decode.Simple, "7.5.2")
	require.NoError(t, err)

	ahri := contents["Ahri"]
	require.NotNil(t, ahri)
	assert.Equal(t, "Ahri", ahri.ID)
	assert.Equal(t, 103, ahri.Key)
	assert.Equal(t, "7.5.2", ahri.Version)
	assert.Equal(t, []string{"fox"}, ahri.SearchTerms)
	assert.Zero(t, ahri.Stats)
}

func TestExportRoundTrip(t *testing.T) {
	contents, err := champion.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)

	cache := assets.New(champion.Kind)
	cache.Replace(context.Background(), contents, "7.4.1")

	exported, err := cache.Export()
	require.NoError(t, err)

	again, err := champion.Decode(exported, decode.Simple, "")
	require.NoError(t, err)
	assert.Equal(t, contents, again)
}

func TestStatScaling(t *testing.T) {
	armor := champion.ScalingStat{Base: 20, PerLevel: 3.5}
	assert.InDelta(t, 20, armor.Value(1), 1e-9)
	assert.InDelta(t, 20+3.5*17, armor.Value(18), 1e-9)
	assert.InDelta(t, 20+3.5*(7*3+267)/400.0, armor.Value(2), 1e-9)

	as := champion.AttackSpeed{Base: 0.668, PercentagePerLevel: 2}
	assert.InDelta(t, 0.668, as.Value(1), 1e-9)
	assert.InDelta(t, 0.668*(1+0.01*2*17), as.Value(18), 1e-9)
}

func TestByKey(t *testing.T) {
	contents, err := champion.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)

	byKey := champion.ByKey(contents)
	require.Contains(t, byKey, 1)
	assert.Equal(t, "Annie", byKey[1].Name)
	assert.Equal(t, "Ahri", byKey[103].ID)
}

func TestSearchByTag(t *testing.T) {
	contents, err := champion.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)

	cache := assets.New(champion.Kind)
	cache.Replace(context.Background(), contents, "7.4.1")

	matches := cache.Search("ahr", search.Recommended)
	require.Len(t, matches, 1)
	assert.Equal(t, "Ahri", matches[0].ID)
	assert.Equal(t, search.FromStart, matches[0].Quality)

	ids := search.IDs(cache.Contents(), "mage", search.Recommended)
	assert.ElementsMatch(t, []string{"Ahri", "Annie"}, ids)
}

const missFortunePayload = `{
  "data": {
    "MissFortune": {
      "id": "MissFortune",
      "key": "21",
      "name": "Miss Fortune",
      "title": "the Bounty Hunter",
      "blurb": "A Bilgewater captain famed for her looks...",
      "tags": ["Marksman"],
      "image": {"full": "MissFortune.png"},
      "stats": {
        "hp": 530, "hpperlevel": 85,
        "mp": 325.84, "mpperlevel": 35,
        "movespeed": 325, "armor": 24.04, "armorperlevel": 3,
        "spellblock": 30, "spellblockperlevel": 0,
        "attackrange": 550,
        "hpregen": 3.75, "hpregenperlevel": 0.65,
        "mpregen": 8.04, "mpregenperlevel": 0.65,
        "attackdamage": 50, "attackdamageperlevel": 2.7,
        "attackspeed": 0.656, "attackspeedperlevel": 3
      }
    }
  }
}`

func TestSearchBySquashedName(t *testing.T) {
	contents, err := champion.Decode([]byte(missFortunePayload), decode.API, "7.4.1")
	require.NoError(t, err)

	mf := contents["MissFortune"]
	require.NotNil(t, mf)
	assert.Equal(t, []string{"marksman", "fortune", "missfortune"}, mf.SearchTerms)

	t.Run("Squashed", func(t *testing.T) {
		matches := search.Run(contents, "missfortune", search.Recommended)
		require.Len(t, matches, 1)
		assert.Equal(t, "MissFortune", matches[0].ID)
		assert.Equal(t, search.AlternatePerfect, matches[0].Quality)
	})

	t.Run("Spaced", func(t *testing.T) {
		matches := search.Run(contents, "miss fortune", search.Recommended)
		require.Len(t, matches, 1)
		assert.Equal(t, search.Perfect, matches[0].Quality)
	})

	t.Run("SingleWordNameAddsNothing", func(t *testing.T) {
		all, err := champion.Decode([]byte(apiPayload), decode.API, "7.4.1")
		require.NoError(t, err)
		assert.Equal(t, []string{"mage"}, all["Annie"].SearchTerms)
	})
}

func TestImageURL(t *testing.T) {
	url := champion.Kind.ImageURL("https://ddragon.leagueoflegends.com/", "7.4.1", "Ahri.png")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/7.4.1/img/champion/Ahri.png", url)
}
