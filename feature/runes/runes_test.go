package runes_test

import (
	"context"
	"testing"

	"league-assets/core/assets"
	"league-assets/core/decode"
	"league-assets/core/search"
	"league-assets/feature/runes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiPayload = `[
  {
    "id": 8100,
    "key": "Domination",
    "icon": "perk-images/Styles/7200_Domination.png",
    "name": "Domination",
    "slots": [
      {"runes": [
        {"id": 8112, "key": "Electrocute", "icon": "perk-images/Styles/Domination/Electrocute/Electrocute.png", "name": "Electrocute", "shortDesc": "Hitting a champion with 3 separate attacks deals bonus damage.", "longDesc": "Hitting a champion with 3 <b>separate</b> attacks or abilities within 3s deals bonus <lol-uikit-tooltipped-keyword key='LinkTooltip_Description_AdaptiveDmg'>adaptive damage</lol-uikit-tooltipped-keyword>."},
        {"id": 8124, "key": "Predator", "icon": "perk-images/Styles/Domination/Predator/Predator.png", "name": "Predator", "shortDesc": "Enchants your boots.", "longDesc": "Enchants your boots with the active effect 'Predator'."}
      ]},
      {"runes": [
        {"id": 8126, "key": "CheapShot", "icon": "perk-images/Styles/Domination/CheapShot/CheapShot.png", "name": "Cheap Shot", "shortDesc": "Deal bonus true damage to impaired enemies.", "longDesc": "Damaging champions with impaired movement deals true damage."}
      ]}
    ]
  },
  {
    "id": 8000,
    "key": "Precision",
    "icon": "perk-images/Styles/7201_Precision.png",
    "name": "Precision",
    "slots": [
      {"runes": [
        {"id": 8005, "key": "PressTheAttack", "icon": "perk-images/Styles/Precision/PressTheAttack/PressTheAttack.png", "name": "Press the Attack", "shortDesc": "Hitting an enemy champion 3 times exposes them.", "longDesc": "Hitting an enemy champion with 3 consecutive basic attacks exposes them."}
      ]}
    ]
  }
]`

func TestDecodeAPI(t *testing.T) {
	contents, err := runes.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)
	require.Len(t, contents, 2)

	dom := contents[8100]
	require.NotNil(t, dom)
	assert.Equal(t, "Domination", dom.Key)
	assert.Equal(t, "perk-images/Styles/7200_Domination.png", dom.ImageName)
	assert.Equal(t, "7.4.1", dom.Version)
	require.Len(t, dom.Slots, 2)
	assert.Len(t, dom.Slots[0], 2)
	assert.Equal(t, []string{"Electrocute", "Predator", "Cheap Shot"}, dom.SearchTerms)

	r, ok := dom.Find(8126)
	require.True(t, ok)
	assert.Equal(t, "Cheap Shot", r.Name)
	assert.Equal(t, "Deal bonus true damage to impaired enemies.", r.Summary)
	assert.Contains(t, r.Description, "impaired movement")

	e, ok := dom.Find(8112)
	require.True(t, ok)
	assert.Equal(t, "Hitting a champion with 3 separate attacks or abilities within 3s deals bonus adaptive damage.", e.Description)

	_, ok = dom.Find(8005)
	assert.False(t, ok)
}

func TestDecodeAPIRequiresArrayRoot(t *testing.T) {
	_, err := runes.Decode([]byte(`{"data": {}}`), decode.API, "7.4.1")
	assert.ErrorIs(t, err, decode.ErrType)
}

func TestDecodeAPIMissingRuneField(t *testing.T) {
	payload := `[{"id": 8100, "key": "Domination", "icon": "d.png", "name": "Domination",
	  "slots": [{"runes": [{"id": 8112, "key": "Electrocute", "icon": "e.png", "name": "Electrocute", "shortDesc": "x"}]}]}]`

	_, err := runes.Decode([]byte(payload), decode.API, "7.4.1")
	assert.ErrorIs(t, err, decode.ErrMissing)
	assert.ErrorContains(t, err, "slots[0].runes[0].longDesc")
}

func TestExportRoundTrip(t *testing.T) {
	contents, err := runes.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)

	cache := assets.New(runes.Kind)
	cache.Replace(context.Background(), contents, "7.4.1")

	exported, err := cache.Export()
	require.NoError(t, err)

	again, err := runes.Decode(exported, decode.Simple, "")
	require.NoError(t, err)
	assert.Equal(t, contents, again)
}

func TestSearchFindsPathByRuneName(t *testing.T) {
	contents, err := runes.Decode([]byte(apiPayload), decode.API, "7.4.1")
	require.NoError(t, err)

	matches := search.Run(contents, "electrocute", search.Recommended)
	require.Len(t, matches, 1)
	assert.Equal(t, 8100, matches[0].ID)
	assert.Equal(t, search.AlternatePerfect, matches[0].Quality)

	assert.Equal(t, []int{8000}, search.IDs(contents, "prec", search.Recommended))
}

func TestImageURLIsUnversioned(t *testing.T) {
	url := runes.Kind.ImageURL("https://ddragon.leagueoflegends.com", "7.4.1", "perk-images/Styles/7200_Domination.png")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/img/perk-images/Styles/7200_Domination.png", url)
}
