package riotapi

import (
	"fmt"
	"strings"
)

// Region is a platform routing value.
type Region string

const (
	BR   Region = "br1"
	EUNE Region = "eun1"
	EUW  Region = "euw1"
	JP   Region = "jp1"
	KR   Region = "kr"
	LAN  Region = "la1"
	LAS  Region = "la2"
	NA   Region = "na1"
	OCE  Region = "oc1"
	TR   Region = "tr1"
	RU   Region = "ru"
	PBE  Region = "pbe1"
)

// Regions lists every known region.
var Regions = []Region{BR, EUNE, EUW, JP, KR, LAN, LAS, NA, OCE, TR, RU, PBE}

// ParseRegion accepts a region's routing value, case-insensitively.
func ParseRegion(s string) (Region, error) {
	for _, r := range Regions {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Host is the API root serving the region.
func (r Region) Host() string {
	return "https://" + string(r) + ".api.riotgames.com"
}
