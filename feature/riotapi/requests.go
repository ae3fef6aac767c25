package riotapi

import (
	"net/url"
	"time"
)

// Summoner is a player account on one region.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	Level         int    `json:"summonerLevel"`
	ProfileIconID int    `json:"profileIconId"`
	// RevisionDate is in epoch milliseconds.
	RevisionDate int64 `json:"revisionDate"`
}

// LastChange is when the summoner was last modified.
func (s Summoner) LastChange() time.Time {
	return time.UnixMilli(s.RevisionDate).UTC()
}

// Rotation lists the champions currently free to play.
type Rotation struct {
	FreeChampionIDs              []int `json:"freeChampionIds"`
	FreeChampionIDsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
}

// Mastery is a player's progress on one champion.
type Mastery struct {
	ChampionID     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}

func SummonerByName(name string) Request[Summoner] {
	return Request[Summoner]{Service: "summoner", Path: "v4/summoners/by-name/" + url.PathEscape(name)}
}

func SummonerByPUUID(puuid string) Request[Summoner] {
	return Request[Summoner]{Service: "summoner", Path: "v4/summoners/by-puuid/" + url.PathEscape(puuid)}
}

func SummonerByAccount(accountID string) Request[Summoner] {
	return Request[Summoner]{Service: "summoner", Path: "v4/summoners/by-account/" + url.PathEscape(accountID)}
}

// ChampionRotation asks for the current free champion rotation.
func ChampionRotation() Request[Rotation] {
	return Request[Rotation]{Service: "platform", Path: "v3/champion-rotations"}
}

// ChampionMasteries lists a player's masteries, highest first.
func ChampionMasteries(puuid string) Request[[]Mastery] {
	return Request[[]Mastery]{Service: "champion-mastery", Path: "v4/champion-masteries/by-puuid/" + url.PathEscape(puuid)}
}
