// Package riotapi is a small client for the dynamic game API.
//
// Each endpoint is a Request value naming the response type it decodes into,
// sent with Send:
//
//	s, err := riotapi.Send(ctx, client, riotapi.SummonerByName("Faker"))
//
// Rate-limited responses are retried by the transport; any other failure the API
// reports as a status object comes back as *APIError.
package riotapi
