// Package assets holds cached static data, one Cache per asset kind.
//
// A Kind describes an asset kind: its remote identifier ("champion", "item",
// "runesReforged"), how to decode its payloads and how to parse its ids. Cache is
// generic over the kind's id and asset types and owns exactly one contents map and
// one version string.
//
// # Lifecycle
//
// Caches start empty at NoVersion ("N/A") or are loaded from a kvstore.Store under
// "<namespace>.<kind>". Loading never fails; an unreadable blob is logged and
// ignored. Contents are only changed by Replace, which swaps contents and version
// together and stamps every asset with the new version. Apply decodes a payload and
// calls Replace, leaving the cache untouched when decoding fails.
//
// # Registry
//
// A Registry hands out one shared cache per kind (create on first use through Open)
// and can Flush all of them. Shared caches persist themselves after every Replace;
// caches built directly with New or Load only persist on an explicit Save.
//
// # Usage
//
//	reg := assets.NewRegistry(store, "LoLAPI", logger)
//	champions, err := assets.Open(ctx, reg, champion.Kind)
//	ahri, ok := champions.Get("Ahri")
package assets
