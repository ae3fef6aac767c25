// Package staticdata serves the cached static data over HTTP.
//
// The Service binds each asset kind's cache into a Catalog, which hides the
// kind's id and asset types so requests can address caches by kind name:
//
//	GET  /versions
//	GET  /assets
//	GET  /assets/:kind/search?q=&ordering=
//	GET  /assets/:kind/export
//	GET  /assets/:kind/:id
//	POST /assets/:kind/sync?force=
//
// Sync requests go through the datasync coordinator, so a cache that already
// holds the target version is answered without fetching any data.
package staticdata
