// Package datasync keeps asset caches in step with the versioned remote source.
//
// # Version negotiation
//
// Versions fetches "<base>/api/versions.json", a JSON array of version strings with
// the newest first. Target resolves the version to sync to: a pinned version
// (SOURCE_VERSION or SetDesired) wins, otherwise the newest known one. The list is
// fetched on first need; an empty list fails with ErrEmptyVersionList.
//
// # Updating a cache
//
// Coordinator.Update takes any Target (assets.Cache implements it):
//
//  1. resolve the target version;
//  2. when not forced and the cache already holds that version, return at once
//     without touching the network;
//  3. otherwise fetch "<base>/cdn/<version>/data/<locale>/<kind>.json", decode it in
//     the configured shape and replace the cache contents.
//
// Failures come back as *SyncError with Reason ErrTransport, ErrDecode or
// ErrEmptyVersionList and never modify the cache. There is no retry at this layer;
// rate limiting is handled by core/transport.
//
// Concurrent updates of the same cache are collapsed with singleflight: one fetch,
// one outcome shared by every waiting caller.
package datasync
