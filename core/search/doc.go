// Package search ranks cached assets against a free-text query.
//
// Ranking is by discrete category, not by score. Both the query and every candidate
// name are reduced to lower-case ASCII letters and spaces (SimpleLetters), then each
// asset is classified:
//
//   - Perfect: the name equals the query.
//   - FromStart: the name starts with the query.
//   - FromWithin: a word boundary suffix of the name starts with the query
//     ("cleaver" finds "The Black Cleaver").
//
// The same three tiers are evaluated against the asset's alternate names (search terms)
// and reported as AlternatePerfect, AlternateFromStart and AlternateFromWithin. For one
// name list the strongest tier wins; primary and alternate classification are independent.
//
// An Ordering decides which categories are returned and in what priority. An id is
// reported once, under the first category of the ordering that contains it. Within a
// category, results are sorted by normalized name.
//
// A query that normalizes to the empty string matches nothing.
//
// # Usage
//
//	ids := search.IDs(cache.Contents(), "black cleav", search.Recommended)
package search
