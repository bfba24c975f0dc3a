// Package records loads and saves one domain's record collection, for
// session autosave and reload-on-launch.
//
// Saving overwrites the stored value (last write wins). Clearing a domain
// writes its empty encoding; there is no other deletion primitive.
package records
