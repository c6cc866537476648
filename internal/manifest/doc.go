// Package manifest models asset manifests and normalizes the two accepted
// input shapes into a single internal representation.
//
// Callers hand the resolver either a typed entries[] manifest or a raw
// dictionary grouped by asset category (character_packs, backgrounds,
// vo_items, music_items, sfx_items). Parse flattens both into an ordered
// entry list so the resolver operates on one shape only. Category order is
// fixed (character, background, vo, music, sfx) and array order within a
// category is preserved.
package manifest
