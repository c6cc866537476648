// Package naming provides canonical identifier normalization for asset
// lookups.
//
// Manifest identifiers and on-disk file stems are normalized through the
// same rules so that a manifest entry "Hero Sprite" matches a file named
// hero_sprite.png. Keeping the rules in one place guarantees that search
// keys and filename comparisons can never drift apart.
package naming
