package model

import "hash/fnv"

// Deals synced from upstream sources often arrive without rating or student
// counts. The presentation layer fills those gaps with plausible values
// derived from a hash of the slug/id so a listing never renders empty stats.
// Derived values are cosmetic only and are never persisted.

// DerivedRating returns a deterministic rating in [4.2, 4.9] for the seed.
func DerivedRating(seed string) float64 {
	return 4.2 + float64(hashSeed(seed)%8)/10.0
}

// DerivedStudents returns a deterministic student count for the seed.
func DerivedStudents(seed string) int {
	return 1200 + int(hashSeed(seed)%87000)
}

// DisplaySeed picks the stable seed for derived stats: slug when set,
// otherwise id.
func (d Deal) DisplaySeed() string {
	if d.Slug != "" {
		return d.Slug
	}
	return d.ID
}

func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}
