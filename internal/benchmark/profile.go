package benchmark

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Profile maps categories to the share of total spending, in percent, that a
// typical household in the bracket spends on them.
type Profile struct {
	Bracket Bracket                    `json:"bracket" example:"50k-100k"`
	Shares  map[string]decimal.Decimal `json:"shares" swaggertype:"object,string" example:"Food:12"`
}

// Share returns the benchmark share for a category and whether the profile
// knows the category at all.
func (p Profile) Share(category string) (decimal.Decimal, bool) {
	share, ok := p.Shares[category]
	return share, ok
}

// Categories returns the categories of the profile, sorted by name.
func (p Profile) Categories() []string {
	categories := make([]string, 0, len(p.Shares))
	for category := range p.Shares {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Set is an immutable collection of profiles, one per bracket.
type Set struct {
	profiles map[Bracket]Profile
}

// NewSet creates a set from profiles. Shares are copied, so later changes to the
// input do not affect the set. Profiles for unknown brackets are ignored.
func NewSet(profiles ...Profile) Set {
	s := Set{profiles: make(map[Bracket]Profile, len(profiles))}
	for _, p := range profiles {
		if !p.Bracket.Valid() {
			continue
		}

		shares := make(map[string]decimal.Decimal, len(p.Shares))
		for category, share := range p.Shares {
			shares[category] = share
		}
		s.profiles[p.Bracket] = Profile{Bracket: p.Bracket, Shares: shares}
	}
	return s
}

// Profile returns the profile for the bracket.
func (s Set) Profile(b Bracket) (Profile, bool) {
	p, ok := s.profiles[b]
	return p, ok
}

// Profiles returns all profiles in bracket order.
func (s Set) Profiles() []Profile {
	profiles := make([]Profile, 0, len(s.profiles))
	for _, b := range Brackets() {
		if p, ok := s.profiles[b]; ok {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// Len returns the number of profiles in the set.
func (s Set) Len() int {
	return len(s.profiles)
}
