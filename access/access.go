// Package access derives what a user may do from their role and the
// sidebar visibility flags.
package access

import (
	"sort"

	"funfans-backend/models"
)

type Capability string

const (
	Store              Capability = "store"
	OutfitGenerator    Capability = "outfitGenerator"
	ThemeGenerator     Capability = "themeGenerator"
	ManageSubscription Capability = "manageSubscription"
	EarnCredits        Capability = "earnCredits"
	CreateContent      Capability = "createContent"
	MyCreations        Capability = "myCreations"
	CreatorPayouts     Capability = "creatorPayouts"
	AdminPanel         Capability = "adminPanel"
)

// Set is an unordered set of capabilities.
type Set map[Capability]bool

func (s Set) Has(c Capability) bool {
	return s[c]
}

// List returns the capabilities sorted by name.
func (s Set) List() []Capability {
	out := make([]Capability, 0, len(s))
	for c, ok := range s {
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveVisibility computes the capabilities of role under flags.
// Creators and developers always keep the creator tools; plain users only
// get them when the matching flag is on. Developers also get the admin panel
// and bypass the consumer flags.
func ResolveVisibility(role models.Role, flags models.SidebarVisibility) Set {
	set := Set{}
	add := func(c Capability, on bool) {
		if on {
			set[c] = true
		}
	}

	admin := role == models.RoleDeveloper
	creator := role == models.RoleCreator || admin

	add(Store, flags.Store || admin)
	add(OutfitGenerator, flags.OutfitGenerator || admin)
	add(ThemeGenerator, flags.ThemeGenerator || admin)
	add(ManageSubscription, flags.ManageSubscription || admin)
	add(EarnCredits, flags.EarnCredits || admin)
	add(CreateContent, flags.CreateContent || creator)
	add(MyCreations, flags.MyCreations || creator)
	add(CreatorPayouts, flags.CreatorPayouts || creator)
	add(AdminPanel, admin)
	return set
}
