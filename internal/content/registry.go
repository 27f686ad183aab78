package content

// SkillGroup is one category of the skills grid.
type SkillGroup struct {
	Category Category
	Skills   []SkillEntry
}

// SkillGroups groups skills by category. Known categories come first in
// Categories order; any other category follows in order of first
// appearance. Within a group the declared order is kept. Empty groups are
// omitted.
func (r *Registry) SkillGroups() []SkillGroup {
	byCat := make(map[Category][]SkillEntry)
	var extra []Category
	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}
	for _, s := range r.Skills {
		if _, seen := byCat[s.Category]; !seen && !known[s.Category] {
			extra = append(extra, s.Category)
		}
		byCat[s.Category] = append(byCat[s.Category], s)
	}

	var groups []SkillGroup
	for _, c := range append(append([]Category{}, Categories...), extra...) {
		if skills := byCat[c]; len(skills) > 0 {
			groups = append(groups, SkillGroup{Category: c, Skills: skills})
		}
	}
	return groups
}

// NavbarSocials returns the social links pinned to the navigation bar.
func (r *Registry) NavbarSocials() []SocialLink {
	var out []SocialLink
	for _, s := range r.Socials {
		if s.InNavbar {
			out = append(out, s)
		}
	}
	return out
}

// SectionCopy returns the heading pair for a section anchor, or the zero
// value when none is configured.
func (r *Registry) SectionCopy(anchor string) SectionCopy {
	if r.Copy == nil {
		return SectionCopy{}
	}
	return r.Copy[anchor]
}

// DanglingNavLinks returns nav links whose target is not among anchors.
func (r *Registry) DanglingNavLinks(anchors []string) []NavLink {
	set := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		set[a] = true
	}
	var out []NavLink
	for _, n := range r.NavLinks {
		if !set[n.Target] {
			out = append(out, n)
		}
	}
	return out
}

// ImageRefs lists every image reference in the registry with the label used
// for its placeholder.
func (r *Registry) ImageRefs() []ImageRef {
	var refs []ImageRef
	add := func(ref, label string) {
		if ref != "" {
			refs = append(refs, ImageRef{Ref: ref, Label: label})
		}
	}
	add(r.Hero.Photo, r.Profile.Name)
	add(r.About.Photo, r.Profile.Name)
	for _, e := range r.Experience {
		add(e.Logo, e.Company)
	}
	for _, p := range r.Projects {
		add(p.Image, p.Title)
	}
	return refs
}

type ImageRef struct {
	Ref   string
	Label string
}
