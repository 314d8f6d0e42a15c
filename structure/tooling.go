package structure

import "strings"

// ItemSchemes returns every item scheme held by d, in collection order.
func ItemSchemes(d *StructureData) []ItemScheme {
	var out []ItemScheme
	for _, a := range d.Artefacts() {
		if s, ok := a.(ItemScheme); ok {
			out = append(out, s)
		}
	}
	return out
}

// CountItems returns the number of items of s; an absent collection counts
// as zero.
func CountItems(s ItemScheme) int { return len(s.Items()) }

// FindItem returns the item of s with the given id.
func FindItem(s ItemScheme, id string) (ItemView, bool) {
	for _, it := range s.Items() {
		if it.ItemBase().ID == id {
			return it, true
		}
	}
	return nil, false
}

// ItemIDs returns the item identifiers of s in wire order.
func ItemIDs(s ItemScheme) []string {
	items := s.Items()
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ItemBase().ID
	}
	return out
}

// SearchItems returns the items of s whose id or name in lang contains
// substr, compared case-insensitively.
func SearchItems(s ItemScheme, substr, lang string) []ItemView {
	needle := strings.ToLower(substr)
	var out []ItemView
	for _, it := range s.Items() {
		base := it.ItemBase()
		if strings.Contains(strings.ToLower(base.ID), needle) ||
			strings.Contains(strings.ToLower(base.DisplayName(lang)), needle) {
			out = append(out, it)
		}
	}
	return out
}
