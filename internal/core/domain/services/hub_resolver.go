package services

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

// DefaultHub is the fulfillment center used when no regional keyword matches
// the delivery address.
const DefaultHub = "Central Fulfillment Center"

// HubResolver is a domain service that maps a delivery address onto the
// regional hub a dispatched package is routed through.
//
// Resolution is keyword based: the address city is scanned for a compass
// keyword first, then the street. The first match wins; addresses without a
// match fall back to the central hub.
type HubResolver struct {
	hubs []hubRule
}

type hubRule struct {
	keyword string
	hub     string
}

// NewHubResolver creates a HubResolver with the standard regional hub table.
func NewHubResolver() HubResolver {
	return HubResolver{
		hubs: []hubRule{
			{keyword: "north", hub: "Northside Regional Hub"},
			{keyword: "south", hub: "Southside Regional Hub"},
			{keyword: "east", hub: "Eastgate Regional Hub"},
			{keyword: "west", hub: "Westend Regional Hub"},
		},
	}
}

// Resolve returns the regional hub for the given delivery address.
func (r HubResolver) Resolve(address kernel.Address) string {
	if hub, ok := r.match(address.City()); ok {
		return hub
	}
	if hub, ok := r.match(address.Street()); ok {
		return hub
	}
	return DefaultHub
}

func (r HubResolver) match(fragment string) (string, bool) {
	fragment = strings.ToLower(fragment)
	for _, rule := range r.hubs {
		if strings.Contains(fragment, rule.keyword) {
			return rule.hub, true
		}
	}
	return "", false
}
