package itinerary

import (
	"strings"
	"time"
)

// Category is the inferred kind of a stop.
type Category int

const (
	CategoryWaypoint Category = iota
	CategoryRestaurant
	CategoryGas
	CategoryRestroom
	CategoryScenic
	CategoryLodging
)

func (c Category) String() string {
	switch c {
	case CategoryRestaurant:
		return "restaurant"
	case CategoryGas:
		return "gas"
	case CategoryRestroom:
		return "restroom"
	case CategoryScenic:
		return "scenic"
	case CategoryLodging:
		return "lodging"
	default:
		return "waypoint"
	}
}

// Classification is a stop category with its default layover.
type Classification struct {
	Category Category
	Layover  time.Duration
}

type rule struct {
	category Category
	layover  time.Duration
	keywords []string
}

// Symbol rules run first. Name keywords are the fallback when the symbol
// field is absent or unrecognized. Both lists are ordered so behavior is
// auditable rule by rule.
var symbolRules = []rule{
	{CategoryRestaurant, 60 * time.Minute, []string{"restaurant", "fast food", "pizza", "food"}},
	{CategoryGas, 15 * time.Minute, []string{"gas station", "gas", "fuel"}},
	{CategoryRestroom, 15 * time.Minute, []string{"restroom", "toilet", "drinking water"}},
	{CategoryScenic, 5 * time.Minute, []string{"scenic area", "scenic", "photo", "museum"}},
	{CategoryLodging, 0, []string{"lodging", "hotel", "motel", "campground"}},
}

var nameRules = []rule{
	{CategoryRestaurant, 60 * time.Minute, []string{"breakfast", "lunch", "dinner", "restaurant", "(l)"}},
	{CategoryGas, 15 * time.Minute, []string{"gas", "fuel", "(g)"}},
	{CategoryRestroom, 15 * time.Minute, []string{"restroom", "break", "(r)"}},
	{CategoryScenic, 5 * time.Minute, []string{"scenic", "photo"}},
	{CategoryLodging, 0, []string{"hotel", "motel", "camp"}},
}

func matchRules(rules []rule, s string) (Classification, bool) {
	s = strings.ToLower(s)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(s, kw) {
				return Classification{Category: r.category, Layover: r.layover}, true
			}
		}
	}
	return Classification{}, false
}

// Classify infers a stop category and default layover from a point's
// symbol/type field and display name. The symbol takes priority; the name
// is only consulted when the symbol is absent or matches nothing.
func Classify(symbol, name string) Classification {
	if symbol != "" {
		if c, ok := matchRules(symbolRules, symbol); ok {
			return c
		}
	}
	if c, ok := matchRules(nameRules, name); ok {
		return c
	}
	return Classification{Category: CategoryWaypoint}
}
