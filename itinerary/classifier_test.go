package itinerary

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		display  string
		category Category
		layover  time.Duration
	}{
		{"restaurant by name", "", "Joe's Restaurant", CategoryRestaurant, 60 * time.Minute},
		{"lunch keyword", "", "Lunch in Ouray", CategoryRestaurant, 60 * time.Minute},
		{"breakfast keyword", "", "Breakfast stop", CategoryRestaurant, 60 * time.Minute},
		{"literal L marker", "", "Silverton (L)", CategoryRestaurant, 60 * time.Minute},
		{"gas by symbol", "Gas Station", "Shell", CategoryGas, 15 * time.Minute},
		{"fuel keyword", "", "Fuel up here", CategoryGas, 15 * time.Minute},
		{"literal G marker", "", "Durango (G)", CategoryGas, 15 * time.Minute},
		{"restroom by symbol", "Restroom", "Rest area", CategoryRestroom, 15 * time.Minute},
		{"break keyword", "", "Coffee break", CategoryRestroom, 15 * time.Minute},
		{"literal R marker", "", "Vista point (R)", CategoryRestroom, 15 * time.Minute},
		{"scenic by symbol", "Scenic Area", "Overlook", CategoryScenic, 5 * time.Minute},
		{"photo keyword", "", "Photo op", CategoryScenic, 5 * time.Minute},
		{"lodging by symbol", "Lodging", "Super 8", CategoryLodging, 0},
		{"hotel keyword", "", "Hotel Colorado", CategoryLodging, 0},
		{"plain waypoint", "", "Ridgway", CategoryWaypoint, 0},
		{"symbol beats name", "Gas Station", "Lunch at the pump", CategoryGas, 15 * time.Minute},
		{"unrecognized symbol falls back to name", "Circle, Green", "Dinner in town", CategoryRestaurant, 60 * time.Minute},
		{"case insensitive", "", "LUNCH RUN", CategoryRestaurant, 60 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.symbol, tt.display)
			if got.Category != tt.category {
				t.Errorf("category: expected %v, got %v", tt.category, got.Category)
			}
			if got.Layover != tt.layover {
				t.Errorf("layover: expected %v, got %v", tt.layover, got.Layover)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryWaypoint, "waypoint"},
		{CategoryRestaurant, "restaurant"},
		{CategoryGas, "gas"},
		{CategoryRestroom, "restroom"},
		{CategoryScenic, "scenic"},
		{CategoryLodging, "lodging"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
