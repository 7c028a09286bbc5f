package services

import "realestate-stats/models"

// Classifier chooses the bucket a listing's region lands in while loading.
type Classifier interface {
	Classify(c *models.Collection, region string) models.Category
}

// FirstSeenClassifier files a region under US States only when US States
// already holds that region, and under Territories otherwise. Nothing seeds
// US States, so every region ends up in Territories. This matches the
// historical loader; LookupClassifier is the table-driven alternative.
type FirstSeenClassifier struct{}

func (FirstSeenClassifier) Classify(c *models.Collection, region string) models.Category {
	if c.Contains(models.USStates, region) {
		return models.USStates
	}
	return models.Territories
}

// LookupClassifier files the 50 states and the District of Columbia under
// US States and every other region under Territories.
type LookupClassifier struct{}

func (LookupClassifier) Classify(_ *models.Collection, region string) models.Category {
	if _, ok := usStates[region]; ok {
		return models.USStates
	}
	return models.Territories
}

// NewClassifier maps a config mode to a Classifier. Unknown modes fall back
// to first-seen.
func NewClassifier(mode string) Classifier {
	if mode == "lookup" {
		return LookupClassifier{}
	}
	return FirstSeenClassifier{}
}

var usStates = map[string]struct{}{
	"Alabama": {}, "Alaska": {}, "Arizona": {}, "Arkansas": {}, "California": {},
	"Colorado": {}, "Connecticut": {}, "Delaware": {}, "District of Columbia": {},
	"Florida": {}, "Georgia": {}, "Hawaii": {}, "Idaho": {}, "Illinois": {},
	"Indiana": {}, "Iowa": {}, "Kansas": {}, "Kentucky": {}, "Louisiana": {},
	"Maine": {}, "Maryland": {}, "Massachusetts": {}, "Michigan": {}, "Minnesota": {},
	"Mississippi": {}, "Missouri": {}, "Montana": {}, "Nebraska": {}, "Nevada": {},
	"New Hampshire": {}, "New Jersey": {}, "New Mexico": {}, "New York": {},
	"North Carolina": {}, "North Dakota": {}, "Ohio": {}, "Oklahoma": {}, "Oregon": {},
	"Pennsylvania": {}, "Rhode Island": {}, "South Carolina": {}, "South Dakota": {},
	"Tennessee": {}, "Texas": {}, "Utah": {}, "Vermont": {}, "Virginia": {},
	"Washington": {}, "West Virginia": {}, "Wisconsin": {}, "Wyoming": {},
}
