package models

// BudgetCategory is the catalog's coarse price band.
type BudgetCategory string

const (
	BudgetEconomy BudgetCategory = "Economy"
	BudgetMid     BudgetCategory = "Mid"
	BudgetPremium BudgetCategory = "Premium"
	BudgetLuxury  BudgetCategory = "Luxury"
)

// TravelPackage is one bookable catalog entry. The catalog is loaded once at
// startup and shared read-only across all sessions.
type TravelPackage struct {
	ID              string         `bson:"_id" json:"id"`
	Name            string         `bson:"name" json:"name"`
	DestinationName string         `bson:"destinationName" json:"destinationName"`
	TravelType      PartyType      `bson:"travelType" json:"travelType"`
	BudgetCategory  BudgetCategory `bson:"budgetCategory" json:"budgetCategory"`
	Duration        string         `bson:"duration" json:"duration"`         // free text, e.g. "5 Days / 4 Nights"
	StarCategory    string         `bson:"starCategory" json:"starCategory"` // free text, e.g. "4 Star"
	Overview        string         `bson:"overview" json:"overview,omitempty"`
	PriceText       string         `bson:"priceText" json:"priceText,omitempty"`
	Inclusions      []string       `bson:"inclusions" json:"inclusions,omitempty"`
}

// Catalog is an immutable in-memory snapshot of the travel packages.
type Catalog struct {
	packages     []TravelPackage
	destinations []string
}

// NewCatalog builds a catalog snapshot. Destination names preserve catalog
// order; duplicates are collapsed case-insensitively.
func NewCatalog(packages []TravelPackage) *Catalog {
	seen := make(map[string]bool, len(packages))
	var dests []string
	for _, p := range packages {
		key := FoldKey(p.DestinationName)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		dests = append(dests, p.DestinationName)
	}
	return &Catalog{packages: packages, destinations: dests}
}

// Packages returns the catalog entries in load order.
func (c *Catalog) Packages() []TravelPackage { return c.packages }

// Destinations returns the known destination names in catalog order.
func (c *Catalog) Destinations() []string { return c.destinations }

// Len returns the number of packages.
func (c *Catalog) Len() int { return len(c.packages) }

// ByID returns the package with the given ID, if present.
func (c *Catalog) ByID(id string) (TravelPackage, bool) {
	for _, p := range c.packages {
		if p.ID == id {
			return p, true
		}
	}
	return TravelPackage{}, false
}
