package planner

import (
	"testing"

	"tripwise/models"
)

func testCatalog() *models.Catalog {
	return models.NewCatalog([]models.TravelPackage{
		{
			ID: "goa-couple", Name: "Goa Coastal Escape",
			DestinationName: "Goa", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetEconomy, Duration: "4 Days / 3 Nights",
			StarCategory: "4 Star",
		},
		{
			ID: "goa-family", Name: "Grand Goa Family Retreat",
			DestinationName: "Goa", TravelType: models.PartyFamily,
			BudgetCategory: models.BudgetLuxury, Duration: "10 Days / 9 Nights",
			StarCategory: "5 Star Deluxe",
		},
		{
			ID: "bali-couple", Name: "Bali Honeymoon Bliss",
			DestinationName: "Bali", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetMid, Duration: "5 Days / 4 Nights",
			StarCategory: "4 Star",
		},
		{
			ID: "manali-solo", Name: "Manali Mountain Solo Trail",
			DestinationName: "Manali", TravelType: models.PartySolo,
			BudgetCategory: models.BudgetEconomy, Duration: "5 Days / 4 Nights",
			StarCategory: "3 Star",
		},
	})
}

func TestDeriveBudgetCategory(t *testing.T) {
	tests := []struct {
		name    string
		profile models.TripProfile
		want    models.BudgetCategory
		wantOK  bool
	}{
		{"economy bucket", models.TripProfile{BudgetAmount: 45000}, models.BudgetEconomy, true},
		{"mid bucket lower edge", models.TripProfile{BudgetAmount: 60000}, models.BudgetMid, true},
		{"premium bucket", models.TripProfile{BudgetAmount: 120000}, models.BudgetPremium, true},
		{"luxury bucket", models.TripProfile{BudgetAmount: 200000}, models.BudgetLuxury, true},
		{"tier fallback budget", models.TripProfile{LodgingTier: models.TierBudget}, models.BudgetEconomy, true},
		{"tier fallback boutique", models.TripProfile{LodgingTier: models.TierBoutique}, models.BudgetPremium, true},
		{"tier fallback luxury", models.TripProfile{LodgingTier: models.TierLuxury}, models.BudgetLuxury, true},
		{"nothing to derive from", models.TripProfile{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveBudgetCategory(&tt.profile)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DeriveBudgetCategory(%+v) = (%q, %v), want (%q, %v)",
					tt.profile, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// A numeric budget always wins over the lodging tier, even when the tier
// alone would put the profile in a different category.
func TestDeriveBudgetCategory_NumericPrecedence(t *testing.T) {
	profile := models.TripProfile{
		BudgetAmount: 45000,
		LodgingTier:  models.TierLuxury,
	}
	got, ok := DeriveBudgetCategory(&profile)
	if !ok || got != models.BudgetEconomy {
		t.Errorf("DeriveBudgetCategory = (%q, %v), want (Economy, true)", got, ok)
	}
}

func TestScorePackage_FullMatch(t *testing.T) {
	profile := models.TripProfile{
		Destination:    "Goa",
		PartyType:      models.PartyCouple,
		BudgetAmount:   45000,
		LodgingTier:    models.TierMidRange,
		TripLengthDays: 4,
	}
	pkg := models.TravelPackage{
		DestinationName: "Goa", TravelType: models.PartyCouple,
		BudgetCategory: models.BudgetEconomy, Duration: "4 Days / 3 Nights",
		StarCategory: "4 Star",
	}
	// destination 5 + party 3 + budget 2 + exact duration 2 + star hint 1
	if got := ScorePackage(&profile, &pkg); got != 13 {
		t.Errorf("ScorePackage = %d, want 13", got)
	}
}

func TestScorePackage_DurationCloseness(t *testing.T) {
	profile := models.TripProfile{TripLengthDays: 5}
	tests := []struct {
		duration string
		want     int
	}{
		{"5 Days / 4 Nights", PointsDurationExact},
		{"7 Days / 6 Nights", PointsDurationClose},
		{"3 Days / 2 Nights", PointsDurationClose},
		{"10 Days / 9 Nights", 0},
		{"a relaxed fortnight", 0}, // unparsable duration scores nothing
	}
	for _, tt := range tests {
		pkg := models.TravelPackage{Duration: tt.duration}
		if got := ScorePackage(&profile, &pkg); got != tt.want {
			t.Errorf("duration %q: score = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestScorePackage_DestinationSubstringEitherWay(t *testing.T) {
	profile := models.TripProfile{Destination: "North Goa"}
	pkg := models.TravelPackage{DestinationName: "Goa"}
	if got := ScorePackage(&profile, &pkg); got != PointsDestination {
		t.Errorf("score = %d, want %d", got, PointsDestination)
	}
}

// The Goa/Couple/45k/MidRange/4-day profile must prefer the couple economy
// package over the family luxury one and win the best-match slot.
func TestBestMatch_PrefersCloserPackage(t *testing.T) {
	profile := models.TripProfile{
		Destination:    "Goa",
		PartyType:      models.PartyCouple,
		BudgetAmount:   45000,
		LodgingTier:    models.TierMidRange,
		TripLengthDays: 4,
	}

	rec, ok := BestMatch(&profile, testCatalog())
	if !ok {
		t.Fatal("expected a best match")
	}
	if rec.PackageID != "goa-couple" {
		t.Fatalf("best match = %s, want goa-couple", rec.PackageID)
	}

	ranked := RankPackages(&profile, testCatalog())
	var familyScore int
	for _, sp := range ranked {
		if sp.Package.ID == "goa-family" {
			familyScore = sp.Score
		}
	}
	if rec.Score <= familyScore {
		t.Errorf("couple package (%d) does not outscore family package (%d)", rec.Score, familyScore)
	}
}

// Zero-score packages are excluded from the candidate list, not sorted last.
func TestRankPackages_ExcludesZeroScores(t *testing.T) {
	profile := models.TripProfile{Destination: "Goa"}
	ranked := RankPackages(&profile, testCatalog())

	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2 (only the Goa packages)", len(ranked))
	}
	for _, sp := range ranked {
		if sp.Score <= 0 {
			t.Errorf("candidate %s has non-positive score %d", sp.Package.ID, sp.Score)
		}
		if sp.Package.DestinationName != "Goa" {
			t.Errorf("unexpected candidate %s", sp.Package.ID)
		}
	}
}

// An unknown destination yields the no-match outcome, never an error.
func TestBestMatch_UnknownDestination(t *testing.T) {
	profile := models.TripProfile{
		Destination:    "Atlantis",
		TripLengthDays: 99,
	}

	if ranked := RankPackages(&profile, testCatalog()); len(ranked) != 0 {
		t.Fatalf("got %d candidates, want none", len(ranked))
	}
	if _, ok := BestMatch(&profile, testCatalog()); ok {
		t.Fatal("expected no best match")
	}
}

func TestBestMatch_EmptyCatalog(t *testing.T) {
	profile := models.TripProfile{Destination: "Goa"}
	if _, ok := BestMatch(&profile, models.NewCatalog(nil)); ok {
		t.Fatal("expected no match on empty catalog")
	}
}

// Ties keep catalog order; the alternatives list is capped at two.
func TestRankPackages_TieOrderAndAlternatives(t *testing.T) {
	profile := models.TripProfile{PartyType: models.PartyCouple}
	ranked := RankPackages(&profile, testCatalog())

	if len(ranked) != 2 {
		t.Fatalf("got %d candidates, want 2", len(ranked))
	}
	if ranked[0].Package.ID != "goa-couple" || ranked[1].Package.ID != "bali-couple" {
		t.Errorf("tie not broken by catalog order: %s, %s",
			ranked[0].Package.ID, ranked[1].Package.ID)
	}

	rec, ok := BestMatch(&profile, testCatalog())
	if !ok {
		t.Fatal("expected best match")
	}
	if len(rec.Alternatives) > MaxAlternatives {
		t.Errorf("alternatives = %d, want at most %d", len(rec.Alternatives), MaxAlternatives)
	}
}
