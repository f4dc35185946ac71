package planner

import (
	"sort"
	"strings"

	"tripwise/models"
)

// Ranking point weights. Raw additive integers, no normalization; a package
// must score at least one point to be considered at all.
const (
	PointsDestination   = 5
	PointsPartyType     = 3
	PointsBudgetMatch   = 2
	PointsDurationExact = 2
	PointsDurationClose = 1
	PointsStarHint      = 1

	// DurationSlackDays is the day-count difference still worth a point.
	DurationSlackDays = 2

	// MaxAlternatives caps the runner-up list shown alongside the best match.
	MaxAlternatives = 2
)

// Budget bucket boundaries, in the same currency-agnostic magnitude as
// TripProfile.BudgetAmount.
const (
	budgetEconomyBelow = 60000
	budgetMidBelow     = 100000
	budgetPremiumBelow = 140000
)

// DeriveBudgetCategory buckets a profile into a catalog budget category.
// A numeric budget always takes precedence over the lodging tier; with
// neither present there is no category and the criterion is skipped.
func DeriveBudgetCategory(p *models.TripProfile) (models.BudgetCategory, bool) {
	if p.BudgetAmount > 0 {
		switch {
		case p.BudgetAmount < budgetEconomyBelow:
			return models.BudgetEconomy, true
		case p.BudgetAmount < budgetMidBelow:
			return models.BudgetMid, true
		case p.BudgetAmount < budgetPremiumBelow:
			return models.BudgetPremium, true
		default:
			return models.BudgetLuxury, true
		}
	}
	switch p.LodgingTier {
	case models.TierBudget:
		return models.BudgetEconomy, true
	case models.TierMidRange:
		return models.BudgetMid, true
	case models.TierLuxury:
		return models.BudgetLuxury, true
	case models.TierBoutique:
		return models.BudgetPremium, true
	}
	return "", false
}

// starHintDigit maps a lodging tier to the digit expected somewhere in the
// package's star-category text.
func starHintDigit(tier models.LodgingTier) string {
	switch tier {
	case models.TierLuxury:
		return "5"
	case models.TierBudget:
		return "3"
	default:
		return "4"
	}
}

// ScorePackage computes the additive criteria score of one package against a
// (possibly partial) profile.
func ScorePackage(p *models.TripProfile, pkg *models.TravelPackage) int {
	score := 0

	if p.Destination != "" {
		want := models.FoldKey(p.Destination)
		have := models.FoldKey(pkg.DestinationName)
		if want != "" && have != "" &&
			(strings.Contains(have, want) || strings.Contains(want, have)) {
			score += PointsDestination
		}
	}

	if p.PartyType != "" && strings.EqualFold(string(p.PartyType), string(pkg.TravelType)) {
		score += PointsPartyType
	}

	if cat, ok := DeriveBudgetCategory(p); ok && cat == pkg.BudgetCategory {
		score += PointsBudgetMatch
	}

	if p.TripLengthDays > 0 {
		if days, ok := ExtractDayCount(pkg.Duration); ok {
			diff := days - p.TripLengthDays
			if diff < 0 {
				diff = -diff
			}
			switch {
			case diff == 0:
				score += PointsDurationExact
			case diff <= DurationSlackDays:
				score += PointsDurationClose
			}
		}
	}

	if p.LodgingTier != "" && strings.Contains(pkg.StarCategory, starHintDigit(p.LodgingTier)) {
		score += PointsStarHint
	}

	return score
}

// RankPackages scores every catalog entry against the profile and returns the
// candidates with score > 0, ordered by descending score. Ties keep catalog
// order (stable sort); richer tie-breaking is deliberately not attempted.
// An empty result is the "no match" domain outcome, not an error.
func RankPackages(p *models.TripProfile, catalog *models.Catalog) []models.ScoredPackage {
	var ranked []models.ScoredPackage
	for _, pkg := range catalog.Packages() {
		if s := ScorePackage(p, &pkg); s > 0 {
			ranked = append(ranked, models.ScoredPackage{Package: pkg, Score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BestMatch returns the single highest-scoring package across the whole
// catalog plus up to MaxAlternatives runners-up for preview.
func BestMatch(p *models.TripProfile, catalog *models.Catalog) (*models.Recommendation, bool) {
	ranked := RankPackages(p, catalog)
	if len(ranked) == 0 {
		return nil, false
	}
	best := ranked[0]
	rec := &models.Recommendation{
		PackageID: best.Package.ID,
		Score:     best.Score,
		Package:   best.Package,
	}
	for _, alt := range ranked[1:] {
		if len(rec.Alternatives) == MaxAlternatives {
			break
		}
		rec.Alternatives = append(rec.Alternatives, alt)
	}
	return rec, true
}
