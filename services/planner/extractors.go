package planner

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripwise/models"
)

// The extractors are pure best-effort text parsers: each one maps a raw
// utterance to (value, true) or ("", false). A failed parse is never an
// error, it just means the controller re-asks.

// Budget band anchors. The keyword bands map to fixed amounts carried over
// from the original pricing sheet; each anchor lands inside the matching
// budget-category bucket.
const (
	BudgetAnchorLow  = 40000  // "budget" / "cheap" / "affordable"
	BudgetAnchorMid  = 80000  // "mid" / "moderate"
	BudgetAnchorHigh = 150000 // "luxury" / "premium" / "expensive"
)

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	dashDateRe  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`)
	digitRunRe  = regexp.MustCompile(`\d+`)

	// amountRe accepts bare digit runs and comma-separated groups, including
	// the 2-digit lakh grouping (1,20,000).
	amountRe = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})+|\d+`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ExtractDestination matches the utterance against every known destination
// name, case-insensitively; the first substring hit wins. Ambiguous multi-
// destination utterances are resolved by catalog order only (documented
// limitation).
func ExtractDestination(utterance string, destinations []string) (string, bool) {
	lower := strings.ToLower(utterance)
	for _, d := range destinations {
		if d == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(d)) {
			return d, true
		}
	}
	return "", false
}

// ExtractDate tries, in order: ISO YYYY-MM-DD, MM/DD/YYYY, MM-DD-YYYY, then
// a month name (resolved to the first of that month in the current year).
// The first successful pattern short-circuits the rest.
func ExtractDate(utterance string, now time.Time) (string, bool) {
	if m := isoDateRe.FindStringSubmatch(utterance); m != nil {
		return normalizeDate(m[1], m[2], m[3])
	}
	if m := slashDateRe.FindStringSubmatch(utterance); m != nil {
		return normalizeDate(m[3], m[1], m[2])
	}
	if m := dashDateRe.FindStringSubmatch(utterance); m != nil {
		return normalizeDate(m[3], m[1], m[2])
	}
	lower := strings.ToLower(utterance)
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			d := time.Date(now.Year(), time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
			return d.Format("2006-01-02"), true
		}
	}
	return "", false
}

func normalizeDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), true
}

// ExtractDayCount reads the first run of digits as a day count. Upper-bound
// validation, if any, is the caller's concern.
func ExtractDayCount(utterance string) (int, bool) {
	m := digitRunRe.FindString(utterance)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ExtractBudget looks for a currency amount (digit groups with optional
// thousands separators) first; only when no number is present does it fall
// back to the keyword bands.
func ExtractBudget(utterance string) (int, bool) {
	if m := amountRe.FindString(utterance); m != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
		if err == nil && n > 0 {
			return n, true
		}
	}
	lower := strings.ToLower(utterance)
	switch {
	case containsAny(lower, "budget", "cheap", "affordable"):
		return BudgetAnchorLow, true
	case containsAny(lower, "mid", "moderate"):
		return BudgetAnchorMid, true
	case containsAny(lower, "luxury", "premium", "expensive"):
		return BudgetAnchorHigh, true
	}
	return 0, false
}

// lodging tier names checked first, in fixed priority order, before looser
// synonyms get a chance.
var lodgingTiers = []struct {
	tier    models.LodgingTier
	phrases []string
}{
	{models.TierBudget, []string{"budget"}},
	{models.TierMidRange, []string{"mid-range", "midrange", "mid range"}},
	{models.TierLuxury, []string{"luxury"}},
	{models.TierBoutique, []string{"boutique"}},
}

var lodgingSynonyms = []struct {
	tier    models.LodgingTier
	phrases []string
}{
	{models.TierBudget, []string{"hostel", "cheap", "3 star", "three star"}},
	{models.TierLuxury, []string{"five star", "5 star", "premium", "resort"}},
	{models.TierBoutique, []string{"heritage", "homestay"}},
	{models.TierMidRange, []string{"4 star", "four star", "standard"}},
}

// ExtractLodgingTier matches tier names in a fixed priority order, then the
// synonym table.
func ExtractLodgingTier(utterance string) (models.LodgingTier, bool) {
	lower := strings.ToLower(utterance)
	for _, t := range lodgingTiers {
		if containsAny(lower, t.phrases...) {
			return t.tier, true
		}
	}
	for _, t := range lodgingSynonyms {
		if containsAny(lower, t.phrases...) {
			return t.tier, true
		}
	}
	return "", false
}

// party keyword sets, disjoint, checked in this order; first match wins.
var partyKeywords = []struct {
	party    models.PartyType
	keywords []string
}{
	{models.PartySolo, []string{"solo", "alone", "myself", "by myself"}},
	{models.PartyFamily, []string{"family", "kids", "children", "parents"}},
	{models.PartyCouple, []string{"couple", "romantic", "honeymoon", "partner", "wife", "husband"}},
	{models.PartyFriends, []string{"friends", "group", "buddies"}},
}

// ExtractPartyType runs a keyword membership test against the four party
// keyword sets.
func ExtractPartyType(utterance string) (models.PartyType, bool) {
	lower := strings.ToLower(utterance)
	for _, p := range partyKeywords {
		if containsAny(lower, p.keywords...) {
			return p.party, true
		}
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
