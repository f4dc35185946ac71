package models

import "fmt"

// LodgingTier is the accommodation class a traveller asks for.
type LodgingTier string

const (
	TierBudget   LodgingTier = "Budget"
	TierMidRange LodgingTier = "MidRange"
	TierLuxury   LodgingTier = "Luxury"
	TierBoutique LodgingTier = "Boutique"
)

// PartyType describes who is travelling.
type PartyType string

const (
	PartySolo    PartyType = "Solo"
	PartyFamily  PartyType = "Family"
	PartyCouple  PartyType = "Couple"
	PartyFriends PartyType = "Friends"
)

// Slot identifies one of the six trip attributes collected during a conversation.
type Slot int

const (
	SlotDestination Slot = iota
	SlotTravelDate
	SlotTripLength
	SlotBudget
	SlotLodging
	SlotParty
	// SlotNone means every slot is filled and the planner is ready to recommend.
	SlotNone
)

// slotOrder is the canonical asking order. It is the sole scheduling policy.
var slotOrder = [...]Slot{
	SlotDestination,
	SlotTravelDate,
	SlotTripLength,
	SlotBudget,
	SlotLodging,
	SlotParty,
}

func (s Slot) String() string {
	switch s {
	case SlotDestination:
		return "destination"
	case SlotTravelDate:
		return "travel_date"
	case SlotTripLength:
		return "trip_length"
	case SlotBudget:
		return "budget"
	case SlotLodging:
		return "lodging"
	case SlotParty:
		return "party"
	default:
		return "none"
	}
}

// TripProfile is the per-session record of collected trip attributes.
// Zero values mean "not collected yet". Fields are set-once: a filled slot
// is never overwritten or cleared within a session.
type TripProfile struct {
	Destination    string      `json:"destination,omitempty"`
	TravelDate     string      `json:"travelDate,omitempty"`
	TripLengthDays int         `json:"tripLengthDays,omitempty"`
	BudgetAmount   int         `json:"budgetAmount,omitempty"`
	LodgingTier    LodgingTier `json:"lodgingTier,omitempty"`
	PartyType      PartyType   `json:"partyType,omitempty"`
}

// Filled reports whether the given slot has a value.
func (p *TripProfile) Filled(s Slot) bool {
	switch s {
	case SlotDestination:
		return p.Destination != ""
	case SlotTravelDate:
		return p.TravelDate != ""
	case SlotTripLength:
		return p.TripLengthDays > 0
	case SlotBudget:
		return p.BudgetAmount > 0
	case SlotLodging:
		return p.LodgingTier != ""
	case SlotParty:
		return p.PartyType != ""
	default:
		return false
	}
}

// PendingSlot derives the first unfilled slot in canonical order. The dialogue
// state is always recomputed from the profile, never stored, so the two can
// never disagree.
func (p *TripProfile) PendingSlot() Slot {
	for _, s := range slotOrder {
		if !p.Filled(s) {
			return s
		}
	}
	return SlotNone
}

// Complete reports whether all six slots are filled.
func (p *TripProfile) Complete() bool {
	return p.PendingSlot() == SlotNone
}

// FilledCount returns the number of filled slots.
func (p *TripProfile) FilledCount() int {
	n := 0
	for _, s := range slotOrder {
		if p.Filled(s) {
			n++
		}
	}
	return n
}

// ErrSlotAlreadySet signals a violation of the set-once invariant. Seeing it
// means the state machine's core guarantee has been broken, so the session
// must be aborted rather than patched.
type ErrSlotAlreadySet struct {
	Slot Slot
}

func (e *ErrSlotAlreadySet) Error() string {
	return fmt.Sprintf("profile slot %q is already set", e.Slot)
}
