package models

import "testing"

func TestPendingSlot_CanonicalOrder(t *testing.T) {
	tests := []struct {
		name    string
		profile TripProfile
		want    Slot
	}{
		{"empty profile asks destination first", TripProfile{}, SlotDestination},
		{"destination set moves to date", TripProfile{Destination: "Goa"}, SlotTravelDate},
		{
			"gap in the middle is asked before later slots",
			TripProfile{Destination: "Goa", TravelDate: "2026-03-01", BudgetAmount: 45000, PartyType: PartyCouple},
			SlotTripLength,
		},
		{
			"only party missing",
			TripProfile{Destination: "Goa", TravelDate: "2026-03-01", TripLengthDays: 4, BudgetAmount: 45000, LodgingTier: TierMidRange},
			SlotParty,
		},
		{
			"complete profile has nothing pending",
			TripProfile{Destination: "Goa", TravelDate: "2026-03-01", TripLengthDays: 4, BudgetAmount: 45000, LodgingTier: TierMidRange, PartyType: PartyCouple},
			SlotNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.PendingSlot(); got != tt.want {
				t.Errorf("PendingSlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTripProfile_FilledAndCount(t *testing.T) {
	p := TripProfile{}
	if p.FilledCount() != 0 {
		t.Fatalf("empty profile FilledCount = %d, want 0", p.FilledCount())
	}
	if p.Complete() {
		t.Fatal("empty profile must not be complete")
	}

	p.Destination = "Bali"
	p.TripLengthDays = 5
	if !p.Filled(SlotDestination) || !p.Filled(SlotTripLength) {
		t.Fatal("set slots must report filled")
	}
	if p.Filled(SlotBudget) {
		t.Fatal("zero budget must report unfilled")
	}
	if got := p.FilledCount(); got != 2 {
		t.Fatalf("FilledCount = %d, want 2", got)
	}
}

func TestSlot_String(t *testing.T) {
	want := map[Slot]string{
		SlotDestination: "destination",
		SlotTravelDate:  "travel_date",
		SlotTripLength:  "trip_length",
		SlotBudget:      "budget",
		SlotLodging:     "lodging",
		SlotParty:       "party",
		SlotNone:        "none",
	}
	for slot, name := range want {
		if slot.String() != name {
			t.Errorf("Slot(%d).String() = %q, want %q", slot, slot.String(), name)
		}
	}
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Goa", "goa"},
		{"  New Delhi ", "newdelhi"},
		{"PORT BLAIR", "portblair"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FoldKey(tt.in); got != tt.want {
			t.Errorf("FoldKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
