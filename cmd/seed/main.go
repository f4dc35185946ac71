// Seeds the packages collection with a demo catalog. Intended for local
// development and staging only.
package main

import (
	"context"
	"log"
	"time"

	"tripwise/config"
	"tripwise/database"
	"tripwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.Database().Collection("packages")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing packages.
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear packages collection: %v", err)
	}

	packages := []interface{}{
		models.TravelPackage{
			ID: "pkg-goa-coastal-4d", Name: "Goa Coastal Escape",
			DestinationName: "Goa", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetEconomy, Duration: "4 Days / 3 Nights",
			StarCategory: "4 Star", PriceText: "INR 42,000 per couple",
			Overview:   "Beachside stay in North Goa with candlelight dinner and sunset cruise.",
			Inclusions: []string{"Breakfast", "Airport transfers", "Sunset cruise"},
		},
		models.TravelPackage{
			ID: "pkg-goa-family-10d", Name: "Grand Goa Family Retreat",
			DestinationName: "Goa", TravelType: models.PartyFamily,
			BudgetCategory: models.BudgetLuxury, Duration: "10 Days / 9 Nights",
			StarCategory: "5 Star Deluxe", PriceText: "INR 1,85,000 per family",
			Overview:   "A long family holiday across both Goan coasts with a private villa stay.",
			Inclusions: []string{"All meals", "Private villa", "Water sports", "Spice farm tour"},
		},
		models.TravelPackage{
			ID: "pkg-bali-honeymoon-5d", Name: "Bali Honeymoon Bliss",
			DestinationName: "Bali", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetMid, Duration: "5 Days / 4 Nights",
			StarCategory: "4 Star", PriceText: "INR 78,000 per couple",
			Overview:   "Ubud rice terraces, Nusa Penida day trip and a floating breakfast.",
			Inclusions: []string{"Breakfast", "Private driver", "Floating breakfast"},
		},
		models.TravelPackage{
			ID: "pkg-bali-friends-6d", Name: "Bali Surf & Party Week",
			DestinationName: "Bali", TravelType: models.PartyFriends,
			BudgetCategory: models.BudgetEconomy, Duration: "6 Days / 5 Nights",
			StarCategory: "3 Star", PriceText: "INR 48,000 per person",
			Overview:   "Canggu surf lessons, Uluwatu cliffs and Seminyak nightlife with the gang.",
			Inclusions: []string{"Breakfast", "Surf lessons", "Scooter rental"},
		},
		models.TravelPackage{
			ID: "pkg-kerala-family-7d", Name: "Kerala Backwaters Family Week",
			DestinationName: "Kerala", TravelType: models.PartyFamily,
			BudgetCategory: models.BudgetMid, Duration: "7 Days / 6 Nights",
			StarCategory: "4 Star", PriceText: "INR 95,000 per family",
			Overview:   "Houseboat on the Alleppey backwaters, Munnar tea gardens and Kochi walks.",
			Inclusions: []string{"All meals on houseboat", "Houseboat night", "Tea garden tour"},
		},
		models.TravelPackage{
			ID: "pkg-manali-solo-5d", Name: "Manali Mountain Solo Trail",
			DestinationName: "Manali", TravelType: models.PartySolo,
			BudgetCategory: models.BudgetEconomy, Duration: "5 Days / 4 Nights",
			StarCategory: "3 Star", PriceText: "INR 28,000 per person",
			Overview:   "Old Manali cafes, Hampta valley day hike and the Solang ropeway.",
			Inclusions: []string{"Breakfast", "Guided hike", "Volvo transfers"},
		},
		models.TravelPackage{
			ID: "pkg-udaipur-boutique-3d", Name: "Udaipur Lakeside Heritage",
			DestinationName: "Udaipur", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetPremium, Duration: "3 Days / 2 Nights",
			StarCategory: "4 Star Heritage", PriceText: "INR 1,12,000 per couple",
			Overview:   "A boutique haveli on Lake Pichola with a private sunset boat ride.",
			Inclusions: []string{"Breakfast", "Sunset boat ride", "City palace tickets"},
		},
		models.TravelPackage{
			ID: "pkg-dubai-luxury-5d", Name: "Dubai Luxury Skyline",
			DestinationName: "Dubai", TravelType: models.PartyFamily,
			BudgetCategory: models.BudgetLuxury, Duration: "5 Days / 4 Nights",
			StarCategory: "5 Star", PriceText: "INR 1,60,000 per family",
			Overview:   "Burj Khalifa at the top, desert safari and a marina dinner cruise.",
			Inclusions: []string{"Breakfast", "Desert safari", "Dinner cruise", "Visa assistance"},
		},
		models.TravelPackage{
			ID: "pkg-rishikesh-friends-4d", Name: "Rishikesh Rapids & Camps",
			DestinationName: "Rishikesh", TravelType: models.PartyFriends,
			BudgetCategory: models.BudgetEconomy, Duration: "4 Days / 3 Nights",
			StarCategory: "3 Star Camp", PriceText: "INR 18,000 per person",
			Overview:   "Riverside camping, 16 km rafting stretch and the Ganga aarti.",
			Inclusions: []string{"All meals at camp", "Rafting", "Bonfire"},
		},
		models.TravelPackage{
			ID: "pkg-andaman-honeymoon-6d", Name: "Andaman Island Romance",
			DestinationName: "Andaman", TravelType: models.PartyCouple,
			BudgetCategory: models.BudgetPremium, Duration: "6 Days / 5 Nights",
			StarCategory: "4 Star Resort", PriceText: "INR 1,25,000 per couple",
			Overview:   "Havelock beaches, scuba introduction dive and a private beach dinner.",
			Inclusions: []string{"Breakfast", "Ferry tickets", "Scuba dive", "Beach dinner"},
		},
	}

	res, err := coll.InsertMany(ctx, packages)
	if err != nil {
		log.Fatalf("Failed to seed packages: %v", err)
	}
	log.Printf("Seeded %d travel packages", len(res.InsertedIDs))
}
