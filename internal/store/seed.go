package store

import (
	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/shopspring/decimal"
)

// seedEvents returns the fixed demo catalog used when the events collection
// is absent from the substrate.
func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          1,
			Title:       "Summer Music Festival",
			Description: "Join us for an amazing summer music festival featuring top artists from around the world. Experience live music, food trucks, and great vibes.",
			Category:    "music",
			Price:       decimal.RequireFromString("89.99"),
			Date:        "2024-07-15",
			Time:        "18:00",
			Location:    "Central Park, New York",
			Capacity:    5000,
			Sold:        3200,
			Image:       "https://images.pexels.com/photos/1190298/pexels-photo-1190298.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Music Events Co.",
			Featured:    true,
		},
		{
			ID:          2,
			Title:       "Tech Conference 2024",
			Description: "The biggest tech conference of the year. Learn from industry leaders, network with professionals, and discover the latest innovations.",
			Category:    "business",
			Price:       decimal.RequireFromString("299.99"),
			Date:        "2024-08-22",
			Time:        "09:00",
			Location:    "Convention Center, San Francisco",
			Capacity:    2000,
			Sold:        1800,
			Image:       "https://images.pexels.com/photos/2774556/pexels-photo-2774556.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "TechEvents Inc.",
			Featured:    true,
		},
		{
			ID:          3,
			Title:       "Art Gallery Opening",
			Description: "Exclusive opening of contemporary art gallery featuring works from emerging artists. Wine and appetizers included.",
			Category:    "arts",
			Price:       decimal.RequireFromString("45.00"),
			Date:        "2024-06-30",
			Time:        "19:00",
			Location:    "Downtown Gallery, Los Angeles",
			Capacity:    150,
			Sold:        89,
			Image:       "https://images.pexels.com/photos/1839919/pexels-photo-1839919.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Modern Arts Society",
			Featured:    false,
		},
		{
			ID:          4,
			Title:       "Championship Basketball Game",
			Description: "Don't miss the championship game of the season! Watch the best teams compete for the ultimate title.",
			Category:    "sports",
			Price:       decimal.RequireFromString("125.00"),
			Date:        "2024-07-08",
			Time:        "20:00",
			Location:    "Sports Arena, Chicago",
			Capacity:    15000,
			Sold:        14500,
			Image:       "https://images.pexels.com/photos/358042/pexels-photo-358042.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Sports League",
			Featured:    true,
		},
		{
			ID:          5,
			Title:       "Jazz Night at Blue Note",
			Description: "Intimate jazz performance featuring renowned musicians. Enjoy classic cocktails and smooth jazz in a cozy atmosphere.",
			Category:    "music",
			Price:       decimal.RequireFromString("65.00"),
			Date:        "2024-07-03",
			Time:        "21:00",
			Location:    "Blue Note Club, New York",
			Capacity:    200,
			Sold:        180,
			Image:       "https://images.pexels.com/photos/164821/pexels-photo-164821.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Blue Note Entertainment",
			Featured:    false,
		},
		{
			ID:          6,
			Title:       "Startup Pitch Competition",
			Description: "Watch innovative startups pitch their ideas to top investors. Network with entrepreneurs and industry experts.",
			Category:    "business",
			Price:       decimal.RequireFromString("75.00"),
			Date:        "2024-08-10",
			Time:        "14:00",
			Location:    "Innovation Hub, Austin",
			Capacity:    300,
			Sold:        245,
			Image:       "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Startup Accelerator",
			Featured:    false,
		},
		{
			ID:          7,
			Title:       "Food & Wine Festival",
			Description: "Celebrate culinary excellence with top chefs, wine tastings, and gourmet food from around the world.",
			Category:    "arts",
			Price:       decimal.RequireFromString("95.00"),
			Date:        "2024-09-15",
			Time:        "12:00",
			Location:    "Waterfront Park, Seattle",
			Capacity:    1000,
			Sold:        750,
			Image:       "https://images.pexels.com/photos/1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Culinary Arts Foundation",
			Featured:    true,
		},
		{
			ID:          8,
			Title:       "Marathon Championship",
			Description: "Join thousands of runners in the annual marathon championship. Multiple categories available for all skill levels.",
			Category:    "sports",
			Price:       decimal.RequireFromString("55.00"),
			Date:        "2024-10-05",
			Time:        "07:00",
			Location:    "City Center, Boston",
			Capacity:    10000,
			Sold:        8500,
			Image:       "https://images.pexels.com/photos/2402777/pexels-photo-2402777.jpeg?auto=compress&cs=tinysrgb&w=800",
			Organizer:   "Marathon Association",
			Featured:    false,
		},
	}
}
