package memory

import (
	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
	"github.com/Apurer/delish-express/internal/shared/money"
)

const unsplash = "https://images.unsplash.com/"

// SeedListings returns the sample catalog the storefront starts with.
func SeedListings() []domain.Listing {
	return []domain.Listing{
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              1,
					Name:            "The Golden Spoon",
					ImageURL:        unsplash + "photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"Italian", "Pizza"},
					Rating:          4.5,
					DeliveryMinutes: 25,
				},
				Description: "Wood-fired pizza and fresh pasta made the way nonna taught us.",
				Address:     "18 Olive Grove Ave, Anytown, USA",
				Hours:       "12:00 PM - 11:00 PM",
				Tags:        []string{"Italian", "Pizza"},
			},
			Menu: menu(1,
				category("Pizza",
					item("gs1", 1, "Margherita", "San Marzano tomatoes, fior di latte and basil.", 14.00),
					item("gs2", 1, "Diavola", "Spicy salami, chili oil and mozzarella.", 15.50),
				),
				category("Pasta",
					item("gs3", 1, "Fettuccine Alfredo", "Ribbon pasta in a parmesan cream sauce.", 16.00),
				),
			),
		},
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              2,
					Name:            "Sushi Palace",
					ImageURL:        unsplash + "photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"Japanese", "Sushi"},
					Rating:          4.8,
					DeliveryMinutes: 30,
				},
				Description: "Serving the freshest and most authentic Japanese sushi and cuisine in the heart of the city.",
				Address:     "123 Main Street, Anytown, USA",
				Hours:       "11:00 AM - 10:00 PM",
				Tags:        []string{"Sushi", "Japanese", "Seafood"},
			},
			Menu: menu(2,
				category("Appetizers",
					item("app1", 2, "Miso Soup", "A traditional Japanese soup with tofu, seaweed, and scallions.", 4.50),
					item("app2", 2, "Edamame", "Steamed young soybeans sprinkled with sea salt.", 6.00),
					item("app3", 2, "Gyoza", "Pan-fried pork and vegetable dumplings.", 8.50),
				),
				category("Signature Sushi Rolls",
					item("roll1", 2, "Spicy Tuna Roll", "Fresh tuna mixed with spicy mayo, topped with sesame seeds.", 12.99),
					item("roll2", 2, "Dragon Roll", "Eel and cucumber topped with avocado, tobiko, and eel sauce.", 16.50),
					item("roll3", 2, "California Roll", "Crab meat, avocado, and cucumber wrapped in seaweed and rice.", 10.00),
				),
			),
		},
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              3,
					Name:            "Taco Fiesta",
					ImageURL:        unsplash + "photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"Mexican", "Tacos"},
					Rating:          4.3,
					DeliveryMinutes: 20,
				},
				Description: "Street tacos, fresh salsas and hand-pressed tortillas.",
				Address:     "77 Mercado Blvd, Anytown, USA",
				Hours:       "10:00 AM - 10:00 PM",
				Tags:        []string{"Mexican", "Tacos"},
			},
			Menu: menu(3,
				category("Tacos",
					item("tf1", 3, "Carne Asada Tacos", "Grilled steak, onion and cilantro on corn tortillas.", 11.50),
					item("tf2", 3, "Al Pastor Tacos", "Marinated pork with pineapple.", 10.50),
				),
				category("Sides",
					item("tf3", 3, "Chips & Guacamole", "Crispy tortilla chips with house guacamole.", 6.50),
				),
			),
		},
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              4,
					Name:            "Curry House",
					ImageURL:        unsplash + "photo-1589302168068-964664d93dc0?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"Indian"},
					Rating:          4.6,
					DeliveryMinutes: 35,
				},
				Description: "Slow-cooked curries and tandoor breads.",
				Address:     "9 Spice Lane, Anytown, USA",
				Hours:       "11:30 AM - 10:30 PM",
				Tags:        []string{"Indian", "Curry"},
			},
			Menu: menu(4,
				category("Curries",
					item("ch1", 4, "Butter Chicken", "Chicken in a mild tomato and butter sauce.", 15.50),
					item("ch2", 4, "Chana Masala", "Chickpeas simmered with onion, tomato and spices.", 12.00),
				),
				category("Breads",
					item("ch3", 4, "Garlic Naan", "Tandoor-baked flatbread brushed with garlic butter.", 3.50),
				),
			),
		},
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              5,
					Name:            "The Burger Joint",
					ImageURL:        unsplash + "photo-1571091718767-18b5b1457add?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"American", "Burgers"},
					Rating:          4.2,
					DeliveryMinutes: 25,
				},
				Description: "Smash burgers, hand-cut fries and thick shakes.",
				Address:     "450 Route 66, Anytown, USA",
				Hours:       "11:00 AM - 12:00 AM",
				Tags:        []string{"American", "Burgers"},
			},
			Menu: menu(5,
				category("Burgers",
					item("bj1", 5, "Classic Burger", "Beef patty, cheddar, lettuce, tomato and house sauce.", 15.00),
					item("bj2", 5, "Veggie Burger", "Black bean patty with avocado.", 13.50),
				),
				category("Sides",
					item("bj3", 5, "Fries", "Hand-cut and double fried.", 4.00),
				),
			),
		},
		{
			Profile: domain.Profile{
				Restaurant: domain.Restaurant{
					ID:              6,
					Name:            "Noodle Bowl",
					ImageURL:        unsplash + "photo-1552611052-33e04de081de?auto=format&fit=crop&w=400&q=80",
					Cuisines:        []string{"Chinese", "Thai"},
					Rating:          4.7,
					DeliveryMinutes: 40,
				},
				Description: "Hand-pulled noodles and wok-fired classics.",
				Address:     "31 Lantern St, Anytown, USA",
				Hours:       "11:00 AM - 11:00 PM",
				Tags:        []string{"Chinese", "Thai", "Noodles"},
			},
			Menu: menu(6,
				category("Noodles",
					item("nb1", 6, "Pad Thai", "Rice noodles, tamarind, peanuts and lime.", 13.00),
					item("nb2", 6, "Dan Dan Noodles", "Wheat noodles in a spicy sesame and pork sauce.", 12.50),
				),
			),
		},
	}
}

func menu(restaurantID int64, categories ...domain.MenuCategory) domain.Menu {
	return domain.Menu{RestaurantID: restaurantID, Categories: categories}
}

func category(title string, items ...domain.MenuItem) domain.MenuCategory {
	return domain.MenuCategory{Title: title, Items: items}
}

func item(id string, restaurantID int64, name, description string, price float64) domain.MenuItem {
	return domain.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		UnitPrice:    money.MustFromFloat(price),
		ImageURL:     "https://source.unsplash.com/random/400x400/?" + id,
	}
}
