package menu

import "github.com/jugnuu/themis-pos/models"

// Categories in display order.
var Categories = []string{
	"Veg Starters",
	"Non-Veg Starters",
	"Street Chaat",
	"South Indian",
	"Veg Main Course",
	"Non-Veg Main Course",
	"World Cuisine",
	"Desserts",
}

var catalog = []models.MenuItem{
	{ID: 1, Name: "Kurkure Dahi Ke Kebab (6pc.)", Price: 379, Category: "Veg Starters"},
	{ID: 2, Name: "Peri Peri Potato", Price: 379, Category: "Veg Starters"},
	{ID: 3, Name: "Shahi Bharwan Khumb (6pc.)", Price: 389, Category: "Veg Starters"},
	{ID: 4, Name: "Achari Chaap (6pc.)", Price: 389, Category: "Veg Starters"},
	{ID: 5, Name: "Paneer Angara Tikka (6pc.)", Price: 399, Category: "Veg Starters"},
	{ID: 6, Name: "Paneer Ajwaini Tikka (6pc.)", Price: 399, Category: "Veg Starters"},
	{ID: 7, Name: "Chilli Paneer Dry", Price: 399, Category: "Veg Starters"},
	{ID: 8, Name: "Chilli Mushroom Dry", Price: 389, Category: "Veg Starters"},
	{ID: 9, Name: "Veg Manchurian Dry", Price: 389, Category: "Veg Starters"},
	{ID: 10, Name: "Crispy Corn Kernels", Price: 379, Category: "Veg Starters"},
	{ID: 11, Name: "Churrasco Pineapple", Price: 389, Category: "Veg Starters"},
	{ID: 12, Name: "Cajun Spicy Potato (10pcs)", Price: 275, Category: "Veg Starters"},
	{ID: 13, Name: "Tandoori Chicken Tangri (4pc.)", Price: 489, Category: "Non-Veg Starters"},
	{ID: 14, Name: "Smokey Tandoori Chicken Tikka (6pc.)", Price: 489, Category: "Non-Veg Starters"},
	{ID: 15, Name: "Kastoori Murgh Malai Tikka (6pc.)", Price: 489, Category: "Non-Veg Starters"},
	{ID: 16, Name: "Sarson Ka Macchi Tikka (6pc.)", Price: 569, Category: "Non-Veg Starters"},
	{ID: 17, Name: "Mutton Seekh Kebab (6pc.)", Price: 549, Category: "Non-Veg Starters"},
	{ID: 18, Name: "Chilli Chicken Dry", Price: 489, Category: "Non-Veg Starters"},
	{ID: 19, Name: "Chilli Garlic Fish", Price: 569, Category: "Non-Veg Starters"},
	{ID: 20, Name: "Wok Tossed Lemon Fish", Price: 569, Category: "Non-Veg Starters"},
	{ID: 21, Name: "Pani Puri (8 PCS)", Price: 195, Category: "Street Chaat"},
	{ID: 22, Name: "Dahi Bhalla", Price: 195, Category: "Street Chaat"},
	{ID: 23, Name: "Dahi Puchka", Price: 195, Category: "Street Chaat"},
	{ID: 24, Name: "Papdi Chaat", Price: 195, Category: "Street Chaat"},
	{ID: 25, Name: "Palak Patta Chaat", Price: 195, Category: "Street Chaat"},
	{ID: 26, Name: "Themis Special Masala Dosa", Price: 375, Category: "South Indian"},
	{ID: 27, Name: "Paneer Masala Dosa", Price: 375, Category: "South Indian"},
	{ID: 28, Name: "Masala Uttapam", Price: 365, Category: "South Indian"},
	{ID: 29, Name: "Rice & Rawa Idli (4PCS)", Price: 249, Category: "South Indian"},
	{ID: 30, Name: "Subziyon Ka Mel", Price: 349, Category: "Veg Main Course"},
	{ID: 31, Name: "Dal Dhaba Tadka", Price: 349, Category: "Veg Main Course"},
	{ID: 32, Name: "Paneer Makhani", Price: 410, Category: "Veg Main Course"},
	{ID: 33, Name: "Mushroom Do Pyaza", Price: 375, Category: "Veg Main Course"},
	{ID: 34, Name: "Paneer Lababdaar", Price: 410, Category: "Veg Main Course"},
	{ID: 35, Name: "Paneer Tikka Kadai Masala", Price: 410, Category: "Veg Main Course"},
	{ID: 36, Name: "Dal Makhani", Price: 410, Category: "Veg Main Course"},
	{ID: 37, Name: "Chana Pind Wala", Price: 375, Category: "Veg Main Course"},
	{ID: 38, Name: "Soya Chaap Butter Masala", Price: 375, Category: "Veg Main Course"},
	{ID: 39, Name: "Veg Manchurian Gravy", Price: 339, Category: "Veg Main Course"},
	{ID: 40, Name: "Home Style Chicken Curry", Price: 465, Category: "Non-Veg Main Course"},
	{ID: 41, Name: "Themis Spl. Butter Chicken", Price: 485, Category: "Non-Veg Main Course"},
	{ID: 42, Name: "Kadai Chicken", Price: 485, Category: "Non-Veg Main Course"},
	{ID: 43, Name: "Murgh Bagmati", Price: 485, Category: "Non-Veg Main Course"},
	{ID: 44, Name: "Bhuna Gosht (4pc.)", Price: 545, Category: "Non-Veg Main Course"},
	{ID: 45, Name: "Mutton Rogan Josh (4pc.)", Price: 545, Category: "Non-Veg Main Course"},
	{ID: 46, Name: "Rahra Shikari Gosht (4pc.)", Price: 545, Category: "Non-Veg Main Course"},
	{ID: 47, Name: "Chilli Chicken Gravy", Price: 439, Category: "Non-Veg Main Course"},
	{ID: 48, Name: "Fish in Hot Garlic Sauce", Price: 450, Category: "Non-Veg Main Course"},
	{ID: 49, Name: "Gulab Jamun (2pc.)", Price: 130, Category: "Desserts"},
	{ID: 50, Name: "Moong Dal Ka Halwa", Price: 185, Category: "Desserts"},
	{ID: 51, Name: "Chocolate Brownie with Ice Cream", Price: 275, Category: "Desserts"},
	{ID: 52, Name: "Paan Kulfi 2pcs", Price: 149, Category: "Desserts"},
	{ID: 53, Name: "Malai Kulfi 2pcs", Price: 149, Category: "Desserts"},
	{ID: 54, Name: "Mango Kulfi 2pcs", Price: 149, Category: "Desserts"},
	{ID: 55, Name: "Exotic Veg Pizza", Price: 310, Category: "World Cuisine"},
	{ID: 56, Name: "Margheritta Pizza", Price: 285, Category: "World Cuisine"},
	{ID: 57, Name: "Chicken Tikka Pizza", Price: 355, Category: "World Cuisine"},
	{ID: 58, Name: "Pasta Veg (Red/White/Mix)", Price: 310, Category: "World Cuisine"},
	{ID: 59, Name: "Chicken Pasta (Red/White/Mix)", Price: 355, Category: "World Cuisine"},
	{ID: 60, Name: "Themis Veg Burger", Price: 349, Category: "World Cuisine"},
	{ID: 61, Name: "Grilled Cottage Cheese Burger", Price: 375, Category: "World Cuisine"},
	{ID: 62, Name: "Peri Peri Chicken Burger", Price: 415, Category: "World Cuisine"},
	{ID: 63, Name: "Roast Mutton Burger", Price: 439, Category: "World Cuisine"},
}

// Catalog returns the full menu in id order.
func Catalog() []models.MenuItem {
	return catalog
}
