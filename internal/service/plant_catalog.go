package service

import "verdant_backend/internal/model"

// DefaultPlants is the starter catalog inserted into an empty plants table.
// Each call returns fresh ids.
func DefaultPlants() []model.Plant {
	plants := []model.Plant{
		{
			Name:          "Tomato",
			BotanicalName: "Solanum lycopersicum",
			Description:   "A popular vegetable that's easy to grow and produces abundant fruit. Perfect for beginners.",
			Sunlight:      "High",
			Water:         "Medium",
			Soil:          "Well-draining, rich in organic matter",
			Difficulty:    "Easy",
			GrowingTime:   "60-80 days",
			HarvestSeason: "Summer to Fall",
			CareTips: []string{
				"Stake or cage plants for support",
				"Water consistently to prevent blossom end rot",
				"Prune suckers for better fruit production",
				"Feed with balanced fertilizer every 2 weeks",
			},
			ImageURL: "https://images.unsplash.com/photo-1592921870789-04563d55041c?w=400",
			Category: "Vegetable",
		},
		{
			Name:          "Lettuce",
			BotanicalName: "Lactuca sativa",
			Description:   "Quick-growing leafy green that thrives in cool weather. Harvest continuously for fresh salads.",
			Sunlight:      "Medium",
			Water:         "Medium",
			Soil:          "Loose, well-draining with compost",
			Difficulty:    "Easy",
			GrowingTime:   "30-45 days",
			HarvestSeason: "Spring and Fall",
			CareTips: []string{
				"Plant in succession for continuous harvest",
				"Keep soil consistently moist",
				"Harvest outer leaves first",
				"Provide shade in hot weather",
			},
			ImageURL: "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1?w=400",
			Category: "Vegetable",
		},
		{
			Name:          "Bell Pepper",
			BotanicalName: "Capsicum annuum",
			Description:   "Colorful, sweet peppers that add flavor to any dish. Grows well in warm conditions.",
			Sunlight:      "High",
			Water:         "Medium",
			Soil:          "Well-draining, nutrient-rich",
			Difficulty:    "Medium",
			GrowingTime:   "60-90 days",
			HarvestSeason: "Summer to Fall",
			CareTips: []string{
				"Start indoors 8-10 weeks before last frost",
				"Support plants with stakes",
				"Water deeply but infrequently",
				"Harvest when fruit reaches full size",
			},
			ImageURL: "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400",
			Category: "Vegetable",
		},
		{
			Name:          "Basil",
			BotanicalName: "Ocimum basilicum",
			Description:   "Aromatic herb essential for Italian cooking. Grows quickly and provides abundant leaves.",
			Sunlight:      "High",
			Water:         "Medium",
			Soil:          "Well-draining, moist",
			Difficulty:    "Easy",
			GrowingTime:   "30-40 days",
			HarvestSeason: "Spring to Fall",
			CareTips: []string{
				"Pinch off flowers to promote leaf growth",
				"Harvest regularly to encourage bushiness",
				"Water at the base to prevent mildew",
				"Bring indoors before first frost",
			},
			ImageURL: "https://images.unsplash.com/photo-1618375569909-3c8616cf7733?w=400",
			Category: "Herb",
		},
		{
			Name:          "Strawberry",
			BotanicalName: "Fragaria × ananassa",
			Description:   "Sweet, juicy berries that are perfect for containers or garden beds. Produces runners for propagation.",
			Sunlight:      "High",
			Water:         "Medium",
			Soil:          "Slightly acidic, well-draining",
			Difficulty:    "Easy",
			GrowingTime:   "60-120 days",
			HarvestSeason: "Late Spring to Early Summer",
			CareTips: []string{
				"Mulch around plants to keep berries clean",
				"Remove runners for larger fruit",
				"Fertilize after first harvest",
				"Protect from birds with netting",
			},
			ImageURL: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400",
			Category: "Fruit",
		},
		{
			Name:          "Carrot",
			BotanicalName: "Daucus carota",
			Description:   "Crunchy root vegetable that grows well in loose soil. Great for containers with deep pots.",
			Sunlight:      "High",
			Water:         "Low",
			Soil:          "Loose, sandy, rock-free",
			Difficulty:    "Medium",
			GrowingTime:   "70-80 days",
			HarvestSeason: "Spring and Fall",
			CareTips: []string{
				"Thin seedlings to 2-3 inches apart",
				"Keep soil consistently moist",
				"Avoid fresh manure in soil",
				"Harvest when shoulders emerge",
			},
			ImageURL: "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=400",
			Category: "Vegetable",
		},
		{
			Name:          "Mint",
			BotanicalName: "Mentha",
			Description:   "Vigorous herb with refreshing aroma. Grows aggressively and is best contained.",
			Sunlight:      "Medium",
			Water:         "High",
			Soil:          "Moist, well-draining",
			Difficulty:    "Easy",
			GrowingTime:   "40-50 days",
			HarvestSeason: "Spring to Fall",
			CareTips: []string{
				"Grow in containers to control spread",
				"Harvest regularly to prevent flowering",
				"Water frequently",
				"Divide plants every 2-3 years",
			},
			ImageURL: "https://images.unsplash.com/photo-1628556270448-4d4e4148e1b1?w=400",
			Category: "Herb",
		},
		{
			Name:          "Cucumber",
			BotanicalName: "Cucumis sativus",
			Description:   "Refreshing vegetable that grows on vines. Produces abundantly with proper care.",
			Sunlight:      "High",
			Water:         "High",
			Soil:          "Rich, well-draining",
			Difficulty:    "Easy",
			GrowingTime:   "50-70 days",
			HarvestSeason: "Summer",
			CareTips: []string{
				"Provide trellis for vertical growth",
				"Water deeply and consistently",
				"Harvest frequently for more production",
				"Mulch to retain moisture",
			},
			ImageURL: "https://images.unsplash.com/photo-1604977042946-1eecc30f269e?w=400",
			Category: "Vegetable",
		},
	}

	for i := range plants {
		plants[i].ID = model.GenerateUUID()
	}
	return plants
}
