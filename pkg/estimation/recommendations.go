package estimation

import "Genie-Expiry-Tracker/domain"

var (
	storageRecommendations = map[domain.StorageCondition][]string{
		domain.StorageRefrigerator: {
			"Store at 40°F (4°C) or below",
			"Keep in original packaging or airtight container",
			"Place on appropriate shelf (raw meat on bottom)",
			"Check temperature regularly",
		},
		domain.StorageFreezer: {
			"Store at 0°F (-18°C) or below",
			"Use freezer-safe containers or wrap",
			"Label with date frozen",
			"Use within recommended timeframe for best quality",
		},
		domain.StorageRoom: {
			"Store in cool, dry place",
			"Keep away from direct sunlight",
			"Ensure good air circulation",
			"Check for signs of spoilage regularly",
		},
	}

	categoryTips = map[string][]string{
		domain.CategoryDairy: {
			"Always check smell and texture before consuming",
			"Don't leave dairy products at room temperature for more than 2 hours",
			"Store milk in the main body of refrigerator, not the door",
		},
		domain.CategoryMeat: {
			"Use a food thermometer to ensure safe cooking temperatures",
			"Never leave raw meat at room temperature for more than 2 hours",
			"Store raw meat on the bottom shelf to prevent drips",
		},
		domain.CategoryVegetables: {
			"Wash thoroughly before eating, even pre-washed items",
			"Store most vegetables in the refrigerator crisper drawer",
			"Some vegetables like potatoes and onions prefer cool, dark places",
		},
		domain.CategoryFruits: {
			"Some fruits continue to ripen after purchase",
			"Store ethylene-producing fruits separately",
			"Wash fruits just before eating to prevent premature spoilage",
		},
	}

	generalTips = []string{
		"Follow the 'when in doubt, throw it out' rule",
		"Trust your senses - look, smell, and feel for signs of spoilage",
		"Keep your refrigerator clean and at proper temperature",
	}
)

// StorageRecommendations returns a fresh copy; unknown conditions get the
// refrigerator list.
func StorageRecommendations(storage domain.StorageCondition) []string {
	recs, ok := storageRecommendations[storage]
	if !ok {
		recs = storageRecommendations[domain.StorageRefrigerator]
	}
	return append([]string(nil), recs...)
}

func SafetyTips(category string) []string {
	tips, ok := categoryTips[category]
	if !ok {
		tips = generalTips
	}
	return append([]string(nil), tips...)
}
