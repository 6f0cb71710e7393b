package registry

import "sauna-configurator-api/internal/domain"

func int64Ptr(v int64) *int64 { return &v }
func float64Ptr(v float64) *float64 { return &v }

// defaultSteps is the wizard order every family starts from
func defaultSteps() []domain.Step {
	return []domain.Step{
		{ID: domain.StepHeater, Name: "Heater", Route: "/configurator/heater"},
		{ID: domain.StepStones, Name: "Stones", Route: "/configurator/stones"},
		{ID: "lighting", Name: "Lighting", Route: "/configurator/lighting"},
		{ID: domain.StepRearGlassWall, Name: "Rear Glass Wall", Route: "/configurator/rear-glass-wall"},
		{ID: "accessories", Name: "Accessories", Route: "/configurator/accessories"},
		{ID: domain.StepHotTubs, Name: "Hot Tubs", Route: "/configurator/hot-tubs"},
		{ID: domain.StepDelivery, Name: "Delivery", Route: "/configurator/delivery"},
		{ID: domain.StepQuote, Name: "Quote", Route: "/configurator/quote"},
	}
}

// defaultStepData returns the registry step data; imagePrefix selects family imagery
func defaultStepData(imagePrefix string) map[string]domain.StepData {
	return map[string]domain.StepData{
		domain.StepHeater: {
			StepID:        domain.StepHeater,
			Title:         "Choose your heater",
			Description:   "Electric heaters are controlled from the wall panel, wood burners need a flue kit.",
			ImageURL:      "/images/steps/heater.jpg",
			SelectionType: domain.SelectionSingle,
			Required:      true,
			Options: []domain.Option{
				{
					ID:                 "aava-4-7kw",
					Title:              "Aava 4.7kW (20kg)",
					Description:        "Compact electric heater for up to 6m3",
					ImageURL:           "/images/heaters/aava.jpg",
					Price:              895,
					PipedriveProductID: int64Ptr(1101),
					Category:           domain.CategoryHeaterElectric,
					KG:                 float64Ptr(20),
				},
				{
					ID:                 "kajo-6-6kw",
					Title:              "Kajo 6.6kW (80kg)",
					Description:        "Tower heater with a large stone mass for soft steam",
					ImageURL:           "/images/heaters/kajo.jpg",
					Price:              1295,
					PipedriveProductID: int64Ptr(1102),
					Category:           domain.CategoryHeaterElectric,
					KG:                 float64Ptr(80),
				},
				{
					ID:                 "kajo-9kw",
					Title:              "Kajo 9kW (80kg)",
					Description:        "Tower heater for larger cabins",
					ImageURL:           "/images/heaters/kajo.jpg",
					Price:              1495,
					PipedriveProductID: int64Ptr(1103),
					Category:           domain.CategoryHeaterElectric,
					KG:                 float64Ptr(80),
				},
				{
					ID:                 "wood-burning-stove",
					Title:              "Wood Burning Stove (40 kg)",
					Description:        "Traditional wood fired stove including flue kit",
					ImageURL:           "/images/heaters/wood-stove.jpg",
					Price:              1650,
					PipedriveProductID: int64Ptr(1104),
					Category:           domain.CategoryHeaterWood,
					KG:                 float64Ptr(40),
				},
			},
		},
		domain.StepStones: {
			StepID:        domain.StepStones,
			Title:         "Sauna stones",
			Description:   "Stones are sold in 20kg packages.",
			SelectionType: domain.SelectionMulti,
			Required:      false,
			Options: []domain.Option{
				{
					ID:          "stones-according-to-heater",
					Title:       "Stones according to selected heater",
					Description: "The right amount of stones for your heater",
					ImageURL:    "/images/stones/stones.jpg",
					Category:    domain.CategoryHeaterStone,
				},
				{
					ID:                 "extra-stones-package",
					Title:              "Extra stones package (20 kg)",
					Description:        "Spare package for replacing crumbled stones",
					ImageURL:           "/images/stones/stones.jpg",
					Price:              29.50,
					PipedriveProductID: int64Ptr(1201),
					Category:           domain.CategoryHeaterStone,
				},
			},
		},
		"lighting": {
			StepID:        "lighting",
			Title:         "Lighting",
			Description:   "Warm LED lighting options",
			SelectionType: domain.SelectionMulti,
			Required:      false,
			Options: []domain.Option{
				{ID: "led-strip-benches", Title: "LED strip under benches", ImageURL: "/images/lighting/bench-led.jpg", Price: 245, PipedriveProductID: int64Ptr(1301)},
				{ID: "backrest-lights", Title: "Backrest lights", ImageURL: "/images/lighting/backrest.jpg", Price: 195, PipedriveProductID: int64Ptr(1302)},
				{ID: "star-ceiling", Title: "Starry ceiling", ImageURL: "/images/lighting/star-ceiling.jpg", Price: 395, PipedriveProductID: int64Ptr(1303)},
			},
		},
		domain.StepRearGlassWall: {
			StepID:        domain.StepRearGlassWall,
			Title:         "Rear wall",
			Description:   "Choose how the back of your sauna looks",
			SelectionType: domain.SelectionSingle,
			Required:      true,
			Options: []domain.Option{
				{ID: "half-moon", Title: "Glass half moon", Price: 450, PipedriveProductID: int64Ptr(1401), Category: domain.CategoryBackwallHalfMoon},
				{ID: "full-glass-backwall", Title: "Full glass backwall", Price: 1150, PipedriveProductID: int64Ptr(1402), Category: domain.CategoryBackwallFullGlass},
				{ID: "wooden-backwall", Title: "Wooden backwall", Price: 0, Category: domain.CategoryBackwallWooden},
			},
		},
		"accessories": {
			StepID:        "accessories",
			Title:         "Accessories",
			SelectionType: domain.SelectionMulti,
			Required:      false,
			Options: []domain.Option{
				{ID: "bucket-ladle", Title: "Bucket and ladle", ImageURL: "/images/accessories/bucket.jpg", Price: 69, PipedriveProductID: int64Ptr(1501)},
				{ID: "thermo-hygrometer", Title: "Thermometer and hygrometer", ImageURL: "/images/accessories/thermometer.jpg", Price: 49, PipedriveProductID: int64Ptr(1502)},
				{ID: "sand-timer", Title: "Sand timer", ImageURL: "/images/accessories/sand-timer.jpg", Price: 25, PipedriveProductID: int64Ptr(1503)},
			},
		},
		domain.StepHotTubs: {
			StepID:        domain.StepHotTubs,
			Title:         "Add a hot tub",
			SelectionType: domain.SelectionSingle,
			Required:      false,
			Options: []domain.Option{
				{ID: "wood-fired-hot-tub", Title: "Wood fired hot tub", ImageURL: "/images/hot-tubs/wood-fired.jpg", Price: 3950, PipedriveProductID: int64Ptr(1601)},
				{ID: "electric-hot-tub", Title: "Electric hot tub", ImageURL: "/images/hot-tubs/electric.jpg", Price: 4450, PipedriveProductID: int64Ptr(1602)},
			},
		},
		domain.StepDelivery: {
			StepID:        domain.StepDelivery,
			Title:         "Delivery",
			Description:   "Delivery to mainland UK",
			ImageURL:      "/images/steps/" + imagePrefix + "-delivery.jpg",
			SelectionType: domain.SelectionSingle,
			Required:      true,
			Options: []domain.Option{
				{ID: "standard-delivery", Title: "Standard Delivery", Price: 0},
				{ID: "express-delivery", Title: "Express Delivery", Price: 350, Category: domain.CategoryDeliveryExpress},
				{ID: "white-glove-delivery", Title: "White Glove Delivery", Price: 650, Category: domain.CategoryDeliveryWhiteGlove},
				{ID: "collection", Title: "Collect from our warehouse", Price: 0},
			},
		},
	}
}
