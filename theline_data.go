package main

// Built-in card sets for The Line, grouped by sorting category.

var lineEvents = []LineEvent{
	// Weight (kilograms)
	{ID: "W01", Title: "Electron", SortingCategory: "Weight", Funfact: "An electron weighs about a billionth of a billionth of a billionth of a gram.", DisplayValue: "9.11E-31", Unit: "kg", SortingValue: 9.11e-31},
	{ID: "W02", Title: "Water Molecule", SortingCategory: "Weight", Funfact: "A single drop of water contains more molecules than there are stars in the galaxy.", DisplayValue: "3.00E-26", Unit: "kg", SortingValue: 3.0e-26},
	{ID: "W03", Title: "Red Blood Cell", SortingCategory: "Weight", Funfact: "Your body produces around two million red blood cells every second.", DisplayValue: "2.70E-14", Unit: "kg", SortingValue: 2.7e-14},
	{ID: "W04", Title: "Grain of Sand", SortingCategory: "Weight", Funfact: "A typical beach holds billions of grains per cubic meter.", DisplayValue: "2.60E-06", Unit: "kg", SortingValue: 2.6e-6},
	{ID: "W05", Title: "Honeybee", SortingCategory: "Weight", Funfact: "A honeybee can carry nectar weighing almost as much as itself.", DisplayValue: "0.00011", Unit: "kg", SortingValue: 1.1e-4},
	{ID: "W06", Title: "Golf Ball", SortingCategory: "Weight", Funfact: "The rules of golf set a maximum ball weight, not a minimum.", DisplayValue: "0.046", Unit: "kg", SortingValue: 0.046},
	{ID: "W07", Title: "Chicken", SortingCategory: "Weight", Funfact: "There are roughly three chickens for every human on Earth.", DisplayValue: "2.5", Unit: "kg", SortingValue: 2.5},
	{ID: "W08", Title: "Cheetah", SortingCategory: "Weight", Funfact: "Cheetahs are lightweights among big cats, built for speed over strength.", DisplayValue: "50", Unit: "kg", SortingValue: 50},
	{ID: "W09", Title: "Grand Piano", SortingCategory: "Weight", Funfact: "The strings of a grand piano exert around 20 tonnes of combined tension.", DisplayValue: "450", Unit: "kg", SortingValue: 450},
	{ID: "W10", Title: "African Elephant", SortingCategory: "Weight", Funfact: "An elephant's trunk alone can weigh more than an adult human.", DisplayValue: "6,000", Unit: "kg", SortingValue: 6000},
	{ID: "W11", Title: "Eiffel Tower", SortingCategory: "Weight", Funfact: "The iron lattice grows about 15 cm taller on hot summer days.", DisplayValue: "1.01E+07", Unit: "kg", SortingValue: 1.01e7},
	{ID: "W12", Title: "Blue Whale", SortingCategory: "Weight", Funfact: "A blue whale's heart is the size of a small car.", DisplayValue: "150,000", Unit: "kg", SortingValue: 150000},

	// Speed (km/h)
	{ID: "S01", Title: "Garden Snail", SortingCategory: "Speed", Funfact: "At top speed a snail would need about a month to travel a marathon.", DisplayValue: "0.05", Unit: "km/h", SortingValue: 0.05},
	{ID: "S02", Title: "Three-Toed Sloth", SortingCategory: "Speed", Funfact: "Sloths move so slowly that algae grows in their fur.", DisplayValue: "0.27", Unit: "km/h", SortingValue: 0.27},
	{ID: "S03", Title: "Walking Human", SortingCategory: "Speed", Funfact: "The average walking pace has barely changed since it was first measured.", DisplayValue: "5", Unit: "km/h", SortingValue: 5},
	{ID: "S04", Title: "Olympic Swimmer", SortingCategory: "Speed", Funfact: "Elite swimmers are still slower than a casual cyclist.", DisplayValue: "8.5", Unit: "km/h", SortingValue: 8.5},
	{ID: "S05", Title: "Usain Bolt", SortingCategory: "Speed", Funfact: "Bolt hit his record top speed between the 60 and 80 meter marks.", DisplayValue: "44.7", Unit: "km/h", SortingValue: 44.7},
	{ID: "S06", Title: "Racehorse", SortingCategory: "Speed", Funfact: "The fastest recorded racehorse sprint has stood since 2008.", DisplayValue: "70", Unit: "km/h", SortingValue: 70},
	{ID: "S07", Title: "Cheetah", SortingCategory: "Speed", Funfact: "A cheetah accelerates faster than most sports cars.", DisplayValue: "120", Unit: "km/h", SortingValue: 120},
	{ID: "S08", Title: "Shinkansen", SortingCategory: "Speed", Funfact: "Japan's bullet trains average a delay of under a minute per year.", DisplayValue: "320", Unit: "km/h", SortingValue: 320},
	{ID: "S09", Title: "Peregrine Falcon", SortingCategory: "Speed", Funfact: "In a hunting dive the peregrine is the fastest animal alive.", DisplayValue: "389", Unit: "km/h", SortingValue: 389},
	{ID: "S10", Title: "Jet Airliner", SortingCategory: "Speed", Funfact: "Cruising airliners cover a football field in under half a second.", DisplayValue: "900", Unit: "km/h", SortingValue: 900},
	{ID: "S11", Title: "Speed of Sound", SortingCategory: "Speed", Funfact: "Thunder is lightning heard at the speed of sound.", DisplayValue: "1,235", Unit: "km/h", SortingValue: 1235},
	{ID: "S12", Title: "International Space Station", SortingCategory: "Speed", Funfact: "The ISS circles the planet roughly every 90 minutes.", DisplayValue: "27,600", Unit: "km/h", SortingValue: 27600},
}

func lineCategories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, 4)
	for _, e := range lineEvents {
		if !seen[e.SortingCategory] {
			seen[e.SortingCategory] = true
			categories = append(categories, e.SortingCategory)
		}
	}
	return categories
}

func lineEventsByCategory(category string) []LineEvent {
	events := make([]LineEvent, 0, len(lineEvents))
	for _, e := range lineEvents {
		if e.SortingCategory == category {
			events = append(events, e)
		}
	}
	return events
}
