package feature

// Seeds returns the hand-authored records that open every generated dataset.
// Together they cover all seven continents and all ten categories.
func Seeds() Collection {
	return Collection{
		{ID: 1, Continent: Asia, Category: Mountains, Name: "Mount Everest", Coordinates: LatLng{27.9881, 86.9250},
			Details: "Highest peak in the world (8,848m), located in the Himalayas, Nepal/China border."},
		{ID: 2, Continent: Africa, Category: Rivers, Name: "Nile River", Coordinates: LatLng{15.6333, 32.5333},
			Details: "Longest river in Africa (6,650km), flowing north through eleven countries to the Mediterranean."},
		{ID: 3, Continent: SouthAmerica, Category: Forests, Name: "Amazon Rainforest", Coordinates: LatLng{-3.4653, -62.2159},
			Details: "Largest tropical rainforest on Earth (5.5 million km²), home to ten percent of known species."},
		{ID: 4, Continent: Africa, Category: Deserts, Name: "Sahara Desert", Coordinates: LatLng{23.4162, 25.6628},
			Details: "Largest hot desert in the world (9.2 million km²), spanning North Africa."},
		{ID: 5, Continent: Asia, Category: Lakes, Name: "Lake Baikal", Coordinates: LatLng{53.5587, 108.1650},
			Details: "Deepest lake in the world (1,642m), holding a fifth of the planet's unfrozen fresh water, Siberia."},
		{ID: 6, Continent: Antarctica, Category: Glaciers, Name: "Lambert Glacier", Coordinates: LatLng{-73.0, 70.0},
			Details: "Largest glacier in the world (400km long), draining the East Antarctic Ice Sheet."},
		{ID: 7, Continent: Asia, Category: Plateaus, Name: "Tibetan Plateau", Coordinates: LatLng{33.0, 88.0},
			Details: "Highest and largest plateau on Earth (average 4,500m), known as the Roof of the World."},
		{ID: 8, Continent: Asia, Category: Dams, Name: "Three Gorges Dam", Coordinates: LatLng{30.8230, 111.0035},
			Details: "World's largest power station by capacity (22,500 MW) on the Yangtze River, China."},
		{ID: 9, Continent: Asia, Category: Passes, Name: "Khyber Pass", Coordinates: LatLng{34.0900, 71.1000},
			Details: "Historic mountain pass linking Afghanistan and Pakistan through the Spin Ghar range."},
		{ID: 10, Continent: SouthAmerica, Category: Wetlands, Name: "Pantanal", Coordinates: LatLng{-17.6, -57.4},
			Details: "World's largest tropical wetland (150,000 km²), across Brazil, Bolivia and Paraguay."},
		{ID: 11, Continent: Europe, Category: Mountains, Name: "Mont Blanc", Coordinates: LatLng{45.8326, 6.8652},
			Details: "Highest peak in the Alps (4,806m), on the France/Italy border."},
		{ID: 12, Continent: NorthAmerica, Category: Rivers, Name: "Mississippi River", Coordinates: LatLng{35.1495, -90.0490},
			Details: "Chief river of the largest drainage basin in North America (3,730km)."},
		{ID: 13, Continent: NorthAmerica, Category: Lakes, Name: "Lake Superior", Coordinates: LatLng{47.7, -87.5},
			Details: "Largest of the Great Lakes by surface area (82,100 km²), USA/Canada border."},
		{ID: 14, Continent: NorthAmerica, Category: Dams, Name: "Hoover Dam", Coordinates: LatLng{36.0160, -114.7377},
			Details: "Concrete arch-gravity dam on the Colorado River (2,080 MW), Nevada/Arizona border."},
		{ID: 15, Continent: Australia, Category: Deserts, Name: "Great Victoria Desert", Coordinates: LatLng{-29.0, 127.5},
			Details: "Largest desert in Australia (348,750 km²), spanning Western and South Australia."},
		{ID: 16, Continent: Australia, Category: Forests, Name: "Daintree Rainforest", Coordinates: LatLng{-16.1700, 145.4185},
			Details: "Oldest continuously surviving tropical rainforest (180 million years), Queensland."},
		{ID: 17, Continent: Australia, Category: Wetlands, Name: "Kakadu Wetlands", Coordinates: LatLng{-12.5, 132.5},
			Details: "Ramsar-listed floodplains in Kakadu National Park, Northern Territory."},
		{ID: 18, Continent: Europe, Category: Passes, Name: "Saint Gotthard Pass", Coordinates: LatLng{46.5594, 8.5619},
			Details: "Alpine pass (2,106m) on the main north-south route through Switzerland."},
		{ID: 19, Continent: Antarctica, Category: Plateaus, Name: "Antarctic Plateau", Coordinates: LatLng{-82.0, 75.0},
			Details: "Vast polar plateau (average 3,000m) around the South Pole, coldest place on Earth."},
		{ID: 20, Continent: Africa, Category: Mountains, Name: "Mount Kilimanjaro", Coordinates: LatLng{-3.0674, 37.3556},
			Details: "Highest peak in Africa (5,895m), a dormant volcano in Tanzania."},
	}
}
