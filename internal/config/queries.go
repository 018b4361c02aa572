package config

// DefaultSearchQueries returns the built-in search terms, grouped by terrain
// type to keep the collected set diverse.
func DefaultSearchQueries() []string {
	return []string{
		// Water features
		"turquoise waterfall",
		"cascade waterfall",
		"natural hot springs",
		"geyser eruption",
		"thermal pool",
		"crystal clear lake",
		"glacier lake",
		"alpine lake reflection",

		// Mountains & peaks
		"jagged mountain peaks",
		"snow capped mountains",
		"volcanic crater",
		"volcanic landscape",
		"alpine meadow",
		"mountain summit",

		// Canyons & valleys
		"slot canyon",
		"red rock canyon",
		"canyon walls",
		"valley vista",
		"gorge landscape",

		// Caves & formations
		"sea cave",
		"limestone cave",
		"rock formations",
		"natural arch",
		"hoodoos rock",

		// Deserts
		"sand dunes sunset",
		"desert oasis",
		"salt flats",
		"badlands landscape",
		"sandstone formations",

		// Coastal
		"sea cliffs",
		"rocky coastline",
		"fjord landscape",
		"island aerial view",
		"lagoon tropical",

		// Ice & snow
		"glacier panorama",
		"ice cave blue",
		"frozen waterfall",
		"aurora landscape",
		"tundra landscape",

		// Unique features
		"terraced rice fields",
		"lava field",
		"karst mountains",
		"bioluminescent bay",
		"rainbow eucalyptus",
		"lavender fields",
		"tulip fields",
		"cherry blossom mountain",
	}
}
