package pipeline

import "strings"

// LocationExtractor derives a best-effort location from free text. Both
// return values may be empty; extraction never gates acceptance.
type LocationExtractor interface {
	Extract(text string) (locationName, country string)
}

type keywordEntry struct {
	keyword string
	value   string
}

// GazetteerExtractor matches description text against a fixed list of
// landmark and country keywords. Entries are ordered slices, not maps, so
// the first match always wins and extraction is deterministic.
type GazetteerExtractor struct {
	landmarks []keywordEntry
	countries []keywordEntry
}

func NewGazetteerExtractor() *GazetteerExtractor {
	return &GazetteerExtractor{
		landmarks: landmarkKeywords,
		countries: countryKeywords,
	}
}

// Extract checks landmarks first since they are more specific; a landmark hit
// still scans for a country mention. With no landmark, a country alone
// counts.
func (g *GazetteerExtractor) Extract(text string) (string, string) {
	if text == "" {
		return "", ""
	}

	lower := strings.ToLower(text)

	for _, landmark := range g.landmarks {
		if strings.Contains(lower, landmark.keyword) {
			country := ""
			for _, c := range g.countries {
				if strings.Contains(lower, c.keyword) {
					country = c.value
					break
				}
			}
			return landmark.value, country
		}
	}

	for _, c := range g.countries {
		if strings.Contains(lower, c.keyword) {
			return "", c.value
		}
	}

	return "", ""
}

var landmarkKeywords = []keywordEntry{
	// Iceland
	{"jokulsarlon", "Jökulsárlón Glacier Lagoon"},
	{"skogafoss", "Skógafoss"},
	{"seljalandsfoss", "Seljalandsfoss"},
	{"gulfoss", "Gullfoss"},
	{"reynisfjara", "Reynisfjara Black Beach"},
	{"kirkjufell", "Kirkjufell"},

	// USA national parks
	{"yosemite", "Yosemite Valley"},
	{"grand canyon", "Grand Canyon"},
	{"yellowstone", "Yellowstone"},
	{"zion", "Zion National Park"},
	{"bryce canyon", "Bryce Canyon"},
	{"arches", "Arches National Park"},
	{"antelope canyon", "Antelope Canyon"},
	{"crater lake", "Crater Lake"},
	{"death valley", "Death Valley"},
	{"monument valley", "Monument Valley"},
	{"sedona", "Sedona"},
	{"havasu falls", "Havasu Falls"},

	// Canada
	{"banff", "Banff National Park"},
	{"moraine lake", "Moraine Lake"},
	{"lake louise", "Lake Louise"},
	{"peyto lake", "Peyto Lake"},
	{"jasper", "Jasper National Park"},

	// South America
	{"patagonia", "Patagonia"},
	{"torres del paine", "Torres del Paine"},
	{"iguazu", "Iguazu Falls"},
	{"salar de uyuni", "Salar de Uyuni"},
	{"machu picchu", "Machu Picchu"},
	{"atacama", "Atacama Desert"},
	{"perito moreno", "Perito Moreno Glacier"},

	// Europe
	{"dolomites", "Dolomites"},
	{"matterhorn", "Matterhorn"},
	{"lofoten", "Lofoten Islands"},
	{"faroe", "Faroe Islands"},
	{"plitvice", "Plitvice Lakes"},
	{"lake bled", "Lake Bled"},
	{"swiss alps", "Swiss Alps"},
	{"scottish highlands", "Scottish Highlands"},
	{"amalfi", "Amalfi Coast"},
	{"cinque terre", "Cinque Terre"},
	{"santorini", "Santorini"},
	{"meteora", "Meteora"},
	{"cappadocia", "Cappadocia"},
	{"pamukkale", "Pamukkale"},

	// Asia & Oceania
	{"mount fuji", "Mount Fuji"},
	{"zhangjiajie", "Zhangjiajie"},
	{"guilin", "Guilin"},
	{"halong bay", "Halong Bay"},
	{"phi phi", "Phi Phi Islands"},
	{"bali", "Bali"},
	{"milford sound", "Milford Sound"},
	{"mount cook", "Mount Cook"},
	{"lake tekapo", "Lake Tekapo"},

	// Other
	{"uluru", "Uluru"},
	{"twelve apostles", "Twelve Apostles"},
	{"fiordland", "Fiordland"},
}

var countryKeywords = []keywordEntry{
	{"iceland", "Iceland"},
	{"norway", "Norway"},
	{"switzerland", "Switzerland"},
	{"italy", "Italy"},
	{"canada", "Canada"},
	{"new zealand", "New Zealand"},
	{"chile", "Chile"},
	{"bolivia", "Bolivia"},
	{"peru", "Peru"},
	{"greece", "Greece"},
	{"turkey", "Turkey"},
	{"slovenia", "Slovenia"},
	{"croatia", "Croatia"},
	{"scotland", "Scotland"},
	{"japan", "Japan"},
	{"china", "China"},
	{"vietnam", "Vietnam"},
	{"thailand", "Thailand"},
	{"indonesia", "Indonesia"},
	{"australia", "Australia"},
	{"usa", "United States"},
	{"united states", "United States"},
	{"california", "United States"},
	{"arizona", "United States"},
	{"utah", "United States"},
	{"colorado", "United States"},
	{"montana", "United States"},
	{"oregon", "United States"},
	{"washington", "United States"},
}
