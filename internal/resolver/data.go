package resolver

import "github.com/countryflag/countryflag/internal/domain"

// countryTable is the bundled ISO 3166-1 dataset. Entries carry the short
// name, the two- and three-letter codes, the official name and the
// region/subregion grouping used by region lookups.
var countryTable = []domain.CountryInfo{
	// Africa
	{Name: "Algeria", ISO2: "DZ", ISO3: "DZA", OfficialName: "People's Democratic Republic of Algeria", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Angola", ISO2: "AO", ISO3: "AGO", OfficialName: "Republic of Angola", Region: domain.RegionAfrica, Subregion: "Middle Africa"},
	{Name: "Ascension Island", ISO2: "AC", ISO3: "ASC", OfficialName: "Ascension Island", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Benin", ISO2: "BJ", ISO3: "BEN", OfficialName: "Republic of Benin", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Botswana", ISO2: "BW", ISO3: "BWA", OfficialName: "Republic of Botswana", Region: domain.RegionAfrica, Subregion: "Southern Africa"},
	{Name: "Cameroon", ISO2: "CM", ISO3: "CMR", OfficialName: "Republic of Cameroon", Region: domain.RegionAfrica, Subregion: "Middle Africa"},
	{Name: "Egypt", ISO2: "EG", ISO3: "EGY", OfficialName: "Arab Republic of Egypt", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Ethiopia", ISO2: "ET", ISO3: "ETH", OfficialName: "Federal Democratic Republic of Ethiopia", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Ghana", ISO2: "GH", ISO3: "GHA", OfficialName: "Republic of Ghana", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Ivory Coast", ISO2: "CI", ISO3: "CIV", OfficialName: "Republic of Côte d'Ivoire", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Kenya", ISO2: "KE", ISO3: "KEN", OfficialName: "Republic of Kenya", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Libya", ISO2: "LY", ISO3: "LBY", OfficialName: "State of Libya", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Madagascar", ISO2: "MG", ISO3: "MDG", OfficialName: "Republic of Madagascar", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Mali", ISO2: "ML", ISO3: "MLI", OfficialName: "Republic of Mali", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Morocco", ISO2: "MA", ISO3: "MAR", OfficialName: "Kingdom of Morocco", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Mozambique", ISO2: "MZ", ISO3: "MOZ", OfficialName: "Republic of Mozambique", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Namibia", ISO2: "NA", ISO3: "NAM", OfficialName: "Republic of Namibia", Region: domain.RegionAfrica, Subregion: "Southern Africa"},
	{Name: "Nigeria", ISO2: "NG", ISO3: "NGA", OfficialName: "Federal Republic of Nigeria", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "Rwanda", ISO2: "RW", ISO3: "RWA", OfficialName: "Republic of Rwanda", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Senegal", ISO2: "SN", ISO3: "SEN", OfficialName: "Republic of Senegal", Region: domain.RegionAfrica, Subregion: "Western Africa"},
	{Name: "South Africa", ISO2: "ZA", ISO3: "ZAF", OfficialName: "Republic of South Africa", Region: domain.RegionAfrica, Subregion: "Southern Africa"},
	{Name: "Sudan", ISO2: "SD", ISO3: "SDN", OfficialName: "Republic of the Sudan", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Tanzania", ISO2: "TZ", ISO3: "TZA", OfficialName: "United Republic of Tanzania", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Tunisia", ISO2: "TN", ISO3: "TUN", OfficialName: "Republic of Tunisia", Region: domain.RegionAfrica, Subregion: "Northern Africa"},
	{Name: "Uganda", ISO2: "UG", ISO3: "UGA", OfficialName: "Republic of Uganda", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Zambia", ISO2: "ZM", ISO3: "ZMB", OfficialName: "Republic of Zambia", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},
	{Name: "Zimbabwe", ISO2: "ZW", ISO3: "ZWE", OfficialName: "Republic of Zimbabwe", Region: domain.RegionAfrica, Subregion: "Eastern Africa"},

	// Americas
	{Name: "Argentina", ISO2: "AR", ISO3: "ARG", OfficialName: "Argentine Republic", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Bolivia", ISO2: "BO", ISO3: "BOL", OfficialName: "Plurinational State of Bolivia", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Brazil", ISO2: "BR", ISO3: "BRA", OfficialName: "Federative Republic of Brazil", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Canada", ISO2: "CA", ISO3: "CAN", OfficialName: "Canada", Region: domain.RegionAmericas, Subregion: "Northern America"},
	{Name: "Chile", ISO2: "CL", ISO3: "CHL", OfficialName: "Republic of Chile", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Colombia", ISO2: "CO", ISO3: "COL", OfficialName: "Republic of Colombia", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Costa Rica", ISO2: "CR", ISO3: "CRI", OfficialName: "Republic of Costa Rica", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Cuba", ISO2: "CU", ISO3: "CUB", OfficialName: "Republic of Cuba", Region: domain.RegionAmericas, Subregion: "Caribbean"},
	{Name: "Dominican Republic", ISO2: "DO", ISO3: "DOM", OfficialName: "Dominican Republic", Region: domain.RegionAmericas, Subregion: "Caribbean"},
	{Name: "Ecuador", ISO2: "EC", ISO3: "ECU", OfficialName: "Republic of Ecuador", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "El Salvador", ISO2: "SV", ISO3: "SLV", OfficialName: "Republic of El Salvador", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Guatemala", ISO2: "GT", ISO3: "GTM", OfficialName: "Republic of Guatemala", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Haiti", ISO2: "HT", ISO3: "HTI", OfficialName: "Republic of Haiti", Region: domain.RegionAmericas, Subregion: "Caribbean"},
	{Name: "Honduras", ISO2: "HN", ISO3: "HND", OfficialName: "Republic of Honduras", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Jamaica", ISO2: "JM", ISO3: "JAM", OfficialName: "Jamaica", Region: domain.RegionAmericas, Subregion: "Caribbean"},
	{Name: "Mexico", ISO2: "MX", ISO3: "MEX", OfficialName: "United Mexican States", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Nicaragua", ISO2: "NI", ISO3: "NIC", OfficialName: "Republic of Nicaragua", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Panama", ISO2: "PA", ISO3: "PAN", OfficialName: "Republic of Panama", Region: domain.RegionAmericas, Subregion: "Central America"},
	{Name: "Paraguay", ISO2: "PY", ISO3: "PRY", OfficialName: "Republic of Paraguay", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Peru", ISO2: "PE", ISO3: "PER", OfficialName: "Republic of Peru", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "United States", ISO2: "US", ISO3: "USA", OfficialName: "United States of America", Region: domain.RegionAmericas, Subregion: "Northern America"},
	{Name: "Uruguay", ISO2: "UY", ISO3: "URY", OfficialName: "Oriental Republic of Uruguay", Region: domain.RegionAmericas, Subregion: "South America"},
	{Name: "Venezuela", ISO2: "VE", ISO3: "VEN", OfficialName: "Bolivarian Republic of Venezuela", Region: domain.RegionAmericas, Subregion: "South America"},

	// Asia
	{Name: "Afghanistan", ISO2: "AF", ISO3: "AFG", OfficialName: "Islamic Republic of Afghanistan", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Bangladesh", ISO2: "BD", ISO3: "BGD", OfficialName: "People's Republic of Bangladesh", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Cambodia", ISO2: "KH", ISO3: "KHM", OfficialName: "Kingdom of Cambodia", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "China", ISO2: "CN", ISO3: "CHN", OfficialName: "People's Republic of China", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "India", ISO2: "IN", ISO3: "IND", OfficialName: "Republic of India", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Indonesia", ISO2: "ID", ISO3: "IDN", OfficialName: "Republic of Indonesia", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "Iran", ISO2: "IR", ISO3: "IRN", OfficialName: "Islamic Republic of Iran", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Iraq", ISO2: "IQ", ISO3: "IRQ", OfficialName: "Republic of Iraq", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Israel", ISO2: "IL", ISO3: "ISR", OfficialName: "State of Israel", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Japan", ISO2: "JP", ISO3: "JPN", OfficialName: "Japan", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "Jordan", ISO2: "JO", ISO3: "JOR", OfficialName: "Hashemite Kingdom of Jordan", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Kazakhstan", ISO2: "KZ", ISO3: "KAZ", OfficialName: "Republic of Kazakhstan", Region: domain.RegionAsia, Subregion: "Central Asia"},
	{Name: "Kuwait", ISO2: "KW", ISO3: "KWT", OfficialName: "State of Kuwait", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Lebanon", ISO2: "LB", ISO3: "LBN", OfficialName: "Lebanese Republic", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Malaysia", ISO2: "MY", ISO3: "MYS", OfficialName: "Malaysia", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "Mongolia", ISO2: "MN", ISO3: "MNG", OfficialName: "Mongolia", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "Myanmar", ISO2: "MM", ISO3: "MMR", OfficialName: "Republic of the Union of Myanmar", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "Nepal", ISO2: "NP", ISO3: "NPL", OfficialName: "Federal Democratic Republic of Nepal", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "North Korea", ISO2: "KP", ISO3: "PRK", OfficialName: "Democratic People's Republic of Korea", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "Pakistan", ISO2: "PK", ISO3: "PAK", OfficialName: "Islamic Republic of Pakistan", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Philippines", ISO2: "PH", ISO3: "PHL", OfficialName: "Republic of the Philippines", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "Qatar", ISO2: "QA", ISO3: "QAT", OfficialName: "State of Qatar", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Saudi Arabia", ISO2: "SA", ISO3: "SAU", OfficialName: "Kingdom of Saudi Arabia", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Singapore", ISO2: "SG", ISO3: "SGP", OfficialName: "Republic of Singapore", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "South Korea", ISO2: "KR", ISO3: "KOR", OfficialName: "Republic of Korea", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "Sri Lanka", ISO2: "LK", ISO3: "LKA", OfficialName: "Democratic Socialist Republic of Sri Lanka", Region: domain.RegionAsia, Subregion: "Southern Asia"},
	{Name: "Syria", ISO2: "SY", ISO3: "SYR", OfficialName: "Syrian Arab Republic", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Taiwan", ISO2: "TW", ISO3: "TWN", OfficialName: "Republic of China (Taiwan)", Region: domain.RegionAsia, Subregion: "Eastern Asia"},
	{Name: "Thailand", ISO2: "TH", ISO3: "THA", OfficialName: "Kingdom of Thailand", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},
	{Name: "Turkey", ISO2: "TR", ISO3: "TUR", OfficialName: "Republic of Türkiye", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "United Arab Emirates", ISO2: "AE", ISO3: "ARE", OfficialName: "United Arab Emirates", Region: domain.RegionAsia, Subregion: "Western Asia"},
	{Name: "Uzbekistan", ISO2: "UZ", ISO3: "UZB", OfficialName: "Republic of Uzbekistan", Region: domain.RegionAsia, Subregion: "Central Asia"},
	{Name: "Vietnam", ISO2: "VN", ISO3: "VNM", OfficialName: "Socialist Republic of Viet Nam", Region: domain.RegionAsia, Subregion: "South-Eastern Asia"},

	// Europe
	{Name: "Albania", ISO2: "AL", ISO3: "ALB", OfficialName: "Republic of Albania", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Austria", ISO2: "AT", ISO3: "AUT", OfficialName: "Republic of Austria", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Belarus", ISO2: "BY", ISO3: "BLR", OfficialName: "Republic of Belarus", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Belgium", ISO2: "BE", ISO3: "BEL", OfficialName: "Kingdom of Belgium", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Bosnia and Herzegovina", ISO2: "BA", ISO3: "BIH", OfficialName: "Bosnia and Herzegovina", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Bulgaria", ISO2: "BG", ISO3: "BGR", OfficialName: "Republic of Bulgaria", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Croatia", ISO2: "HR", ISO3: "HRV", OfficialName: "Republic of Croatia", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Czechia", ISO2: "CZ", ISO3: "CZE", OfficialName: "Czech Republic", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Denmark", ISO2: "DK", ISO3: "DNK", OfficialName: "Kingdom of Denmark", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Estonia", ISO2: "EE", ISO3: "EST", OfficialName: "Republic of Estonia", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Finland", ISO2: "FI", ISO3: "FIN", OfficialName: "Republic of Finland", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "France", ISO2: "FR", ISO3: "FRA", OfficialName: "French Republic", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Germany", ISO2: "DE", ISO3: "DEU", OfficialName: "Federal Republic of Germany", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Greece", ISO2: "GR", ISO3: "GRC", OfficialName: "Hellenic Republic", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Hungary", ISO2: "HU", ISO3: "HUN", OfficialName: "Hungary", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Iceland", ISO2: "IS", ISO3: "ISL", OfficialName: "Iceland", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Ireland", ISO2: "IE", ISO3: "IRL", OfficialName: "Ireland", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Italy", ISO2: "IT", ISO3: "ITA", OfficialName: "Italian Republic", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Latvia", ISO2: "LV", ISO3: "LVA", OfficialName: "Republic of Latvia", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Lithuania", ISO2: "LT", ISO3: "LTU", OfficialName: "Republic of Lithuania", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Luxembourg", ISO2: "LU", ISO3: "LUX", OfficialName: "Grand Duchy of Luxembourg", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Malta", ISO2: "MT", ISO3: "MLT", OfficialName: "Republic of Malta", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Moldova", ISO2: "MD", ISO3: "MDA", OfficialName: "Republic of Moldova", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Netherlands", ISO2: "NL", ISO3: "NLD", OfficialName: "Kingdom of the Netherlands", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "North Macedonia", ISO2: "MK", ISO3: "MKD", OfficialName: "Republic of North Macedonia", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Norway", ISO2: "NO", ISO3: "NOR", OfficialName: "Kingdom of Norway", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Poland", ISO2: "PL", ISO3: "POL", OfficialName: "Republic of Poland", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Portugal", ISO2: "PT", ISO3: "PRT", OfficialName: "Portuguese Republic", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Romania", ISO2: "RO", ISO3: "ROU", OfficialName: "Romania", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Russia", ISO2: "RU", ISO3: "RUS", OfficialName: "Russian Federation", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Serbia", ISO2: "RS", ISO3: "SRB", OfficialName: "Republic of Serbia", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Slovakia", ISO2: "SK", ISO3: "SVK", OfficialName: "Slovak Republic", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "Slovenia", ISO2: "SI", ISO3: "SVN", OfficialName: "Republic of Slovenia", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Spain", ISO2: "ES", ISO3: "ESP", OfficialName: "Kingdom of Spain", Region: domain.RegionEurope, Subregion: "Southern Europe"},
	{Name: "Sweden", ISO2: "SE", ISO3: "SWE", OfficialName: "Kingdom of Sweden", Region: domain.RegionEurope, Subregion: "Northern Europe"},
	{Name: "Switzerland", ISO2: "CH", ISO3: "CHE", OfficialName: "Swiss Confederation", Region: domain.RegionEurope, Subregion: "Western Europe"},
	{Name: "Ukraine", ISO2: "UA", ISO3: "UKR", OfficialName: "Ukraine", Region: domain.RegionEurope, Subregion: "Eastern Europe"},
	{Name: "United Kingdom", ISO2: "GB", ISO3: "GBR", OfficialName: "United Kingdom of Great Britain and Northern Ireland", Region: domain.RegionEurope, Subregion: "Northern Europe"},

	// Oceania
	{Name: "Australia", ISO2: "AU", ISO3: "AUS", OfficialName: "Commonwealth of Australia", Region: domain.RegionOceania, Subregion: "Australia and New Zealand"},
	{Name: "Fiji", ISO2: "FJ", ISO3: "FJI", OfficialName: "Republic of Fiji", Region: domain.RegionOceania, Subregion: "Melanesia"},
	{Name: "Kiribati", ISO2: "KI", ISO3: "KIR", OfficialName: "Republic of Kiribati", Region: domain.RegionOceania, Subregion: "Micronesia"},
	{Name: "Marshall Islands", ISO2: "MH", ISO3: "MHL", OfficialName: "Republic of the Marshall Islands", Region: domain.RegionOceania, Subregion: "Micronesia"},
	{Name: "New Zealand", ISO2: "NZ", ISO3: "NZL", OfficialName: "New Zealand", Region: domain.RegionOceania, Subregion: "Australia and New Zealand"},
	{Name: "Papua New Guinea", ISO2: "PG", ISO3: "PNG", OfficialName: "Independent State of Papua New Guinea", Region: domain.RegionOceania, Subregion: "Melanesia"},
	{Name: "Samoa", ISO2: "WS", ISO3: "WSM", OfficialName: "Independent State of Samoa", Region: domain.RegionOceania, Subregion: "Polynesia"},
	{Name: "Solomon Islands", ISO2: "SB", ISO3: "SLB", OfficialName: "Solomon Islands", Region: domain.RegionOceania, Subregion: "Melanesia"},
	{Name: "Tonga", ISO2: "TO", ISO3: "TON", OfficialName: "Kingdom of Tonga", Region: domain.RegionOceania, Subregion: "Polynesia"},
	{Name: "Vanuatu", ISO2: "VU", ISO3: "VUT", OfficialName: "Republic of Vanuatu", Region: domain.RegionOceania, Subregion: "Melanesia"},
}

// codeAliases maps alternative ISO2 codes to the canonical code. These come
// from dataset entries that historically carried patterns like "^GB$|^UK$".
var codeAliases = map[string]string{
	"UK": "GB",
	"EL": "GR",
}

// nameAliases maps common alternative spellings to the canonical ISO2 code
var nameAliases = map[string]string{
	"USA":                      "US",
	"America":                  "US",
	"United States of America": "US",
	"Great Britain":            "GB",
	"England":                  "GB",
	"Holland":                  "NL",
	"South Korea (Republic of Korea)": "KR",
	"Burma":          "MM",
	"Cote d'Ivoire":  "CI",
	"Czech Republic": "CZ",
	"Macedonia":      "MK",
	"Turkiye":        "TR",
	"UAE":            "AE",
	"Viet Nam":       "VN",
}
