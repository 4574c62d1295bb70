package constants

type AvocadoType string

const (
	TypeConventional AvocadoType = "conventional"
	TypeOrganic      AvocadoType = "organic"
)

// AvocadoTypes in presentation order.
var AvocadoTypes = []AvocadoType{TypeConventional, TypeOrganic}

// Years selectable in the UI. The dataset covers 2015-2018; later years are
// allowed so the model can extrapolate.
var Years = []int{2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024, 2025, 2026}

// Regions is the closed set of region names the model was trained on. Owned
// here and referenced by both the API and the web form.
var Regions = []string{
	"Albany", "Atlanta", "BaltimoreWashington", "Boise", "Boston",
	"BuffaloRochester", "California", "Charlotte", "Chicago", "CincinnatiDayton",
	"Columbus", "DallasFtWorth", "Denver", "Detroit", "GrandRapids",
	"GreatLakes", "HarrisburgScranton", "HartfordSpringfield", "Houston", "Indianapolis",
	"Jacksonville", "LasVegas", "LosAngeles", "Louisville", "MiamiFtLauderdale",
	"Midsouth", "Nashville", "NewOrleansMobile", "NewYork", "Northeast",
	"NorthernNewEngland", "Orlando", "Philadelphia", "PhoenixTucson", "Pittsburgh",
	"Plains", "Portland", "RaleighGreensboro", "RichmondNorfolk", "Roanoke",
	"Sacramento", "SanDiego", "SanFrancisco", "Seattle", "SouthCarolina",
	"SouthCentral", "Southeast", "Spokane", "StLouis", "Syracuse",
	"Tampa", "TotalUS", "West", "WestTexNewMexico",
}
