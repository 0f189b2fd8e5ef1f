package flavor

// TasteProfile 味覺輪廓，各軸 0–10
type TasteProfile struct {
	Sweetness  int `json:"sweetness"`
	Bitterness int `json:"bitterness"`
	Acidity    int `json:"acidity"`
	Umami      int `json:"umami"`
	Intensity  int `json:"intensity"`
}

// Record 單一食材的風味紀錄
type Record struct {
	Name               string       `json:"name"`
	PrimaryFlavors     []string     `json:"primary_flavors"`
	SecondaryFlavors   []string     `json:"secondary_flavors"`
	AromaCompounds     []string     `json:"aroma_compounds"`
	TasteProfile       TasteProfile `json:"taste_profile"`
	PairingSuggestions []string     `json:"pairing_suggestions"`
	Categories         []string     `json:"categories"`
	ChemicalNotes      string       `json:"chemical_notes,omitempty"`
	CommonUses         []string     `json:"common_uses,omitempty"`
}

// flavorCorpus 靜態風味資料庫；鍵一律小寫
var flavorCorpus = map[string]*Record{
	"vanilla": {
		Name:               "vanilla",
		PrimaryFlavors:     []string{"sweet", "creamy", "floral"},
		SecondaryFlavors:   []string{"woody", "smoky", "spicy"},
		AromaCompounds:     []string{"vanillin", "eugenol", "p-hydroxybenzaldehyde"},
		TasteProfile:       TasteProfile{Sweetness: 9, Bitterness: 2, Acidity: 1, Umami: 1, Intensity: 7},
		PairingSuggestions: []string{"chocolate", "coffee", "caramel", "berries", "cream"},
		Categories:         []string{"spice", "aromatic", "sweet"},
		ChemicalNotes:      "Contains vanillin (4-hydroxy-3-methoxybenzaldehyde) as primary flavor compound",
		CommonUses:         []string{"baking", "desserts", "beverages", "perfumes"},
	},
	"chocolate": {
		Name:               "chocolate",
		PrimaryFlavors:     []string{"sweet", "bitter", "rich"},
		SecondaryFlavors:   []string{"nutty", "fruity", "spicy"},
		AromaCompounds:     []string{"theobromine", "phenylethylamine", "vanillin"},
		TasteProfile:       TasteProfile{Sweetness: 6, Bitterness: 7, Acidity: 3, Umami: 2, Intensity: 8},
		PairingSuggestions: []string{"vanilla", "coffee", "nuts", "berries", "caramel"},
		Categories:         []string{"sweet", "bitter", "rich"},
		ChemicalNotes:      "Contains theobromine and phenylethylamine compounds",
		CommonUses:         []string{"desserts", "baking", "beverages", "confectionery"},
	},
	"garlic": {
		Name:               "garlic",
		PrimaryFlavors:     []string{"pungent", "savory", "spicy"},
		SecondaryFlavors:   []string{"sweet", "earthy", "metallic"},
		AromaCompounds:     []string{"allicin", "diallyl disulfide", "ajoene"},
		TasteProfile:       TasteProfile{Sweetness: 2, Bitterness: 3, Acidity: 1, Umami: 6, Intensity: 9},
		PairingSuggestions: []string{"onion", "herbs", "tomato", "lemon", "olive oil"},
		Categories:         []string{"allium", "pungent", "savory"},
		ChemicalNotes:      "Allicin provides characteristic pungent flavor and aroma",
		CommonUses:         []string{"cooking", "sauces", "seasoning", "medicine"},
	},
	"lemon": {
		Name:               "lemon",
		PrimaryFlavors:     []string{"citrus", "sour", "fresh"},
		SecondaryFlavors:   []string{"sweet", "floral", "tangy"},
		AromaCompounds:     []string{"limonene", "citral", "linalool"},
		TasteProfile:       TasteProfile{Sweetness: 3, Bitterness: 2, Acidity: 9, Umami: 1, Intensity: 7},
		PairingSuggestions: []string{"herbs", "fish", "chicken", "vegetables", "tea"},
		Categories:         []string{"citrus", "sour", "fresh"},
		ChemicalNotes:      "High in citric acid and limonene compounds",
		CommonUses:         []string{"beverages", "cooking", "baking", "cleaning"},
	},
	"cinnamon": {
		Name:               "cinnamon",
		PrimaryFlavors:     []string{"sweet", "spicy", "warm"},
		SecondaryFlavors:   []string{"woody", "earthy", "slightly bitter"},
		AromaCompounds:     []string{"cinnamaldehyde", "eugenol", "coumarin"},
		TasteProfile:       TasteProfile{Sweetness: 6, Bitterness: 3, Acidity: 2, Umami: 2, Intensity: 7},
		PairingSuggestions: []string{"apple", "coffee", "chocolate", "vanilla", "nuts"},
		Categories:         []string{"spice", "warm", "sweet"},
		ChemicalNotes:      "Cinnamaldehyde provides characteristic spicy-sweet flavor",
		CommonUses:         []string{"baking", "beverages", "curries", "desserts"},
	},
	"coffee": {
		Name:               "coffee",
		PrimaryFlavors:     []string{"bitter", "rich", "roasted"},
		SecondaryFlavors:   []string{"chocolate", "nutty", "fruity"},
		AromaCompounds:     []string{"caffeine", "chlorogenic acids", "furans"},
		TasteProfile:       TasteProfile{Sweetness: 2, Bitterness: 8, Acidity: 4, Umami: 3, Intensity: 9},
		PairingSuggestions: []string{"chocolate", "vanilla", "nuts", "caramel", "cream"},
		Categories:         []string{"bitter", "beverage", "roasted"},
		ChemicalNotes:      "Contains caffeine and chlorogenic acid compounds",
		CommonUses:         []string{"beverages", "desserts", "flavoring"},
	},
	"basil": {
		Name:               "basil",
		PrimaryFlavors:     []string{"herbal", "sweet", "peppery"},
		SecondaryFlavors:   []string{"minty", "clovelike", "anise"},
		AromaCompounds:     []string{"linalool", "eugenol", "methyl chavicol"},
		TasteProfile:       TasteProfile{Sweetness: 4, Bitterness: 3, Acidity: 2, Umami: 2, Intensity: 6},
		PairingSuggestions: []string{"tomato", "mozzarella", "olive oil", "garlic", "lemon"},
		Categories:         []string{"herb", "fresh", "aromatic"},
		ChemicalNotes:      "Linalool and eugenol provide characteristic aroma",
		CommonUses:         []string{"cooking", "salads", "sauces", "pesto"},
	},
	"ginger": {
		Name:               "ginger",
		PrimaryFlavors:     []string{"spicy", "pungent", "warm"},
		SecondaryFlavors:   []string{"sweet", "earthy", "citrus"},
		AromaCompounds:     []string{"gingerol", "shogaol", "zingerone"},
		TasteProfile:       TasteProfile{Sweetness: 3, Bitterness: 4, Acidity: 2, Umami: 3, Intensity: 8},
		PairingSuggestions: []string{"garlic", "soy sauce", "lemon", "honey", "vegetables"},
		Categories:         []string{"spice", "pungent", "warm"},
		ChemicalNotes:      "Gingerol compounds provide spicy warming sensation",
		CommonUses:         []string{"cooking", "tea", "medicine", "baking"},
	},
	"honey": {
		Name:               "honey",
		PrimaryFlavors:     []string{"sweet", "floral", "fruity"},
		SecondaryFlavors:   []string{"earthy", "herbal", "spicy"},
		AromaCompounds:     []string{"fructose", "glucose", "volatile organic compounds"},
		TasteProfile:       TasteProfile{Sweetness: 10, Bitterness: 1, Acidity: 2, Umami: 1, Intensity: 6},
		PairingSuggestions: []string{"tea", "lemon", "yogurt", "nuts", "fruits"},
		Categories:         []string{"sweet", "natural", "golden"},
		ChemicalNotes:      "Complex mixture of sugars and floral compounds",
		CommonUses:         []string{"sweetener", "baking", "beverages", "medicine"},
	},
	"mint": {
		Name:               "mint",
		PrimaryFlavors:     []string{"cool", "fresh", "herbal"},
		SecondaryFlavors:   []string{"sweet", "spicy", "slightly bitter"},
		AromaCompounds:     []string{"menthol", "menthone", "limonene"},
		TasteProfile:       TasteProfile{Sweetness: 3, Bitterness: 2, Acidity: 1, Umami: 1, Intensity: 7},
		PairingSuggestions: []string{"chocolate", "lemon", "tea", "lamb", "vegetables"},
		Categories:         []string{"herb", "cool", "fresh"},
		ChemicalNotes:      "Menthol provides cooling sensation",
		CommonUses:         []string{"beverages", "desserts", "garnish", "medicine"},
	},
}
