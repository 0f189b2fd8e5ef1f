package recommend

// IngredientInfo 靜態食材資料：過敏原標籤與味道標籤
type IngredientInfo struct {
	Name      string   `json:"name"`
	Allergens []string `json:"allergens"`
	Tastes    []string `json:"tastes"`
}

// ingredientTable 推薦用食材表；切片保持插入順序，供同分穩定排序
var ingredientTable = []IngredientInfo{
	{"milk", []string{"dairy", "lactose"}, []string{"creamy", "sweet"}},
	{"almond milk", []string{"nuts"}, []string{"nutty", "creamy"}},
	{"coconut milk", []string{}, []string{"creamy", "sweet", "tropical"}},
	{"soy milk", []string{"soy"}, []string{"creamy", "nutty"}},
	{"butter", []string{"dairy"}, []string{"creamy", "rich", "salty"}},
	{"coconut oil", []string{}, []string{"creamy", "sweet"}},
	{"olive oil", []string{}, []string{"fruity", "peppery"}},
	{"cheese", []string{"dairy"}, []string{"salty", "savory", "creamy"}},
	{"nutritional yeast", []string{}, []string{"savory", "nutty", "cheesy"}},
	{"cashew cheese", []string{"nuts"}, []string{"creamy", "nutty", "savory"}},
	{"eggs", []string{"egg"}, []string{"rich", "creamy"}},
	{"flax eggs", []string{}, []string{"nutty", "earthy"}},
	{"chia eggs", []string{}, []string{"nutty", "earthy"}},
	{"applesauce", []string{}, []string{"sweet", "fruity"}},
	{"flour", []string{"gluten", "wheat"}, []string{"neutral", "earthy"}},
	{"almond flour", []string{"nuts"}, []string{"nutty", "sweet"}},
	{"coconut flour", []string{}, []string{"sweet", "tropical"}},
	{"sugar", []string{}, []string{"sweet", "sugary"}},
	{"honey", []string{}, []string{"sweet", "floral"}},
	{"maple syrup", []string{}, []string{"sweet", "woody"}},
	{"stevia", []string{}, []string{"sweet", "bitter"}},
	{"vanilla", []string{}, []string{"sweet", "floral", "aromatic"}},
	{"chocolate", []string{}, []string{"sweet", "bitter", "rich"}},
	{"cinnamon", []string{}, []string{"sweet", "spicy", "warm"}},
	{"garlic", []string{}, []string{"pungent", "spicy", "savory"}},
	{"lemon", []string{}, []string{"sour", "citrus", "fresh"}},
	{"basil", []string{}, []string{"fresh", "herbal", "slightly sweet"}},
	{"ginger", []string{}, []string{"spicy", "pungent", "warm"}},
	{"mint", []string{}, []string{"fresh", "cool", "slightly sweet"}},
}

// allergenTable 食材過敏原查核表（allergy-check 端點使用）
var allergenTable = map[string][]string{
	"milk":     {"dairy", "lactose"},
	"cheese":   {"dairy", "lactose"},
	"butter":   {"dairy", "lactose"},
	"cream":    {"dairy", "lactose"},
	"yogurt":   {"dairy", "lactose"},
	"almond":   {"nuts"},
	"walnut":   {"nuts"},
	"cashew":   {"nuts"},
	"pecan":    {"nuts"},
	"hazelnut": {"nuts"},
	"peanut":   {"nuts"},
	"wheat":    {"gluten"},
	"flour":    {"gluten"},
	"bread":    {"gluten"},
	"pasta":    {"gluten"},
	"egg":      {"egg"},
	"eggs":     {"egg"},
	"soy":      {"soy"},
	"tofu":     {"soy"},
	"soybean":  {"soy"},
	"fish":     {"fish"},
	"salmon":   {"fish"},
	"tuna":     {"fish"},
	"shrimp":   {"shellfish"},
	"crab":     {"shellfish"},
	"lobster":  {"shellfish"},
}

// IngredientTable 回傳食材表（唯讀用途）
func IngredientTable() []IngredientInfo {
	return ingredientTable
}
