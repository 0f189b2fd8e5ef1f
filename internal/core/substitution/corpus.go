package substitution

// ingredientCorpus 相似度排名用的內建食材語料庫
var ingredientCorpus = []string{
	// 乳製品與替代品
	"milk", "almond milk", "soy milk", "coconut milk", "oat milk", "rice milk", "cashew milk",
	"butter", "coconut oil", "olive oil", "margarine", "ghee", "avocado oil",
	"cheese", "nutritional yeast", "cashew cheese", "tofu", "mozzarella", "cheddar", "parmesan",
	"yogurt", "coconut yogurt", "greek yogurt", "plant-based yogurt",
	"cream", "coconut cream", "cashew cream", "heavy cream",

	// 蛋與替代品
	"eggs", "flax eggs", "chia eggs", "applesauce", "banana", "silken tofu",

	// 麵粉與替代品
	"flour", "almond flour", "coconut flour", "oat flour", "whole wheat flour", "rice flour",
	"all-purpose flour", "bread flour", "cake flour", "gluten-free flour",

	// 甜味劑
	"sugar", "honey", "maple syrup", "stevia", "coconut sugar", "brown sugar", "powdered sugar",

	// 一般分類
	"dairy", "plant-based milk", "lactose-free", "vegan cheese", "dairy-free", "vegan",
	"gluten", "gluten-free", "wheat-free", "grain-free",

	// 常見烹飪食材
	"salt", "pepper", "garlic", "onion", "tomato", "potato", "carrot",
	"chicken", "beef", "pork", "fish", "tempeh", "seitan",
}

// Corpus 回傳內建語料庫的副本
func Corpus() []string {
	out := make([]string, len(ingredientCorpus))
	copy(out, ingredientCorpus)
	return out
}
