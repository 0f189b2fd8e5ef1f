package nutrition

// Facts 單一食材每 100 克的營養值
type Facts struct {
	Ingredient string  `json:"ingredient"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Unit       string  `json:"unit"`
}

const per100g = "per 100g"

// calorieTable 常見食材的靜態營養表，鍵一律小寫
var calorieTable = map[string]Facts{
	"milk":           {Ingredient: "milk", Calories: 42, Protein: 3.4, Carbs: 5.0, Fat: 1.0, Unit: per100g},
	"butter":         {Ingredient: "butter", Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81.1, Unit: per100g},
	"cheese":         {Ingredient: "cheese", Calories: 402, Protein: 25.0, Carbs: 1.3, Fat: 33.1, Unit: per100g},
	"eggs":           {Ingredient: "eggs", Calories: 155, Protein: 13.0, Carbs: 1.1, Fat: 11.0, Unit: per100g},
	"flour":          {Ingredient: "flour", Calories: 364, Protein: 10.3, Carbs: 76.3, Fat: 1.0, Unit: per100g},
	"sugar":          {Ingredient: "sugar", Calories: 387, Protein: 0, Carbs: 100.0, Fat: 0, Unit: per100g},
	"rice":           {Ingredient: "rice", Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, Unit: per100g},
	"chicken":        {Ingredient: "chicken", Calories: 165, Protein: 31.0, Carbs: 0, Fat: 3.6, Unit: per100g},
	"beef":           {Ingredient: "beef", Calories: 250, Protein: 26.0, Carbs: 0, Fat: 15.0, Unit: per100g},
	"pork":           {Ingredient: "pork", Calories: 242, Protein: 27.3, Carbs: 0, Fat: 14.0, Unit: per100g},
	"salmon":         {Ingredient: "salmon", Calories: 208, Protein: 20.4, Carbs: 0, Fat: 13.4, Unit: per100g},
	"tuna":           {Ingredient: "tuna", Calories: 132, Protein: 28.0, Carbs: 0, Fat: 1.3, Unit: per100g},
	"shrimp":         {Ingredient: "shrimp", Calories: 99, Protein: 24.0, Carbs: 0.2, Fat: 0.3, Unit: per100g},
	"tofu":           {Ingredient: "tofu", Calories: 76, Protein: 8.0, Carbs: 1.9, Fat: 4.8, Unit: per100g},
	"yogurt":         {Ingredient: "yogurt", Calories: 59, Protein: 10.0, Carbs: 3.6, Fat: 0.4, Unit: per100g},
	"cream":          {Ingredient: "cream", Calories: 340, Protein: 2.1, Carbs: 2.8, Fat: 36.1, Unit: per100g},
	"olive oil":      {Ingredient: "olive oil", Calories: 884, Protein: 0, Carbs: 0, Fat: 100.0, Unit: per100g},
	"coconut oil":    {Ingredient: "coconut oil", Calories: 862, Protein: 0, Carbs: 0, Fat: 100.0, Unit: per100g},
	"honey":          {Ingredient: "honey", Calories: 304, Protein: 0.3, Carbs: 82.4, Fat: 0, Unit: per100g},
	"maple syrup":    {Ingredient: "maple syrup", Calories: 260, Protein: 0, Carbs: 67.0, Fat: 0.1, Unit: per100g},
	"chocolate":      {Ingredient: "chocolate", Calories: 546, Protein: 4.9, Carbs: 61.2, Fat: 31.3, Unit: per100g},
	"vanilla":        {Ingredient: "vanilla", Calories: 288, Protein: 0.1, Carbs: 12.7, Fat: 0.1, Unit: per100g},
	"cinnamon":       {Ingredient: "cinnamon", Calories: 247, Protein: 4.0, Carbs: 80.6, Fat: 1.2, Unit: per100g},
	"garlic":         {Ingredient: "garlic", Calories: 149, Protein: 6.4, Carbs: 33.1, Fat: 0.5, Unit: per100g},
	"ginger":         {Ingredient: "ginger", Calories: 80, Protein: 1.8, Carbs: 17.8, Fat: 0.8, Unit: per100g},
	"onion":          {Ingredient: "onion", Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Unit: per100g},
	"tomato":         {Ingredient: "tomato", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Unit: per100g},
	"potato":         {Ingredient: "potato", Calories: 77, Protein: 2.0, Carbs: 17.5, Fat: 0.1, Unit: per100g},
	"carrot":         {Ingredient: "carrot", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Unit: per100g},
	"broccoli":       {Ingredient: "broccoli", Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Unit: per100g},
	"spinach":        {Ingredient: "spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Unit: per100g},
	"mushroom":       {Ingredient: "mushroom", Calories: 22, Protein: 3.1, Carbs: 3.3, Fat: 0.3, Unit: per100g},
	"avocado":        {Ingredient: "avocado", Calories: 160, Protein: 2.0, Carbs: 8.5, Fat: 14.7, Unit: per100g},
	"banana":         {Ingredient: "banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Unit: per100g},
	"apple":          {Ingredient: "apple", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Unit: per100g},
	"lemon":          {Ingredient: "lemon", Calories: 29, Protein: 1.1, Carbs: 9.3, Fat: 0.3, Unit: per100g},
	"almonds":        {Ingredient: "almonds", Calories: 579, Protein: 21.2, Carbs: 21.6, Fat: 49.9, Unit: per100g},
	"peanuts":        {Ingredient: "peanuts", Calories: 567, Protein: 25.8, Carbs: 16.1, Fat: 49.2, Unit: per100g},
	"walnuts":        {Ingredient: "walnuts", Calories: 654, Protein: 15.2, Carbs: 13.7, Fat: 65.2, Unit: per100g},
	"oats":           {Ingredient: "oats", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Unit: per100g},
	"quinoa":         {Ingredient: "quinoa", Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9, Unit: per100g},
	"pasta":          {Ingredient: "pasta", Calories: 131, Protein: 5.0, Carbs: 24.9, Fat: 1.1, Unit: per100g},
	"bread":          {Ingredient: "bread", Calories: 265, Protein: 9.0, Carbs: 49.0, Fat: 3.2, Unit: per100g},
	"soy milk":       {Ingredient: "soy milk", Calories: 54, Protein: 3.3, Carbs: 6.3, Fat: 1.8, Unit: per100g},
	"almond milk":    {Ingredient: "almond milk", Calories: 17, Protein: 0.6, Carbs: 0.6, Fat: 1.1, Unit: per100g},
	"coconut milk":   {Ingredient: "coconut milk", Calories: 230, Protein: 2.3, Carbs: 5.5, Fat: 23.8, Unit: per100g},
	"greek yogurt":   {Ingredient: "greek yogurt", Calories: 59, Protein: 10.2, Carbs: 3.6, Fat: 0.4, Unit: per100g},
	"cottage cheese": {Ingredient: "cottage cheese", Calories: 98, Protein: 11.1, Carbs: 3.4, Fat: 4.3, Unit: per100g},
}
