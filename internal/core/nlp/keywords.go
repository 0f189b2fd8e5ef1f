package nlp

import (
	"github.com/reiver/go-porterstemmer"
)

// 過敏原關鍵字表（詞元與原詞皆可命中）
var allergyKeywords = newKeywordSet(
	"nuts", "peanut", "almond", "walnut", "cashew", "pecan", "hazelnut",
	"dairy", "milk", "cheese", "butter", "cream", "yogurt", "lactose",
	"gluten", "wheat", "flour", "bread", "pasta", "barley", "rye",
	"egg", "eggs",
	"soy", "tofu", "soybean", "edamame",
	"fish", "salmon", "tuna", "cod", "trout",
	"shellfish", "shrimp", "crab", "lobster", "clam", "mussel",
	"sesame", "poppy", "mustard",
)

// 味道關鍵字表
var tasteKeywords = newKeywordSet(
	"sweet", "sugary", "honeyed", "candied", "syrupy",
	"sour", "tart", "acidic", "citrus", "tangy",
	"bitter", "sharp", "pungent", "acrid",
	"salty", "savory", "umami", "briny",
	"spicy", "hot", "peppery", "piquant", "zesty",
	"creamy", "smooth", "rich", "velvety",
	"crunchy", "crispy", "hard", "firm",
	"soft", "tender", "chewy", "gooey",
	"fresh", "herbal", "grassy", "green",
	"fruity", "juicy", "ripe", "tropical",
	"nutty", "earthy", "woody", "mushroom",
	"floral", "perfumed", "aromatic",
	"smoky", "roasted", "toasted", "grilled",
	"burnt", "charred", "caramelized",
)

// dietaryPreference 飲食偏好分類與其同義詞
type dietaryPreference struct {
	Flag  string
	Terms []string
}

// 七種固定偏好分類，任一同義詞出現於 tokens 即為 true
var dietaryPreferences = []dietaryPreference{
	{"vegan", []string{"vegan", "plant-based", "animal-free"}},
	{"vegetarian", []string{"vegetarian", "meat-free"}},
	{"gluten_free", []string{"gluten-free", "celiac", "no-gluten"}},
	{"dairy_free", []string{"dairy-free", "lactose-free", "no-dairy"}},
	{"nut_free", []string{"nut-free", "no-nuts"}},
	{"low_sugar", []string{"low-sugar", "sugar-free", "no-sugar"}},
	{"low_sodium", []string{"low-sodium", "salt-free", "no-salt"}},
}

// keywordSet 同時保存原詞集合與詞幹索引
// 詞幹索引讓 "sweetness" 之類詞元化無法覆蓋的變形也能命中
type keywordSet struct {
	words map[string]struct{}
	stems map[string]string
}

func newKeywordSet(words ...string) *keywordSet {
	s := &keywordSet{
		words: make(map[string]struct{}, len(words)),
		stems: make(map[string]string, len(words)),
	}
	for _, w := range words {
		s.words[w] = struct{}{}
		s.stems[porterstemmer.StemString(w)] = Lemma(w)
	}
	return s
}

// Contains 檢查原詞是否在表內
func (s *keywordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// MatchStem 以詞幹比對，命中時回傳該關鍵字的詞元
func (s *keywordSet) MatchStem(word string) (string, bool) {
	lemma, ok := s.stems[porterstemmer.StemString(word)]
	return lemma, ok
}

// 不規則複數（食材領域常見詞）
var irregularLemmas = map[string]string{
	"leaves":   "leaf",
	"loaves":   "loaf",
	"knives":   "knife",
	"tomatoes": "tomato",
	"potatoes": "potato",
	"berries":  "berry",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
}

// 以 s 結尾但非複數的詞，不做任何裁剪
var lemmaExceptions = map[string]struct{}{
	"molasses": {},
	"hummus":   {},
	"couscous": {},
	"swiss":    {},
	"always":   {},
	"perhaps":  {},
}

// Lemma 推導詞元（正規化基底形，例如複數轉單數）
// 規則式近似：不規則表優先，其後依序套用字尾規則
func Lemma(token string) string {
	if lemma, ok := irregularLemmas[token]; ok {
		return lemma
	}
	if _, ok := lemmaExceptions[token]; ok {
		return token
	}

	n := len(token)
	switch {
	case n > 4 && hasSuffix(token, "ies"):
		return token[:n-3] + "y"
	case n > 4 && (hasSuffix(token, "sses") || hasSuffix(token, "shes") || hasSuffix(token, "ches") || hasSuffix(token, "xes") || hasSuffix(token, "zes")):
		return token[:n-2]
	case n > 3 && hasSuffix(token, "oes"):
		return token[:n-2]
	case hasSuffix(token, "ss") || hasSuffix(token, "us") || hasSuffix(token, "is"):
		return token
	case n > 2 && hasSuffix(token, "s"):
		return token[:n-1]
	}
	return token
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
