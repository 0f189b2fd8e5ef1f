package similarity

import (
	"math"
	"regexp"
	"strings"
)

// 英文停用詞（詞彙建立與轉換時一律剔除）
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {},
}

// 匹配長度至少 2 的字母數字序列，連字號視為分隔
var termPattern = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// Vectorizer 詞頻-逆文件頻率向量器
// 特徵為單詞與相鄰雙詞（unigram + bigram），建構後唯讀，可併發使用
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer 以語料庫擬合向量器：建立詞彙表並統計 IDF
func NewVectorizer(corpus []string) *Vectorizer {
	v := &Vectorizer{
		vocabulary: make(map[string]int),
	}

	docCount := float64(len(corpus))
	termDocCounts := make(map[string]int)

	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range extractTerms(doc) {
			if _, ok := seen[term]; !ok {
				termDocCounts[term]++
				seen[term] = struct{}{}
			}
			if _, ok := v.vocabulary[term]; !ok {
				v.vocabulary[term] = len(v.vocabulary)
			}
		}
	}

	// 平滑 IDF：log((1+N)/(1+df)) + 1
	v.idf = make([]float64, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		df := float64(termDocCounts[term])
		v.idf[idx] = math.Log((1+docCount)/(1+df)) + 1
	}

	return v
}

// Transform 將文字轉為 L2 正規化的 TF-IDF 向量
// 詞彙表外的詞直接忽略
func (v *Vectorizer) Transform(text string) []float64 {
	vector := make([]float64, len(v.vocabulary))

	terms := extractTerms(text)
	if len(terms) == 0 {
		return vector
	}

	tf := make(map[string]float64, len(terms))
	for _, term := range terms {
		tf[term]++
	}

	for term, count := range tf {
		idx, ok := v.vocabulary[term]
		if !ok {
			continue
		}
		vector[idx] = (count / float64(len(terms))) * v.idf[idx]
	}

	normalize(vector)
	return vector
}

// VocabularySize 回傳特徵維度
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// extractTerms 斷詞並產生 unigram 與 bigram 特徵
func extractTerms(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)

	unigrams := make([]string, 0, len(raw))
	for _, token := range raw {
		if _, ok := stopWords[token]; ok {
			continue
		}
		unigrams = append(unigrams, token)
	}

	terms := make([]string, 0, len(unigrams)*2)
	terms = append(terms, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		terms = append(terms, unigrams[i]+" "+unigrams[i+1])
	}
	return terms
}

// normalize 原地 L2 正規化；零向量保持不變
func normalize(vector []float64) {
	var sum float64
	for _, x := range vector {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vector {
		vector[i] /= norm
	}
}

// Cosine 計算兩向量的餘弦相似度；任一為零向量時回傳 0
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
