package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCorpus = []string{
	"milk", "almond milk", "soy milk", "coconut milk",
	"butter", "olive oil", "cheese", "flour", "sugar",
}

func TestRankExcludesQuery(t *testing.T) {
	ranker := NewRanker(testCorpus)

	matches, err := ranker.Rank("milk")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		assert.NotEqual(t, "milk", m.Ingredient)
	}
}

func TestRankScoreBounds(t *testing.T) {
	ranker := NewRanker(testCorpus)

	matches, err := ranker.Rank("milk")
	require.NoError(t, err)
	require.LessOrEqual(t, len(matches), 3)

	for _, m := range matches {
		assert.Greater(t, m.Score, 10.0, "threshold filters out weak matches")
		assert.LessOrEqual(t, m.Score, 100.0)
	}
}

func TestRankOrdering(t *testing.T) {
	ranker := NewRanker(testCorpus)

	matches, err := ranker.Rank("almond milk")
	require.NoError(t, err)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestRankNormalizesQuery(t *testing.T) {
	ranker := NewRanker(testCorpus)

	upper, err := ranker.Rank("  MILK  ")
	require.NoError(t, err)
	lower, err := ranker.Rank("milk")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestRankUnknownQuery(t *testing.T) {
	ranker := NewRanker(testCorpus)

	_, err := ranker.Rank("xyzzy")
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestRankEmptyQuery(t *testing.T) {
	ranker := NewRanker(testCorpus)

	_, err := ranker.Rank("")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = ranker.Rank("   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRankerDeduplicatesCorpus(t *testing.T) {
	ranker := NewRanker([]string{"milk", "Milk", " milk ", "butter"})
	assert.Equal(t, []string{"milk", "butter"}, ranker.Corpus())
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), 1e-9)
}

func TestTransformIsUnitLength(t *testing.T) {
	v := NewVectorizer(testCorpus)

	vector := v.Transform("almond milk")
	var sumSquares float64
	for _, x := range vector {
		sumSquares += x * x
	}
	assert.InDelta(t, 1.0, sumSquares, 1e-9)
}

func TestVocabularySizeCountsBigrams(t *testing.T) {
	v := NewVectorizer([]string{"almond milk", "oat milk"})

	// unigram: almond, milk, oat；bigram: "almond milk", "oat milk"
	assert.Equal(t, 5, v.VocabularySize())
	assert.Equal(t, 5, len(v.Transform("milk")))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 85.46, RoundScore(85.4567))
	assert.Equal(t, 100.0, RoundScore(100))
	assert.Equal(t, 0.0, RoundScore(0))
}
