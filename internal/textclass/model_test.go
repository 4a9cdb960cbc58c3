package textclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feverCorpus() []Document {
	return []Document{
		{Text: "high temperature", Label: "fever"},
		{Text: "chills", Label: "fever"},
		{Text: "body aches", Label: "fever"},
		{Text: "running a fever", Label: "fever"},
		{Text: "feeling hot and shivery", Label: "fever"},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lowercases and splits", "High Temperature!", []string{"high", "temperature"}},
		{"drops stopwords and short tokens", "I have a cough", []string{"cough"}},
		{"punctuation runs", "chills, aches... shivering", []string{"chills", "aches", "shivering"}},
		{"keeps duplicates", "bad bad cough", []string{"bad", "bad", "cough"}},
		{"digits survive", "temperature 39 degrees", []string{"temperature", "39", "degrees"}},
		{"empty input", "", nil},
		{"only filler", "I am so, so...", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestPredictMatchesOverlappingTerms(t *testing.T) {
	m := Train(feverCorpus())

	p := m.Predict("I have chills and a high temperature")
	assert.Equal(t, "fever", p.Label)
	assert.Greater(t, p.Score, 0.0)
}

func TestPredictNoOverlapReturnsZero(t *testing.T) {
	m := Train(feverCorpus())

	tests := []string{
		"unknown ailment xyz",
		"",
		"   ",
		"the and of",
	}
	for _, input := range tests {
		p := m.Predict(input)
		assert.Equal(t, Prediction{}, p, "input %q", input)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	m := Train(feverCorpus())
	first := m.Predict("feeling shivery with body aches")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Predict("feeling shivery with body aches"))
	}
}

func TestPredictTieBreaksLexicographically(t *testing.T) {
	// Both labels hold the shared token once over an equal total, so the
	// scores tie exactly.
	m := Train([]Document{
		{Text: "shared token", Label: "zeta"},
		{Text: "shared token", Label: "alpha"},
	})

	p := m.Predict("shared")
	assert.Equal(t, "alpha", p.Label)
}

func TestPredictScoreGrowsWithOverlap(t *testing.T) {
	m := Train(feverCorpus())

	one := m.Predict("chills")
	two := m.Predict("chills and high temperature")
	require.Equal(t, "fever", one.Label)
	require.Equal(t, "fever", two.Label)
	assert.Greater(t, two.Score, one.Score)
}

func TestPredictRepeatedInputTokensCountOnce(t *testing.T) {
	m := Train(feverCorpus())

	once := m.Predict("chills")
	thrice := m.Predict("chills chills chills")
	assert.Equal(t, once, thrice)
}

func TestTrainSkipsUnusableDocuments(t *testing.T) {
	m := Train([]Document{
		{Text: "sore throat", Label: "cold"},
		{Text: "anything", Label: ""},
		{Text: "...", Label: "ghost"},
	})

	assert.Equal(t, []string{"cold"}, m.Labels())
}
