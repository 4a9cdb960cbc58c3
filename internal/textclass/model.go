package textclass

import "sort"

// Document is one labeled training phrase.
type Document struct {
	Text  string
	Label string
}

// Prediction is the classifier's answer for one input. The zero value
// means no label matched.
type Prediction struct {
	Label string
	Score float64
}

// Model holds per-label term counts built from a training corpus.
type Model struct {
	labels []string                  // sorted
	counts map[string]map[string]int // label -> term -> occurrences
	totals map[string]int            // label -> total term occurrences
}

// Train builds a model from the corpus. Documents with an empty label or
// no usable tokens are skipped; a label survives only if it contributed
// at least one token.
func Train(docs []Document) *Model {
	counts := map[string]map[string]int{}
	totals := map[string]int{}

	for _, doc := range docs {
		if doc.Label == "" {
			continue
		}
		toks := Tokenize(doc.Text)
		if len(toks) == 0 {
			continue
		}
		terms := counts[doc.Label]
		if terms == nil {
			terms = map[string]int{}
			counts[doc.Label] = terms
		}
		for _, tok := range toks {
			terms[tok]++
			totals[doc.Label]++
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return &Model{labels: labels, counts: counts, totals: totals}
}

// Predict scores every label against the input's distinct tokens and
// returns the best match. score(label) is the sum of the label's counts
// for those tokens divided by the label's total term count. Ties break
// toward the lexicographically smaller label; an all-zero score returns
// the zero Prediction.
func (m *Model) Predict(text string) Prediction {
	tokens := uniqueTokens(text)
	if len(tokens) == 0 {
		return Prediction{}
	}

	var best Prediction
	for _, label := range m.labels {
		hits := 0
		for _, tok := range tokens {
			hits += m.counts[label][tok]
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(m.totals[label])
		if score > best.Score {
			best = Prediction{Label: label, Score: score}
		}
	}
	return best
}

// Labels returns the model's labels in sorted order.
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}
