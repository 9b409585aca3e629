package markov

import (
	"math"

	"github.com/tomoris/markovwriter/hashtable"
)

// Prob returns count(word after u) / count(u), or 0 if u was never seen.
func (c *Chain) Prob(word string, u hashtable.Prefix) float64 {
	suffixes, ok := c.table.Get(u)
	if !ok || len(suffixes) == 0 {
		return 0.0
	}
	wordCount := 0
	for _, suffix := range suffixes {
		if suffix == word {
			wordCount++
		}
	}
	return float64(wordCount) / float64(len(suffixes))
}

// CalcProb returns Prob interpolated with a uniform base probability.
func (c *Chain) CalcProb(word string, u hashtable.Prefix, lambda float64, base float64) float64 {
	body := c.Prob(word, u)
	return (1.0-lambda)*body + lambda*base
}

// CalcPerplexity returns perplexity of wordSeq, starting from a context of
// sentinels as Build does. A word with zero probability makes it +Inf.
func (c *Chain) CalcPerplexity(wordSeq []string, lambda float64, base float64) float64 {
	if len(wordSeq) == 0 {
		return 1.0
	}
	entropy := float64(0.0)
	u := make(hashtable.Prefix, 0, c.prefixSize)
	for n := 0; n < c.prefixSize; n++ {
		u = append(u, Sentinel)
	}
	for _, word := range wordSeq {
		p := c.CalcProb(word, u, lambda, base)
		entropy += math.Log2(p)
		u = append(u[1:], word)
	}
	entropy *= -1
	entropy /= float64(len(wordSeq))
	perplexity := math.Exp2(entropy)
	return perplexity
}
