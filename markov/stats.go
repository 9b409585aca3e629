package markov

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tomoris/markovwriter/hashtable"
)

// Stats summarizes the table behind a chain.
type Stats struct {
	Capacity     int     `json:"capacity" yaml:"capacity"`
	Occupied     int     `json:"occupied" yaml:"occupied"`
	LoadFactor   float64 `json:"load_factor" yaml:"load_factor"`
	MeanSuffixes float64 `json:"mean_suffixes" yaml:"mean_suffixes"`
	MaxSuffixes  int     `json:"max_suffixes" yaml:"max_suffixes"`
	MeanEntropy  float64 `json:"mean_entropy" yaml:"mean_entropy"` // nats
	MeanVisits   float64 `json:"mean_visits" yaml:"mean_visits"`
	MaxVisits    int     `json:"max_visits" yaml:"max_visits"`
}

// Stats walks every occupied slot once.
func (c *Chain) Stats() Stats {
	s := Stats{
		Capacity:   c.table.Cap(),
		Occupied:   c.table.Len(),
		LoadFactor: c.table.LoadFactor(),
	}
	if s.Occupied == 0 {
		return s
	}

	lengths := make([]float64, 0, s.Occupied)
	entropies := make([]float64, 0, s.Occupied)
	visits := make([]float64, 0, s.Occupied)
	c.table.Each(func(_ int, key hashtable.Prefix, suffixes []string) {
		lengths = append(lengths, float64(len(suffixes)))
		if len(suffixes) > s.MaxSuffixes {
			s.MaxSuffixes = len(suffixes)
		}
		entropies = append(entropies, stat.Entropy(distribution(suffixes)))

		n := c.table.Visits(key)
		visits = append(visits, float64(n))
		if n > s.MaxVisits {
			s.MaxVisits = n
		}
	})
	s.MeanSuffixes = stat.Mean(lengths, nil)
	s.MeanEntropy = stat.Mean(entropies, nil)
	s.MeanVisits = stat.Mean(visits, nil)
	return s
}

// distribution returns the empirical probability of each distinct suffix,
// in order of first occurrence.
func distribution(suffixes []string) []float64 {
	index := make(map[string]int)
	var counts []float64
	for _, w := range suffixes {
		i, ok := index[w]
		if !ok {
			i = len(counts)
			index[w] = i
			counts = append(counts, 0)
		}
		counts[i]++
	}
	for i := range counts {
		counts[i] /= float64(len(suffixes))
	}
	return counts
}
