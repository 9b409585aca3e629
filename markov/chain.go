// Package markov builds a word-level Markov chain over a fixed-capacity
// hash table and generates text from it.
package markov

import (
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/tomoris/markovwriter/hashtable"
)

//go:generate mockgen -destination=mock_source_test.go -package=markov . Source

// Sentinel pads the start of the corpus so that the first words have a
// full prefix. It never occurs in whitespace-split text.
const Sentinel string = "@"

// Source draws a uniform integer in [0, n). *mtrand.Rand and *rand.Rand
// both satisfy it.
type Source interface {
	Intn(n int) int
}

// Chain maps every prefix of prefixSize consecutive words to the words that
// followed it, duplicates included.
type Chain struct {
	table      *hashtable.Table[[]string]
	words      []string
	prefixSize int
}

type buildOptions struct {
	progress io.Writer
}

// Option configures Build.
type Option func(*buildOptions)

// WithProgress draws a progress bar on w while the table is filled.
func WithProgress(w io.Writer) Option {
	return func(o *buildOptions) {
		o.progress = w
	}
}

// Build fills a table of capacity slots from words.
func Build(words []string, capacity int, prefixSize int, opts ...Option) (*Chain, error) {
	if prefixSize < 1 {
		return nil, invalidConfig("prefix size %d is less than one", prefixSize)
	}
	if capacity < 1 {
		return nil, invalidConfig("table size %d is less than one", capacity)
	}
	options := buildOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	table, err := hashtable.New[[]string](capacity)
	if err != nil {
		return nil, invalidConfig("%v", err)
	}
	chain := &Chain{
		table:      table,
		words:      words,
		prefixSize: prefixSize,
	}

	padded := make([]string, 0, prefixSize+len(words))
	for i := 0; i < prefixSize; i++ {
		padded = append(padded, Sentinel)
	}
	padded = append(padded, words...)

	var bar *pb.ProgressBar
	if options.progress != nil {
		bar = pb.New(len(padded) - prefixSize)
		bar.SetWriter(options.progress)
		bar.Start()
		defer bar.Finish()
	}

	for i := 0; i < len(padded)-prefixSize; i++ {
		if bar != nil {
			bar.Increment()
		}
		prefix := hashtable.Prefix(padded[i : i+prefixSize])
		suffix := padded[i+prefixSize]
		if !table.Contains(prefix) {
			if err := table.Put(prefix, []string{}); err != nil {
				return nil, errors.Wrapf(err, "building chain at word %d", i)
			}
		}
		current, _ := table.Get(prefix)
		current = append(current, suffix)
		if err := table.Put(prefix, current); err != nil {
			return nil, errors.Wrapf(err, "building chain at word %d", i)
		}
	}
	return chain, nil
}

// PrefixSize returns the number of words in every key.
func (c *Chain) PrefixSize() int { return c.prefixSize }

// Words returns the corpus the chain was built from, without padding.
func (c *Chain) Words() []string { return c.words }

// Table exposes the underlying table for read-only use.
func (c *Chain) Table() *hashtable.Table[[]string] { return c.table }

// Suffixes returns the words observed after prefix.
func (c *Chain) Suffixes(prefix hashtable.Prefix) ([]string, error) {
	if len(prefix) != c.prefixSize {
		return nil, invalidConfig("prefix %v has %d words, want %d", prefix, len(prefix), c.prefixSize)
	}
	suffixes, ok := c.table.Get(prefix)
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "prefix %v", prefix)
	}
	return suffixes, nil
}

// Generate produces up to total words. The output opens with the first
// prefixSize words of the corpus; every further word is drawn from the
// suffixes of the current window. A list with a single entry is taken
// without consulting src. If the window never occurred in the corpus the
// walk cannot move again and the output is returned short.
func (c *Chain) Generate(src Source, total int) ([]string, error) {
	if total < 1 {
		return nil, invalidConfig("word count %d is less than one", total)
	}
	if len(c.words) < c.prefixSize {
		return nil, errors.Wrapf(ErrShortCorpus, "%d words, prefix size %d", len(c.words), c.prefixSize)
	}

	output := make([]string, c.prefixSize)
	copy(output, c.words[:c.prefixSize])
	window := hashtable.Prefix(output[len(output)-c.prefixSize:])

	for i := 0; i < total-c.prefixSize; i++ {
		suffixes, ok := c.table.Get(window)
		if !ok {
			break
		}
		var next string
		if len(suffixes) > 1 {
			next = suffixes[src.Intn(len(suffixes))]
		} else {
			next = suffixes[0]
		}
		output = append(output, next)
		window = hashtable.Prefix(output[len(output)-c.prefixSize:])
	}
	return output, nil
}
