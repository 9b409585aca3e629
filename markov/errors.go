package markov

import (
	"github.com/pkg/errors"

	"github.com/tomoris/markovwriter/hashtable"
)

var (
	// ErrInvalidConfig reports a non-positive table size, prefix size,
	// word count or line width.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrKeyNotFound reports a prefix that never occurred in the corpus.
	ErrKeyNotFound = errors.New("prefix not found")
	// ErrShortCorpus reports a corpus with fewer words than the prefix size.
	ErrShortCorpus = errors.New("corpus is shorter than the prefix size")
	// ErrTableFull is returned by Build when the table runs out of slots.
	ErrTableFull = hashtable.ErrTableFull
)

func invalidConfig(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}
