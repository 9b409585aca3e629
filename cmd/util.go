package cmd

import (
	"io"

	log "github.com/activeshadow/libminimega/minilog"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/tomoris/markovwriter/markov"
)

// tableSizeFor sizes a table with room for every window of the corpus,
// which bounds the number of distinct prefixes.
func tableSizeFor(words int) int {
	return 2*words + 1
}

// loadChain reads the model snapshot if one is configured and otherwise
// builds a chain from the corpus. progress may be nil.
func loadChain(v *viper.Viper, progress io.Writer) (*markov.Chain, error) {
	if model := v.GetString("model"); model != "" {
		log.Info("loading model %s", model)
		return markov.Load(model)
	}

	corpus := v.GetString("corpus")
	if corpus == "" {
		return nil, errors.New("either --corpus or --model is required")
	}
	dataContainer, err := markov.NewDataContainer(corpus)
	if err != nil {
		return nil, err
	}
	return buildChain(dataContainer, v.GetInt("table-size"), v.GetInt("prefix-size"), progress)
}

func buildChain(dataContainer *markov.DataContainer, tableSize int, prefixSize int, progress io.Writer) (*markov.Chain, error) {
	if tableSize == 0 {
		tableSize = tableSizeFor(dataContainer.Size)
	}
	log.Info("building chain from %d words, table size %d, prefix size %d", dataContainer.Size, tableSize, prefixSize)

	var opts []markov.Option
	if progress != nil {
		opts = append(opts, markov.WithProgress(progress))
	}
	chain, err := markov.Build(dataContainer.Words, tableSize, prefixSize, opts...)
	if err != nil {
		return nil, err
	}
	if lf := chain.Table().LoadFactor(); lf > 0.9 {
		log.Warn("table is %.0f%% full, lookups will walk long collision runs", lf*100)
	}
	return chain, nil
}
