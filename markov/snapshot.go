package markov

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tomoris/markovwriter/hashtable"
)

type entryJSON struct {
	Slot     int      `json:"slot" yaml:"slot"`
	Prefix   []string `json:"prefix" yaml:"prefix,flow"`
	Suffixes []string `json:"suffixes" yaml:"suffixes,flow"`
}

type chainJSON struct {
	Capacity   int         `json:"capacity" yaml:"capacity"`
	PrefixSize int         `json:"prefix_size" yaml:"prefix_size"`
	Words      []string    `json:"words" yaml:"words,flow"`
	Entries    []entryJSON `json:"entries" yaml:"entries"`
}

func (c *Chain) save() *chainJSON {
	snapshot := &chainJSON{
		Capacity:   c.table.Cap(),
		PrefixSize: c.prefixSize,
		Words:      c.words,
		Entries:    make([]entryJSON, 0, c.table.Len()),
	}
	c.table.Each(func(index int, key hashtable.Prefix, suffixes []string) {
		snapshot.Entries = append(snapshot.Entries, entryJSON{
			Slot:     index,
			Prefix:   key,
			Suffixes: suffixes,
		})
	})
	return snapshot
}

// load rebuilds the table slot by slot, so a loaded chain has the same
// layout as the one that was saved. Every entry must still be found at its
// recorded slot by an ordinary lookup.
func load(snapshot *chainJSON) (*Chain, error) {
	if snapshot.PrefixSize < 1 {
		return nil, invalidConfig("prefix size %d is less than one", snapshot.PrefixSize)
	}
	table, err := hashtable.New[[]string](snapshot.Capacity)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	seen := make(map[string]int, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		if len(entry.Prefix) != snapshot.PrefixSize {
			return nil, invalidConfig("entry in slot %d has prefix %v, want %d words", entry.Slot, entry.Prefix, snapshot.PrefixSize)
		}
		if len(entry.Suffixes) == 0 {
			return nil, invalidConfig("entry in slot %d has no suffixes", entry.Slot)
		}
		id := fmt.Sprintf("%q", entry.Prefix)
		if slot, ok := seen[id]; ok {
			return nil, invalidConfig("prefix %v appears in slots %d and %d", entry.Prefix, slot, entry.Slot)
		}
		seen[id] = entry.Slot
		if err := table.Restore(entry.Slot, entry.Prefix, entry.Suffixes); err != nil {
			return nil, invalidConfig("%v", err)
		}
	}
	for _, entry := range snapshot.Entries {
		if slot, ok := table.Slot(entry.Prefix); !ok || slot != entry.Slot {
			return nil, invalidConfig("prefix %v in slot %d cannot be reached from its hash", entry.Prefix, entry.Slot)
		}
	}
	return &Chain{
		table:      table,
		words:      snapshot.Words,
		prefixSize: snapshot.PrefixSize,
	}, nil
}

// Save writes chain to saveFile. saveFormat is "indent" or "notindent" for
// JSON, or "yaml".
func Save(chain *Chain, saveFile string, saveFormat string) error {
	snapshot := chain.save()
	var (
		data []byte
		err  error
	)
	switch saveFormat {
	case "indent":
		data, err = json.MarshalIndent(snapshot, "", " ")
	case "notindent":
		data, err = json.Marshal(snapshot)
	case "yaml":
		data, err = yaml.Marshal(snapshot)
	default:
		return errors.Errorf("unknown save format %q", saveFormat)
	}
	if err != nil {
		return errors.Wrap(err, "save model error")
	}
	if err := os.WriteFile(saveFile, data, 0644); err != nil {
		return errors.Wrap(err, "save model error")
	}
	return nil
}

// Load reads a chain written by Save. Files ending in .yml or .yaml are
// read as YAML, anything else as JSON.
func Load(loadFile string) (*Chain, error) {
	data, err := os.ReadFile(loadFile)
	if err != nil {
		return nil, errors.Wrap(err, "load model file error")
	}
	snapshot := new(chainJSON)
	switch strings.ToLower(filepath.Ext(loadFile)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, snapshot)
	default:
		err = json.Unmarshal(data, snapshot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", loadFile)
	}
	return load(snapshot)
}
