package markov

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DataContainer contains the words of a corpus in reading order.
type DataContainer struct {
	Words []string
	Size  int
}

// NewDataContainer returns DataContainer instance.
// input file is split on any run of whitespace, line breaks included.
// Whitespace is unicode.IsSpace plus the information separators U+001C to
// U+001F. A word may be of any length.
func NewDataContainer(filePath string) (*DataContainer, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open filePath (%v)", filePath)
	}
	defer f.Close()

	dataContainer, err := NewDataContainerFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read error in filePath (%v)", filePath)
	}
	return dataContainer, nil
}

// NewDataContainerFromReader returns DataContainer instance read from r.
func NewDataContainerFromReader(r io.Reader) (*DataContainer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading corpus")
	}
	dataContainer := new(DataContainer)
	dataContainer.Words = strings.FieldsFunc(string(data), isSeparator)
	dataContainer.Size = len(dataContainer.Words)
	return dataContainer, nil
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
