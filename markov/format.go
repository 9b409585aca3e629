package markov

import (
	"bufio"
	"io"
	"strings"
)

// DefaultLineWidth is the number of words printed per line.
const DefaultLineWidth = 10

// FormatLines writes words to w separated by single spaces, width words to
// a line.
func FormatLines(w io.Writer, words []string, width int) error {
	if width < 1 {
		return invalidConfig("line width %d is less than one", width)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < len(words); i += width {
		end := min(i+width, len(words))
		if _, err := bw.WriteString(strings.Join(words[i:end], " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
