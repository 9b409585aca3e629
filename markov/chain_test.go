package markov

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"

	"github.com/tomoris/markovwriter/hashtable"
	"github.com/tomoris/markovwriter/mtrand"
)

var (
	_ Source = (*mtrand.Rand)(nil)
	_ Source = rand.New(rand.NewSource(1))
)

const alice = `Alice was beginning to get very tired of sitting by her sister on the
bank, and of having nothing to do: once or twice she had peeped into the
book her sister was reading, but it had no pictures or conversations in
it, "and what is the use of a book," thought Alice "without pictures or
conversations?"`

func TestBuild(t *testing.T) {
	chain, err := Build([]string{"a", "b", "a", "c"}, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{
		"@": {"a"},
		"a": {"b", "c"},
		"b": {"a"},
	}
	for k, v := range want {
		got, err := chain.Suffixes(hashtable.Prefix{k})
		if err != nil {
			t.Error("prefix = ", k, "err = ", err)
			continue
		}
		if !reflect.DeepEqual(got, v) {
			t.Error("prefix = ", k, "suffixes = ", got, "want = ", v)
		}
	}
	if _, err := chain.Suffixes(hashtable.Prefix{"c"}); errors.Cause(err) != ErrKeyNotFound {
		t.Error("err = ", err)
	}
	if chain.Table().Len() != 3 {
		t.Error("len = ", chain.Table().Len())
	}
}

func TestBuildKeepsDuplicates(t *testing.T) {
	words := strings.Fields("p w p x p w q p w")
	chain, err := Build(words, 31, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := chain.Suffixes(hashtable.Prefix{"p"})
	want := []string{"w", "x", "w", "w"}
	if !reflect.DeepEqual(got, want) {
		t.Error("suffixes = ", got, "want = ", want)
	}
}

func TestBuildShortCorpus(t *testing.T) {
	chain, err := Build([]string{"x", "y"}, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	chain.Table().Each(func(_ int, key hashtable.Prefix, _ []string) {
		if key[0] != Sentinel {
			t.Error("key without sentinel: ", key)
		}
	})
	if chain.Table().Len() != 2 {
		t.Error("len = ", chain.Table().Len())
	}

	output, err := chain.Generate(mtrand.New(8), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(output, []string{"x", "y"}) {
		t.Error("output = ", output)
	}
}

func TestBuildInvalidConfig(t *testing.T) {
	words := []string{"a", "b"}
	if _, err := Build(words, 0, 1); errors.Cause(err) != ErrInvalidConfig {
		t.Error("capacity 0: err = ", err)
	}
	if _, err := Build(words, 10, 0); errors.Cause(err) != ErrInvalidConfig {
		t.Error("prefix size 0: err = ", err)
	}
}

func TestBuildTableFull(t *testing.T) {
	// (@), (a) and (b) need three slots
	_, err := Build([]string{"a", "b", "c"}, 2, 1)
	if errors.Cause(err) != ErrTableFull {
		t.Error("err = ", err)
	}
}

func TestGenerateTieBreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain, _ := Build([]string{"a", "b", "a", "c"}, 10, 1)
	src := NewMockSource(ctrl)
	// only ("a",) has more than one suffix
	src.EXPECT().Intn(2).Return(0).Times(3)

	output, err := chain.Generate(src, 6)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "a", "b", "a", "b"}
	if !reflect.DeepEqual(output, want) {
		t.Error("output = ", output, "want = ", want)
	}
}

func TestGenerateFallout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain, _ := Build([]string{"a", "b", "a", "c"}, 10, 1)
	src := NewMockSource(ctrl)
	src.EXPECT().Intn(2).Return(1).Times(1)

	output, err := chain.Generate(src, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(output, []string{"a", "c"}) {
		t.Error("output = ", output)
	}
	if len(output) >= 6 {
		t.Error("len(output) = ", len(output))
	}
}

func TestGenerateSingleSuffixDrawsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// every prefix has exactly one suffix, so no call is expected
	chain, _ := Build(strings.Fields("one two three four five"), 17, 2)
	output, err := chain.Generate(NewMockSource(ctrl), 20)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(output, " ") != "one two three four five" {
		t.Error("output = ", output)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	words := strings.Fields(alice)
	chain, err := Build(words, 4*len(words), 2)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := chain.Generate(mtrand.New(8), 200)
	second, _ := chain.Generate(mtrand.New(8), 200)
	if !reflect.DeepEqual(first, second) {
		t.Error("first = ", first, "second = ", second)
	}
	if !reflect.DeepEqual(first[:2], words[:2]) {
		t.Error("output does not open with the corpus: ", first[:2])
	}
	for i := 2; i < len(first); i++ {
		if chain.Prob(first[i], hashtable.Prefix(first[i-2:i])) == 0 {
			t.Error("transition ", first[i-2:i], " -> ", first[i], " never seen")
		}
	}
}

func TestGenerateShorterThanPrefix(t *testing.T) {
	chain, _ := Build(strings.Fields("a b c d"), 10, 3)
	output, err := chain.Generate(mtrand.New(8), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(output, []string{"a", "b", "c"}) {
		t.Error("output = ", output)
	}
}

func TestGenerateErrors(t *testing.T) {
	chain, _ := Build([]string{"a"}, 10, 2)
	if _, err := chain.Generate(mtrand.New(8), 5); errors.Cause(err) != ErrShortCorpus {
		t.Error("err = ", err)
	}
	chain, _ = Build([]string{"a", "b"}, 10, 1)
	if _, err := chain.Generate(mtrand.New(8), 0); errors.Cause(err) != ErrInvalidConfig {
		t.Error("err = ", err)
	}
}

// Known-good output for seed 8, 4*len(words) slots and 120 words.
func TestGenerateGolden(t *testing.T) {
	words := strings.Fields(alice)
	cases := []struct {
		prefixSize int
		want       string
	}{
		{1, `Alice was reading, but it had no pictures or twice she had peeped into the bank, and of sitting by her sister on the book her sister was reading, but it had no pictures or conversations in it, "and what is the use of sitting by her sister on the book her sister on the use of having nothing to do: once or conversations in it, "and what is the book her sister was beginning to get very tired of having nothing to do: once or twice she had peeped into the book her sister on the book her sister on the use of sitting by her sister was beginning to get very tired of a book," thought Alice "without`},
		{2, `Alice was beginning to get very tired of sitting by her sister on the bank, and of having nothing to do: once or twice she had peeped into the book her sister was reading, but it had no pictures or conversations?"`},
	}
	for _, c := range cases {
		chain, err := Build(words, 4*len(words), c.prefixSize)
		if err != nil {
			t.Fatal(err)
		}
		output, err := chain.Generate(mtrand.New(8), 120)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Join(output, " "); got != c.want {
			t.Error("prefixSize = ", c.prefixSize, "got = ", got, "want = ", c.want)
		}
	}
}

func TestGenerateHugeTotal(t *testing.T) {
	chain, _ := Build([]string{"a", "c"}, 10, 1)
	output, err := chain.Generate(mtrand.New(8), math.MaxInt)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(output, []string{"a", "c"}) {
		t.Error("output = ", output)
	}
}
