package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine_FastPath(t *testing.T) {
	got := SplitLine("a,b,c", ',')
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSplitLine_EmptyFields(t *testing.T) {
	got := SplitLine(",a,,b,", ',')
	assert.Equal(t, []string{"", "a", "", "b", ""}, got)
}

func TestSplitLine_QuotedDelimiter(t *testing.T) {
	got := SplitLine(`"Arts, Culture",100`, ',')
	assert.Equal(t, []string{"Arts, Culture", "100"}, got)
}

func TestSplitLine_DoubledQuote(t *testing.T) {
	got := SplitLine(`"say ""hi""",x`, ',')
	assert.Equal(t, []string{`say "hi"`, "x"}, got)
}

func TestSplitLine_UnterminatedQuoteConsumesRest(t *testing.T) {
	got := SplitLine(`"a,b,c`, ',')
	assert.Equal(t, []string{"a,b,c"}, got)
}

func TestSplitLine_AlternateDelimiter(t *testing.T) {
	got := SplitLine("a;b;\"c;d\"", ';')
	assert.Equal(t, []string{"a", "b", "c;d"}, got)
}
