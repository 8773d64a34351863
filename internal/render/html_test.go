package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodyToTextPlain(t *testing.T) {
	assert.Equal(t, "hello world", BodyToText("hello world", 80))
	assert.Equal(t, "", BodyToText("", 80))
}

func TestBodyToTextParagraphsAndEmphasis(t *testing.T) {
	got := BodyToText("first<p>second <i>loudly</i>", 80)
	assert.Equal(t, "first\n\nsecond *loudly*", got)
}

func TestBodyToTextEntities(t *testing.T) {
	assert.Equal(t, "a < b & c", BodyToText("a &lt; b &amp; c", 80))
}

func TestBodyToTextLink(t *testing.T) {
	got := BodyToText(`see <a href="https://example.com">here</a>`, 80)
	assert.Contains(t, got, "here")
	assert.Contains(t, got, "[https://example.com]")
}

func TestBodyToTextWraps(t *testing.T) {
	got := BodyToText("one two three four five", 9)
	assert.Equal(t, "one two\nthree\nfour five", got)
}
