package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alkime/postcraft/internal/post"
)

func TestCSVEscaping(t *testing.T) {
	posts := []post.Post{
		{ID: "1", Post: `a"b`, Intent: "x"},
		{ID: "2", Post: "c", Intent: "y"},
	}
	assert.Equal(t, "\"a\"\"b\"\n\"c\"", CSV(posts))
}

func TestCSVEmpty(t *testing.T) {
	assert.Equal(t, "", CSV(nil))
	assert.Equal(t, "", CSV([]post.Post{}))
}

func TestCSVPreservesNewlinesInsideFields(t *testing.T) {
	posts := []post.Post{{ID: "1", Post: "一行目\n二行目", Intent: "x"}}
	assert.Equal(t, "\"一行目\n二行目\"", CSV(posts))
}

func TestDocument(t *testing.T) {
	posts := []post.Post{
		{ID: "1", Post: "本文1", Intent: "意図1"},
		{ID: "2", Post: "本文2", Intent: "意図2"},
	}
	got := Document(posts)

	expected := "## 投稿\n\n本文1\n\n### 投稿の意図 / フック\n\n意図1" +
		"\n\n---\n\n" +
		"## 投稿\n\n本文2\n\n### 投稿の意図 / フック\n\n意図2"
	assert.Equal(t, expected, got)
}

func TestDocumentEmpty(t *testing.T) {
	assert.Equal(t, "", Document(nil))
}
