package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, payload string) Value {
	t.Helper()
	v, err := Decode([]byte(payload))
	require.NoError(t, err)
	return v
}

func TestGetWalksNestedObjects(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"siteConfig":{"navigation":{"header":[{"id":"home"}]}}}`)
	require.Equal(t, "home", doc.Get("siteConfig", "navigation", "header").First().Get("id").Str(""))
}

func TestGetToleratesMissingParents(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{}`)
	require.False(t, doc.Get("sections", "hero").Exists())
	require.Equal(t, "fallback", doc.Get("sections", "hero").First().Get("headline").Str("fallback"))
}

func TestGetThroughWrongTypes(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"sections":"not an object"}`)
	require.Equal(t, "", doc.Get("sections", "hero", "headline").Str(""))
}

func TestFirstUnwrapsSeededArrays(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"hero":[{"headline":"Hi"}]}`)
	require.Equal(t, "Hi", doc.Get("hero").First().Get("headline").Str(""))

	require.False(t, decode(t, `{"hero":{}}`).Get("hero").First().Exists())
	require.False(t, decode(t, `{"hero":[]}`).Get("hero").First().Exists())
}

func TestStrDoesNotCoerce(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"year":2024,"name":"Ada"}`)
	require.Equal(t, "def", doc.Get("year").Str("def"))
	require.Equal(t, "Ada", doc.Get("name").Str("def"))
}

func TestStringifyCoercesScalars(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"year":2024,"ratio":1.5,"flag":true,"nothing":null}`)
	require.Equal(t, "2024", doc.Get("year").Stringify(""))
	require.Equal(t, "1.5", doc.Get("ratio").Stringify(""))
	require.Equal(t, "true", doc.Get("flag").Stringify(""))
	require.Equal(t, "project", doc.Get("nothing").Stringify("project"))
}

func TestBoolTruthiness(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"a":true,"b":0,"c":"x","d":"","e":{},"f":null,"g":1}`)
	require.True(t, doc.Get("a").Bool())
	require.False(t, doc.Get("b").Bool())
	require.True(t, doc.Get("c").Bool())
	require.False(t, doc.Get("d").Bool())
	require.True(t, doc.Get("e").Bool())
	require.False(t, doc.Get("f").Bool())
	require.True(t, doc.Get("g").Bool())
}

func TestStringsDropsEmpties(t *testing.T) {
	t.Parallel()

	doc := decode(t, `{"tags":["Go",null,"",2024]}`)
	require.Equal(t, []string{"Go", "2024"}, doc.Get("tags").Strings())
	require.Equal(t, []string{}, doc.Get("missing").Strings())
}

func TestParagraphs(t *testing.T) {
	t.Parallel()

	t.Run("array keeps non-empty entries", func(t *testing.T) {
		t.Parallel()
		doc := decode(t, `{"p":["one","",null,"two"]}`)
		require.Equal(t, []string{"one", "two"}, doc.Get("p").Paragraphs())
	})

	t.Run("string splits on newlines", func(t *testing.T) {
		t.Parallel()
		doc := decode(t, `{"p":"first line\n  second line \n\n"}`)
		require.Equal(t, []string{"first line", "second line"}, doc.Get("p").Paragraphs())
	})

	t.Run("anything else is empty", func(t *testing.T) {
		t.Parallel()
		doc := decode(t, `{"p":42}`)
		require.Empty(t, doc.Get("p").Paragraphs())
		require.Empty(t, doc.Get("missing").Paragraphs())
	})
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	require.Equal(t, "", FirstNonEmpty("", ""))
}
