package texttmpl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplySubstitutesTokens(t *testing.T) {
	t.Parallel()

	got := Apply("Hello {name}, about {subject}", map[string]string{"name": "Ada", "subject": "folio"})
	require.Equal(t, "Hello Ada, about folio", got)
}

func TestApplyUnresolvedTokensRenderEmpty(t *testing.T) {
	t.Parallel()

	got := Apply("from {name} <{email}>", map[string]string{"name": "Ada"})
	require.Equal(t, "from Ada <>", got)
}

func TestApplyLeavesPlainTextAlone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "no tokens here", Apply("no tokens here", nil))
	require.Equal(t, "{not a token", Apply("{not a token", map[string]string{"not": "x"}))
}

func TestApplyMailtoShape(t *testing.T) {
	t.Parallel()

	got := Apply("mailto:{to}?subject={subject}&body={body}", map[string]string{
		"to":      "ada@example.com",
		"subject": "Hello%20there",
		"body":    "line1%0D%0Aline2",
	})
	require.Equal(t, "mailto:ada@example.com?subject=Hello%20there&body=line1%0D%0Aline2", got)
}
