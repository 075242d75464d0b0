package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeXML(t *testing.T) {
	require.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&apos;&lt;/a&gt;", EscapeXML(`<a href="x">&'</a>`))
	require.Equal(t, "plain text", EscapeXML("plain text"))
	require.Equal(t, "", EscapeXML(""))
}

func TestEscapeXMLSinglePass(t *testing.T) {
	// an ampersand introduced by a replacement is not escaped again
	require.Equal(t, "&amp;lt;", EscapeXML("&lt;"))
}

func TestUnescapeXMLNamed(t *testing.T) {
	require.Equal(t, `<a href="x">&'</a>`, UnescapeXML("&lt;a href=&quot;x&quot;&gt;&amp;&apos;&lt;/a&gt;"))
}

func TestUnescapeXMLNumeric(t *testing.T) {
	require.Equal(t, `<>"&'`, UnescapeXML("&#60;&#62;&#34;&#38;&#39;"))
}

func TestUnescapeXMLLeavesUnknownEntities(t *testing.T) {
	require.Equal(t, "&nbsp;&#160;", UnescapeXML("&nbsp;&#160;"))
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	// escaping always re-encodes as named entities
	for _, s := range []string{"&lt;", "&gt;", "&quot;", "&amp;", "&apos;", "&lt;&amp;&gt;"} {
		require.Equal(t, s, EscapeXML(UnescapeXML(s)))
	}
}
