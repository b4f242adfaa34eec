package summary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const longParagraph = "This paragraph contains quite a lot of words so that it easily " +
	"clears the twenty word threshold used to tell prose apart from captions and labels."

func TestFromDocumentPrefersMetaDescription(t *testing.T) {
	doc := parseHTML(t, fmt.Sprintf(`<html><head>
		<meta name="description" content="X">
		<meta property="og:description" content="from og">
	</head><body><p>%s</p></body></html>`, longParagraph))

	assert.Equal(t, "X", FromDocument(doc))
}

func TestFromDocumentMetaFallbackOrder(t *testing.T) {
	doc := parseHTML(t, `<html><head>
		<meta name="description" content="  ">
		<meta property="og:description" content="from og">
		<meta name="twitter:description" content="from twitter">
	</head><body></body></html>`)
	assert.Equal(t, "from og", FromDocument(doc))

	doc = parseHTML(t, `<html><head>
		<meta name="twitter:description" content="from twitter">
	</head><body></body></html>`)
	assert.Equal(t, "from twitter", FromDocument(doc))
}

func TestFromDocumentParagraphTruncatedToTwoSentences(t *testing.T) {
	// 25 words across three sentences; only the first two should survive.
	first := "one two three four five six seven eight nine ten"
	second := "eleven twelve thirteen fourteen fifteen sixteen seventeen"
	third := "eighteen nineteen twenty twentyone twentytwo twentythree twentyfour twentyfive"
	doc := parseHTML(t, fmt.Sprintf(
		"<html><body><p>%s. %s. %s.</p></body></html>", first, second, third))

	assert.Equal(t, first+". "+second+".", FromDocument(doc))
}

func TestFromDocumentSkipsShortParagraphs(t *testing.T) {
	doc := parseHTML(t, fmt.Sprintf(`<html><body>
		<p>Subscribe to our newsletter</p>
		<p>Photo: someone famous</p>
		<p>%s</p>
	</body></html>`, longParagraph))

	got := FromDocument(doc)
	assert.True(t, strings.HasPrefix(got, "This paragraph contains"), "got %q", got)
}

func TestFromDocumentNothingUsable(t *testing.T) {
	doc := parseHTML(t, `<html><body><p>too short</p><div>not a paragraph</div></body></html>`)
	assert.Equal(t, "", FromDocument(doc))
}

func TestHeuristicExtractSendsUserAgent(t *testing.T) {
	const ua = "Mozilla/5.0 (test)"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ua, r.Header.Get("User-Agent"))
		fmt.Fprint(w, `<html><head><meta name="description" content="desc"></head></html>`)
	}))
	defer srv.Close()

	h := NewHeuristic(srv.Client(), ua)
	got, err := h.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "desc", got)
}

func TestHeuristicExtractPageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	h := NewHeuristic(srv.Client(), "ua")
	got, err := h.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Empty(t, got)
}
