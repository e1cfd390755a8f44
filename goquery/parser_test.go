package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements sitecrawl.Parser at compile time.
var _ sitecrawl.Parser = (*goquery.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Home Page
</title></head>
<body>
<nav><a href="/docs">Docs</a></nav>
<main>
	<a href="http://other.test/x">Elsewhere</a>
	<a href="guide#install">Install</a>
</main>
</body>
</html>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "Home Page", page.Title)
		assert.Equal(t, []string{"/docs", "http://other.test/x", "guide#install"}, page.Links)
	})

	t.Run("uses the first title only", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>First</title><title>Second</title></head></html>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "First", page.Title)
	})

	t.Run("returns empty title when missing", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(`<html><body><a href="/a">A</a></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, page.Title)
		assert.Equal(t, []string{"/a"}, page.Links)
	})

	t.Run("skips empty, repeated and non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="">empty</a>
<a href="  ">blank</a>
<a>no href</a>
<a href="/a">one</a>
<a href="/a">again</a>
<a href="mailto:me@example.test">mail</a>
<a href="JavaScript:void(0)">js</a>
<a href="tel:+123">phone</a>
<a href="/b">two</a>
</body>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b"}, page.Links)
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse(`<p>unclosed <a href="/x">x <div><a href="/y">y`)

		require.NoError(t, err)
		assert.Equal(t, []string{"/x", "/y"}, page.Links)
	})

	t.Run("handles empty document", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse("")

		require.NoError(t, err)
		assert.Empty(t, page.Title)
		assert.Empty(t, page.Links)
	})
}
