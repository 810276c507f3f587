package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<!DOCTYPE html>
<html><body>
<div class="results gridview">
  <div class="gridview-item">
    <a class="product-title-link" href="/p/1"> Acme X32 32" LED TV </a>
    <span class="price"><span class="currency">$</span>199.99</span>
  </div>
  <div class="gridview-item promoted">
    <a class="product-title-link" href="/p/2">Visio V55 55" OLED TV</a>
    <span class="price">$899.00</span>
  </div>
  <div class="gridview-item">
    <a class="other-link" href="/p/3">No title class here</a>
    <span class="price">$49.00</span>
  </div>
  <div class="gridview-item">
    <a class="product-title-link" href="/p/4">Missing price tile</a>
  </div>
</div>
</body></html>`

func TestScrapeExtractsTiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	listings, err := New(srv.Client()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, listings, 2, "tiles with missing fields are skipped")

	assert.Equal(t, `Acme X32 32" LED TV`, listings[0].Title)
	assert.Equal(t, "$199.99", listings[0].Price)
	assert.Nil(t, listings[0].Rating)
	assert.Nil(t, listings[0].Reviews)

	assert.Equal(t, `Visio V55 55" OLED TV`, listings[1].Title)
	assert.Equal(t, "$899.00", listings[1].Price)
}

func TestScrapeEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>nothing for sale</p></body></html>"))
	}))
	defer srv.Close()

	listings, err := New(srv.Client()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestScrapeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New(srv.Client()).Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestScrapeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(nil).Scrape(context.Background(), srv.URL)
	require.Error(t, err)
}
