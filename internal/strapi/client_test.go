package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery

		json.NewEncoder(w).Encode(Envelope[[]Product]{Data: []Product{
			{ID: 1, Name: "Economy Bouquet", Slug: "economy-bouquet", Price: 1200},
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret-token")
	q := NewListQuery().Populate("*").SortAsc("sortOrder").Eq("available", true)

	products, err := c.ListProducts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Economy Bouquet", products[0].Name)
	assert.Equal(t, 1200, products[0].Price)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, gotQuery, "populate=%2A")
	assert.Contains(t, gotQuery, "sort=sortOrder%3Aasc")
}

func TestListProducts_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [], "meta": {"pagination": {"total": 0}}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	products, err := c.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProducts_NullData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	products, err := c.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProducts_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ListProducts(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestListProducts_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ListProducts(context.Background(), nil)
	assert.Error(t, err)
}

func TestCreateCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/categories", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Data CategoryInput `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "standard-bouquets", payload.Data.Slug)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Envelope[*Category]{Data: &Category{
			ID: 7, Name: payload.Data.Name, Slug: payload.Data.Slug,
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "token")
	created, err := c.CreateCategory(context.Background(), CategoryInput{
		Name: "Standard Bouquets", Slug: "standard-bouquets", SortOrder: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestGetSiteSettings_Absent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"data":null,"error":{"status":404}}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	settings, err := c.GetSiteSettings(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestGetSiteSettings_Present(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/site-setting", r.URL.Path)
		json.NewEncoder(w).Encode(Envelope[*SiteSettings]{Data: &SiteSettings{
			ID: 1, BusinessName: "Maisha Maua",
		}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	settings, err := c.GetSiteSettings(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Maisha Maua", settings.BusinessName)
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "warm-bouquet.jpeg", header.Filename)

		json.NewEncoder(w).Encode([]Image{{ID: 42, URL: "/uploads/warm_bouquet.jpeg"}})
	}))
	defer server.Close()

	c := NewClient(server.URL, "token")
	asset, err := c.Upload(context.Background(), "warm-bouquet.jpeg", bytes.NewReader([]byte("jpeg-bytes")))
	require.NoError(t, err)
	assert.Equal(t, 42, asset.ID)
}

func TestUpload_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.Upload(context.Background(), "x.jpeg", bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestDeleteGalleryImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/gallery-images/doc123", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, "token")
	assert.NoError(t, c.DeleteGalleryImage(context.Background(), "doc123"))
}
