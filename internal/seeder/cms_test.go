package seeder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

// fakeCMS is an in-memory stand-in for the headless CMS, implementing just
// enough of its REST surface for seeding runs to execute end to end.
type fakeCMS struct {
	mu           sync.Mutex
	nextID       int
	categories   []strapi.Category
	products     []strapi.Product
	gallery      []strapi.GalleryImage
	siteSettings *strapi.SiteSettings
	uploads      []string

	server *httptest.Server
}

func newFakeCMS(t *testing.T) *fakeCMS {
	t.Helper()

	f := &fakeCMS{nextID: 1}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", f.handleCategories)
	mux.HandleFunc("/api/products", f.handleProducts)
	mux.HandleFunc("/api/products/", f.handleProductByID)
	mux.HandleFunc("/api/gallery-images", f.handleGallery)
	mux.HandleFunc("/api/gallery-images/", f.handleGalleryByID)
	mux.HandleFunc("/api/site-setting", f.handleSiteSettings)
	mux.HandleFunc("/api/upload", f.handleUpload)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeCMS) client() *strapi.Client {
	return strapi.NewClient(f.server.URL, "test-token")
}

func (f *fakeCMS) allocID() (int, string) {
	id := f.nextID
	f.nextID++
	return id, fmt.Sprintf("doc-%d", id)
}

func (f *fakeCMS) handleCategories(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		matched := make([]strapi.Category, 0, len(f.categories))
		slug := r.URL.Query().Get("filters[slug][$eq]")
		for _, c := range f.categories {
			if slug == "" || c.Slug == slug {
				matched = append(matched, c)
			}
		}
		json.NewEncoder(w).Encode(strapi.Envelope[[]strapi.Category]{Data: matched})
	case http.MethodPost:
		var payload struct {
			Data strapi.CategoryInput `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, docID := f.allocID()
		created := strapi.Category{
			ID:          id,
			DocumentID:  docID,
			Name:        payload.Data.Name,
			Slug:        payload.Data.Slug,
			Description: payload.Data.Description,
			SortOrder:   payload.Data.SortOrder,
		}
		f.categories = append(f.categories, created)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(strapi.Envelope[strapi.Category]{Data: created})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeCMS) handleProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(strapi.Envelope[[]strapi.Product]{Data: f.products})
	case http.MethodPost:
		var payload struct {
			Data strapi.ProductInput `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, docID := f.allocID()
		created := strapi.Product{
			ID:          id,
			DocumentID:  docID,
			Name:        payload.Data.Name,
			Slug:        payload.Data.Slug,
			Description: payload.Data.Description,
			Price:       payload.Data.Price,
			Size:        payload.Data.Size,
			SortOrder:   payload.Data.SortOrder,
			Featured:    payload.Data.Featured,
			Available:   payload.Data.Available,
			CustomOrder: payload.Data.CustomOrder,
		}
		for i := range f.categories {
			if f.categories[i].ID == payload.Data.Category {
				created.Category = &f.categories[i]
			}
		}
		f.products = append(f.products, created)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(strapi.Envelope[strapi.Product]{Data: created})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeCMS) handleProductByID(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	docID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	var payload struct {
		Data strapi.ProductUpdate `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i := range f.products {
		if f.products[i].DocumentID == docID {
			images := make([]strapi.Image, 0, len(payload.Data.Images))
			for _, assetID := range payload.Data.Images {
				images = append(images, strapi.Image{ID: assetID})
			}
			f.products[i].Images = images
			json.NewEncoder(w).Encode(strapi.Envelope[strapi.Product]{Data: f.products[i]})
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (f *fakeCMS) handleGallery(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(strapi.Envelope[[]strapi.GalleryImage]{Data: f.gallery})
	case http.MethodPost:
		var payload struct {
			Data strapi.GalleryImageInput `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, docID := f.allocID()
		created := strapi.GalleryImage{
			ID:              id,
			DocumentID:      docID,
			Title:           payload.Data.Title,
			GalleryCategory: payload.Data.GalleryCategory,
			SortOrder:       payload.Data.SortOrder,
			Featured:        payload.Data.Featured,
		}
		if payload.Data.Image != 0 {
			created.Image = &strapi.Image{ID: payload.Data.Image}
		}
		f.gallery = append(f.gallery, created)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(strapi.Envelope[strapi.GalleryImage]{Data: created})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeCMS) handleGalleryByID(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	docID := strings.TrimPrefix(r.URL.Path, "/api/gallery-images/")
	for i := range f.gallery {
		if f.gallery[i].DocumentID == docID {
			f.gallery = append(f.gallery[:i], f.gallery[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (f *fakeCMS) handleSiteSettings(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		if f.siteSettings == nil {
			http.Error(w, `{"data":null}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(strapi.Envelope[*strapi.SiteSettings]{Data: f.siteSettings})
	case http.MethodPost, http.MethodPut:
		if r.Method == http.MethodPost && f.siteSettings != nil {
			http.Error(w, "singleton already exists", http.StatusBadRequest)
			return
		}
		var payload struct {
			Data strapi.SiteSettingsInput `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if f.siteSettings == nil {
			id, docID := f.allocID()
			f.siteSettings = &strapi.SiteSettings{ID: id, DocumentID: docID}
		}
		f.siteSettings.BusinessName = payload.Data.BusinessName
		f.siteSettings.Tagline = payload.Data.Tagline
		f.siteSettings.Phone = payload.Data.Phone
		json.NewEncoder(w).Encode(strapi.Envelope[*strapi.SiteSettings]{Data: f.siteSettings})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeCMS) handleUpload(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("files")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file.Close()

	id, docID := f.allocID()
	f.uploads = append(f.uploads, header.Filename)
	json.NewEncoder(w).Encode([]strapi.Image{{
		ID:         id,
		DocumentID: docID,
		Name:       header.Filename,
		URL:        "/uploads/" + header.Filename,
	}})
}
