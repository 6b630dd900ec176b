package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"image-gallery/pkg/services"
)

// GalleryHandler renders the gallery page from the current output tree
func GalleryHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Index")

	page, renderer, err := services.RenderPage()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Assembly error: %v", err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.Execute(&buf, page); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Template execution error: %v", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Write error: %v", err)
	}
}

// FeedHandler returns the assembled galleries as JSON
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Feed")

	index, err := services.GetIndex()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Assembly error: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, index.Categories)
}

// CategoryHandler returns a single category as JSON
func CategoryHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	category, err := services.GetCategory(name)
	if err != nil {
		log.Println("Category not found: " + name)
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("JSON error: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Printf("Write error: %v", err)
	}
}
