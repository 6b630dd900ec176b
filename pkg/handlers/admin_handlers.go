package handlers

import (
	"log"
	"net/http"

	"image-gallery/pkg/services"
)

// BuildHandler handles API requests to regenerate artifacts and the page
func BuildHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Rebuilding gallery")

	manifest, err := services.Build()
	if err != nil {
		log.Printf("Error in build: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Gallery rebuilt",
		"processed": manifest.Processed,
		"errors":    manifest.Failed,
	})
}

// RenderHandler handles API requests to rewrite the page without touching artifacts
func RenderHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Rendering gallery page")

	index, err := services.Render()
	if err != nil {
		log.Printf("Error in render: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Gallery page rendered",
		"categories": len(index.Categories),
	})
}
