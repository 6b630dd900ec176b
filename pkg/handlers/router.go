package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"image-gallery/pkg/config"
)

// NewRouter wires the preview server routes. Only the generated tree is
// served from disk; source images stay private.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	prefix := "/" + config.ImagesDirName + "/" + config.GeneratedDirName
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.GeneratedDir())))
	r.Handle(prefix+"/*", fileServer)

	r.Get("/", GalleryHandler)
	r.Get("/feed", FeedHandler)
	r.Get("/category/{name}", CategoryHandler)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/build", BuildHandler)
		r.Post("/render", RenderHandler)
	})

	return r
}
