package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type handler struct {
	server *Server
}

func setupRoutes(h *handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(accessLogger)

	router.Get("/default", requestWrapper(h.getDefaultHandler))
	router.Route("/geometries", func(router chi.Router) {
		router.Get("/", requestWrapper(h.getGeometriesHandler))
		router.Get("/{name}/commands", requestWrapper(h.getCommandsHandler))
		router.Post("/{name}", requestWrapperWithBody(h.constructHandler))
		router.Post("/{name}/vertices", requestWrapperWithBody(h.verticesHandler))
	})
	return router
}

func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.WithFields(logrus.Fields{
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debugf("%s %s", r.Method, r.URL.Path)
	})
}
