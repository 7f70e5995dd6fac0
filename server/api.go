package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pokedex/catalog"
	"pokedex/store"
)

type Api struct {
	Address string
	Port    int
	Store   *store.PersistentStore
	Catalog *catalog.Service
	Router  *chi.Mux
}

func (a *Api) StartRouter() {
	a.initRouter()
	if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.Address, a.Port), a.Router); err != nil {
		log.Err(err).Msg("api server error")
	}
}

func (a *Api) initRouter() {
	a.Router = chi.NewRouter()
	a.Router.Use(requestLogger)
	a.Router.Route("/pokemon", func(r chi.Router) {
		r.Get("/", a.ListPokemonHandler)
		r.Post("/", a.RefreshCatalogHandler)
		r.Get("/{pokemonId}", a.GetPokemonHandler)
	})
	a.Router.Route("/favorites", func(r chi.Router) {
		r.Get("/", a.GetFavoritesHandler)
		r.Post("/{pokemonId}", a.ToggleFavoriteHandler)
	})
	a.Router.Route("/preferences", func(r chi.Router) {
		r.Get("/theme", a.GetThemeHandler)
		r.Put("/theme", a.SetThemeHandler)
		r.Get("/view", a.GetDirectoryViewHandler)
		r.Put("/view", a.SetDirectoryViewHandler)
	})
	a.Router.Route("/forms", func(r chi.Router) {
		r.Get("/", a.GetFormDataHandler)
		r.Post("/", a.SaveFormDataHandler)
	})
	a.Router.Route("/visit", func(r chi.Router) {
		r.Get("/", a.GetLastVisitHandler)
		r.Post("/", a.RecordVisitHandler)
	})
}
