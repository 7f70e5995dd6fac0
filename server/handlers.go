package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ErrResponse struct {
	HTTPStatusCode int
	Message        string
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type viewResponse struct {
	View string `json:"view"`
}

type visitResponse struct {
	LastVisit *string `json:"lastVisit"`
}

func (a *Api) ListPokemonHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(a.Store.PokemonData())
}

func (a *Api) GetPokemonHandler(w http.ResponseWriter, r *http.Request) {
	pokemonId := chi.URLParam(r, "pokemonId")
	if pokemonId == "" {
		log.Debug().Msg("pokemonId parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record := a.Store.PokemonById(pokemonId)
	if record == nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrResponse{
			Message:        fmt.Sprintf("no pokemon with id %s in the cached catalog", pokemonId),
			HTTPStatusCode: http.StatusNotFound,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}

func (a *Api) RefreshCatalogHandler(w http.ResponseWriter, r *http.Request) {
	records, err := a.Catalog.RefreshNow(r.Context())
	if err != nil {
		errMessage := fmt.Sprintf("catalog fetch failed: %v", err)
		log.Err(err).Msg("catalog refresh request failed")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(ErrResponse{
			Message:        errMessage,
			HTTPStatusCode: http.StatusBadGateway,
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(records)
}

func (a *Api) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(a.Store.Favorites())
}

func (a *Api) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	pokemonId := chi.URLParam(r, "pokemonId")
	if pokemonId == "" {
		log.Debug().Msg("pokemonId parameter is missing")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(a.Store.ToggleFavorite(pokemonId))
}

func (a *Api) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(themeResponse{Theme: a.Store.Theme()})
}

// SetThemeHandler persists the requested theme. Storage failures stay
// invisible, the response echoes whatever value is now effective.
func (a *Api) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	var request themeResponse
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Theme == "" {
		errMessage := "request body must be a json object with a non-empty theme field"
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrResponse{
			Message:        errMessage,
			HTTPStatusCode: http.StatusBadRequest,
		})
		return
	}

	a.Store.SetTheme(request.Theme)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(themeResponse{Theme: a.Store.Theme()})
}

func (a *Api) GetDirectoryViewHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(viewResponse{View: a.Store.DirectoryView()})
}

func (a *Api) SetDirectoryViewHandler(w http.ResponseWriter, r *http.Request) {
	var request viewResponse
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.View == "" {
		errMessage := "request body must be a json object with a non-empty view field"
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrResponse{
			Message:        errMessage,
			HTTPStatusCode: http.StatusBadRequest,
		})
		return
	}

	a.Store.SetDirectoryView(request.View)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(viewResponse{View: a.Store.DirectoryView()})
}

func (a *Api) GetFormDataHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(a.Store.FormData())
}

func (a *Api) SaveFormDataHandler(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		errMessage := fmt.Sprintf("error unmarshalling request body: %v", err)
		log.Debug().Msg(errMessage)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrResponse{
			Message:        errMessage,
			HTTPStatusCode: http.StatusBadRequest,
		})
		return
	}

	a.Store.SaveFormData(data)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a.Store.FormData())
}

func (a *Api) GetLastVisitHandler(w http.ResponseWriter, r *http.Request) {
	response := visitResponse{}
	if value, found := a.Store.LastVisit(); found {
		response.LastVisit = &value
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (a *Api) RecordVisitHandler(w http.ResponseWriter, r *http.Request) {
	a.Store.SetLastVisit()

	response := visitResponse{}
	if value, found := a.Store.LastVisit(); found {
		response.LastVisit = &value
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}
