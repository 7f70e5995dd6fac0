package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/catalog"
	"pokedex/pokemon"
	"pokedex/storage"
	"pokedex/store"
)

type fakeFetcher struct {
	records []pokemon.Pokemon
	err     error
}

func (f *fakeFetcher) FetchCatalog(ctx context.Context, limit int) ([]pokemon.Pokemon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestApi(fetcher catalog.Fetcher) *Api {
	persistentStore := store.New(storage.NewMemoryMedium())
	api := &Api{
		Store:   persistentStore,
		Catalog: catalog.New(fetcher, persistentStore, 150),
	}
	api.initRouter()
	return api
}

func doRequest(api *Api, method, path string, body []byte) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	recorder := httptest.NewRecorder()
	api.Router.ServeHTTP(recorder, request)
	return recorder
}

func TestPokemonEndpoints(t *testing.T) {
	api := newTestApi(&fakeFetcher{})
	require.True(t, api.Store.SetPokemonData([]pokemon.Pokemon{
		{Id: 25, Name: "pikachu", Types: []string{"electric"}},
		{Id: 6, Name: "charizard", Types: []string{"fire", "flying"}},
	}))

	t.Run("list returns the cached catalog", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/pokemon", nil)
		require.Equal(t, http.StatusOK, response.Code)

		var records []pokemon.Pokemon
		require.NoError(t, json.NewDecoder(response.Body).Decode(&records))
		require.Len(t, records, 2)
		assert.Equal(t, "pikachu", records[0].Name)
	})

	t.Run("get by id returns the matching record", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/pokemon/6", nil)
		require.Equal(t, http.StatusOK, response.Code)

		var record pokemon.Pokemon
		require.NoError(t, json.NewDecoder(response.Body).Decode(&record))
		assert.Equal(t, "charizard", record.Name)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/pokemon/151", nil)
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("responses carry a request id", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/pokemon", nil)
		assert.NotEmpty(t, response.Header().Get("X-Request-Id"))
	})
}

func TestRefreshCatalogEndpoint(t *testing.T) {
	t.Run("successful refresh replaces the cache", func(t *testing.T) {
		api := newTestApi(&fakeFetcher{records: []pokemon.Pokemon{{Id: 1, Name: "bulbasaur"}}})

		response := doRequest(api, http.MethodPost, "/pokemon", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.Len(t, api.Store.PokemonData(), 1)
	})

	t.Run("failed fetch returns 502 and keeps the cache", func(t *testing.T) {
		api := newTestApi(&fakeFetcher{err: errors.New("upstream unavailable")})
		require.True(t, api.Store.SetPokemonData([]pokemon.Pokemon{{Id: 25, Name: "pikachu"}}))

		response := doRequest(api, http.MethodPost, "/pokemon", nil)
		assert.Equal(t, http.StatusBadGateway, response.Code)
		assert.Len(t, api.Store.PokemonData(), 1)
	})
}

func TestFavoriteEndpoints(t *testing.T) {
	api := newTestApi(&fakeFetcher{})

	toggle := func(t *testing.T, id string) []string {
		response := doRequest(api, http.MethodPost, "/favorites/"+id, nil)
		require.Equal(t, http.StatusOK, response.Code)

		var favorites []string
		require.NoError(t, json.NewDecoder(response.Body).Decode(&favorites))
		return favorites
	}

	assert.Equal(t, []string{"25"}, toggle(t, "25"))
	assert.Equal(t, []string{"25", "6"}, toggle(t, "6"))
	assert.Equal(t, []string{"6"}, toggle(t, "25"))

	response := doRequest(api, http.MethodGet, "/favorites", nil)
	require.Equal(t, http.StatusOK, response.Code)

	var favorites []string
	require.NoError(t, json.NewDecoder(response.Body).Decode(&favorites))
	assert.Equal(t, []string{"6"}, favorites)
}

func TestPreferenceEndpoints(t *testing.T) {
	api := newTestApi(&fakeFetcher{})

	t.Run("theme defaults to light", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/preferences/theme", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"theme":"light"}`, response.Body.String())
	})

	t.Run("theme can be updated", func(t *testing.T) {
		response := doRequest(api, http.MethodPut, "/preferences/theme", []byte(`{"theme":"dark"}`))
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"theme":"dark"}`, response.Body.String())
	})

	t.Run("empty theme is rejected", func(t *testing.T) {
		response := doRequest(api, http.MethodPut, "/preferences/theme", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("view defaults to grid and can be updated", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/preferences/view", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"view":"grid"}`, response.Body.String())

		response = doRequest(api, http.MethodPut, "/preferences/view", []byte(`{"view":"list"}`))
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"view":"list"}`, response.Body.String())
	})
}

func TestFormEndpoints(t *testing.T) {
	api := newTestApi(&fakeFetcher{})

	t.Run("empty store returns an empty object", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/forms", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{}`, response.Body.String())
	})

	t.Run("saved form data round trips", func(t *testing.T) {
		response := doRequest(api, http.MethodPost, "/forms", []byte(`{"trainer":"red","age":10}`))
		require.Equal(t, http.StatusCreated, response.Code)

		response = doRequest(api, http.MethodGet, "/forms", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"trainer":"red","age":10}`, response.Body.String())
	})

	t.Run("invalid body is rejected", func(t *testing.T) {
		response := doRequest(api, http.MethodPost, "/forms", []byte(`not json`))
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestVisitEndpoints(t *testing.T) {
	api := newTestApi(&fakeFetcher{})

	t.Run("no recorded visit returns null", func(t *testing.T) {
		response := doRequest(api, http.MethodGet, "/visit", nil)
		require.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"lastVisit":null}`, response.Body.String())
	})

	t.Run("recording a visit stores a timestamp", func(t *testing.T) {
		response := doRequest(api, http.MethodPost, "/visit", nil)
		require.Equal(t, http.StatusCreated, response.Code)

		var result struct {
			LastVisit *string `json:"lastVisit"`
		}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
		require.NotNil(t, result.LastVisit)
		assert.NotEmpty(t, *result.LastVisit)
	})
}
