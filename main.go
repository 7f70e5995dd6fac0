package main

import (
	"os"
	"strconv"

	"pokedex/catalog"
	"pokedex/logger"
	"pokedex/pokemon"
	"pokedex/server"
	"pokedex/storage"
	"pokedex/store"
)

// All-in-one development entrypoint: memory medium, env-configured address.
// The pokedexd binary is the real daemon.
func main() {
	logger.Setup("debug", "pokedex")

	host := os.Getenv("POKEDEX_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port, _ := strconv.Atoi(os.Getenv("POKEDEX_PORT"))
	if port == 0 {
		port = 8080
	}

	persistentStore := store.New(storage.NewMemoryMedium())
	service := catalog.New(pokemon.NewClient(pokemon.DefaultBaseUrl), persistentStore, 150)
	defer service.Stop()

	go service.ProcessRefreshes()
	service.Refresh()

	api := server.Api{Address: host, Port: port, Store: persistentStore, Catalog: service}
	api.StartRouter()
}
