package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"pokedex/pokemon"
)

func main() {
	app := &cli.App{
		Name:  "pokedex",
		Usage: "query a running pokedex daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "daemon API host",
				Value: "127.0.0.1",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "daemon API port",
				Value:   8080,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "get the cached catalog",
				Action: func(ctx *cli.Context) error {
					return listPokemon(getUrl(ctx.String("host"), ctx.Int("port")))
				},
			},
			{
				Name:      "get",
				Usage:     "get a specific catalog record",
				ArgsUsage: "id of the pokemon to query",
				Action: func(ctx *cli.Context) error {
					if ctx.Args().Len() != 1 {
						return fmt.Errorf("wrong arguments count, expected=1, got=%d", ctx.Args().Len())
					}
					url := getUrl(ctx.String("host"), ctx.Int("port"))
					return getPokemon(url, ctx.Args().First())
				},
			},
			{
				Name:      "fav",
				Usage:     "toggle a pokemon in the favorites list",
				ArgsUsage: "id of the pokemon to toggle",
				Action: func(ctx *cli.Context) error {
					if ctx.Args().Len() != 1 {
						return fmt.Errorf("wrong arguments count, expected=1, got=%d", ctx.Args().Len())
					}
					url := getUrl(ctx.String("host"), ctx.Int("port"))
					return toggleFavorite(url, ctx.Args().First())
				},
			},
			{
				Name:  "favs",
				Usage: "get the favorites list",
				Action: func(ctx *cli.Context) error {
					return listFavorites(getUrl(ctx.String("host"), ctx.Int("port")))
				},
			},
			{
				Name:      "theme",
				Usage:     "get the theme preference, or set it when a value is given",
				ArgsUsage: "[theme value]",
				Action: func(ctx *cli.Context) error {
					url := getUrl(ctx.String("host"), ctx.Int("port"))
					return preference(url, "theme", ctx.Args().First())
				},
			},
			{
				Name:      "view",
				Usage:     "get the directory view preference, or set it when a value is given",
				ArgsUsage: "[view value]",
				Action: func(ctx *cli.Context) error {
					url := getUrl(ctx.String("host"), ctx.Int("port"))
					return preference(url, "view", ctx.Args().First())
				},
			},
			{
				Name:  "refresh",
				Usage: "fetch the catalog from the upstream API and replace the cache",
				Action: func(ctx *cli.Context) error {
					return refreshCatalog(getUrl(ctx.String("host"), ctx.Int("port")))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("[ERROR] %v", err)
	}
}

func getUrl(host string, port int) string {
	if !strings.HasPrefix(host, "http") {
		host = fmt.Sprintf("http://%s:%d", host, port)
	}
	return host
}

func listPokemon(baseUrl string) error {
	var records []pokemon.Pokemon
	if err := getJson(fmt.Sprintf("%s/pokemon", baseUrl), &records); err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No cached catalog, run the refresh command first")
		return nil
	}

	fmt.Printf("[OK] found %d record(s):\n", len(records))
	for _, record := range records {
		fmt.Printf("- #%d %s (%s)\n", record.Id, record.Name, strings.Join(record.Types, ", "))
	}
	return nil
}

func getPokemon(baseUrl string, pokemonId string) error {
	var record pokemon.Pokemon
	url := fmt.Sprintf("%s/pokemon/%s", baseUrl, pokemonId)
	if err := getJson(url, &record); err != nil {
		return err
	}

	fmt.Printf("%#v\n", record)
	return nil
}

func toggleFavorite(baseUrl string, pokemonId string) error {
	url := fmt.Sprintf("%s/favorites/%s", baseUrl, pokemonId)
	response, err := http.Post(url, "application/json", nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received invalid http status code: %d", response.StatusCode)
	}

	var favorites []string
	if err := json.NewDecoder(response.Body).Decode(&favorites); err != nil {
		return err
	}

	fmt.Printf("[OK] favorites: %v\n", favorites)
	return nil
}

func listFavorites(baseUrl string) error {
	var favorites []string
	if err := getJson(fmt.Sprintf("%s/favorites", baseUrl), &favorites); err != nil {
		return err
	}

	if len(favorites) == 0 {
		fmt.Println("No favorite found")
		return nil
	}

	fmt.Printf("[OK] found %d favorite(s): %v\n", len(favorites), favorites)
	return nil
}

func preference(baseUrl string, name string, value string) error {
	url := fmt.Sprintf("%s/preferences/%s", baseUrl, name)

	if value == "" {
		var current map[string]string
		if err := getJson(url, &current); err != nil {
			return err
		}
		fmt.Printf("[OK] %v\n", current)
		return nil
	}

	body, err := json.Marshal(map[string]string{name: value})
	if err != nil {
		return err
	}
	request, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	client := http.Client{}
	response, err := client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received invalid http status code: %d", response.StatusCode)
	}

	var current map[string]string
	if err := json.NewDecoder(response.Body).Decode(&current); err != nil {
		return err
	}
	fmt.Printf("[OK] %v\n", current)
	return nil
}

func refreshCatalog(baseUrl string) error {
	response, err := http.Post(fmt.Sprintf("%s/pokemon", baseUrl), "application/json", nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received invalid http status code: %d", response.StatusCode)
	}

	var records []pokemon.Pokemon
	if err := json.NewDecoder(response.Body).Decode(&records); err != nil {
		return err
	}

	fmt.Printf("[OK] catalog refreshed, %d record(s) cached\n", len(records))
	return nil
}

func getJson(url string, target any) error {
	response, err := http.Get(url)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received invalid http status code: %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(target)
}
