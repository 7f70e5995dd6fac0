package pokemon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

// Client fetches catalog records from a PokeAPI-compatible upstream.
type Client struct {
	BaseUrl string
	Http    *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		BaseUrl: baseUrl,
		Http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type indexResponse struct {
	Results []struct {
		Name string `json:"name"`
		Url  string `json:"url"`
	} `json:"results"`
}

type detailResponse struct {
	Id             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Sprites        struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
}

// FetchCatalog returns the first limit records in upstream order. The index
// page is fetched first, then one detail request per entry; cancelling the
// context aborts between requests.
func (c *Client) FetchCatalog(ctx context.Context, limit int) ([]Pokemon, error) {
	var index indexResponse
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.BaseUrl, limit)
	if err := c.getJson(ctx, url, &index); err != nil {
		return nil, fmt.Errorf("failed to fetch catalog index: %w", err)
	}

	records := make([]Pokemon, 0, len(index.Results))
	for _, entry := range index.Results {
		var detail detailResponse
		detailUrl := fmt.Sprintf("%s/pokemon/%s", c.BaseUrl, entry.Name)
		if err := c.getJson(ctx, detailUrl, &detail); err != nil {
			return nil, fmt.Errorf("failed to fetch record %s: %w", entry.Name, err)
		}
		records = append(records, detail.toRecord())
	}
	return records, nil
}

func (c *Client) getJson(ctx context.Context, url string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.Http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("received invalid http status code: %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(target)
}

func (d detailResponse) toRecord() Pokemon {
	types := make([]string, len(d.Types))
	for i, t := range d.Types {
		types[i] = t.Type.Name
	}
	abilities := make([]string, len(d.Abilities))
	for i, a := range d.Abilities {
		abilities[i] = a.Ability.Name
	}
	return Pokemon{
		Id:             d.Id,
		Name:           d.Name,
		Image:          d.Sprites.FrontDefault,
		Types:          types,
		Height:         d.Height,
		Weight:         d.Weight,
		Abilities:      abilities,
		BaseExperience: d.BaseExperience,
	}
}
