// Package store holds user preferences, favorites and the cached catalog on a
// host-provided storage medium. Every operation is fail-soft: failures are
// logged and converted to the operation's documented default so consumers stay
// responsive when persistence is unavailable.
package store

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"pokedex/pokemon"
	"pokedex/storage"
)

const (
	themeKey         = "theme"
	directoryViewKey = "directoryView"
	favoritesKey     = "pokemonFavorites"
	pokemonDataKey   = "pokemonData"
	lastVisitKey     = "lastVisit"
	formDataKey      = "formData"
)

const (
	DefaultTheme         = "light"
	DefaultDirectoryView = "grid"
)

// ThemeApplier receives the theme as a presentation side effect, typically the
// document root of the consuming UI.
type ThemeApplier interface {
	ApplyTheme(theme string)
}

type PersistentStore struct {
	Medium  storage.Medium
	Applier ThemeApplier
	Now     func() time.Time
}

func New(medium storage.Medium) *PersistentStore {
	return &PersistentStore{Medium: medium, Now: time.Now}
}

// SetTheme persists the theme and applies it to the UI collaborator. The
// applier is only notified when the write succeeded.
func (p *PersistentStore) SetTheme(theme string) bool {
	if err := p.Medium.Set(themeKey, theme); err != nil {
		log.Err(err).Str("key", themeKey).Msg("failed to save theme")
		return false
	}
	if p.Applier != nil {
		p.Applier.ApplyTheme(theme)
	}
	return true
}

func (p *PersistentStore) Theme() string {
	value, found := p.Medium.Get(themeKey)
	if !found {
		return DefaultTheme
	}
	return value
}

func (p *PersistentStore) SetDirectoryView(view string) bool {
	if err := p.Medium.Set(directoryViewKey, view); err != nil {
		log.Err(err).Str("key", directoryViewKey).Msg("failed to save directory view")
		return false
	}
	return true
}

func (p *PersistentStore) DirectoryView() string {
	value, found := p.Medium.Get(directoryViewKey)
	if !found {
		return DefaultDirectoryView
	}
	return value
}

// ToggleFavorite adds the id when absent and removes its first occurrence when
// present, then persists the updated sequence. A failed write reports an empty
// sequence, which callers cannot tell apart from cleared favorites.
func (p *PersistentStore) ToggleFavorite(id string) []string {
	favorites := p.Favorites()

	updated := make([]string, 0, len(favorites)+1)
	removed := false
	for _, favorite := range favorites {
		if !removed && favorite == id {
			removed = true
			continue
		}
		updated = append(updated, favorite)
	}
	if !removed {
		updated = append(updated, id)
	}

	if !p.writeJson(favoritesKey, updated) {
		return []string{}
	}
	return updated
}

func (p *PersistentStore) Favorites() []string {
	raw, found := p.Medium.Get(favoritesKey)
	if !found {
		return []string{}
	}

	var favorites []string
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		log.Err(err).Str("key", favoritesKey).Msg("failed to decode stored favorites")
		return []string{}
	}
	if favorites == nil {
		favorites = []string{}
	}
	return favorites
}

// SetPokemonData replaces the cached catalog wholesale.
func (p *PersistentStore) SetPokemonData(records []pokemon.Pokemon) bool {
	return p.writeJson(pokemonDataKey, records)
}

func (p *PersistentStore) PokemonData() []pokemon.Pokemon {
	raw, found := p.Medium.Get(pokemonDataKey)
	if !found {
		return []pokemon.Pokemon{}
	}

	var records []pokemon.Pokemon
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Err(err).Str("key", pokemonDataKey).Msg("failed to decode cached catalog")
		return []pokemon.Pokemon{}
	}
	if records == nil {
		records = []pokemon.Pokemon{}
	}
	return records
}

// PokemonById scans the cached catalog in order for the first record whose id
// matches. Ids are compared as trimmed strings, the argument usually comes
// from a URL.
func (p *PersistentStore) PokemonById(id string) *pokemon.Pokemon {
	id = strings.TrimSpace(id)
	records := p.PokemonData()
	for i := range records {
		if strconv.Itoa(records[i].Id) == id {
			record := records[i]
			return &record
		}
	}
	return nil
}

// SetLastVisit stamps the current time as a millisecond timestamp string.
func (p *PersistentStore) SetLastVisit() bool {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}

	if err := p.Medium.Set(lastVisitKey, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		log.Err(err).Str("key", lastVisitKey).Msg("failed to save last visit")
		return false
	}
	return true
}

// LastVisit returns the raw stored timestamp, found reports whether a visit
// was ever recorded.
func (p *PersistentStore) LastVisit() (string, bool) {
	return p.Medium.Get(lastVisitKey)
}

func (p *PersistentStore) SaveFormData(data map[string]any) bool {
	return p.writeJson(formDataKey, data)
}

func (p *PersistentStore) FormData() map[string]any {
	raw, found := p.Medium.Get(formDataKey)
	if !found {
		return map[string]any{}
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Err(err).Str("key", formDataKey).Msg("failed to decode stored form data")
		return map[string]any{}
	}
	if data == nil {
		data = map[string]any{}
	}
	return data
}

func (p *PersistentStore) writeJson(key string, value any) bool {
	encoded, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("key", key).Msg("failed to encode value")
		return false
	}
	if err := p.Medium.Set(key, string(encoded)); err != nil {
		log.Err(err).Str("key", key).Msg("failed to save value")
		return false
	}
	return true
}
