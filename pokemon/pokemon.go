package pokemon

// Pokemon is one catalog record, shaped the way the UI consumes it. The
// persistent store treats the catalog as an opaque cache and never validates
// record shape.
type Pokemon struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Types          []string `json:"types"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	Abilities      []string `json:"abilities"`
	BaseExperience int      `json:"baseExperience"`
}
