package schemas

// Location is a physical place assets can live in.
type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
