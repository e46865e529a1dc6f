package entity

// ProjectionPoint is one year of the 5-year trajectory: projected emissions
// under the achievable reduction rate versus the target pathway.
type ProjectionPoint struct {
	Year      int     `json:"year"`
	Emissions float64 `json:"emissions"`
	Target    float64 `json:"target"`
}
