package packages

// Package is a physical parcel ("colis"). Dimensions are centimeters,
// weight is kilograms. A package carries no placement reference; its
// location lives in the placement ledger.
type Package struct {
	ID     int64   `json:"id"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

func (p Package) Volume() float64 {
	return p.Length * p.Width * p.Height
}
