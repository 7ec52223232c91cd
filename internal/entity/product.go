package entity

// ProductListItem is one entry of the microsite catalog.
type ProductListItem struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	MinPremium  float64 `json:"min_premium"`
}

// ProductTerm is one coverage-duration choice (12 months, 24 months...).
type ProductTerm struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Months int    `json:"months"`
}

// PackageBenefit belongs to a coverage package. Notes is optional: the
// backend omits it for most benefits and the UI renders a footnote only
// when the key is present, so it must stay omitempty.
type PackageBenefit struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Coverage float64 `json:"coverage"`
	Notes    string  `json:"notes,omitempty"`
}

// ProductPackage is a coverage tier within a product.
type ProductPackage struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Premium  float64          `json:"premium"`
	Benefits []PackageBenefit `json:"benefits"`
}

// ProductDetail owns the ordered terms and packages of one product.
type ProductDetail struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	RiplayURL   string           `json:"riplay_url,omitempty"`
	Terms       []ProductTerm    `json:"terms"`
	Packages    []ProductPackage `json:"packages"`
}

// Premium is the result of a premium computation.
type Premium struct {
	BasePremium  float64 `json:"base_premium"`
	AdminFee     float64 `json:"admin_fee"`
	TotalPremium float64 `json:"total_premium"`
	Currency     string  `json:"currency"`
	Frequency    string  `json:"frequency"`
}
