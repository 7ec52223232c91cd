package entity

// Address is the value object carried by a registration. Province through
// subdistrict hold reference-data codes, not display names.
type Address struct {
	Street      string `json:"street"`
	Number      string `json:"number"`
	RT          string `json:"rt"`
	RW          string `json:"rw"`
	Province    string `json:"province"`
	City        string `json:"city"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
	PostalCode  string `json:"postal_code"`
}

// ZipLookup is the reverse postal-code lookup result. Each level is an
// independently normalized option list; any of them may be empty.
type ZipLookup struct {
	Province    []Option `json:"province"`
	City        []Option `json:"city"`
	District    []Option `json:"district"`
	Subdistrict []Option `json:"subdistrict"`
}
