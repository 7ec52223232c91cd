package entity

// Option is the canonical {code, name} pair used to populate selection
// controls. Both fields are guaranteed non-empty by the mapping layer;
// records that cannot satisfy that are dropped before they get here.
type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ContainsCode reports whether any option in the list carries the code.
func ContainsCode(options []Option, code string) bool {
	for _, o := range options {
		if o.Code == code {
			return true
		}
	}
	return false
}
