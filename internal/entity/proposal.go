package entity

// SPAJ is the proposal/application record created in the admin system.
type SPAJ struct {
	Number    string `json:"number"`
	CreatedAt string `json:"created_at"`
}

// ProposalStatus is the normalized underwriting decision. Success is true
// only for a literal "CLEAN" status upstream.
type ProposalStatus struct {
	Success bool `json:"success"`
}

// Payment holds the virtual-account instructions shown while the
// registration waits for payment.
type Payment struct {
	Method        string  `json:"method"`
	VirtualAccNo  string  `json:"virtual_account_no"`
	BankCode      string  `json:"bank_code"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	ExpiresAt     string  `json:"expires_at"`
	PaymentURL    string  `json:"payment_url,omitempty"`
	PaymentStatus string  `json:"payment_status"`
}

// Document is a generated document reference (RIPLAY and friends).
type Document struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

// Eligibility is the availability-check verdict. A decision other than "Y"
// is a normal domain result, not an error.
type Eligibility struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// Eligible reports whether the admin system accepted the applicant.
func (e Eligibility) Eligible() bool {
	return e.Decision == "Y"
}
