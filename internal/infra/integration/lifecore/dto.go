package lifecore

// envelope is the wrapper every lifecore endpoint returns. Data is legally
// null or absent and its shape is untrusted; only coerce.go may inspect it.
type envelope struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	Data            any    `json:"data"`
}

type ComputePremiumInput struct {
	ProductCode string `json:"product_code"`
	PackageCode string `json:"package_code"`
	TermCode    string `json:"term_code"`
	BirthDate   string `json:"birth_date"`
	Gender      int    `json:"gender"`
	Smoker      bool   `json:"smoker"`
}

type CheckAvailabilityInput struct {
	NIK         string `json:"nik"`
	BirthDate   string `json:"birth_date"`
	ProductCode string `json:"product_code"`
}

type GenerateRiplayInput struct {
	SPAJNumber  string `json:"spaj_no"`
	PackageCode string `json:"package_code"`
	TermCode    string `json:"term_code"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

type SubmitProposalInput struct {
	SPAJNumber  string         `json:"spaj_no"`
	ProductCode string         `json:"product_code"`
	PackageCode string         `json:"package_code"`
	TermCode    string         `json:"term_code"`
	Holder      ProposalHolder `json:"holder"`
	Answers     []AnswerInput  `json:"answers"`
}

type ProposalHolder struct {
	Name        string `json:"name"`
	NIK         string `json:"nik"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date"`
	Gender      int    `json:"gender"`
	Street      string `json:"street"`
	Province    string `json:"province"`
	City        string `json:"city"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
	PostalCode  string `json:"postal_code"`
}

type AnswerInput struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}
