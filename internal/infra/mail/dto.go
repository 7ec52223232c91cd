package mail

type PolicyEmailData struct {
	Name         string
	ProductName  string
	DocumentLink string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
