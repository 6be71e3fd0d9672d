package directory

type Conf struct {
	Host                  string `json:"host"`
	APIKey                string `json:"api_key"` // Key of this App as a Client of the Directory API
	AllowedEmailsEndpoint string `json:"allowed_emails"`
}
