package domain

// Client is the owner of accounts. The ledger only needs its identity; everything
// else about a client is managed outside the ledger.
type Client struct {
	ClientID             string `json:"clientID"`
	IdentificationType   string `json:"identificationType"`
	IdentificationNumber string `json:"identificationNumber"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	AuditFields
}
