package models

// Client is a row of the clients table.
type Client struct {
	ClientID             string `db:"client_id"`
	IdentificationType   string `db:"identification_type"`
	IdentificationNumber string `db:"identification_number"`
	FirstName            string `db:"first_name"`
	LastName             string `db:"last_name"`
	Email                string `db:"email"`
	AuditFields
}
