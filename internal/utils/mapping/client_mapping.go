package mapping

import (
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/SscSPs/banking_ledger/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:             d.ClientID,
		IdentificationType:   d.IdentificationType,
		IdentificationNumber: d.IdentificationNumber,
		FirstName:            d.FirstName,
		LastName:             d.LastName,
		Email:                d.Email,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}
