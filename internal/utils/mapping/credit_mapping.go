package mapping

import (
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/models"
)

// ToModelCredit converts a domain Credit to a model Credit
func ToModelCredit(d domain.Credit) models.Credit {
	return models.Credit{
		CreditID:          d.CreditID,
		ClientID:          d.ClientID,
		Capital:           d.Capital,
		TotalToPay:        d.TotalToPay,
		InstallmentValue:  d.InstallmentValue,
		TotalInstallments: d.TotalInstallments,
		Frequency:         string(d.Frequency),
		StartDate:         d.StartDate.Time(),
		FirstPaymentDate:  d.FirstPaymentDate.Time(),
		Status:            string(d.Status),
		PaidInstallments:  d.PaidInstallments,
		TotalPaid:         d.TotalPaid,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCredit converts a model Credit to a domain Credit
func ToDomainCredit(m models.Credit) domain.Credit {
	return domain.Credit{
		CreditID:          m.CreditID,
		ClientID:          m.ClientID,
		Capital:           m.Capital,
		TotalToPay:        m.TotalToPay,
		InstallmentValue:  m.InstallmentValue,
		TotalInstallments: m.TotalInstallments,
		Frequency:         domain.Frequency(m.Frequency),
		StartDate:         domain.DateOf(m.StartDate),
		FirstPaymentDate:  domain.DateOf(m.FirstPaymentDate),
		Status:            domain.CreditStatus(m.Status),
		PaidInstallments:  m.PaidInstallments,
		TotalPaid:         m.TotalPaid,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditSlice converts a slice of model Credits to a slice of domain Credits
func ToDomainCreditSlice(ms []models.Credit) []domain.Credit {
	ds := make([]domain.Credit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCredit(m)
	}
	return ds
}
