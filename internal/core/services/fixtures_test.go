package services_test

import (
	"fmt"
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/services"
	"github.com/shopspring/decimal"
)

var (
	testToday = domain.NewDate(2024, time.March, 20)
	testNow   = time.Date(2024, time.March, 20, 9, 30, 0, 0, time.UTC)
)

// testOptions pins the clock, the audit timestamp and the id sequence.
func testOptions() []services.ServiceOption {
	n := 0
	return []services.ServiceOption{
		services.WithClock(domain.FixedClock(testToday)),
		services.WithNow(func() time.Time { return testNow }),
		services.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
}

func activeClient(id, routeID string, order int) domain.Client {
	return domain.Client{
		ClientID:             id,
		RouteID:              routeID,
		IdentificationNumber: "ID-" + id,
		Name:                 "Client " + id,
		Order:                order,
		Status:               domain.ClientActive,
	}
}

// weeklyCredit is 10 weekly installments of 110 on a capital of 1000,
// first due 2024-03-04.
func weeklyCredit(id, clientID string) domain.Credit {
	return domain.Credit{
		CreditID:          id,
		ClientID:          clientID,
		Capital:           decimal.NewFromInt(1000),
		TotalToPay:        decimal.NewFromInt(1100),
		InstallmentValue:  decimal.NewFromInt(110),
		TotalInstallments: 10,
		Frequency:         domain.Weekly,
		StartDate:         domain.NewDate(2024, time.February, 26),
		FirstPaymentDate:  domain.NewDate(2024, time.March, 4),
		Status:            domain.CreditActive,
		TotalPaid:         decimal.Zero,
	}
}

func payment(id, creditID string, amount int64, date domain.Date) domain.Payment {
	return domain.Payment{
		PaymentID: id,
		CreditID:  creditID,
		Date:      date,
		Amount:    decimal.NewFromInt(amount),
	}
}

func strPtr(s string) *string { return &s }
