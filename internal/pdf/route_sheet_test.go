package pdf_test

import (
	"bytes"
	"testing"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/SscSPs/route_lending_app/internal/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteSheet_RendersPDF(t *testing.T) {
	credit := domain.Credit{
		CreditID:          "cr-1",
		ClientID:          "c-1",
		Capital:           decimal.NewFromInt(1000),
		TotalToPay:        decimal.NewFromInt(1100),
		InstallmentValue:  decimal.NewFromInt(110),
		TotalInstallments: 10,
		Frequency:         domain.Weekly,
		StartDate:         domain.NewDate(2024, 3, 1),
		FirstPaymentDate:  domain.NewDate(2024, 3, 4),
		Status:            domain.CreditActive,
	}
	today := domain.NewDate(2024, 3, 20)
	clients := []domain.Client{
		{ClientID: "c-1", RouteID: "r-1", Name: "Ana Gómez", Alias: "La tienda", Address: "Calle 1 # 2-3", Order: 1, Status: domain.ClientActive},
		{ClientID: "c-2", RouteID: "r-1", Name: "Luis Peña with a very long name that will not fit in the column", Order: 2, Status: domain.ClientActive},
	}
	standings := ledger.Standings(clients, map[string]domain.Credit{"c-1": credit}, nil, today)

	var buf bytes.Buffer
	gen := pdf.NewSheetGenerator("route-lending")
	err := gen.RouteSheet(&buf, pdf.RouteSheetData{
		Route:     domain.Route{RouteID: "r-1", Name: "Norte"},
		Day:       today,
		Standings: standings,
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRouteSheet_EmptyRoute(t *testing.T) {
	var buf bytes.Buffer
	err := pdf.NewSheetGenerator("").RouteSheet(&buf, pdf.RouteSheetData{
		Route: domain.Route{RouteID: "r-2", Name: "Sur"},
		Day:   domain.NewDate(2024, 3, 20),
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
