package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name  string
		start domain.Date
		n     int
		want  domain.Date
	}{
		{"plain month", domain.NewDate(2024, time.March, 15), 1, domain.NewDate(2024, time.April, 15)},
		{"jan 31 to leap feb", domain.NewDate(2024, time.January, 31), 1, domain.NewDate(2024, time.February, 29)},
		{"jan 31 to feb", domain.NewDate(2023, time.January, 31), 1, domain.NewDate(2023, time.February, 28)},
		{"across year", domain.NewDate(2023, time.November, 30), 3, domain.NewDate(2024, time.February, 29)},
		{"zero months", domain.NewDate(2023, time.May, 5), 0, domain.NewDate(2023, time.May, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMonths(tt.n))
		})
	}
}

func TestDate_MonthsUntil(t *testing.T) {
	start := domain.NewDate(2024, time.January, 31)
	assert.Equal(t, 0, start.MonthsUntil(domain.NewDate(2024, time.January, 1)))
	assert.Equal(t, 0, start.MonthsUntil(domain.NewDate(2024, time.February, 28)))
	assert.Equal(t, 1, start.MonthsUntil(domain.NewDate(2024, time.February, 29)))
	assert.Equal(t, 1, start.MonthsUntil(domain.NewDate(2024, time.March, 30)))
	assert.Equal(t, 2, start.MonthsUntil(domain.NewDate(2024, time.March, 31)))
	assert.Equal(t, 12, start.MonthsUntil(domain.NewDate(2025, time.January, 31)))
}

func TestFrequency_PeriodsBetween(t *testing.T) {
	first := domain.NewDate(2024, time.June, 3)
	tests := []struct {
		freq domain.Frequency
		end  domain.Date
		want int
	}{
		{domain.Daily, first.AddDays(10), 10},
		{domain.Weekly, first.AddDays(34), 4},
		{domain.Weekly, first.AddDays(35), 5},
		{domain.Biweekly, first.AddDays(27), 1},
		{domain.Biweekly, first.AddDays(28), 2},
		{domain.Monthly, domain.NewDate(2024, time.September, 2), 2},
		{domain.Monthly, domain.NewDate(2024, time.September, 3), 3},
		{domain.Weekly, first.AddDays(-3), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.freq)+"_"+tt.end.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.freq.PeriodsBetween(first, tt.end))
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := domain.NewDate(2024, time.July, 9)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-09"`, string(b))

	var back domain.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back))

	var bad domain.Date
	assert.Error(t, json.Unmarshal([]byte(`"09/07/2024"`), &bad))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date
	require.NoError(t, d.Scan(time.Date(2024, time.July, 9, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, domain.NewDate(2024, time.July, 9), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
