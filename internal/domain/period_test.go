package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod_Year(t *testing.T) {
	period, err := ResolvePeriod("2025", "", "")
	require.NoError(t, err)

	assert.Equal(t, GranularityYear, period.Granularity)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), period.EndDate)
}

func TestResolvePeriod_Month(t *testing.T) {
	period, err := ResolvePeriod("2025", "February", "")
	require.NoError(t, err)

	assert.Equal(t, GranularityMonth, period.Granularity)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), period.EndDate)
}

func TestResolvePeriod_MonthLeapYear(t *testing.T) {
	period, err := ResolvePeriod("2024", "February", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), period.EndDate)
}

func TestResolvePeriod_Weeks(t *testing.T) {
	tests := []struct {
		name      string
		year      string
		month     string
		week      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "primeira semana de março",
			year:      "2025",
			month:     "March",
			week:      "1",
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quarta semana cobre dias 22 a 28",
			year:      "2025",
			month:     "March",
			week:      "4",
			wantStart: time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quinta semana truncada no fim do mês",
			year:      "2025",
			month:     "March",
			week:      "5",
			wantStart: time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quinta semana de abril tem um único dia útil",
			year:      "2025",
			month:     "April",
			week:      "5",
			wantStart: time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "quinta semana de fevereiro bissexto existe só no dia 29",
			year:      "2024",
			month:     "February",
			week:      "5",
			wantStart: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.year, tt.month, tt.week)
			require.NoError(t, err)

			assert.Equal(t, GranularityWeek, period.Granularity)
			assert.Equal(t, tt.wantStart, period.StartDate)
			assert.Equal(t, tt.wantEnd, period.EndDate)
		})
	}
}

func TestResolvePeriod_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		year    string
		month   string
		week    string
		wantErr error
	}{
		{name: "ano vazio", year: "", wantErr: ErrInvalidYear},
		{name: "ano não numérico", year: "abc", wantErr: ErrInvalidYear},
		{name: "mês fora do canônico", year: "2025", month: "march", wantErr: ErrInvalidMonth},
		{name: "mês desconhecido", year: "2025", month: "Fevereiro", wantErr: ErrInvalidMonth},
		{name: "semana sem mês", year: "2025", week: "2", wantErr: ErrInvalidMonth},
		{name: "semana zero", year: "2025", month: "March", week: "0", wantErr: ErrInvalidWeek},
		{name: "semana seis", year: "2025", month: "March", week: "6", wantErr: ErrInvalidWeek},
		{name: "quinta semana de fevereiro comum não existe", year: "2025", month: "February", week: "5", wantErr: ErrInvalidWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.year, tt.month, tt.week)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAvailableWeeks(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		want  []int
	}{
		{name: "mês de 31 dias tem cinco semanas", year: "2025", month: "March", want: []int{1, 2, 3, 4, 5}},
		{name: "mês de 30 dias tem cinco semanas", year: "2025", month: "April", want: []int{1, 2, 3, 4, 5}},
		{name: "fevereiro comum tem quatro semanas", year: "2025", month: "February", want: []int{1, 2, 3, 4}},
		{name: "fevereiro bissexto tem cinco semanas", year: "2024", month: "February", want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks, err := AvailableWeeks(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.want, weeks)
		})
	}
}
