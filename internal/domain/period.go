package domain

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Granularity indica o nível de agregação de um período
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
	GranularityYear  Granularity = "year"
)

// Erros de validação de seletor de período
var (
	ErrInvalidYear  = errors.New("ano inválido: informe um ano numérico")
	ErrInvalidMonth = errors.New("mês inválido: use o nome canônico do mês (ex: January)")
	ErrInvalidWeek  = errors.New("semana inválida: use um número inteiro entre 1 e 5")
)

// Period representa um intervalo de datas resolvido para agregação.
// É um value object por requisição, nunca persistido.
type Period struct {
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Granularity Granularity `json:"granularity"`
}

// MonthNames são os nomes canônicos dos meses, na ordem do calendário.
// A comparação com o seletor é exata (case-sensitive).
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthByName = func() map[string]time.Month {
	m := make(map[string]time.Month, len(MonthNames))
	for i, name := range MonthNames {
		m[name] = time.Month(i + 1)
	}
	return m
}()

// ResolvePeriod converte um seletor (ano, mês opcional, semana opcional)
// em um intervalo concreto de datas. As combinações aceitas são {ano},
// {ano, mês} e {ano, mês, semana}.
func ResolvePeriod(year, month, week string) (*Period, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return nil, ErrInvalidYear
	}

	// Semana sem mês não tem como ser resolvida
	if month == "" && week != "" {
		return nil, ErrInvalidMonth
	}

	if month == "" {
		return &Period{
			StartDate:   time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
			Granularity: GranularityYear,
		}, nil
	}

	m, ok := monthByName[month]
	if !ok {
		return nil, ErrInvalidMonth
	}

	lastDay := lastDayOfMonth(y, m)

	if week == "" {
		return &Period{
			StartDate:   time.Date(y, m, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(y, m, lastDay, 0, 0, 0, 0, time.UTC),
			Granularity: GranularityMonth,
		}, nil
	}

	w, err := strconv.Atoi(week)
	if err != nil || w < 1 || w > 5 {
		return nil, ErrInvalidWeek
	}

	startDay := (w-1)*7 + 1
	if startDay > lastDay {
		// Semana 5 só existe em meses com 29 dias ou mais
		return nil, ErrInvalidWeek
	}

	endDay := startDay + 6
	if endDay > lastDay {
		endDay = lastDay
	}

	return &Period{
		StartDate:   time.Date(y, m, startDay, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(y, m, endDay, 0, 0, 0, 0, time.UTC),
		Granularity: GranularityWeek,
	}, nil
}

// AvailableWeeks retorna as semanas válidas para o mês informado, derivadas
// apenas do comprimento do calendário. A semana 1 sempre existe; as semanas
// 2 a 5 exigem que o mês tenha ao menos 8, 15, 22 e 29 dias respectivamente.
func AvailableWeeks(year, month string) ([]int, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return nil, ErrInvalidYear
	}

	m, ok := monthByName[month]
	if !ok {
		return nil, ErrInvalidMonth
	}

	lastDay := lastDayOfMonth(y, m)

	weeks := []int{1}
	for w := 2; w <= 5; w++ {
		if lastDay >= (w-1)*7+1 {
			weeks = append(weeks, w)
		}
	}

	return weeks, nil
}

// lastDayOfMonth calcula o último dia de um mês, considerando anos bissextos.
// O dia zero do mês seguinte normaliza para o último dia do mês corrente.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
