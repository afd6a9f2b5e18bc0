package utils

import "time"

// ParseDate converte uma data no formato yyyy-mm-dd. String vazia devolve a data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DateRange gera days datas consecutivas a partir de start
func DateRange(start time.Time, days int) []time.Time {
	if days <= 0 {
		return []time.Time{}
	}

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}

	return dates
}
