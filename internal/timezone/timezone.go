// Package timezone fixa o fuso da barbearia. Datas e horários são
// strings locais (YYYY-MM-DD, HH:MM); tudo que carimba "agora" passa
// por aqui para não vazar UTC nos registros.
package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}
