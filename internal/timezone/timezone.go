package timezone

import "time"

// O estúdio opera num único fuso; a data de preenchimento da ficha é
// sempre registrada nele.
const StudioTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
