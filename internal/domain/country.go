package domain

import "strings"

// SupportedCountries é o conjunto fechado de países aceitos em UserHouse.Country.
var SupportedCountries = []string{
	"UKRAINE",
	"POLAND",
	"PORTUGAL",
	"GERMANY",
	"SPAIN",
	"ITALY",
	"FRANCE",
	"NETHERLANDS",
}

// IsSupportedCountry verifica a pertinência ao conjunto, sem diferenciar maiúsculas.
func IsSupportedCountry(country string) bool {
	upper := strings.ToUpper(strings.TrimSpace(country))
	for _, c := range SupportedCountries {
		if c == upper {
			return true
		}
	}
	return false
}
