package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun       = regexp.MustCompile(`\s+`)
	neighbourhoodInCity = regexp.MustCompile(`(?i)^(.*)\s+Colonia\s+(.+)\s+Ciudad\s+(.+)$`)
	localityLabel       = regexp.MustCompile(`(?i)\b(Colonia|Col|Ciudad|Cd)\b\.?\s*`)
)

// AddressNormalizer turns customer addresses as captured by the billing system
// into the short form technicians see on their route list.
//
// Example:
//
//	n := services.NewAddressNormalizer()
//	n.Normalize("Av. Juárez 12 Colonia Centro Ciudad Centro") // "Av. Juárez 12 Centro"
//	n.Normalize("Calle 5 #20 Col. Las Flores Cd. Obregón")   // "Calle 5 #20 Las Flores Obregón"
type AddressNormalizer struct{}

func NewAddressNormalizer() AddressNormalizer {
	return AddressNormalizer{}
}

// Normalize collapses whitespace, folds "... Colonia X Ciudad X" into "... X"
// and strips the remaining Colonia/Col./Ciudad/Cd. labels.
func (AddressNormalizer) Normalize(raw string) string {
	address := collapse(raw)

	if m := neighbourhoodInCity.FindStringSubmatch(address); m != nil {
		prefix, colonia, ciudad := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		if strings.EqualFold(colonia, ciudad) {
			return strings.TrimSpace(prefix + " " + ciudad)
		}
	}

	return collapse(localityLabel.ReplaceAllString(address, ""))
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
