package services_test

import (
	"testing"

	"fieldroutes/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestAddressNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "colonia equal to ciudad collapses",
			raw:  "Av. Juárez 12 Colonia Centro Ciudad Centro",
			want: "Av. Juárez 12 Centro",
		},
		{
			name: "collapse ignores case",
			raw:  "Calle 3 colonia HERMOSILLO ciudad Hermosillo",
			want: "Calle 3 Hermosillo",
		},
		{
			name: "different colonia and ciudad strips labels",
			raw:  "Calle 3 Colonia Centro Ciudad Obregón",
			want: "Calle 3 Centro Obregón",
		},
		{
			name: "abbreviated labels",
			raw:  "Calle 5 #20 Col. Las Flores Cd. Obregón",
			want: "Calle 5 #20 Las Flores Obregón",
		},
		{
			name: "whitespace collapsed",
			raw:  "  Calle   9 \t Norte  ",
			want: "Calle 9 Norte",
		},
		{
			name: "label inside a word is kept",
			raw:  "Calle Colombia 4",
			want: "Calle Colombia 4",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	n := services.NewAddressNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.raw))
		})
	}
}
