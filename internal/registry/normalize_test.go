package registry

import (
	"heritage/pkg/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Old Havana", NormalizeName("  Old \t Havana\n"))
	require.Equal(t, "", NormalizeName("   "))
	require.Equal(t, "Medina of Fez", NormalizeName("Medina of Fez"))
}

func TestNormalizeInput(t *testing.T) {
	t.Parallel()

	in := normalizeInput(domain.SiteInput{
		Name:          " Taj  Mahal ",
		Description:   "\n mausoleum  of white marble ",
		Justification: "  ",
		CountryIDs:    []domain.CountryAreaID{10, 3, 10, 4, 3},
	})
	require.Equal(t, "Taj Mahal", in.Name)
	require.Equal(t, "mausoleum  of white marble", in.Description)
	require.Empty(t, in.Justification)
	require.Equal(t, []domain.CountryAreaID{10, 3, 4}, in.CountryIDs)
}

func TestValidateFields(t *testing.T) {
	t.Parallel()

	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)

		return &v
	}
	year := func(y int) *int { return &y }
	area := func(a float64) *float64 { return &a }

	valid := domain.SiteInput{Name: "Taj Mahal", Description: "mausoleum", CategoryID: 1}

	tests := []struct {
		name   string
		modify func(in *domain.SiteInput)
		fields []string
	}{
		{name: "valid", modify: func(*domain.SiteInput) {}},
		{
			name: "coordinates at the bounds",
			modify: func(in *domain.SiteInput) {
				in.Longitude = d("-180")
				in.Latitude = d("90.00000000")
			},
		},
		{
			name:   "longitude out of range",
			modify: func(in *domain.SiteInput) { in.Longitude = d("180.5") },
			fields: []string{FieldLongitude},
		},
		{
			name:   "latitude too precise",
			modify: func(in *domain.SiteInput) { in.Latitude = d("27.123456789") },
			fields: []string{FieldLatitude},
		},
		{
			name:   "negative area",
			modify: func(in *domain.SiteInput) { in.AreaHectares = area(-1) },
			fields: []string{FieldAreaHectares},
		},
		{
			name:   "zero area",
			modify: func(in *domain.SiteInput) { in.AreaHectares = area(0) },
		},
		{
			name:   "non positive year",
			modify: func(in *domain.SiteInput) { in.DateInscribed = year(0) },
			fields: []string{FieldDateInscribed},
		},
		{
			name: "name too long",
			modify: func(in *domain.SiteInput) {
				in.Name = string(make([]rune, 256))
			},
			fields: []string{FieldSiteName},
		},
		{
			name: "missing everything",
			modify: func(in *domain.SiteInput) {
				*in = domain.SiteInput{}
			},
			fields: []string{FieldSiteName, FieldDescription, FieldCategory},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := valid
			tt.modify(&in)
			errs := map[string][]string{}
			validateFields(in, errs)

			got := make([]string, 0, len(errs))
			for field := range errs {
				got = append(got, field)
			}
			require.ElementsMatch(t, tt.fields, got)
		})
	}
}
