package domain_test

import (
	"heritage/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func country(id domain.CountryAreaID, name, iso string, loc *domain.Location) *domain.CountryArea {
	return &domain.CountryArea{ID: id, Name: name, ISOAlpha3Code: iso, Location: loc}
}

func siteWith(countries ...*domain.CountryArea) domain.HeritageSite {
	s := domain.HeritageSite{Name: "test site"}
	for i, c := range countries {
		s.Jurisdictions = append(s.Jurisdictions, domain.Jurisdiction{ID: domain.JurisdictionID(i + 1), Country: c})
	}

	return s
}

func TestHeritageSite_NoCountries(t *testing.T) {
	s := domain.HeritageSite{Name: "Old City of Jerusalem and its Walls"}

	require.NotPanics(t, func() {
		require.Empty(t, s.CountryAreaNames())
		require.Empty(t, s.RegionNames())
		require.Empty(t, s.SubRegionNames())
		require.Empty(t, s.IntermediateRegionNames())
	})
}

func TestHeritageSite_CountryAreaNames(t *testing.T) {
	loc := &domain.Location{Planet: world()}
	s := siteWith(
		country(2, "Zimbabwe", "ZWE", loc),
		nil,
		country(1, "Zambia", "ZMB", loc),
		country(2, "Zimbabwe", "ZWE", loc),
	)

	require.Equal(t, "Zambia (ZMB), Zimbabwe (ZWE)", s.CountryAreaNames())
	require.Equal(t, []domain.CountryAreaID{1, 2, 2}, s.CountryIDs())
}

func TestHeritageSite_NamesFollowCollation(t *testing.T) {
	loc := &domain.Location{Planet: world(), Region: &domain.Region{ID: 2, Name: "Africa"}}
	europe := &domain.Location{Planet: world(), Region: &domain.Region{ID: 150, Name: "Europe"}}
	s := siteWith(
		country(248, "Åland Islands", "ALA", europe),
		country(894, "Zambia", "ZMB", loc),
		country(384, "côte d'Ivoire", "CIV", loc),
		country(148, "Chad", "TCD", loc),
	)

	require.Equal(t, "Åland Islands (ALA), Chad (TCD), côte d'Ivoire (CIV), Zambia (ZMB)", s.CountryAreaNames())
	require.Equal(t, []domain.CountryAreaID{248, 148, 384, 894}, s.CountryIDs())
	require.Equal(t, "Africa, Europe", s.RegionNames())
}

func TestHeritageSite_TransboundaryRegions(t *testing.T) {
	europe := &domain.Region{ID: 150, Name: "Europe"}
	africa := &domain.Region{ID: 2, Name: "Africa"}
	southern := &domain.SubRegion{ID: 39, Name: "Southern Europe", RegionID: 150}
	western := &domain.SubRegion{ID: 155, Name: "Western Europe", RegionID: 150}
	northern := &domain.SubRegion{ID: 15, Name: "Northern Africa", RegionID: 2}

	t.Run("same region deduplicated", func(t *testing.T) {
		s := siteWith(
			country(1, "Spain", "ESP", &domain.Location{Planet: world(), Region: europe, SubRegion: southern}),
			country(2, "France", "FRA", &domain.Location{Planet: world(), Region: europe, SubRegion: western}),
		)

		require.Equal(t, "Europe", s.RegionNames())
		require.Equal(t, "Southern Europe, Western Europe", s.SubRegionNames())
		require.Empty(t, s.IntermediateRegionNames())
	})

	t.Run("different regions both listed", func(t *testing.T) {
		s := siteWith(
			country(1, "Spain", "ESP", &domain.Location{Planet: world(), Region: europe, SubRegion: southern}),
			country(3, "Morocco", "MAR", &domain.Location{Planet: world(), Region: africa, SubRegion: northern}),
		)

		require.Equal(t, "Africa, Europe", s.RegionNames())
		require.Equal(t, "Northern Africa, Southern Europe", s.SubRegionNames())
		require.Equal(t, "Morocco (MAR), Spain (ESP)", s.CountryAreaNames())
	})
}

func TestHeritageSite_PartialClassification(t *testing.T) {
	americas := &domain.Region{ID: 19, Name: "Americas"}
	latam := &domain.SubRegion{ID: 419, Name: "Latin America and the Caribbean", RegionID: 19}
	caribbean := &domain.IntermediateRegion{ID: 29, Name: "Caribbean", SubRegionID: 419}

	s := siteWith(
		country(1, "Cuba", "CUB", &domain.Location{
			Planet: world(), Region: americas, SubRegion: latam, IntermediateRegion: caribbean,
		}),
		country(2, "Nowhere", "NWH", nil),
		country(3, "Antarctica", "ATA", &domain.Location{Planet: world()}),
		nil,
	)

	require.Equal(t, "Americas", s.RegionNames())
	require.Equal(t, "Latin America and the Caribbean", s.SubRegionNames())
	require.Equal(t, "Caribbean", s.IntermediateRegionNames())
	require.Equal(t, "Antarctica (ATA), Cuba (CUB), Nowhere (NWH)", s.CountryAreaNames())
}

func TestSiteInput_Site(t *testing.T) {
	year := 1978
	in := domain.SiteInput{
		Name:          "Galápagos Islands",
		Description:   "Archipelago",
		DateInscribed: &year,
		CategoryID:    2,
		Transboundary: false,
		CountryIDs:    []domain.CountryAreaID{1},
	}

	s := in.Site(7)
	require.Equal(t, domain.SiteID(7), s.ID)
	require.Equal(t, domain.CategoryID(2), s.Category.ID)
	require.Equal(t, &year, s.DateInscribed)
	require.Empty(t, s.Jurisdictions)
}
