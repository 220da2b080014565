package domain_test

import (
	"heritage/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func world() *domain.Planet {
	return &domain.Planet{ID: 1, Name: "Earth", UNSDName: "World"}
}

func TestLocation_Name(t *testing.T) {
	africa := &domain.Region{ID: 2, Name: "Africa", PlanetID: 1}
	subSaharan := &domain.SubRegion{ID: 202, Name: "Sub-Saharan Africa", RegionID: 2}
	eastern := &domain.IntermediateRegion{ID: 14, Name: "Eastern Africa", SubRegionID: 202}

	tests := []struct {
		name     string
		location *domain.Location
		expected string
	}{
		{
			name: "intermediate region wins",
			location: &domain.Location{
				Planet: world(), Region: africa, SubRegion: subSaharan, IntermediateRegion: eastern,
			},
			expected: "Eastern Africa",
		},
		{
			name:     "sub-region when no intermediate region",
			location: &domain.Location{Planet: world(), Region: africa, SubRegion: subSaharan},
			expected: "Sub-Saharan Africa",
		},
		{
			name:     "region only",
			location: &domain.Location{Planet: world(), Region: africa},
			expected: "Africa",
		},
		{
			name:     "planet standard name",
			location: &domain.Location{Planet: world()},
			expected: "World",
		},
		{
			name:     "empty location",
			location: &domain.Location{},
			expected: domain.UnresolvedLocationName,
		},
		{
			name:     "nil location",
			location: nil,
			expected: domain.UnresolvedLocationName,
		},
		{
			name: "blank intermediate region name is skipped",
			location: &domain.Location{
				Planet: world(), Region: africa, IntermediateRegion: &domain.IntermediateRegion{},
			},
			expected: "Africa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.location.Name())
		})
	}
}

func TestLocation_NeverEmptyWithPlanet(t *testing.T) {
	region := &domain.Region{Name: "Europe"}
	sub := &domain.SubRegion{Name: "Southern Europe"}
	inter := &domain.IntermediateRegion{Name: "Caribbean"}

	for _, r := range []*domain.Region{nil, region} {
		for _, s := range []*domain.SubRegion{nil, sub} {
			for _, i := range []*domain.IntermediateRegion{nil, inter} {
				l := &domain.Location{Planet: world(), Region: r, SubRegion: s, IntermediateRegion: i}
				require.NotEmpty(t, l.Name())
				require.NotEqual(t, domain.UnresolvedLocationName, l.Name())
			}
		}
	}
}
