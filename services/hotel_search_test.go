package services

import (
	"testing"

	"casamia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchHotels = []models.Hotel{
	{ID: 1, Name: "Hotel Hernández", Address: "Calle Mayor 3, Madrid", Category: "Boutique", Qualification: 4},
	{ID: 2, Name: "Miramar", Address: "Paseo Marítimo 10, Málaga", Category: "Playa", Qualification: 5},
	{ID: 3, Name: "Casa Azul", Address: "Avenida del Puerto 1, Valencia", Category: "Playa", Qualification: 3},
}

func hotelIDs(results []ScoredHotel) []uint {
	var ids []uint
	for _, r := range results {
		ids = append(ids, r.Hotel.ID)
	}
	return ids
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "hernandez", normalizeInput("  Hernández "))
	assert.Equal(t, "malaga", normalizeInput("MÁLAGA"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("miramar", "miramar"))
	assert.InDelta(t, 1-1.0/7, calculateSimilarity("miramr", "miramar"), 1e-9)
}

func TestSearchHotels(t *testing.T) {
	t.Run("empty criteria keeps every hotel", func(t *testing.T) {
		assert.Len(t, SearchHotels(searchHotels, HotelSearchCriteria{}), 3)
	})

	t.Run("name ignores accents and case", func(t *testing.T) {
		results := SearchHotels(searchHotels, HotelSearchCriteria{Name: "hernandez"})
		require.NotEmpty(t, results)
		assert.Equal(t, uint(1), results[0].Hotel.ID)
		assert.NotContains(t, hotelIDs(results), uint(3))
	})

	t.Run("name tolerates a typo", func(t *testing.T) {
		results := SearchHotels(searchHotels, HotelSearchCriteria{Name: "Miramr"})
		require.NotEmpty(t, results)
		assert.Equal(t, uint(2), results[0].Hotel.ID)
	})

	t.Run("exact filters", func(t *testing.T) {
		results := SearchHotels(searchHotels, HotelSearchCriteria{Category: "playa"})
		assert.ElementsMatch(t, []uint{2, 3}, hotelIDs(results))

		results = SearchHotels(searchHotels, HotelSearchCriteria{Category: "playa", Qualification: 5})
		assert.Equal(t, []uint{2}, hotelIDs(results))
	})

	t.Run("address narrows the results", func(t *testing.T) {
		results := SearchHotels(searchHotels, HotelSearchCriteria{Address: "valencia"})
		require.NotEmpty(t, results)
		assert.Equal(t, uint(3), results[0].Hotel.ID)
	})
}

func TestMergeFilters(t *testing.T) {
	prev := HotelSearchCriteria{Name: "miramar", Address: "malaga", Qualification: 5, Category: "playa"}

	merged := MergeFilters(prev, HotelSearchCriteria{Address: "valencia"})
	assert.Equal(t, HotelSearchCriteria{Name: "miramar", Address: "valencia", Qualification: 5, Category: "playa"}, merged)

	assert.Equal(t, prev, MergeFilters(prev, HotelSearchCriteria{}))
	assert.Equal(t, HotelSearchCriteria{Qualification: 2}, MergeFilters(HotelSearchCriteria{}, HotelSearchCriteria{Qualification: 2}))
}

func TestLastFiltersKey(t *testing.T) {
	assert.Equal(t, "last_filters:hotel:abc", lastFiltersKey("abc"))
	assert.Equal(t, "rooms:hotel:7", roomsCacheKey(7))
}
