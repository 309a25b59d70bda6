package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinProducts(t *testing.T) {
	t.Run("Resolves category and owner", func(t *testing.T) {
		dataset := Dataset{
			Users:      []User{{ID: 5, Name: "Max", Sex: SexMale}},
			Categories: []Category{{ID: 10, Title: "Grocery", Icon: "🍞", OwnerID: 5}},
			Products:   []Product{{ID: 1, Name: "Milk", CategoryID: 10}},
		}

		enriched, err := JoinProducts(dataset)

		require.NoError(t, err)
		require.Len(t, enriched, 1)
		assert.Equal(t, uint(1), enriched[0].ID)
		assert.Equal(t, "Milk", enriched[0].Name)
		assert.Equal(t, "Grocery", enriched[0].Category.Title)
		assert.Equal(t, "🍞", enriched[0].Category.Icon)
		assert.Equal(t, "Max", enriched[0].User.Name)
	})

	t.Run("Preserves product order and leaves input untouched", func(t *testing.T) {
		dataset := testDataset()
		before := testDataset()

		enriched, err := JoinProducts(dataset)

		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, ids(enriched))
		assert.Equal(t, before, dataset)
		assert.Equal(t, "Anna", enriched[1].User.Name, "Bread is in Grocery, owned by Anna")
	})

	t.Run("Empty dataset", func(t *testing.T) {
		enriched, err := JoinProducts(Dataset{})

		require.NoError(t, err)
		assert.Empty(t, enriched)
	})

	testCases := []struct {
		name     string
		mutate   func(d *Dataset)
		expected error
	}{
		{
			name:     "Product with unknown category",
			mutate:   func(d *Dataset) { d.Products[0].CategoryID = 99 },
			expected: ErrMissingCategory,
		},
		{
			name:     "Category with unknown owner",
			mutate:   func(d *Dataset) { d.Categories[0].OwnerID = 42 },
			expected: ErrMissingOwner,
		},
		{
			name:     "Duplicate user id",
			mutate:   func(d *Dataset) { d.Users = append(d.Users, User{ID: 1, Name: "Clone", Sex: SexMale}) },
			expected: ErrDuplicateID,
		},
		{
			name:     "Duplicate category id",
			mutate:   func(d *Dataset) { d.Categories = append(d.Categories, Category{ID: 2, Title: "Again", OwnerID: 1}) },
			expected: ErrDuplicateID,
		},
		{
			name:     "Duplicate product id",
			mutate:   func(d *Dataset) { d.Products = append(d.Products, Product{ID: 3, Name: "Again", CategoryID: 1}) },
			expected: ErrDuplicateID,
		},
		{
			name:     "Unknown sex",
			mutate:   func(d *Dataset) { d.Users[1].Sex = "x" },
			expected: ErrInvalidSex,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			dataset := testDataset()
			tc.mutate(&dataset)

			// Act
			enriched, err := JoinProducts(dataset)

			// Assert
			assert.Nil(t, enriched)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, ErrDataIntegrity)
		})
	}
}
