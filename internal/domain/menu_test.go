package domain_test

import (
	"testing"

	"github.com/kofiasare/playtill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewMenuItem(t *testing.T) {
	t.Run("creates item successfully", func(t *testing.T) {
		item, err := domain.NewMenuItem("Burger", 500, strPtr("Food"))

		require.NoError(t, err)
		assert.Equal(t, "Burger", item.Name)
		assert.Equal(t, int64(500), item.PriceCents)
		require.NotNil(t, item.Category)
		assert.Equal(t, "Food", *item.Category)
	})

	t.Run("allows absent category", func(t *testing.T) {
		item, err := domain.NewMenuItem("Mystery Box", 100, nil)

		require.NoError(t, err)
		assert.Nil(t, item.Category)
	})

	t.Run("allows free items", func(t *testing.T) {
		_, err := domain.NewMenuItem("Tap Water", 0, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := domain.NewMenuItem("", 500, nil)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := domain.NewMenuItem("Burger", -1, nil)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
	})
}

func TestGroupByCategory(t *testing.T) {
	mustItem := func(name string, price int64, category *string) domain.MenuItem {
		item, err := domain.NewMenuItem(name, price, category)
		require.NoError(t, err)
		return item
	}

	t.Run("groups by first appearance, catalog order within groups", func(t *testing.T) {
		items := []domain.MenuItem{
			mustItem("Burger", 500, strPtr("Food")),
			mustItem("Soda", 150, strPtr("Drinks")),
			mustItem("Fries", 250, strPtr("Food")),
		}

		groups := domain.GroupByCategory(items)

		require.Len(t, groups, 2)
		assert.Equal(t, "Food", *groups[0].Category)
		require.Len(t, groups[0].Items, 2)
		assert.Equal(t, "Burger", groups[0].Items[0].Name)
		assert.Equal(t, "Fries", groups[0].Items[1].Name)
		assert.Equal(t, "Drinks", *groups[1].Category)
		assert.Equal(t, "Soda", groups[1].Items[0].Name)
	})

	t.Run("uncategorized items form their own group", func(t *testing.T) {
		items := []domain.MenuItem{
			mustItem("Burger", 500, strPtr("Food")),
			mustItem("Sticker", 50, nil),
			mustItem("Badge", 75, nil),
		}

		groups := domain.GroupByCategory(items)

		require.Len(t, groups, 2)
		assert.Nil(t, groups[1].Category)
		require.Len(t, groups[1].Items, 2)
		assert.Equal(t, "Sticker", groups[1].Items[0].Name)
	})

	t.Run("empty category is distinct from absent", func(t *testing.T) {
		items := []domain.MenuItem{
			mustItem("A", 100, strPtr("")),
			mustItem("B", 100, nil),
		}

		groups := domain.GroupByCategory(items)

		require.Len(t, groups, 2)
		require.NotNil(t, groups[0].Category)
		assert.Equal(t, "", *groups[0].Category)
		assert.Nil(t, groups[1].Category)
	})

	t.Run("empty catalog yields no groups", func(t *testing.T) {
		assert.Empty(t, domain.GroupByCategory(nil))
	})
}
