package services_test

import (
	"context"
	"testing"

	"github.com/kofiasare/playtill/internal/application/services"
	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string { return &s }

type MenuServiceTestSuite struct {
	suite.Suite
	service *services.MenuService
}

func TestMenuServiceSuite(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}

func (s *MenuServiceTestSuite) SetupTest() {
	s.service = services.NewMenuService(memory.NewMenuRepository())
}

func (s *MenuServiceTestSuite) Test_AddItem_AppendsInOrder() {
	ctx := context.Background()

	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, strPtr("Food")))
	s.Require().NoError(s.service.AddItem(ctx, "Soda", 150, strPtr("Drinks")))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("Burger", items[0].Name)
	s.Equal("Soda", items[1].Name)
}

func (s *MenuServiceTestSuite) Test_AddItem_RejectsBadInput() {
	ctx := context.Background()

	s.True(domain.IsErrorCode(s.service.AddItem(ctx, "", 500, nil), domain.ErrCodeValidation))
	s.True(domain.IsErrorCode(s.service.AddItem(ctx, "Burger", -1, nil), domain.ErrCodeValidation))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *MenuServiceTestSuite) Test_EditItem_OverwritesAllFields() {
	ctx := context.Background()
	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, strPtr("Food")))

	s.Require().NoError(s.service.EditItem(ctx, 0, "Cheeseburger", 550, strPtr("Food")))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Equal("Cheeseburger", items[0].Name)
	s.Equal(int64(550), items[0].PriceCents)
}

func (s *MenuServiceTestSuite) Test_EditItem_CanDropCategory() {
	ctx := context.Background()
	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, strPtr("Food")))

	s.Require().NoError(s.service.EditItem(ctx, 0, "Burger", 500, nil))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Nil(items[0].Category)
}

func (s *MenuServiceTestSuite) Test_EditItem_OutOfRange() {
	ctx := context.Background()
	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, nil))

	s.True(domain.IsErrorCode(s.service.EditItem(ctx, 1, "X", 100, nil), domain.ErrCodeOutOfRange))
	s.True(domain.IsErrorCode(s.service.EditItem(ctx, -1, "X", 100, nil), domain.ErrCodeOutOfRange))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Equal("Burger", items[0].Name)
}

func (s *MenuServiceTestSuite) Test_RemoveItem_ShiftsLaterIndices() {
	ctx := context.Background()
	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, nil))
	s.Require().NoError(s.service.AddItem(ctx, "Soda", 150, nil))
	s.Require().NoError(s.service.AddItem(ctx, "Fries", 250, nil))

	s.Require().NoError(s.service.RemoveItem(ctx, 0))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("Soda", items[0].Name)
	s.Equal("Fries", items[1].Name)
}

func (s *MenuServiceTestSuite) Test_RemoveItem_OutOfRange() {
	ctx := context.Background()

	s.True(domain.IsErrorCode(s.service.RemoveItem(ctx, 0), domain.ErrCodeOutOfRange))
	s.True(domain.IsErrorCode(s.service.RemoveItem(ctx, -1), domain.ErrCodeOutOfRange))
}

func (s *MenuServiceTestSuite) Test_GetMenuByCategory() {
	ctx := context.Background()
	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, strPtr("Food")))
	s.Require().NoError(s.service.AddItem(ctx, "Soda", 150, strPtr("Drinks")))
	s.Require().NoError(s.service.AddItem(ctx, "Fries", 250, strPtr("Food")))
	s.Require().NoError(s.service.AddItem(ctx, "Sticker", 50, nil))

	groups, err := s.service.GetMenuByCategory(ctx)
	s.Require().NoError(err)
	s.Require().Len(groups, 3)
	s.Equal("Food", *groups[0].Category)
	s.Len(groups[0].Items, 2)
	s.Equal("Drinks", *groups[1].Category)
	s.Nil(groups[2].Category)
}

// The catalog management flow: add two items, rename the first, remove it.
func (s *MenuServiceTestSuite) Test_CatalogLifecycle() {
	ctx := context.Background()

	s.Require().NoError(s.service.AddItem(ctx, "Burger", 500, strPtr("Food")))
	s.Require().NoError(s.service.AddItem(ctx, "Soda", 150, strPtr("Drinks")))
	s.Require().NoError(s.service.EditItem(ctx, 0, "Cheeseburger", 550, strPtr("Food")))

	items, err := s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("Cheeseburger", items[0].Name)
	s.Equal(int64(550), items[0].PriceCents)

	s.Require().NoError(s.service.RemoveItem(ctx, 0))

	items, err = s.service.GetMenu(ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Soda", items[0].Name)
	s.Equal(int64(150), items[0].PriceCents)
}
