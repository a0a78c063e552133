package postgres

import "github.com/kofiasare/playtill/internal/domain"

func toDomainMenuItem(m menuItemModel) domain.MenuItem {
	return domain.MenuItem{
		Name:       m.Name,
		PriceCents: m.PriceCents,
		Category:   m.Category,
	}
}

func toDomainGiftCard(m giftCardModel) *domain.GiftCard {
	return &domain.GiftCard{
		Code:         m.Code,
		BalanceCents: m.BalanceCents,
	}
}

func toDomainCustomCard(m customCardModel) *domain.CustomCreditCard {
	return &domain.CustomCreditCard{
		Identifier: m.Identifier,
		QRPayload:  m.QRPayload,
	}
}

func toItemModels(items []domain.TransactionItem) []transactionItemModel {
	out := make([]transactionItemModel, len(items))
	for i, item := range items {
		out[i] = transactionItemModel{
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Category:   item.Category,
		}
	}
	return out
}
