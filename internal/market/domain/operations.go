package domain

import "context"

// The ledger operations. Each implementation must apply its paired currency
// and ownership mutations atomically: either every state change commits or
// none does.

type CardLister interface {
	List(ctx context.Context, sellerEmail string, templateName string, copyNumber int, price int64) error
}

type CardBuyer interface {
	Buy(ctx context.Context, buyerEmail string, templateName string, copyNumber int) error
}

type Quickseller interface {
	Quicksell(ctx context.Context, sellerEmail string, templateName string, copyNumber int) error
}

type PackOpener interface {
	Open(ctx context.Context, packName string, buyerEmail string) ([]CardInstance, error)
}
