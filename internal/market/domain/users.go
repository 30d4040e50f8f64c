package domain

import "context"

type User struct {
	ID       int64
	Email    string
	Username string
	Balance  int64
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	Collection(ctx context.Context, userID int64) ([]CardInstance, error)
}

type InstanceRepository interface {
	FindByTemplateAndNumber(ctx context.Context, templateName string, copyNumber int) (CardInstance, error)
	CountByTemplate(ctx context.Context, templateName string) (int, error)
	FindUnownedByTemplate(ctx context.Context, templateName string) ([]CardInstance, error)
}

type TemplateRepository interface {
	FindByName(ctx context.Context, name string) (CardTemplate, error)
}

type ListingRepository interface {
	FindByTemplate(ctx context.Context, templateName string) ([]Listing, error)
	FindBySeller(ctx context.Context, sellerID int64) ([]Listing, error)
}
