package application

import (
	"context"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
)

type CardInfo struct {
	Instance domain.CardInstance
	Copies   int
}

// CardInfoCase resolves one concrete card plus how many copies of its
// template exist in circulation.
type CardInfoCase struct {
	instanceRepository domain.InstanceRepository
}

func NewCardInfoCase(instanceRepository domain.InstanceRepository) *CardInfoCase {
	return &CardInfoCase{
		instanceRepository: instanceRepository,
	}
}

func (cc *CardInfoCase) GetCardInfo(ctx context.Context, templateName string, copyNumber int) (CardInfo, error) {
	instance, err := cc.instanceRepository.FindByTemplateAndNumber(ctx, templateName, copyNumber)
	if err != nil {
		return CardInfo{}, err
	}

	copies, err := cc.instanceRepository.CountByTemplate(ctx, templateName)
	if err != nil {
		return CardInfo{}, err
	}

	return CardInfo{
		Instance: instance,
		Copies:   copies,
	}, nil
}
