package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region NotOwnerError

type NotOwnerError struct {
	Msg string
}

func (e *NotOwnerError) Error() string {
	return e.Msg
}

func (e *NotOwnerError) Is(target error) bool {
	_, ok := target.(*NotOwnerError)
	return ok
}

//endregion

//region AlreadyListedError

type AlreadyListedError struct {
	Msg string
}

func (e *AlreadyListedError) Error() string {
	return e.Msg
}

func (e *AlreadyListedError) Is(target error) bool {
	_, ok := target.(*AlreadyListedError)
	return ok
}

//endregion

//region CardNotForSaleError

type CardNotForSaleError struct {
	Msg string
}

func (e *CardNotForSaleError) Error() string {
	return e.Msg
}

func (e *CardNotForSaleError) Is(target error) bool {
	_, ok := target.(*CardNotForSaleError)
	return ok
}

//endregion

//region CardNotFoundError

type CardNotFoundError struct {
	Msg string
}

func (e *CardNotFoundError) Error() string {
	return e.Msg
}

func (e *CardNotFoundError) Is(target error) bool {
	_, ok := target.(*CardNotFoundError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region PackNotFoundError

type PackNotFoundError struct {
	Msg string
}

func (e *PackNotFoundError) Error() string {
	return e.Msg
}

func (e *PackNotFoundError) Is(target error) bool {
	_, ok := target.(*PackNotFoundError)
	return ok
}

//endregion

//region NoTemplatesForRarityError

type NoTemplatesForRarityError struct {
	Msg string
}

func (e *NoTemplatesForRarityError) Error() string {
	return e.Msg
}

func (e *NoTemplatesForRarityError) Is(target error) bool {
	_, ok := target.(*NoTemplatesForRarityError)
	return ok
}

//endregion

//region UnknownRarityError

type UnknownRarityError struct {
	Msg string
}

func (e *UnknownRarityError) Error() string {
	return e.Msg
}

func (e *UnknownRarityError) Is(target error) bool {
	_, ok := target.(*UnknownRarityError)
	return ok
}

//endregion
