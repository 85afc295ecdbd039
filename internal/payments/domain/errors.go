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

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ConcurrentModificationError

type ConcurrentModificationError struct {
	Msg string
}

func (e *ConcurrentModificationError) Error() string {
	return e.Msg
}

func (e *ConcurrentModificationError) Is(target error) bool {
	_, ok := target.(*ConcurrentModificationError)
	return ok
}

//endregion
