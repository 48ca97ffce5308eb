package usecase

import "context"

type UpdateFieldUseCase struct {
	Store ContactStore
}

func NewUpdateFieldUseCase(store ContactStore) *UpdateFieldUseCase {
	return &UpdateFieldUseCase{Store: store}
}

// Execute mutates one field of one record in place. Only Status (enum
// membership) and Attempts (non-negative integer) are validated; a
// rejected edit leaves the prior value untouched.
func (uc *UpdateFieldUseCase) Execute(ctx context.Context, input UpdateFieldInput) error {
	return uc.Store.UpdateField(input.RecordID, input.Field, input.Value)
}

type IncrementAttemptsUseCase struct {
	Store ContactStore
}

func NewIncrementAttemptsUseCase(store ContactStore) *IncrementAttemptsUseCase {
	return &IncrementAttemptsUseCase{Store: store}
}

// Execute bumps the attempt counter of every listed record and returns
// how many were updated. Unknown IDs are skipped.
func (uc *IncrementAttemptsUseCase) Execute(ctx context.Context, ids []string) int {
	return uc.Store.IncrementAttempts(ids)
}
