package usecase

import "time"

// SetClock replaces the time source used for default timestamps
func (uc *ClaimUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
