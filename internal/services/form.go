package services

import (
	"sync"

	"github.com/GregMSThompson/fraud-simulator/internal/dto"
	"github.com/GregMSThompson/fraud-simulator/pkg/helpers"
)

// formService holds the draft for the single view instance.
type formService struct {
	mu    sync.RWMutex
	draft dto.TransactionDraft
}

func NewFormService() *formService {
	return &formService{}
}

func (s *formService) SetMerchant(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Merchant = helpers.Ptr(name)
}

func (s *formService) SetAmount(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Amount = helpers.Ptr(text)
}

func (s *formService) SetLocation(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Location = helpers.Ptr(name)
}

func (s *formService) CanSubmit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.CanSubmit()
}

// Draft returns a snapshot that does not alias the held state.
func (s *formService) Draft() dto.TransactionDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

func (s *formService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = dto.TransactionDraft{}
}
