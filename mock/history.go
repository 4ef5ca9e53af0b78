package mock

import "github.com/fwojciec/optsearch"

var _ optsearch.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of optsearch.HistoryService.
type HistoryService struct {
	ReplaceFn func(e optsearch.Entry)
	PushFn    func(e optsearch.Entry)
	BackFn    func() (optsearch.Entry, bool)
	ForwardFn func() (optsearch.Entry, bool)
	CurrentFn func() optsearch.Entry
}

func (s *HistoryService) Replace(e optsearch.Entry) {
	s.ReplaceFn(e)
}

func (s *HistoryService) Push(e optsearch.Entry) {
	s.PushFn(e)
}

func (s *HistoryService) Back() (optsearch.Entry, bool) {
	return s.BackFn()
}

func (s *HistoryService) Forward() (optsearch.Entry, bool) {
	return s.ForwardFn()
}

func (s *HistoryService) Current() optsearch.Entry {
	return s.CurrentFn()
}
