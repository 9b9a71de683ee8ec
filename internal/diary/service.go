package diary

import (
	"log"
	"sync"

	"github.com/ytget/health-diary/internal/config"
	"github.com/ytget/health-diary/internal/model"
	"github.com/ytget/health-diary/internal/storage"
)

// Service owns the persisted diary document
type Service struct {
	store     *storage.Store
	data      model.AppData
	dataMutex sync.RWMutex
	onUpdate  func(model.AppData) // callback for UI updates
}

// NewService loads the document from the store once
func NewService(store *storage.Store) *Service {
	data := storage.Load(store, config.KeyData, model.NewAppData())
	if data.Version > model.CurrentVersion {
		log.Printf("Warning: diary data version %d is newer than supported version %d", data.Version, model.CurrentVersion)
	}

	return &Service{
		store: store,
		data:  data.Normalize(),
	}
}

// SetUpdateCallback sets the callback function for document updates
func (s *Service) SetUpdateCallback(callback func(model.AppData)) {
	s.onUpdate = callback
}

// Data returns the current snapshot
func (s *Service) Data() model.AppData {
	s.dataMutex.RLock()
	defer s.dataMutex.RUnlock()
	return s.data
}

// Entry returns the entry for date, or the default template without creating it
func (s *Service) Entry(date string) model.DailyEntry {
	s.dataMutex.RLock()
	defer s.dataMutex.RUnlock()

	if entry, ok := s.data.Daily[date]; ok {
		return entry.Clone()
	}
	return model.NewDailyEntry()
}

// Week returns the entry for weekStart, or an empty one without creating it
func (s *Service) Week(weekStart string) model.WeeklyEntry {
	s.dataMutex.RLock()
	defer s.dataMutex.RUnlock()

	if entry, ok := s.data.Weekly[weekStart]; ok {
		return entry.Clone()
	}
	return model.NewWeeklyEntry()
}

// UpdateDaily applies fn to a copy of the entry for date and replaces the document.
// The entry is created from the template on first edit.
func (s *Service) UpdateDaily(date string, fn func(*model.DailyEntry)) {
	s.dataMutex.Lock()
	entry, ok := s.data.Daily[date]
	if ok {
		entry = entry.Clone()
	} else {
		entry = model.NewDailyEntry()
	}
	fn(&entry)
	s.data = s.data.WithDaily(date, entry)
	data := s.data
	s.dataMutex.Unlock()

	s.commit(data)
}

// UpdateWeekly applies fn to a copy of the entry for weekStart and replaces the document
func (s *Service) UpdateWeekly(weekStart string, fn func(*model.WeeklyEntry)) {
	s.dataMutex.Lock()
	entry, ok := s.data.Weekly[weekStart]
	if ok {
		entry = entry.Clone()
	} else {
		entry = model.NewWeeklyEntry()
	}
	fn(&entry)
	s.data = s.data.WithWeekly(weekStart, entry)
	data := s.data
	s.dataMutex.Unlock()

	s.commit(data)
}

// ResetDaily removes the entry for date
func (s *Service) ResetDaily(date string) bool {
	s.dataMutex.Lock()
	if !s.data.HasDaily(date) {
		s.dataMutex.Unlock()
		return false
	}
	s.data = s.data.WithoutDaily(date)
	data := s.data
	s.dataMutex.Unlock()

	s.commit(data)
	return true
}

// ResetWeekly removes the entry for weekStart
func (s *Service) ResetWeekly(weekStart string) bool {
	s.dataMutex.Lock()
	if _, ok := s.data.Weekly[weekStart]; !ok {
		s.dataMutex.Unlock()
		return false
	}
	s.data = s.data.WithoutWeekly(weekStart)
	data := s.data
	s.dataMutex.Unlock()

	s.commit(data)
	return true
}

// commit persists the new snapshot and notifies the UI. A failed write keeps
// the in-memory snapshot; the store has already logged it.
func (s *Service) commit(data model.AppData) {
	_ = s.store.Save(config.KeyData, data)
	s.notifyUpdate(data)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(data model.AppData) {
	if s.onUpdate != nil {
		s.onUpdate(data)
	}
}
