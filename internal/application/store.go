// Package application holds the in-memory application-data store: the
// structured facts accumulated about the merchant's business over the course
// of a session.
package application

import (
	"sync"

	"github.com/finlark/onboard/internal/domain"
)

// Store is the single owner of application data. Mutation happens only
// through explicit merge operations; the prompt assembler reads an immutable
// snapshot on every request.
type Store struct {
	mu              sync.RWMutex
	businessType    domain.BusinessType
	businessInfo    domain.BusinessInfo
	selectedPackage *domain.SolutionPackage
	locations       []domain.Location
	documents       []domain.DocumentRecord
	extractedData   map[string]string
	complete        bool
}

// NewStore creates an empty application store.
func NewStore() *Store {
	return &Store{extractedData: make(map[string]string)}
}

// SetBusinessType replaces the business type. Idempotent.
func (s *Store) SetBusinessType(t domain.BusinessType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businessType = t
}

// UpdateBusinessInfo shallow-merges non-zero fields of info into the stored
// business info.
func (s *Store) UpdateBusinessInfo(info domain.BusinessInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if info.Name != "" {
		s.businessInfo.Name = info.Name
	}
	if info.Industry != "" {
		s.businessInfo.Industry = info.Industry
	}
	if info.MonthlyVolume != 0 {
		s.businessInfo.MonthlyVolume = info.MonthlyVolume
	}
	if info.Description != "" {
		s.businessInfo.Description = info.Description
	}
}

// SetSelectedPackage replaces the single selected solution package.
func (s *Store) SetSelectedPackage(pkg domain.SolutionPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPackage = &pkg
}

// AddLocation appends one business location.
func (s *Store) AddLocation(loc domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, loc)
}

// AddDocument appends one document record.
func (s *Store) AddDocument(doc domain.DocumentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, doc)
}

// MergeExtractedData merges a flat patch into the extracted-data map.
// Merging is key-wise overwrite: later values for the same key replace
// earlier ones, never deep-merged.
func (s *Store) MergeExtractedData(patch map[string]string) {
	if len(patch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range patch {
		s.extractedData[k] = v
	}
}

// Complete marks the application complete. One-way; cleared only by Reset.
func (s *Store) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complete = true
}

// IsComplete reports whether the application has been marked complete.
func (s *Store) IsComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.complete
}

// Snapshot produces an immutable copy of the current fields for prompt
// assembly. Mutating the returned value does not affect the store.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.Snapshot{
		BusinessType:  s.businessType,
		BusinessInfo:  s.businessInfo,
		Locations:     make([]domain.Location, len(s.locations)),
		Documents:     make([]domain.DocumentRecord, len(s.documents)),
		ExtractedData: make(map[string]string, len(s.extractedData)),
	}
	copy(snap.Locations, s.locations)
	copy(snap.Documents, s.documents)
	for k, v := range s.extractedData {
		snap.ExtractedData[k] = v
	}
	if s.selectedPackage != nil {
		pkg := *s.selectedPackage
		snap.SelectedPackage = &pkg
	}
	return snap
}

// Reset clears every field to its initial empty value.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businessType = ""
	s.businessInfo = domain.BusinessInfo{}
	s.selectedPackage = nil
	s.locations = nil
	s.documents = nil
	s.extractedData = make(map[string]string)
	s.complete = false
}
