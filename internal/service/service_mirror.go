package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/sheetmark/internal/adapter"
	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/models"
)

type mirrorService struct {
	sheets    adapter.SheetAdapter
	reconcile *sync.Mutex

	logger *logger.Logger
}

// NewMirrorService builds the single-entry mirror over the remote table
// adapter. reconcile is the same lock the bulk engine holds, so an event
// arriving mid-pass waits its turn.
func NewMirrorService(sheets adapter.SheetAdapter, reconcile *sync.Mutex, log *logger.Logger) MirrorService {
	return &mirrorService{
		sheets:    sheets,
		reconcile: reconcile,
		logger:    log,
	}
}

func (s *mirrorService) BookmarkCreated(ctx context.Context, bookmark models.Bookmark) error {
	if bookmark.URL == "" {
		// Folders carry no url and have no remote representation.
		return nil
	}

	s.reconcile.Lock()
	defer s.reconcile.Unlock()

	if err := s.sheets.AppendRow(ctx, bookmark.ID, bookmark.Title, bookmark.URL); err != nil {
		return fmt.Errorf("mirror created bookmark: %w", err)
	}

	s.logger.Debug().Str("url", bookmark.URL).Msg("created bookmark mirrored to remote table")

	return nil
}

func (s *mirrorService) BookmarkChanged(ctx context.Context, bookmark models.Bookmark, previousURL string) error {
	if bookmark.URL == "" {
		return nil
	}

	matchURL := previousURL
	if matchURL == "" {
		matchURL = bookmark.URL
	}

	s.reconcile.Lock()
	defer s.reconcile.Unlock()

	err := s.sheets.UpdateRow(ctx, matchURL, bookmark.ID, bookmark.Title, bookmark.URL)
	if errors.Is(err, adapter.ErrRowNotFound) {
		s.logger.Debug().Str("url", matchURL).Msg("changed bookmark has no remote row, nothing to update")
		return nil
	}
	if err != nil {
		return fmt.Errorf("mirror changed bookmark: %w", err)
	}

	s.logger.Debug().Str("url", bookmark.URL).Msg("changed bookmark mirrored to remote table")

	return nil
}

func (s *mirrorService) BookmarkRemoved(ctx context.Context, id string) error {
	s.reconcile.Lock()
	defer s.reconcile.Unlock()

	err := s.sheets.DeleteRowByID(ctx, id)
	if errors.Is(err, adapter.ErrRowNotFound) {
		s.logger.Debug().Str("id", id).Msg("removed bookmark has no remote row, nothing to delete")
		return nil
	}
	if err != nil {
		return fmt.Errorf("mirror removed bookmark: %w", err)
	}

	s.logger.Debug().Str("id", id).Msg("removed bookmark mirrored to remote table")

	return nil
}
