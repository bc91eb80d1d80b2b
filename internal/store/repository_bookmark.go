package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/models"
)

type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

func (b *bookmarkRepository) ListAll(ctx context.Context) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, getAllBookmarks)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ListAll").
			Msg("failed to execute query for getting all bookmarks")
		return nil, fmt.Errorf("failed to query all bookmarks: %w", err)
	}
	defer rows.Close()

	var items []models.Bookmark

	for rows.Next() {
		item, scanErr := scanBookmark(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookmarkRepository.ListAll").
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("failed to scan bookmark row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookmarkRepository.ListAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating bookmark rows: %w", rowsErr)
	}

	return items, nil
}

func (b *bookmarkRepository) Get(ctx context.Context, id string) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	row := b.DB.QueryRowContext(ctx, getBookmark, id)

	item, scanErr := scanBookmark(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Bookmark{}, fmt.Errorf("get bookmark (id=%s): %w", id, ErrBookmarkNotFound)
		}
		log.Err(scanErr).
			Str("func", "bookmarkRepository.Get").
			Str("id", id).
			Msg("failed to scan bookmark row")
		return models.Bookmark{}, fmt.Errorf("failed to scan bookmark row: %w", scanErr)
	}

	return item, nil
}

func (b *bookmarkRepository) Create(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if bookmark.ID == "" {
		bookmark.ID = uuid.NewString()
	}

	_, err := b.DB.ExecContext(ctx, createBookmark,
		bookmark.ID,
		nullableString(bookmark.ParentID),
		bookmark.Title,
		bookmark.URL,
	)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.Create").
			Str("id", bookmark.ID).
			Str("url", bookmark.URL).
			Msg("failed to execute insert for bookmark")
		return models.Bookmark{}, fmt.Errorf("failed to create bookmark (url=%s): %w", bookmark.URL, err)
	}

	return bookmark, nil
}

func (b *bookmarkRepository) CreateFolder(ctx context.Context, title, parentID string) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	folder := models.Bookmark{
		ID:       uuid.NewString(),
		ParentID: parentID,
		Title:    title,
	}

	_, err := b.DB.ExecContext(ctx, createBookmark,
		folder.ID,
		nullableString(folder.ParentID),
		folder.Title,
		nil, // folders carry no url
	)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.CreateFolder").
			Str("title", title).
			Msg("failed to execute insert for folder")
		return models.Bookmark{}, fmt.Errorf("failed to create folder (title=%s): %w", title, err)
	}

	return folder, nil
}

func (b *bookmarkRepository) UpdateTitle(ctx context.Context, id, title string) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, updateBookmarkTitle, title, id)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.UpdateTitle").
			Str("id", id).
			Msg("failed to execute title update for bookmark")
		return fmt.Errorf("failed to update bookmark title (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.UpdateTitle").
			Str("id", id).
			Msg("failed to get rows affected after title update")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("update bookmark title (id=%s): %w", id, ErrBookmarkNotFound)
	}

	return nil
}

func (b *bookmarkRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	_, err := b.DB.ExecContext(ctx, deleteBookmark, id)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for bookmark")
		return fmt.Errorf("failed to delete bookmark (id=%s): %w", id, err)
	}

	return nil
}

func (b *bookmarkRepository) FindByURL(ctx context.Context, url string) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, findBookmarksByURL, url)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.FindByURL").
			Str("url", url).
			Msg("failed to execute query for finding bookmarks by url")
		return nil, fmt.Errorf("failed to query bookmarks by url: %w", err)
	}
	defer rows.Close()

	var items []models.Bookmark

	for rows.Next() {
		item, scanErr := scanBookmark(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookmarkRepository.FindByURL").
				Str("url", url).
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("failed to scan bookmark row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookmarkRepository.FindByURL").
			Str("url", url).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating bookmark rows: %w", rowsErr)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row rowScanner) (models.Bookmark, error) {
	var item models.Bookmark
	var parentID, url sql.NullString

	if err := row.Scan(&item.ID, &parentID, &item.Title, &url); err != nil {
		return models.Bookmark{}, err
	}

	item.ParentID = parentID.String
	item.URL = url.String

	return item, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
