package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sheetmark/internal/config"
	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/models"
)

const defaultBaseURL = "https://sheets.googleapis.com"

type httpSheetAdapter struct {
	client *resty.Client
	tokens TokenSource

	spreadsheetID string
	sheetName     string

	logger *logger.Logger
	now    func() time.Time
}

// NewHTTPSheetAdapter constructs an HTTP/REST implementation of
// [SheetAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL (defaulting to the public Sheets endpoint) and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// The spreadsheet settings are not validated here: per-operation checks keep
// every remote-touching call short-circuiting with [ErrConfigurationMissing]
// until both SpreadsheetID and SheetName are present.
//
// Returns an error if adapterCfg.BaseURL cannot be parsed as a valid URL.
func NewHTTPSheetAdapter(adapterCfg config.Adapter, sheetsCfg config.Sheets, tokens TokenSource, log *logger.Logger) (SheetAdapter, error) {
	raw := adapterCfg.BaseURL
	if raw == "" {
		raw = defaultBaseURL
	}
	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpSheetAdapter{
		client:        client,
		tokens:        tokens,
		spreadsheetID: sheetsCfg.SpreadsheetID,
		sheetName:     sheetsCfg.SheetName,
		logger:        log,
		now:           func() time.Time { return time.Now().UTC() },
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ReadAll implements [SheetAdapter]. It GETs the full A:D range of the
// configured sheet and decodes the body rows, recording each row's 1-based
// sheet position so callers can target a row read in the same call.
func (h *httpSheetAdapter) ReadAll(ctx context.Context) ([]models.SheetRow, error) {
	if err := h.checkConfig(); err != nil {
		return nil, err
	}
	return h.readRows(ctx)
}

// AppendRow implements [SheetAdapter]. The fresh read before the append makes
// creation idempotent against duplicate events: if url is already present the
// append is skipped silently.
func (h *httpSheetAdapter) AppendRow(ctx context.Context, id, title, rowURL string) error {
	if err := h.checkConfig(); err != nil {
		return err
	}

	rows, err := h.readRows(ctx)
	if err != nil {
		return fmt.Errorf("append pre-read: %w", err)
	}
	for _, row := range rows {
		if row.URL == rowURL {
			h.logger.Debug().Str("url", rowURL).Msg("row already present, append skipped")
			return nil
		}
	}

	body := models.ValueRange{Values: [][]string{{id, h.now().Format(time.RFC3339), title, rowURL}}}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "RAW").
		SetBody(body).
		Post(h.valuesPath() + ":append")
	if err != nil {
		return fmt.Errorf("append request: %w: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

// UpdateRow implements [SheetAdapter]. The target row index comes from a
// fresh read taken inside this call; an update miss performs no write.
func (h *httpSheetAdapter) UpdateRow(ctx context.Context, matchURL, id, newTitle, newURL string) error {
	if err := h.checkConfig(); err != nil {
		return err
	}

	rows, err := h.readRows(ctx)
	if err != nil {
		return fmt.Errorf("update pre-read: %w", err)
	}

	index := 0
	for _, row := range rows {
		if row.URL == matchURL {
			index = row.Index
			break
		}
	}
	if index == 0 {
		return fmt.Errorf("update %s: %w", matchURL, ErrRowNotFound)
	}

	body := models.ValueRange{Values: [][]string{{id, h.now().Format(time.RFC3339), newTitle, newURL}}}
	rowRange := fmt.Sprintf("%s!A%d:D%d", h.sheetName, index, index)

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("valueInputOption", "RAW").
		SetBody(body).
		Put(fmt.Sprintf("/v4/spreadsheets/%s/values/%s", h.spreadsheetID, url.PathEscape(rowRange)))
	if err != nil {
		return fmt.Errorf("update request: %w: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

// DeleteRowByID implements [SheetAdapter]. The dimension delete addresses the
// row by 0-based start/end indices, recomputed from a fresh read.
func (h *httpSheetAdapter) DeleteRowByID(ctx context.Context, matchID string) error {
	if err := h.checkConfig(); err != nil {
		return err
	}

	rows, err := h.readRows(ctx)
	if err != nil {
		return fmt.Errorf("delete pre-read: %w", err)
	}

	index := 0
	for _, row := range rows {
		if row.ID == matchID {
			index = row.Index
			break
		}
	}
	if index == 0 {
		return fmt.Errorf("delete %s: %w", matchID, ErrRowNotFound)
	}

	body := models.BatchUpdateRequest{Requests: []models.SheetRequest{{
		DeleteDimension: &models.DeleteDimensionRequest{
			Range: models.DimensionRange{
				SheetID:    0,
				Dimension:  "ROWS",
				StartIndex: int64(index - 1),
				EndIndex:   int64(index),
			},
		},
	}}}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("/v4/spreadsheets/%s:batchUpdate", h.spreadsheetID))
	if err != nil {
		return fmt.Errorf("delete request: %w: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpSheetAdapter) readRows(ctx context.Context) ([]models.SheetRow, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.Get(h.valuesPath())
	if err != nil {
		return nil, fmt.Errorf("read request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vr models.ValueRange
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return nil, fmt.Errorf("decode read response: %w", err)
	}

	var rows []models.SheetRow
	for i, cols := range vr.Values {
		if i == 0 {
			continue // header row
		}
		if len(cols) < 4 || cols[3] == "" {
			continue
		}
		rows = append(rows, models.SheetRow{
			ID:        cols[0],
			Timestamp: cols[1],
			Title:     cols[2],
			URL:       cols[3],
			Index:     i + 1,
		})
	}

	return rows, nil
}

func (h *httpSheetAdapter) valuesPath() string {
	return fmt.Sprintf("/v4/spreadsheets/%s/values/%s", h.spreadsheetID, url.PathEscape(h.sheetName+"!A:D"))
}

func (h *httpSheetAdapter) checkConfig() error {
	if h.spreadsheetID == "" || h.sheetName == "" {
		return ErrConfigurationMissing
	}
	return nil
}

func (h *httpSheetAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w: %w", ErrRemoteUnavailable, err)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token.AccessToken), nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s: %w", resp.StatusCode(), body, ErrRemoteUnavailable)
}
