package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/internal/mock"
	"github.com/MKhiriev/sheetmark/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBridge(t *testing.T, ctrl *gomock.Controller) (*EventBridge, *mock.MockMirrorService, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	mockMirror := mock.NewMockMirrorService(ctrl)
	b := NewEventBridge(ctx, mockMirror, logger.NewLogger("test"))
	return b, mockMirror, cancel
}

func TestEventBridge_DispatchesCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	bookmark := models.Bookmark{ID: "id-1", Title: "Example", URL: "https://example.com"}
	done := make(chan struct{})

	mockMirror.EXPECT().BookmarkCreated(gomock.Any(), bookmark).DoAndReturn(
		func(context.Context, models.Bookmark) error {
			close(done)
			return nil
		},
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkCreated, Bookmark: bookmark}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("created event was not dispatched")
	}
}

func TestEventBridge_DispatchesChangedWithPreviousURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	bookmark := models.Bookmark{ID: "id-1", Title: "Example", URL: "https://new.com"}
	done := make(chan struct{})

	mockMirror.EXPECT().BookmarkChanged(gomock.Any(), bookmark, "https://old.com").DoAndReturn(
		func(context.Context, models.Bookmark, string) error {
			close(done)
			return nil
		},
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{
		Type:        models.BookmarkChanged,
		Bookmark:    bookmark,
		PreviousURL: "https://old.com",
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("changed event was not dispatched")
	}
}

func TestEventBridge_DispatchesRemovedByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	done := make(chan struct{})

	mockMirror.EXPECT().BookmarkRemoved(gomock.Any(), "id-1").DoAndReturn(
		func(context.Context, string) error {
			close(done)
			return nil
		},
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{
		Type:     models.BookmarkRemoved,
		Bookmark: models.Bookmark{ID: "id-1"},
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("removed event was not dispatched")
	}
}

func TestEventBridge_MirrorFailureDoesNotStopConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	first := models.Bookmark{ID: "id-1", Title: "Broken", URL: "https://broken.com"}
	second := models.Bookmark{ID: "id-2", Title: "Fine", URL: "https://fine.com"}
	done := make(chan struct{})

	gomock.InOrder(
		mockMirror.EXPECT().BookmarkCreated(gomock.Any(), first).Return(errors.New("remote down")),
		mockMirror.EXPECT().BookmarkCreated(gomock.Any(), second).DoAndReturn(
			func(context.Context, models.Bookmark) error {
				close(done)
				return nil
			},
		),
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkCreated, Bookmark: first}
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkCreated, Bookmark: second}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer stopped after a mirror failure")
	}
}

func TestEventBridge_UnknownEventTypeIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	done := make(chan struct{})

	// The unknown event before it must not reach the mirror.
	mockMirror.EXPECT().BookmarkRemoved(gomock.Any(), "id-2").DoAndReturn(
		func(context.Context, string) error {
			close(done)
			return nil
		},
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{Type: "exploded", Bookmark: models.Bookmark{ID: "id-1"}}
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkRemoved, Bookmark: models.Bookmark{ID: "id-2"}}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event after an unknown type was not dispatched")
	}
}

func TestEventBridge_ContextCancelStopsConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _, cancel := newTestBridge(t, ctrl)

	b.Run()
	cancel()

	done := make(chan struct{})
	go func() {
		b.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not exit after context cancellation")
	}
}

func TestEventBridge_ClosedChannelStopsConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _, cancel := newTestBridge(t, ctrl)
	defer cancel()

	b.Run()
	close(b.events)

	done := make(chan struct{})
	go func() {
		b.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not exit after the event channel closed")
	}
}

func TestEventBridge_ProcessesEventsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockMirror, cancel := newTestBridge(t, ctrl)
	defer cancel()

	var seen []string
	done := make(chan struct{})

	gomock.InOrder(
		mockMirror.EXPECT().BookmarkCreated(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm models.Bookmark) error {
				seen = append(seen, bm.ID)
				return nil
			},
		),
		mockMirror.EXPECT().BookmarkRemoved(gomock.Any(), "id-1").DoAndReturn(
			func(_ context.Context, id string) error {
				seen = append(seen, "removed:"+id)
				close(done)
				return nil
			},
		),
	)

	b.Run()
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkCreated, Bookmark: models.Bookmark{ID: "id-1", URL: "https://a.com"}}
	b.Events() <- models.BookmarkEvent{Type: models.BookmarkRemoved, Bookmark: models.Bookmark{ID: "id-1"}}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("events were not processed")
	}

	require.Len(t, seen, 2)
	assert.Equal(t, "id-1", seen[0])
	assert.Equal(t, "removed:id-1", seen[1])
}
