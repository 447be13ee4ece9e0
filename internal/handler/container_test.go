package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollowpine/frontier/internal/domain"
)

func TestHandleGetPlayerItems(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/player/items?player=alice", nil)
		w := httptest.NewRecorder()

		HandleGetPlayerItems(&stubInventoryService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "items")
	})

	t.Run("requires the player query parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/player/items", nil)
		w := httptest.NewRecorder()

		HandleGetPlayerItems(&stubInventoryService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetContainer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/container?kind=storage_box&container_id="+testContainerID, nil)
		w := httptest.NewRecorder()

		HandleGetContainer(&stubInventoryService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testContainerID)
	})

	t.Run("refuses the equipment kind", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/container?kind=equipment&container_id="+testContainerID, nil)
		w := httptest.NewRecorder()

		HandleGetContainer(&stubInventoryService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps a missing container to 404", func(t *testing.T) {
		svc := &stubInventoryService{
			getContainerFn: func(context.Context, domain.ContainerKind, string) (*domain.ContainerRecord, error) {
				return nil, domain.ErrContainerNotFound
			},
		}
		req := httptest.NewRequest("GET", "/container?kind=storage_box&container_id="+testContainerID, nil)
		w := httptest.NewRecorder()

		HandleGetContainer(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleCreateContainer(t *testing.T) {
	InitValidator()

	t.Run("creates a storage box", func(t *testing.T) {
		w := postJSON(t, HandleCreateContainer(&stubInventoryService{}), "/container", CreateContainerRequest{
			Kind:  "storage_box",
			Owner: "alice",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "storage_box")
	})

	t.Run("refuses the equipment kind", func(t *testing.T) {
		w := postJSON(t, HandleCreateContainer(&stubInventoryService{}), "/container", CreateContainerRequest{
			Kind:  "equipment",
			Owner: "alice",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEquipmentNotWorld)
	})
}

func TestHandleDeleteContainer(t *testing.T) {
	InitValidator()

	t.Run("passes the spill target through", func(t *testing.T) {
		var gotSpillTo string
		svc := &stubInventoryService{
			deleteFn: func(_ context.Context, _ domain.ContainerKind, _ string, spillTo string) error {
				gotSpillTo = spillTo
				return nil
			},
		}
		body, _ := json.Marshal(DeleteContainerRequest{
			Kind:        "campfire_fuel",
			ContainerID: testContainerID,
			SpillTo:     "alice",
		})
		req := httptest.NewRequest("DELETE", "/container", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleDeleteContainer(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", gotSpillTo)
	})

	t.Run("maps a spill that does not fit to 409", func(t *testing.T) {
		svc := &stubInventoryService{
			deleteFn: func(context.Context, domain.ContainerKind, string, string) error {
				return domain.ErrInventoryFull
			},
		}
		body, _ := json.Marshal(DeleteContainerRequest{
			Kind:        "storage_box",
			ContainerID: testContainerID,
			SpillTo:     "alice",
		})
		req := httptest.NewRequest("DELETE", "/container", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		HandleDeleteContainer(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInventoryFullError)
	})
}
