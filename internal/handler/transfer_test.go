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

const (
	testInstanceID  = "5f0c2a1e-9d3b-4c8f-b1a2-3e4d5c6b7a80"
	testContainerID = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(data))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleMoveIntoContainer(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: MoveIntoContainerRequest{
				Player:      "alice",
				InstanceID:  testInstanceID,
				Kind:        "storage_box",
				ContainerID: testContainerID,
				Slot:        3,
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgItemMovedSuccess,
		},
		{
			name: "Invalid Request - Missing Player",
			requestBody: MoveIntoContainerRequest{
				InstanceID:  testInstanceID,
				Kind:        "storage_box",
				ContainerID: testContainerID,
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Invalid Request - Unknown Kind",
			requestBody: MoveIntoContainerRequest{
				Player:      "alice",
				InstanceID:  testInstanceID,
				Kind:        "treasure_chest",
				ContainerID: testContainerID,
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidContainerKind,
		},
		{
			name: "Partial Merge Rejected",
			requestBody: MoveIntoContainerRequest{
				Player:      "alice",
				InstanceID:  testInstanceID,
				Kind:        "storage_box",
				ContainerID: testContainerID,
				Slot:        3,
			},
			serviceErr:     domain.ErrPartialMergeOnly,
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgPartialMergeOnlyError,
		},
		{
			name: "Not Owned",
			requestBody: MoveIntoContainerRequest{
				Player:      "alice",
				InstanceID:  testInstanceID,
				Kind:        "storage_box",
				ContainerID: testContainerID,
				Slot:        3,
			},
			serviceErr:     domain.ErrNotOwned,
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgNotOwnedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubInventoryService{}
			if tt.serviceErr != nil {
				svc.moveInFn = func(context.Context, string, string, domain.ContainerKind, string, int) error {
					return tt.serviceErr
				}
			}

			w := postJSON(t, HandleMoveIntoContainer(svc), "/item/move/in", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleMoveOutOfContainer(t *testing.T) {
	InitValidator()

	t.Run("passes the panel destination through", func(t *testing.T) {
		var gotDst domain.Location
		svc := &stubInventoryService{
			moveOutFn: func(_ context.Context, _ string, _ domain.ContainerKind, _ string, _ int, dst domain.Location) error {
				gotDst = dst
				return nil
			},
		}

		w := postJSON(t, HandleMoveOutOfContainer(svc), "/item/move/out", MoveOutOfContainerRequest{
			Player:      "alice",
			Kind:        "campfire_fuel",
			ContainerID: testContainerID,
			Slot:        1,
			ToPanel:     "hotbar",
			ToIndex:     4,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.HotbarLocation(4), gotDst)
	})

	t.Run("rejects an unknown panel", func(t *testing.T) {
		w := postJSON(t, HandleMoveOutOfContainer(&stubInventoryService{}), "/item/move/out", MoveOutOfContainerRequest{
			Player:      "alice",
			Kind:        "storage_box",
			ContainerID: testContainerID,
			ToPanel:     "backpack",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPanel)
	})

	t.Run("maps container not found to 404", func(t *testing.T) {
		svc := &stubInventoryService{
			moveOutFn: func(context.Context, string, domain.ContainerKind, string, int, domain.Location) error {
				return domain.ErrContainerNotFound
			},
		}

		w := postJSON(t, HandleMoveOutOfContainer(svc), "/item/move/out", MoveOutOfContainerRequest{
			Player:      "alice",
			Kind:        "storage_box",
			ContainerID: testContainerID,
			ToPanel:     "inventory",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgContainerNotFoundError)
	})
}

func TestHandleSplitIntoContainer(t *testing.T) {
	InitValidator()

	t.Run("success", func(t *testing.T) {
		var gotQty int
		svc := &stubInventoryService{
			splitInFn: func(_ context.Context, _ string, _ string, qty int, _ domain.ContainerKind, _ string, _ int) error {
				gotQty = qty
				return nil
			},
		}

		w := postJSON(t, HandleSplitIntoContainer(svc), "/item/split/in", SplitIntoContainerRequest{
			Player:      "alice",
			InstanceID:  testInstanceID,
			Quantity:    10,
			Kind:        "storage_box",
			ContainerID: testContainerID,
			Slot:        2,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 10, gotQty)
		assert.Contains(t, w.Body.String(), MsgStackSplitSuccess)
	})

	t.Run("rejects zero quantity before the service runs", func(t *testing.T) {
		called := false
		svc := &stubInventoryService{
			splitInFn: func(context.Context, string, string, int, domain.ContainerKind, string, int) error {
				called = true
				return nil
			},
		}

		w := postJSON(t, HandleSplitIntoContainer(svc), "/item/split/in", SplitIntoContainerRequest{
			Player:      "alice",
			InstanceID:  testInstanceID,
			Quantity:    0,
			Kind:        "storage_box",
			ContainerID: testContainerID,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("maps bad split quantity", func(t *testing.T) {
		svc := &stubInventoryService{
			splitInFn: func(context.Context, string, string, int, domain.ContainerKind, string, int) error {
				return domain.ErrSourceQuantityInvalid
			},
		}

		w := postJSON(t, HandleSplitIntoContainer(svc), "/item/split/in", SplitIntoContainerRequest{
			Player:      "alice",
			InstanceID:  testInstanceID,
			Quantity:    50,
			Kind:        "storage_box",
			ContainerID: testContainerID,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgBadSplitQuantityError)
	})
}

func TestHandleQuickMoveIntoContainer(t *testing.T) {
	InitValidator()

	t.Run("success", func(t *testing.T) {
		w := postJSON(t, HandleQuickMoveIntoContainer(&stubInventoryService{}), "/item/quickmove/in", QuickMoveIntoContainerRequest{
			Player:      "alice",
			InstanceID:  testInstanceID,
			Kind:        "storage_box",
			ContainerID: testContainerID,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgItemQuickMovedSuccess)
	})

	t.Run("maps container full to 409", func(t *testing.T) {
		svc := &stubInventoryService{
			quickInFn: func(context.Context, string, string, domain.ContainerKind, string) error {
				return domain.ErrContainerFull
			},
		}

		w := postJSON(t, HandleQuickMoveIntoContainer(svc), "/item/quickmove/in", QuickMoveIntoContainerRequest{
			Player:      "alice",
			InstanceID:  testInstanceID,
			Kind:        "storage_box",
			ContainerID: testContainerID,
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgContainerFullError)
	})
}

func TestHandleEquipItem(t *testing.T) {
	InitValidator()

	t.Run("success", func(t *testing.T) {
		var gotBody domain.BodySlot
		svc := &stubInventoryService{
			equipFn: func(_ context.Context, _ string, _ string, body domain.BodySlot) error {
				gotBody = body
				return nil
			},
		}

		w := postJSON(t, HandleEquipItem(svc), "/player/equip", EquipItemRequest{
			Player:     "alice",
			InstanceID: testInstanceID,
			BodySlot:   "main_hand",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.MainHand, gotBody)
	})

	t.Run("rejects an unknown body slot", func(t *testing.T) {
		w := postJSON(t, HandleEquipItem(&stubInventoryService{}), "/player/equip", EquipItemRequest{
			Player:     "alice",
			InstanceID: testInstanceID,
			BodySlot:   "tail",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps wrong equip slot", func(t *testing.T) {
		svc := &stubInventoryService{
			equipFn: func(context.Context, string, string, domain.BodySlot) error {
				return domain.ErrWrongEquipSlot
			},
		}

		w := postJSON(t, HandleEquipItem(svc), "/player/equip", EquipItemRequest{
			Player:     "alice",
			InstanceID: testInstanceID,
			BodySlot:   "feet",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgWrongEquipSlotError)
	})
}
