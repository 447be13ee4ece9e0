package handler

import (
	"net/http"

	"github.com/hollowpine/frontier/internal/domain"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
)

// GetContainerResponse wraps a container record
type GetContainerResponse struct {
	Container *domain.ContainerRecord `json:"container"`
}

// HandleGetContainer fetches a world container by kind and ID
// @Summary Get container
// @Description Get a world container record with its slot contents
// @Tags container
// @Produce json
// @Param kind query string true "Container kind (storage_box, campfire_fuel)"
// @Param container_id query string true "Container ID"
// @Success 200 {object} GetContainerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /container [get]
func HandleGetContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		kind, ok := GetQueryParam(r, w, "kind")
		if !ok {
			return
		}
		containerID, ok := GetQueryParam(r, w, "container_id")
		if !ok {
			return
		}
		if !validWorldKind(domain.ContainerKind(kind)) {
			log.Warn("Invalid container kind", "kind", kind)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidContainerKind)
			return
		}

		rec, err := svc.GetContainer(r.Context(), domain.ContainerKind(kind), containerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetContainerFailed, err)
			return
		}

		log.Debug("Container retrieved", "kind", kind, "container", containerID)

		respondJSON(w, http.StatusOK, GetContainerResponse{Container: rec})
	}
}

type CreateContainerRequest struct {
	Kind  string `json:"kind" validate:"required,containerkind"`
	Owner string `json:"owner" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// CreateContainerResponse returns the freshly created container
type CreateContainerResponse struct {
	Container *domain.ContainerRecord `json:"container"`
}

// HandleCreateContainer places a new empty world container
// @Summary Create container
// @Description Create an empty world container owned by the placing player
// @Tags container
// @Accept json
// @Produce json
// @Param request body CreateContainerRequest true "Container details"
// @Success 201 {object} CreateContainerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /container [post]
func HandleCreateContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create container"); err != nil {
			return
		}
		if !validWorldKind(domain.ContainerKind(req.Kind)) {
			log.Warn("Refused to create non-world container", "kind", req.Kind)
			respondError(w, http.StatusBadRequest, ErrMsgEquipmentNotWorld)
			return
		}

		rec, err := svc.CreateContainer(r.Context(), domain.ContainerKind(req.Kind), req.Owner)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateContainerFail, err)
			return
		}

		log.Info("Container created", "kind", req.Kind, "container", rec.ID, "owner", req.Owner)

		respondJSON(w, http.StatusCreated, CreateContainerResponse{Container: rec})
	}
}

type DeleteContainerRequest struct {
	Kind        string `json:"kind" validate:"required,containerkind"`
	ContainerID string `json:"container_id" validate:"required,uuid4"`
	SpillTo     string `json:"spill_to" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleDeleteContainer removes a world container, spilling its contents
// @Summary Delete container
// @Description Delete a world container, spilling its contents into the named player's inventory
// @Tags container
// @Accept json
// @Produce json
// @Param request body DeleteContainerRequest true "Deletion details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /container [delete]
func HandleDeleteContainer(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DeleteContainerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete container"); err != nil {
			return
		}
		if !validWorldKind(domain.ContainerKind(req.Kind)) {
			log.Warn("Refused to delete non-world container", "kind", req.Kind)
			respondError(w, http.StatusBadRequest, ErrMsgEquipmentNotWorld)
			return
		}

		if err := svc.DeleteContainer(r.Context(), domain.ContainerKind(req.Kind), req.ContainerID, req.SpillTo); err != nil {
			respondServiceError(w, r, ErrMsgDeleteContainerFail, err)
			return
		}

		log.Info("Container deleted",
			"kind", req.Kind,
			"container", req.ContainerID,
			"spill_to", req.SpillTo)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgContainerDeletedSuccess})
	}
}

// validWorldKind reports whether the kind names a world container. Equipment
// containers are managed implicitly with the owning player.
func validWorldKind(kind domain.ContainerKind) bool {
	return domain.ValidContainerKinds[kind] && kind != domain.ContainerEquipment
}
