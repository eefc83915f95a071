package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gatherly/server/internal/api/apierr"
	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

// eventView is the six-field projection both listing endpoints return.
type eventView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Channel     int64  `json:"channel"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func viewOf(event events.Event) eventView {
	return eventView{
		ID:          event.ID,
		Title:       event.Title,
		Datetime:    event.Datetime,
		Channel:     event.ChannelID,
		Location:    event.Location,
		Description: event.Description,
	}
}

func viewsOf(items []events.Event) []eventView {
	views := make([]eventView, 0, len(items))
	for _, event := range items {
		views = append(views, viewOf(event))
	}
	return views
}

// List responds with every stored event. Order is whatever the store
// returns.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		apierr.Write(w, r, apierr.New(apierr.KindSelectEvents, nil))
		return
	}

	items, err := h.Service.List(r.Context())
	if err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindSelectEvents, err))
		return
	}

	writeJSON(w, http.StatusOK, viewsOf(items))
}

// Get responds with a single event view by id.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		apierr.Write(w, r, apierr.New(apierr.KindSelectEvents, nil))
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(pathParam(r, "id")), 10, 64)
	if err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindBadRequest, err))
		return
	}

	event, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			apierr.Write(w, r, apierr.New(apierr.KindNotFound, err))
			return
		}
		apierr.Write(w, r, apierr.New(apierr.KindSelectEvents, err))
		return
	}

	writeJSON(w, http.StatusOK, viewOf(*event))
}

// Create stores a new event plus its discussion channel and responds with
// 201 and no body, matching the contract clients already depend on.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		apierr.Write(w, r, apierr.New(apierr.KindCreateEvent, nil))
		return
	}

	caller := middleware.CallerFromContext(r.Context())
	if caller == nil {
		apierr.Write(w, r, apierr.New(apierr.KindUnauthorized, nil))
		return
	}

	var input events.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindCreateEvent, err))
		return
	}

	if _, err := h.Service.Create(r.Context(), input, caller.ID); err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindCreateEvent, err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type joinRequest struct {
	ID int64 `json:"id"`
}

// Join adds the caller to the event named in the request body. Joining the
// same event twice is a no-op success.
func (h *EventsHandler) Join(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		apierr.Write(w, r, apierr.New(apierr.KindJoinEvent, nil))
		return
	}

	caller := middleware.CallerFromContext(r.Context())
	if caller == nil {
		apierr.Write(w, r, apierr.New(apierr.KindUnauthorized, nil))
		return
	}

	var body joinRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindJoinEvent, err))
		return
	}

	if err := h.Service.Join(r.Context(), caller.ID, body.ID); err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindJoinEvent, err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Joined responds with the events the caller is a member of.
func (h *EventsHandler) Joined(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		apierr.Write(w, r, apierr.New(apierr.KindJoinedEvents, nil))
		return
	}

	caller := middleware.CallerFromContext(r.Context())
	if caller == nil {
		apierr.Write(w, r, apierr.New(apierr.KindUnauthorized, nil))
		return
	}

	items, err := h.Service.ListJoined(r.Context(), caller.ID)
	if err != nil {
		apierr.Write(w, r, apierr.New(apierr.KindJoinedEvents, err))
		return
	}

	writeJSON(w, http.StatusOK, viewsOf(items))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func pathParam(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return r.PathValue(key)
}
