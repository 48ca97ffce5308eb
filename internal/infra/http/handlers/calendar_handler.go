package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prospectdesk/prospector/internal/infra/calendar"
	"github.com/prospectdesk/prospector/internal/infra/http/middleware"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type CalendarHandler struct {
	Store usecase.ContactStore
	Opts  calendar.InviteOptions
}

func NewCalendarHandler(store usecase.ContactStore, opts calendar.InviteOptions) *CalendarHandler {
	return &CalendarHandler{Store: store, Opts: opts}
}

// HandleBulk merges an invite for every record with a booked meeting into
// one downloadable calendar.
func (h *CalendarHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	data, events, err := calendar.Bulk(h.Store.All(), h.Opts)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordInvites(events)
	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="meetings_bulk.ics"`)
	w.Write(data)
}

// HandleInvite builds the invite for one record.
func (h *CalendarHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := calendar.Invite(c, h.Opts)
	if err != nil {
		if errors.Is(err, calendar.ErrNoMeeting) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	middleware.RecordInvites(1)
	filename := strings.ReplaceAll(c.Name, " ", "_") + ".ics"
	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}
