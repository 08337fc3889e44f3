// Package controller drives one reservation form: it loads the catalog on
// entry, holds the draft while the guest edits it and guards submission.
package controller

import (
	"context"
	"corais/internal/domains/booking/form"
	"corais/internal/domains/booking/model"
	"corais/internal/domains/booking/model/dto"
	roomModel "corais/internal/domains/room/model"
	roomDto "corais/internal/domains/room/model/dto"
	"corais/shared/failure"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// MessageCatalogUnavailable is shown when the room list could not be loaded.
const MessageCatalogUnavailable = "Erro ao carregar quartos disponíveis"

type CatalogReader interface {
	ListAvailable(ctx context.Context) ([]roomDto.CatalogRoom, error)
}

type Submitter interface {
	Submit(ctx context.Context, draft form.Draft, catalog form.Catalog) (dto.Confirmation, error)
}

// Controller is safe for concurrent use.
type Controller struct {
	mu        sync.Mutex
	rooms     CatalogReader
	submitter Submitter

	draft   form.Draft
	catalog form.Catalog
	notice  string

	loading    bool
	loaded     bool
	submitting bool

	preselect     string
	preselectDone bool
	userSelected  bool
}

func New(rooms CatalogReader, submitter Submitter) *Controller {
	return &Controller{
		rooms:     rooms,
		submitter: submitter,
		draft:     form.NewDraft(),
	}
}

// OnEnter loads the catalog unless a load already happened or is running.
// preselectRoomID, when present in the catalog, becomes the selected room
// once, and only if the guest has not picked one.
func (c *Controller) OnEnter(ctx context.Context, preselectRoomID string) error {
	c.mu.Lock()

	if preselectRoomID != "" && !c.preselectDone {
		c.preselect = preselectRoomID
	}

	if c.loading || c.loaded {
		c.applyPreselection()
		c.mu.Unlock()

		return nil
	}

	c.loading = true
	c.mu.Unlock()

	rooms, err := c.rooms.ListAvailable(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false

	if err != nil {
		if !errors.Is(err, roomModel.ErrCatalogFetch) {
			return err
		}

		log.Warn().Err(err).Msg("reservation form opened without catalog")

		c.catalog = nil
		c.notice = MessageCatalogUnavailable

		return nil
	}

	c.catalog = rooms
	c.notice = ""
	c.loaded = true
	c.applyPreselection()

	return nil
}

// applyPreselection must be called with mu held.
func (c *Controller) applyPreselection() {
	if !c.loaded || c.preselectDone || c.preselect == "" {
		return
	}

	c.preselectDone = true

	if c.userSelected || c.catalog.Find(c.preselect) == nil {
		return
	}

	c.draft.RoomID = c.preselect
}

func (c *Controller) SelectRoom(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.userSelected = true
	c.draft.RoomID = id
}

func (c *Controller) SetCheckIn(t *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.CheckIn = t
}

func (c *Controller) SetCheckOut(t *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.CheckOut = t
}

func (c *Controller) SetGuestsCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.GuestsCount = n
}

func (c *Controller) SetGuestName(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.GuestName = v
}

func (c *Controller) SetGuestEmail(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.GuestEmail = v
}

func (c *Controller) SetGuestPhone(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.GuestPhone = v
}

func (c *Controller) SetSpecialRequests(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.SpecialRequests = v
}

// Apply replaces the whole draft, as when a client posts its form. A non-empty
// room counts as the guest's own choice.
func (c *Controller) Apply(d form.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d.RoomID != "" {
		c.userSelected = true
	}

	c.draft = d
}

func (c *Controller) Draft() form.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	return snapshot(c.draft)
}

func (c *Controller) Nights() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.Nights()
}

func (c *Controller) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.Total(c.catalog)
}

// SelectedRoom returns a copy of the selected catalog entry, or nil.
func (c *Controller) SelectedRoom() *roomDto.CatalogRoom {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.catalog.Find(c.draft.RoomID)
	if room == nil {
		return nil
	}

	selected := *room

	return &selected
}

func (c *Controller) GuestsHint() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.draft.GuestsHint(c.catalog)
}

func (c *Controller) State() dto.FormStateResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	rooms := slices.Clone(c.catalog)
	if rooms == nil {
		rooms = []roomDto.CatalogRoom{}
	}

	return dto.FormStateResponse{
		Rooms:          rooms,
		SelectedRoomID: c.draft.RoomID,
		GuestsCount:    c.draft.GuestsCount,
		GuestsHint:     c.draft.GuestsHint(c.catalog),
		Notice:         c.notice,
	}
}

func (c *Controller) Quote() dto.QuoteResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := dto.QuoteResponse{
		Nights:      c.draft.Nights(),
		TotalAmount: c.draft.Total(c.catalog),
		GuestsHint:  c.draft.GuestsHint(c.catalog),
		Notice:      c.notice,
	}

	if room := c.catalog.Find(c.draft.RoomID); room != nil {
		res.RoomID = room.ID
		res.RoomName = room.Name
		res.PricePerNight = room.PricePerNight
	}

	return res
}

// Submit hands a snapshot of the draft to the submitter. Only one submission
// runs at a time; the draft resets on success and is kept on failure.
func (c *Controller) Submit(ctx context.Context) (dto.Confirmation, error) {
	c.mu.Lock()

	if c.submitting {
		c.mu.Unlock()

		return dto.Confirmation{}, failure.Conflict(model.ErrSubmissionInFlight, model.MessageSubmissionFlight)
	}

	c.submitting = true
	draft := snapshot(c.draft)
	catalog := slices.Clone(c.catalog)
	c.mu.Unlock()

	res, err := c.submitter.Submit(ctx, draft, catalog)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.submitting = false

	if err != nil {
		return dto.Confirmation{}, err
	}

	c.draft = form.NewDraft()
	c.userSelected = false

	return res, nil
}

func snapshot(d form.Draft) form.Draft {
	if d.CheckIn != nil {
		checkIn := *d.CheckIn
		d.CheckIn = &checkIn
	}

	if d.CheckOut != nil {
		checkOut := *d.CheckOut
		d.CheckOut = &checkOut
	}

	return d
}
