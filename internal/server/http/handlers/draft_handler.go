package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/server/http/dto"
)

var errNoDraft = fmt.Errorf("no draft open for this order: %w", domainErrors.ErrNotFound)

// DraftHandler exposes order composition. The draft handle of each order is
// kept in the caller's session, so a draft is only reachable from the session
// that opened it.
type DraftHandler struct {
	facade ComposerFacade
}

// NewDraftHandler constructs DraftHandler.
func NewDraftHandler(facade ComposerFacade) *DraftHandler {
	return &DraftHandler{facade: facade}
}

func sessionKey(orderID int64) string {
	return fmt.Sprintf("draft:%d", orderID)
}

func (h *DraftHandler) handle(c *gin.Context, orderID int64) (uuid.UUID, bool) {
	raw, ok := sessions.Default(c).Get(sessionKey(orderID)).(string)
	if !ok {
		return uuid.Nil, false
	}
	handle, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return handle, true
}

func (h *DraftHandler) forget(c *gin.Context, orderID int64) {
	session := sessions.Default(c)
	session.Delete(sessionKey(orderID))
	_ = session.Save()
}

// fail writes err and drops the session entry when the draft is gone.
func (h *DraftHandler) fail(c *gin.Context, orderID int64, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) && !errors.Is(err, domainErrors.ErrValidation) {
		h.forget(c, orderID)
	}
	respondError(c, err)
}

func (h *DraftHandler) render(c *gin.Context, status int, orderID int64, handle uuid.UUID) {
	items, err := h.facade.DraftItems(handle)
	if err != nil {
		h.fail(c, orderID, err)
		return
	}
	summary, err := h.facade.DraftSummary(handle)
	if err != nil {
		h.fail(c, orderID, err)
		return
	}
	c.JSON(status, dto.NewDraftResponse(orderID, items, summary))
}

// Open handles POST /api/orders/:id/draft. A draft already open for the
// order in this session is replaced by an empty one.
func (h *DraftHandler) Open(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}

	handle, err := h.facade.OpenDraft(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	previous, hadPrevious := h.handle(c, orderID)

	session := sessions.Default(c)
	session.Set(sessionKey(orderID), handle.String())
	if err := session.Save(); err != nil {
		h.facade.CloseDraft(handle)
		respondError(c, err)
		return
	}
	if hadPrevious {
		h.facade.CloseDraft(previous)
	}
	h.render(c, http.StatusCreated, orderID, handle)
}

// Show handles GET /api/orders/:id/draft.
func (h *DraftHandler) Show(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	handle, ok := h.handle(c, orderID)
	if !ok {
		respondError(c, errNoDraft)
		return
	}
	h.render(c, http.StatusOK, orderID, handle)
}

// AddItem handles POST /api/orders/:id/draft/items.
func (h *DraftHandler) AddItem(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	handle, ok := h.handle(c, orderID)
	if !ok {
		respondError(c, errNoDraft)
		return
	}
	var req dto.DraftItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.facade.StageItem(handle, req.ProductID, req.Quantity, req.UnitPrice); err != nil {
		h.fail(c, orderID, err)
		return
	}
	h.render(c, http.StatusOK, orderID, handle)
}

// Commit handles POST /api/orders/:id/draft/commit.
func (h *DraftHandler) Commit(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	handle, ok := h.handle(c, orderID)
	if !ok {
		respondError(c, errNoDraft)
		return
	}

	written, err := h.facade.CommitDraft(c.Request.Context(), handle, orderID)
	if err != nil {
		h.fail(c, orderID, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommitResponse{OrderID: orderID, Committed: written})
}

// Discard handles DELETE /api/orders/:id/draft. The draft stays open and empty.
func (h *DraftHandler) Discard(c *gin.Context) {
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	handle, ok := h.handle(c, orderID)
	if !ok {
		respondError(c, errNoDraft)
		return
	}

	if err := h.facade.DiscardDraft(handle); err != nil {
		h.fail(c, orderID, err)
		return
	}
	c.Status(http.StatusNoContent)
}
