package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/hub"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/ericogr/duel-arena/internal/render"
	"github.com/ericogr/duel-arena/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler groups all room-related HTTP handlers.
type RoomHandler struct {
	rt       *service.Runtime
	feed     *hub.Broadcaster
	language string
}

// NewRoomHandler creates a handler; language is the default render language
// when a request does not pass ?lang=.
func NewRoomHandler(rt *service.Runtime, feed *hub.Broadcaster, language string) *RoomHandler {
	return &RoomHandler{rt: rt, feed: feed, language: language}
}

type seedRequest struct {
	Seed *int64 `json:"seed"`
}

func (h *RoomHandler) renderer(c *gin.Context) *render.Renderer {
	if lang := c.Query("lang"); lang != "" {
		return render.New(lang)
	}
	return render.New(h.language)
}

func parseRoomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("roomID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRoomID})
		return 0, false
	}
	return id, true
}

// actor returns the authenticated actor id and its display mention.
func actor(c *gin.Context) (int64, string) {
	id := c.GetInt64(constants.CtxActorID)
	name := c.GetString(constants.CtxActorName)
	if name == "" {
		name = strconv.FormatInt(id, 10)
	}
	return id, "@" + name
}

func (h *RoomHandler) fail(c *gin.Context, roomID int64, err error, fallback string) {
	if errors.Is(err, service.ErrBattleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: h.renderer(c).Text(constants.ErrBattleNotFound)})
		return
	}
	_ = c.Error(err)
	logging.Error(fallback, err, logging.Fields{constants.LogFieldRoomID: roomID})
	c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
}

// Help lists the available commands.
func (h *RoomHandler) Help(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: h.renderer(c).Help()})
}

type skillView struct {
	Number int `json:"number"`
	game.Skill
}

// ListSkills returns the catalog in ordinal order.
func (h *RoomHandler) ListSkills(c *gin.Context) {
	catalog := h.rt.Engine().Catalog()
	out := make([]skillView, 0, catalog.Len())
	for i, sk := range catalog.Skills() {
		out = append(out, skillView{Number: i + 1, Skill: sk})
	}
	c.JSON(http.StatusOK, gin.H{"skills": out, constants.JSONKeyMessage: h.renderer(c).Skills(catalog)})
}

// Start creates a fresh battle for the room.
func (h *RoomHandler) Start(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	b, err := h.rt.Start(c.Request.Context(), roomID)
	if err != nil {
		h.fail(c, roomID, err, constants.ErrFailedSaveBattle)
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeyMessage: h.renderer(c).Started(), constants.JSONKeyBattle: b})
}

// Reset restarts the room battle keeping its seed settings.
func (h *RoomHandler) Reset(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	b, err := h.rt.Reset(c.Request.Context(), roomID)
	if err != nil {
		h.fail(c, roomID, err, constants.ErrFailedSaveBattle)
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeyMessage: h.renderer(c).Reset(), constants.JSONKeyBattle: b})
}

// GetRoom returns the battle snapshot and its status text.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	b, err := h.rt.Status(c.Request.Context(), roomID)
	if err != nil {
		h.fail(c, roomID, err, constants.ErrFailedLoadBattle)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: h.renderer(c).Status(b, h.rt.Engine().Catalog()),
		constants.JSONKeyBattle:  b,
	})
}

// GetSeed returns the room seed, null when the stream is system seeded.
func (h *RoomHandler) GetSeed(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	seed, err := h.rt.Seed(c.Request.Context(), roomID)
	if err != nil {
		h.fail(c, roomID, err, constants.ErrFailedLoadBattle)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySeed: seed, constants.JSONKeyMessage: h.renderer(c).Seed(seed)})
}

// SetSeed re-seeds the room and enables the debug seed line in reports.
func (h *RoomHandler) SetSeed(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	var req seedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Seed == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSeed})
		return
	}
	if _, err := h.rt.SetSeed(c.Request.Context(), roomID, *req.Seed); err != nil {
		h.fail(c, roomID, err, constants.ErrFailedSaveBattle)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySeed: *req.Seed, constants.JSONKeyMessage: h.renderer(c).SeedSet(*req.Seed)})
}

// SubmitAction locks in the caller's skill for this round and returns the
// round report when it completed the round.
func (h *RoomHandler) SubmitAction(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	actorID, mention := actor(c)
	out, err := h.rt.Submit(c.Request.Context(), roomID, actorID)
	if err != nil {
		h.fail(c, roomID, err, constants.ErrFailedStoreAction)
		return
	}

	r := h.renderer(c)
	resp := gin.H{
		constants.JSONKeyStatus: out.Status,
		constants.JSONKeyRound:  out.Battle.Round,
	}
	switch out.Status {
	case service.SubmitAccepted:
		resp[constants.JSONKeyMessage] = r.Ack(mention, out.Ordinal, out.SkillName, out.Silenced)
	default:
		resp[constants.JSONKeyMessage] = r.Text(out.Message)
	}
	if out.Log != nil {
		resp[constants.JSONKeyReport] = r.Report(out.Battle, out.Log)
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRoom removes the room battle.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	if err := h.rt.Delete(c.Request.Context(), roomID); err != nil {
		h.fail(c, roomID, err, constants.ErrFailedSaveBattle)
		return
	}
	c.Status(http.StatusNoContent)
}
