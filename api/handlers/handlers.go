package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/engine"
	"github.com/mindclash/debate-arena/personality"
)

var eng *engine.Engine

// Setup wires the handlers to a debate engine. Must be called before
// routes are served.
func Setup(e *engine.Engine) {
	eng = e
}

// errStatus maps engine error kinds to transport status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrInvalidWinner),
		errors.Is(err, core.ErrInvalidChoice):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidState),
		errors.Is(err, core.ErrRoundLimit),
		errors.Is(err, core.ErrAlreadyJudged):
		return http.StatusConflict
	case errors.Is(err, core.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(errStatus(err), gin.H{"error": err.Error()})
}

// CreateDebate - creates a pending debate
func CreateDebate(c *gin.Context) {
	var req struct {
		Topic        string   `json:"topic"`
		Participants []string `json:"participants"`
		CreatorID    string   `json:"creator_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debate data"})
		return
	}

	debate, err := eng.Create(req.Topic, req.Participants, req.CreatorID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"debate": debate})
}

// ListDebates - paginated debate listing with optional status filter
func ListDebates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := core.Status(c.Query("status"))

	debates, total, err := eng.List(status, page, limit)
	if err != nil {
		fail(c, err)
		return
	}

	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	c.JSON(http.StatusOK, gin.H{
		"debates": debates,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}

// GetDebate - fetch one debate aggregate
func GetDebate(c *gin.Context) {
	debate, err := eng.Get(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debate": debate})
}

// StartDebate - transitions to in_progress and generates round 1
func StartDebate(c *gin.Context) {
	debate, err := eng.Start(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debate": debate})
}

// NextRound - generates the next round of arguments
func NextRound(c *gin.Context) {
	debate, err := eng.AdvanceRound(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debate": debate})
}

// CompleteDebate - ends an in-progress debate early
func CompleteDebate(c *gin.Context) {
	debate, err := eng.ForceComplete(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debate": debate})
}

// JudgeDebate - records the winner, by AI heuristic or human verdict
func JudgeDebate(c *gin.Context) {
	var req struct {
		JudgeType string `json:"judge_type"`
		Winner    string `json:"winner"`
		Reasoning string `json:"reasoning"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid judgment data"})
		return
	}
	if req.JudgeType == "" {
		req.JudgeType = string(core.JudgeAI)
	}

	debate, err := eng.Judge(c.Param("debateID"), core.JudgeType(req.JudgeType), req.Winner, req.Reasoning)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debate": debate, "judgment": debate.Judgment})
}

// VoteOnDebate - appends a community vote
func VoteOnDebate(c *gin.Context) {
	var req struct {
		PersonalityID string `json:"personality_id"`
		VoterID       string `json:"voter_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote data"})
		return
	}

	debate, err := eng.Vote(c.Param("debateID"), req.PersonalityID, req.VoterID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_votes": len(debate.Votes)})
}

// GetRound - fetch a single round of a debate
func GetRound(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round number"})
		return
	}

	debate, err := eng.Get(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}

	args := debate.ArgumentsByRound(number)
	if args == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"round": number, "arguments": args})
}

// GetAnalytics - per-debate statistics
func GetAnalytics(c *gin.Context) {
	analytics, err := eng.Analytics(c.Param("debateID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}

// GetPersonalities - the registry roster
func GetPersonalities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personalities": personality.All()})
}

// GetLeaderboard - standings derived from judged debates
func GetLeaderboard(c *gin.Context) {
	standings, err := eng.Leaderboard()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": standings})
}

// GetStats - platform-wide counters
func GetStats(c *gin.Context) {
	stats, err := eng.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
