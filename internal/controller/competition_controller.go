package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type CompetitionController struct {
	competitionService service.CompetitionService
}

func NewCompetitionController(cs service.CompetitionService) *CompetitionController {
	return &CompetitionController{competitionService: cs}
}

func (c *CompetitionController) RegisterRoutes(r gin.IRouter) {
	competitions := r.Group("/competitions")
	competitions.POST("", c.CreateCompetition)
	competitions.GET("/:id", c.GetCompetition)
	competitions.POST("/question", c.AddQuestion)
	competitions.POST("/join", c.JoinCompetition)
	competitions.POST("/submit", c.SubmitAnswer)
}

// CreateCompetition godoc
// @Summary Create a competition
// @Description Stores a new competition in the "waiting" status. Omitted settings take the platform defaults.
// @Tags Competitions
// @Accept json
// @Produce json
// @Param competition body dto.CompetitionCreateDTO true "Competition settings"
// @Success 201 {object} dto.CompetitionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /competitions [post]
func (c *CompetitionController) CreateCompetition(ctx *gin.Context) {
	var req dto.CompetitionCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	competition, err := c.competitionService.CreateCompetition(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create competition")
		return
	}
	ctx.JSON(http.StatusCreated, competition)
}

// GetCompetition godoc
// @Summary Get a competition
// @Tags Competitions
// @Produce json
// @Param id path int true "Competition ID"
// @Success 200 {object} dto.CompetitionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid competition ID"
// @Failure 404 {object} dto.ErrorResponse "Competition not found"
// @Router /competitions/{id} [get]
func (c *CompetitionController) GetCompetition(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	competition, err := c.competitionService.GetCompetition(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Competition not found")
		return
	}
	ctx.JSON(http.StatusOK, competition)
}

// AddQuestion godoc
// @Summary Add a question to a competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param question body dto.CompetitionQuestionCreateDTO true "Question"
// @Success 201 {object} dto.CompetitionQuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /competitions/question [post]
func (c *CompetitionController) AddQuestion(ctx *gin.Context) {
	var req dto.CompetitionQuestionCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	question, err := c.competitionService.AddQuestion(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// JoinCompetition godoc
// @Summary Add a participant to a competition
// @Description Records a participant. Capacity and duplicate enrollments are not checked.
// @Tags Competitions
// @Accept json
// @Produce json
// @Param participant body dto.ParticipantCreateDTO true "Participant"
// @Success 201 {object} dto.ParticipantResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /competitions/join [post]
func (c *CompetitionController) JoinCompetition(ctx *gin.Context) {
	var req dto.ParticipantCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	participant, err := c.competitionService.JoinCompetition(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to join competition")
		return
	}
	ctx.JSON(http.StatusCreated, participant)
}

// SubmitAnswer godoc
// @Summary Submit a participant answer
// @Description Stores the answer with the correctness reported by the client.
// @Tags Competitions
// @Accept json
// @Produce json
// @Param answer body dto.ParticipantAnswerCreateDTO true "Answer"
// @Success 201 {object} dto.ParticipantAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /competitions/submit [post]
func (c *CompetitionController) SubmitAnswer(ctx *gin.Context) {
	var req dto.ParticipantAnswerCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	answer, err := c.competitionService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}
