package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(as service.AnswerService) *AnswerController {
	return &AnswerController{answerService: as}
}

func (c *AnswerController) RegisterRoutes(r gin.IRouter) {
	answers := r.Group("/answers")
	answers.POST("", c.CreateAnswer)
	answers.GET("/question/:question_id", c.ListAnswers)
}

// CreateAnswer godoc
// @Summary Add an answer option to a competition question
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.QuestionAnswerCreateDTO true "Answer option"
// @Success 201 {object} dto.QuestionAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	var req dto.QuestionAnswerCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	answer, err := c.answerService.CreateAnswer(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create answer")
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}

// ListAnswers godoc
// @Summary List the answer options of a question
// @Tags Answers
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {array} dto.QuestionAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/question/{question_id} [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	questionID, ok := uintParam(ctx, "question_id")
	if !ok {
		return
	}
	answers, err := c.answerService.ListAnswers(ctx.Request.Context(), questionID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve answers")
		return
	}
	ctx.JSON(http.StatusOK, answers)
}
