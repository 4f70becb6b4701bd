package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type TopicController struct {
	topicService service.TopicService
}

func NewTopicController(ts service.TopicService) *TopicController {
	return &TopicController{topicService: ts}
}

func (c *TopicController) RegisterRoutes(r gin.IRouter) {
	topics := r.Group("/topics")
	topics.POST("", c.CreateTopic)
	topics.POST("/extract", c.ExtractTopics)
	topics.GET("/course/:course_id", c.ListCourseTopics)
}

// CreateTopic godoc
// @Summary Create a topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param topic body dto.ExtractedTopicCreateDTO true "Topic"
// @Success 201 {object} dto.ExtractedTopicResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics [post]
func (c *TopicController) CreateTopic(ctx *gin.Context) {
	var req dto.ExtractedTopicCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	topic, err := c.topicService.CreateTopic(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create topic")
		return
	}
	ctx.JSON(http.StatusCreated, topic)
}

// ListCourseTopics godoc
// @Summary List the topics of a course
// @Tags Topics
// @Produce json
// @Param course_id path string true "Course ID (UUID)"
// @Success 200 {array} dto.ExtractedTopicResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics/course/{course_id} [get]
func (c *TopicController) ListCourseTopics(ctx *gin.Context) {
	courseID, ok := uuidParam(ctx, "course_id")
	if !ok {
		return
	}
	topics, err := c.topicService.ListCourseTopics(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve topics")
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// ExtractTopics godoc
// @Summary Extract study topics from a course file
// @Description Asks Gemini for the main topics of the file and stores one topic per result.
// @Tags Topics
// @Accept json
// @Produce json
// @Param extraction body dto.TopicExtractionDTO true "Course file and topic limit"
// @Success 201 {array} dto.ExtractedTopicResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Course file not found"
// @Failure 503 {object} dto.ErrorResponse "Topic extraction not configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics/extract [post]
func (c *TopicController) ExtractTopics(ctx *gin.Context) {
	var req dto.TopicExtractionDTO
	if !bindJSON(ctx, &req) {
		return
	}
	topics, err := c.topicService.ExtractTopics(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to extract topics")
		return
	}
	ctx.JSON(http.StatusCreated, topics)
}
