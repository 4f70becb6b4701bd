package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type CourseController struct {
	courseService service.CourseService
	uploadService service.UploadService
}

func NewCourseController(cs service.CourseService, us service.UploadService) *CourseController {
	return &CourseController{courseService: cs, uploadService: us}
}

func (c *CourseController) RegisterRoutes(r gin.IRouter) {
	courses := r.Group("/courses")
	courses.POST("", c.CreateCourse)
	courses.GET("/code/:code", c.GetCourseByCode)
	courses.POST("/file", c.CreateCourseFile)
	courses.POST("/file/upload-url", c.CreateUploadURL)
	courses.GET("/:course_id/files", c.ListCourseFiles)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create course")
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// GetCourseByCode godoc
// @Summary Get a course by its code
// @Tags Courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/code/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		respondError(ctx, err, "Course not found")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourseFile godoc
// @Summary Record an uploaded course file
// @Tags Courses
// @Accept json
// @Produce json
// @Param file body dto.CourseFileCreateDTO true "Course file"
// @Success 201 {object} dto.CourseFileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/file [post]
func (c *CourseController) CreateCourseFile(ctx *gin.Context) {
	var req dto.CourseFileCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	file, err := c.courseService.CreateCourseFile(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create course file")
		return
	}
	ctx.JSON(http.StatusCreated, file)
}

// ListCourseFiles godoc
// @Summary List the files of a course
// @Tags Courses
// @Produce json
// @Param course_id path string true "Course ID (UUID)"
// @Success 200 {array} dto.CourseFileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id}/files [get]
func (c *CourseController) ListCourseFiles(ctx *gin.Context) {
	courseID, ok := uuidParam(ctx, "course_id")
	if !ok {
		return
	}
	files, err := c.courseService.ListCourseFiles(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve course files")
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// CreateUploadURL godoc
// @Summary Get a presigned upload URL for a course file
// @Tags Courses
// @Accept json
// @Produce json
// @Param upload body dto.UploadURLRequestDTO true "Storage path"
// @Success 200 {object} dto.UploadURLResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid path"
// @Failure 503 {object} dto.ErrorResponse "Object storage not configured"
// @Router /courses/file/upload-url [post]
func (c *CourseController) CreateUploadURL(ctx *gin.Context) {
	var req dto.UploadURLRequestDTO
	if !bindJSON(ctx, &req) {
		return
	}
	upload, err := c.uploadService.CreateUploadURL(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create upload URL")
		return
	}
	ctx.JSON(http.StatusOK, upload)
}
