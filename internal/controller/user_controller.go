package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(us service.UserService) *UserController {
	return &UserController{userService: us}
}

func (c *UserController) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.POST("/profile", c.CreateProfile)
	users.GET("/profile/:user_id", c.GetProfile)
	users.GET("/universities", c.ListUniversities)
	users.POST("/universities", c.CreateUniversity)
}

// CreateProfile godoc
// @Summary Create a user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param profile body dto.ProfileCreateDTO true "Profile"
// @Success 201 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/profile [post]
func (c *UserController) CreateProfile(ctx *gin.Context) {
	var req dto.ProfileCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	profile, err := c.userService.CreateProfile(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create profile")
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

// GetProfile godoc
// @Summary Get a user profile
// @Description Answers null when the user has no profile.
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/profile/{user_id} [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := uuidParam(ctx, "user_id")
	if !ok {
		return
	}
	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve profile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// ListUniversities godoc
// @Summary List universities
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UniversityResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/universities [get]
func (c *UserController) ListUniversities(ctx *gin.Context) {
	universities, err := c.userService.ListUniversities(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to retrieve universities")
		return
	}
	ctx.JSON(http.StatusOK, universities)
}

// CreateUniversity godoc
// @Summary Register a university
// @Tags Users
// @Accept json
// @Produce json
// @Param university body dto.UniversityCreateDTO true "University"
// @Success 201 {object} dto.UniversityResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/universities [post]
func (c *UserController) CreateUniversity(ctx *gin.Context) {
	var req dto.UniversityCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	university, err := c.userService.CreateUniversity(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create university")
		return
	}
	ctx.JSON(http.StatusCreated, university)
}
