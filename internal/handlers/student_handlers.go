package handlers

import (
	"net/http"
	"strconv"

	"kantinku/internal/common"
	"kantinku/internal/services"

	"github.com/labstack/echo/v4"
)

// StudentHandlers covers the student's own profile plus the administrative
// student listing available to stall accounts.
type StudentHandlers struct {
	studentService services.StudentServiceInterface
}

func NewStudentHandlers(studentService services.StudentServiceInterface) *StudentHandlers {
	return &StudentHandlers{studentService: studentService}
}

type studentProfileRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// GetProfile handles GET /profile
func (h *StudentHandlers) GetProfile(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	return c.JSON(http.StatusOK, student)
}

// UpdateProfile handles PUT /profile
func (h *StudentHandlers) UpdateProfile(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	student.Name = req.Name
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if err := h.studentService.Update(c.Request().Context(), student); err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.JSON(http.StatusOK, student)
}

// UploadProfilePhoto handles POST /profile/photo
func (h *StudentHandlers) UploadProfilePhoto(c echo.Context) error {
	student, ok := studentFromContext(c, h.studentService)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return common.SendValidationError(c, "photo", "photo file is required")
	}
	src, err := file.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	url, err := h.studentService.UploadPhoto(c.Request().Context(), student.ID, file.Filename, contentType, src, file.Size)
	if err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.JSON(http.StatusOK, map[string]string{"photo_url": url})
}

// ListStudents handles GET /vendor/students
func (h *StudentHandlers) ListStudents(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	students, err := h.studentService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"students": students,
		"count":    len(students),
	})
}

// UpdateStudent handles PUT /vendor/students/:id
func (h *StudentHandlers) UpdateStudent(c echo.Context) error {
	studentID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	student, err := h.studentService.GetByID(c.Request().Context(), studentID)
	if err != nil {
		return sendServiceError(c, err, "student")
	}

	var req studentProfileRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	student.Name = req.Name
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}

	if err := h.studentService.Update(c.Request().Context(), student); err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /vendor/students/:id
func (h *StudentHandlers) DeleteStudent(c echo.Context) error {
	studentID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.studentService.Delete(c.Request().Context(), studentID); err != nil {
		return sendServiceError(c, err, "student")
	}
	return c.NoContent(http.StatusNoContent)
}
