package v1

import (
	"net/http"
	"strings"

	"next-form-backend/internal/delivery/http/response"
	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const submittedMessage = "Contact form submitted successfully"

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.GET("/contact", handler.ContactStatus)
	api.POST("/contact", handler.SubmitContact)
}

// ContactStatus godoc
// @Summary      Contact endpoint check
// @Description  Static acknowledgement for browser clients probing the contact route.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/contact [get]
func (h *ContactHandler) ContactStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "OK"})
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and store it in the contacts table.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      422      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if ct := c.ContentType(); ct != "" && !isJSON(ct) {
		c.Error(apperror.NewValidationError(validation.FormatContentTypeError(ct)))
		return
	}

	var form domain.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.NewValidationError(validation.FormatDecodeError(err)...))
		return
	}

	receipt, err := h.contactUC.Submit(c.Request.Context(), &form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, submittedMessage, receipt.Submission.Echo())
}

// isJSON accepts application/json and structured suffixes like application/problem+json.
func isJSON(contentType string) bool {
	return contentType == "application/json" ||
		(strings.HasPrefix(contentType, "application/") && strings.HasSuffix(contentType, "+json"))
}
