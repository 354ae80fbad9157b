package api

import (
	"net/http"

	"maya-connect/internal/domain/signup"
	reqdto "maya-connect/internal/handler/dto/request"
	resdto "maya-connect/internal/handler/dto/response"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	cmds commands.SignupCommands
}

func NewSignupHandler(cmds commands.SignupCommands) *SignupHandler {
	return &SignupHandler{cmds: cmds}
}

// @Summary Validate a signup step
// @Description Validate the fields of one step and report the next step when valid
// @Tags signup
// @Accept json
// @Produce json
// @Param step query string true "personal, security or address"
// @Param request body reqdto.SignupRequest true "Signup form"
// @Success 200 {object} resdto.SignupStepResponse
// @Failure 400 {object} httperr.Response
// @Router /signup/validate [post]
func (h *SignupHandler) ValidateStep(c *gin.Context) {
	step, err := signup.ParseStep(c.Query("step"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown signup step", nil)
		return
	}
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	w := signup.ResumeAt(step)
	resp := resdto.SignupStepResponse{Step: step}
	resp.Valid = w.Next(req.Draft)
	resp.Errors = w.Errors()
	if resp.Valid && w.Step() != step {
		resp.Next = w.Step()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Format a birth date
// @Description Turn typed digits into YYYY-MM-DD
// @Tags signup
// @Accept json
// @Produce json
// @Param request body reqdto.FormatBirthDateRequest true "Raw input"
// @Success 200 {object} resdto.FormatBirthDateResponse
// @Failure 400 {object} httperr.Response
// @Router /signup/format-birth-date [post]
func (h *SignupHandler) FormatBirthDate(c *gin.Context) {
	var req reqdto.FormatBirthDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FormatBirthDateResponse{Value: signup.FormatBirthDate(req.Input)})
}

// @Summary Create an account
// @Description Validate every step and register the member with the backend
// @Tags signup
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup form"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /signup [post]
func (h *SignupHandler) Submit(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.Draft)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrSignupInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please fix the highlighted fields", resdto.FromSignupResult(result))
		case errs.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, commands.EmailTakenMessage, resdto.FromSignupResult(result))
		default:
			abortWithError(c, err, "Signup failed")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSignupResult(result))
}
