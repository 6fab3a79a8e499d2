package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imagebed/service/internal/response"
)

// TokenHeader is the request header carrying the upload token.
const TokenHeader = "X-Upload-Token"

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username,omitempty" example:"admin"`
	Password string `json:"password" example:"secret"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type verifyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Login godoc
//
//	@Summary		Log in with shared credentials
//	@Description	Issues a 24h bearer token. Username may be omitted in single-password deployments.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"credentials"
//	@Success		200		{object}	loginResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Router			/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, response.CodeInvalidCredentials, "malformed request body")
		return
	}
	if req.Password == "" {
		response.BadRequest(w, response.CodeInvalidCredentials, "please provide a username and password, or a password only")
		return
	}

	result, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, response.CodeInvalidCredentials, "invalid username or password")
			return
		}
		response.InternalError(w, response.CodeInternalError, "login failed")
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{
		Success:  true,
		Token:    result.Token,
		Username: result.Username,
		Message:  "login successful",
	})
}

// Verify godoc
//
//	@Summary		Verify an upload token
//	@Description	Reports whether the X-Upload-Token header carries a currently valid token.
//	@Tags			auth
//	@Produce		json
//	@Param			X-Upload-Token	header		string	true	"upload token"
//	@Success		200				{object}	verifyResponse
//	@Router			/verify [post]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	valid := h.svc.Verify(r.Header.Get(TokenHeader))
	msg := "token is invalid"
	if valid {
		msg = "token is valid"
	}
	response.JSON(w, http.StatusOK, verifyResponse{Valid: valid, Message: msg})
}
