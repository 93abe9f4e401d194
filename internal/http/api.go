package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"forum-api/internal/domain"
	"forum-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth      service.AuthService
	users     service.UserService
	questions service.QuestionService
	answers   service.AnswerService
	logger    *logrus.Logger
}

func NewHandler(auth service.AuthService, users service.UserService, questions service.QuestionService, answers service.AnswerService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:      auth,
		users:     users,
		questions: questions,
		answers:   answers,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.POST("/user/signup", h.signup)
		api.POST("/user/signin", h.signin)
		api.POST("/user/signout", h.signout)
		api.GET("/userprofile/:userId", h.userProfile)
		api.DELETE("/admin/user/:userId", h.deleteUser)

		api.POST("/question/create", h.createQuestion)
		api.GET("/question/all", h.allQuestions)
		api.GET("/question/all/:userId", h.questionsByUser)
		api.PUT("/question/edit/:questionId", h.editQuestion)
		api.DELETE("/question/delete/:questionId", h.deleteQuestion)

		api.POST("/question/:questionId/answer/create", h.createAnswer)
		api.PUT("/answer/edit/:answerId", h.editAnswer)
		api.DELETE("/answer/delete/:answerId", h.deleteAnswer)
		api.GET("/answer/all/:questionId", h.answersForQuestion)

		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "access-token")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).Round(time.Millisecond).String(),
		}).Info("request")
	}
}

// accessToken pulls the bearer credential out of the authorization header.
// A raw token without the Bearer prefix is accepted too.
func accessToken(c *gin.Context) string {
	header := c.GetHeader("authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// writeError maps a business rejection onto an HTTP status, keeping the
// code and message pair intact so clients can match on codes.
func writeError(c *gin.Context, err error) {
	var (
		status = http.StatusInternalServerError
		code   = "GEN-001"
		msg    = "internal error"
	)
	switch domain.KindOf(err) {
	case domain.KindUnauthenticated, domain.KindSessionTerminated, domain.KindInvalidCredentials, domain.KindSignOutRestricted:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	default:
		c.JSON(status, gin.H{"code": code, "message": msg})
		return
	}
	var de *domain.Error
	errors.As(err, &de)
	c.JSON(status, gin.H{"code": de.Code, "message": de.Message})
}

// ----- users -----

type signupRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName" binding:"required"`
	EmailAddress  string `json:"emailAddress" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &domain.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.UserName,
		Email:         req.EmailAddress,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		ContactNumber: req.ContactNumber,
	}
	created, err := h.auth.SignUp(c.Request.Context(), user, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.UUID, "status": "USER SUCCESSFULLY REGISTERED"})
}

func (h *Handler) signin(c *gin.Context) {
	username, password, ok := basicCredentials(c.GetHeader("authorization"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorization header must carry Basic credentials"})
		return
	}

	session, user, err := h.auth.SignIn(c.Request.Context(), username, password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("access-token", session.AccessToken)
	c.JSON(http.StatusOK, gin.H{"id": user.UUID, "message": "SIGNED IN SUCCESSFULLY"})
}

func basicCredentials(header string) (string, string, bool) {
	if !strings.HasPrefix(header, "Basic ") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(decoded), ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (h *Handler) signout(c *gin.Context) {
	user, err := h.auth.SignOut(c.Request.Context(), accessToken(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.UUID, "message": "SIGNED OUT SUCCESSFULLY"})
}

type userDetailsResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName"`
	EmailAddress  string `json:"emailAddress"`
	DOB           string `json:"dob"`
	AboutMe       string `json:"aboutMe"`
	ContactNumber string `json:"contactNumber"`
	Country       string `json:"country"`
}

func (h *Handler) userProfile(c *gin.Context) {
	user, err := h.users.Profile(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userDetailsResponse{
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		UserName:      user.Username,
		EmailAddress:  user.Email,
		DOB:           user.DOB,
		AboutMe:       user.AboutMe,
		ContactNumber: user.ContactNumber,
		Country:       user.Country,
	})
}

func (h *Handler) deleteUser(c *gin.Context) {
	user, err := h.users.Delete(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.UUID, "status": "USER SUCCESSFULLY DELETED"})
}

// ----- questions -----

type questionRequest struct {
	Content string `json:"content" binding:"required"`
}

type questionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (h *Handler) createQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questions.Create(c.Request.Context(), accessToken(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": question.UUID, "status": "QUESTION CREATED"})
}

func (h *Handler) allQuestions(c *gin.Context) {
	questions, err := h.questions.All(c.Request.Context(), accessToken(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionsToResponse(questions))
}

func (h *Handler) questionsByUser(c *gin.Context) {
	questions, err := h.questions.AllByUser(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionsToResponse(questions))
}

func (h *Handler) editQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questions.Edit(c.Request.Context(), accessToken(c), c.Param("questionId"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": question.UUID, "status": "QUESTION EDITED"})
}

func (h *Handler) deleteQuestion(c *gin.Context) {
	question, err := h.questions.Delete(c.Request.Context(), accessToken(c), c.Param("questionId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": question.UUID, "status": "QUESTION DELETED"})
}

func questionsToResponse(questions []domain.Question) []questionDetailsResponse {
	resp := make([]questionDetailsResponse, len(questions))
	for i := range questions {
		resp[i] = questionDetailsResponse{ID: questions[i].UUID, Content: questions[i].Content}
	}
	return resp
}

// ----- answers -----

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type answerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"questionContent"`
	AnswerContent   string `json:"answerContent"`
}

func (h *Handler) createAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answers.Create(c.Request.Context(), accessToken(c), c.Param("questionId"), req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": answer.UUID, "status": "ANSWER CREATED"})
}

func (h *Handler) editAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answers.Edit(c.Request.Context(), accessToken(c), c.Param("answerId"), req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": answer.UUID, "status": "ANSWER EDITED"})
}

func (h *Handler) deleteAnswer(c *gin.Context) {
	answer, err := h.answers.Delete(c.Request.Context(), accessToken(c), c.Param("answerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": answer.UUID, "status": "ANSWER DELETED"})
}

func (h *Handler) answersForQuestion(c *gin.Context) {
	answers, question, err := h.answers.AllForQuestion(c.Request.Context(), accessToken(c), c.Param("questionId"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]answerDetailsResponse, len(answers))
	for i := range answers {
		resp[i] = answerDetailsResponse{
			ID:              answers[i].UUID,
			QuestionContent: question.Content,
			AnswerContent:   answers[i].Content,
		}
	}
	c.JSON(http.StatusOK, resp)
}
