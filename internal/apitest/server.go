// Package apitest hosts an in-memory stand-in for the inventory backend,
// speaking the same envelope contract the production API does:
//
//	{ "success": bool, "data": ..., "message": ... }
//
// Tests mount it with httptest and point the client at it. Records live in
// maps; nothing survives the process.
package apitest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/stocklite/inventory-client/internal/core/domain"
)

const tokenTTL = 24 * time.Hour

type account struct {
	user     domain.User
	password string
}

// Server is the fake backend. All exported methods are safe for concurrent
// use; handlers and seed helpers share one lock.
type Server struct {
	e        *echo.Echo
	validate *validator.Validate
	secret   string

	mu           sync.Mutex
	accounts     map[string]*account // keyed by user id
	products     map[string]*domain.Product
	categories   map[string]*domain.Category
	suppliers    map[string]*domain.Supplier
	transactions map[string]*domain.Transaction
}

// New builds a Server with all routes registered and no data.
func New() *Server {
	s := &Server{
		e:            echo.New(),
		validate:     validator.New(),
		secret:       "apitest-secret",
		accounts:     make(map[string]*account),
		products:     make(map[string]*domain.Product),
		categories:   make(map[string]*domain.Category),
		suppliers:    make(map[string]*domain.Supplier),
		transactions: make(map[string]*domain.Transaction),
	}
	s.e.HideBanner = true
	s.e.Use(echomiddleware.Recover())

	s.e.POST("/auth/register", s.handleRegister)
	s.e.POST("/auth/login", s.handleLogin)
	s.e.GET("/auth/me", s.handleMe, s.requireAuth)

	s.registerResources()
	return s
}

// Handler exposes the server for httptest.NewServer.
func (s *Server) Handler() http.Handler { return s.e }

// --- Envelope helpers ---

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"success": true, "data": data})
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "message": msg})
}

// --- Auth ---

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.Username == req.Username {
			return fail(c, http.StatusBadRequest, "Username already exists")
		}
		if acc.user.Email == req.Email {
			return fail(c, http.StatusBadRequest, "Email already exists")
		}
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts[user.ID] = &account{user: user, password: req.Password}

	token, err := s.issueToken(&user)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue token")
	}
	return ok(c, http.StatusCreated, map[string]any{"user": user, "token": token})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.user.Email == req.Email {
			if acc.password != req.Password {
				break
			}
			now := time.Now().UTC()
			acc.user.LastLogin = &now
			token, err := s.issueToken(&acc.user)
			if err != nil {
				return fail(c, http.StatusInternalServerError, "could not issue token")
			}
			return ok(c, http.StatusOK, map[string]any{"user": acc.user, "token": token})
		}
	}
	return fail(c, http.StatusUnauthorized, "Invalid credentials")
}

func (s *Server) handleMe(c echo.Context) error {
	userID, _ := c.Get("userID").(string)

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, found := s.accounts[userID]
	if !found {
		return fail(c, http.StatusUnauthorized, "invalid token")
	}
	return ok(c, http.StatusOK, acc.user)
}

func (s *Server) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

// requireAuth validates the bearer token and injects the user id.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return fail(c, http.StatusUnauthorized, "missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fail(c, http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !tkn.Valid {
			return fail(c, http.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["sub"].(string)
		c.Set("userID", sub)
		return next(c)
	}
}

// --- Seed helpers ---

// SeedUser registers an account directly, bypassing the HTTP surface.
func (s *Server) SeedUser(username, email, password string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	user := domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts[user.ID] = &account{user: user, password: password}
	return &user
}

// SeedProduct stores a product and returns its assigned id.
func (s *Server) SeedProduct(p domain.Product) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	s.products[p.ID] = &p
	return p.ID
}

// validationMessage renders validator failures the way the real backend does.
func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid payload"
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
