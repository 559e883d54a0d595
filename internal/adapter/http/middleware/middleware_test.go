package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

type authenticatorMock struct {
	mock.Mock
}

func (m *authenticatorMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type envelope struct {
	Error  string `json:"error"`
	Status bool   `json:"status"`
}

func newAuthRouter(auth *authenticatorMock) *gin.Engine {
	router := gin.New()
	router.GET("/secure",
		middleware.LanguageMiddleware(),
		middleware.TokenAuthMiddleware(auth),
		func(c *gin.Context) {
			user, ok := middleware.GetUser(c)
			if !ok {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
		},
	)
	return router
}

func serve(router *gin.Engine, header string, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTokenAuthMiddleware_AcceptsTokenAndBearer(t *testing.T) {
	auth := new(authenticatorMock)
	auth.On("Authenticate", mock.Anything, "abc123").Return(domain.User{ID: 7}, nil).Twice()
	router := newAuthRouter(auth)

	for _, header := range []string{"Token abc123", "Bearer abc123"} {
		rec := serve(router, header, "")
		require.Equal(t, http.StatusOK, rec.Code, header)
		require.JSONEq(t, `{"user_id":7}`, rec.Body.String())
	}
	auth.AssertExpectations(t)
}

func TestTokenAuthMiddleware_MissingHeader(t *testing.T) {
	auth := new(authenticatorMock)
	rec := serve(newAuthRouter(auth), "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Token", rec.Header().Get("WWW-Authenticate"))

	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.Status)
	require.Equal(t, "Authentication credentials were not provided.", got.Error)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestTokenAuthMiddleware_WrongScheme(t *testing.T) {
	auth := new(authenticatorMock)
	rec := serve(newAuthRouter(auth), "Basic dXNlcjpwYXNz", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestTokenAuthMiddleware_MalformedHeader(t *testing.T) {
	auth := new(authenticatorMock)
	rec := serve(newAuthRouter(auth), "Token abc def", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid token.", got.Error)
}

func TestTokenAuthMiddleware_UnknownToken(t *testing.T) {
	auth := new(authenticatorMock)
	auth.On("Authenticate", mock.Anything, "nope").Return(domain.User{}, domain.ErrInvalidToken).Once()

	rec := serve(newAuthRouter(auth), "Token nope", translator.LanguageFr)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var got envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Jeton invalide.", got.Error)
	auth.AssertExpectations(t)
}

func TestTokenAuthMiddleware_StoreFailure(t *testing.T) {
	auth := new(authenticatorMock)
	auth.On("Authenticate", mock.Anything, "abc").Return(domain.User{}, errors.New("db is down")).Once()

	rec := serve(newAuthRouter(auth), "Token abc", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	auth.AssertExpectations(t)
}

func TestLanguageMiddleware(t *testing.T) {
	tests := map[string]string{
		"":                        translator.LanguageEn,
		"fr":                      translator.LanguageFr,
		"fr-CA,fr;q=0.9,en;q=0.8": translator.LanguageFr,
		"de-DE":                   translator.LanguageEn,
		"en-GB":                   translator.LanguageEn,
		";;;":                     translator.LanguageEn,
	}

	for header, want := range tests {
		router := gin.New()
		router.GET("/lang", middleware.LanguageMiddleware(), func(c *gin.Context) {
			c.String(http.StatusOK, middleware.GetLang(c))
		})

		req := httptest.NewRequest(http.MethodGet, "/lang", nil)
		req.Header.Set("Accept-Language", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, want, rec.Body.String(), "header %q", header)
	}
}

func TestGinZapMiddleware_LogLevels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(middleware.GinZapMiddleware(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, zap.ErrorLevel, entries[2].Level)
	require.Equal(t, "/boom", entries[2].ContextMap()["path"])
}
