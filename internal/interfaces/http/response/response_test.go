package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	domainerrors "jobport.backend/internal/domain/errors"
)

func runError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)
	return w
}

func TestError_AppErrorKeepsStatus(t *testing.T) {
	w := runError(t, domainerrors.NewAppError(http.StatusConflict, "already settled", nil))
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "already settled")
}

func TestError_SentinelMappings(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{domainerrors.ErrOrderNotPending, http.StatusBadRequest},
		{domainerrors.ErrInvalidGateway, http.StatusBadRequest},
		{domainerrors.ErrUnauthorized, http.StatusUnauthorized},
		{domainerrors.ErrForbidden, http.StatusForbidden},
		{domainerrors.ErrEmailNotConfirmed, http.StatusForbidden},
		{domainerrors.ErrInvalidSignature, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := runError(t, tc.err)
		require.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}

func TestError_WrappedSentinel(t *testing.T) {
	w := runError(t, errors.New("ctx: "+domainerrors.ErrNotFound.Error()))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = runError(t, domainerrors.NewAppError(http.StatusNotFound, "order not found", domainerrors.ErrNotFound))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, http.StatusCreated, gin.H{"order": "x"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "order")
}
