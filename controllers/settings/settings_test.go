package settingsControllers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	settingsControllers "github.com/Biomedionics123/Biomedionics/controllers/settings"
	"github.com/Biomedionics123/Biomedionics/store"
)

func setupSettingsRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := store.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	r := gin.New()
	r.PUT("/admin/settings/password", settingsControllers.ChangePasswordHandler(db))
	return r, db
}

func doChangePassword(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/admin/settings/password", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChangePassword(t *testing.T) {
	r, db := setupSettingsRouter(t)

	t.Run("Rejects a wrong current password", func(t *testing.T) {
		w := doChangePassword(r, `{"currentPassword":"wrong","newPassword":"abcd","confirmPassword":"abcd"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Current password is incorrect")
		assert.Equal(t, "1234", store.SiteSettings(db).AdminPassword)
	})

	t.Run("Rejects a mismatched confirmation", func(t *testing.T) {
		w := doChangePassword(r, `{"currentPassword":"1234","newPassword":"abcd","confirmPassword":"abce"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "do not match")
		assert.Equal(t, "1234", store.SiteSettings(db).AdminPassword)
	})

	t.Run("Rejects a too-short new password", func(t *testing.T) {
		w := doChangePassword(r, `{"currentPassword":"1234","newPassword":"abc","confirmPassword":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least 4 characters")
		assert.Equal(t, "1234", store.SiteSettings(db).AdminPassword)
	})

	t.Run("Stores a valid new password", func(t *testing.T) {
		w := doChangePassword(r, `{"currentPassword":"1234","newPassword":"abcd","confirmPassword":"abcd"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abcd", store.SiteSettings(db).AdminPassword)
	})

	t.Run("Old password no longer works", func(t *testing.T) {
		w := doChangePassword(r, `{"currentPassword":"1234","newPassword":"efgh","confirmPassword":"efgh"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
