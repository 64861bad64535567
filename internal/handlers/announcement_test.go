package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type announcementBody struct {
	ID             string `json:"_id"`
	Message        string `json:"message"`
	ExpirationDate string `json:"expiration_date"`
	StartDate      string `json:"start_date"`
}

func TestAnnouncementEndpoints(t *testing.T) {
	router := newTestRouter()

	create := map[string]string{
		"username":        "mrodriguez",
		"message":         "Spring fair this weekend",
		"expiration_date": "2099-01-01",
		"start_date":      "2098-12-01",
	}

	var announcementID string

	t.Run("create returns the stored document with an id", func(t *testing.T) {
		w := executeRequest(t, router, "POST", "/activities/announcements", create)
		require.Equal(t, http.StatusOK, w.Code)

		var got announcementBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, create["message"], got.Message)
		assert.Equal(t, create["expiration_date"], got.ExpirationDate)
		assert.Equal(t, create["start_date"], got.StartDate)

		announcementID = got.ID
	})

	t.Run("list includes the created announcement", func(t *testing.T) {
		w := executeRequest(t, router, "GET", "/activities/announcements", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []announcementBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, announcementID, got[0].ID)
	})

	t.Run("create 401 for an unknown username", func(t *testing.T) {
		body := map[string]string{
			"username":        "impostor",
			"message":         "x",
			"expiration_date": "2099-01-01",
		}
		w := executeRequest(t, router, "POST", "/activities/announcements", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", errorDetail(t, w))
	})

	t.Run("create 400 for a slash-separated date", func(t *testing.T) {
		body := map[string]string{
			"username":        "mrodriguez",
			"message":         "x",
			"expiration_date": "2099/01/01",
		}
		w := executeRequest(t, router, "POST", "/activities/announcements", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid date format (YYYY-MM-DD)", errorDetail(t, w))
	})

	t.Run("create 400 for a missing message", func(t *testing.T) {
		body := map[string]string{
			"username":        "mrodriguez",
			"expiration_date": "2099-01-01",
		}
		w := executeRequest(t, router, "POST", "/activities/announcements", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Message and expiration date required", errorDetail(t, w))
	})

	t.Run("update replaces message and keeps start date", func(t *testing.T) {
		body := map[string]string{
			"username":        "mrodriguez",
			"message":         "Spring fair moved to Sunday",
			"expiration_date": "2099-01-01",
		}
		w := executeRequest(t, router, "PUT", "/activities/announcements/"+announcementID, body)
		require.Equal(t, http.StatusOK, w.Code)

		var got announcementBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, announcementID, got.ID)
		assert.Equal(t, "Spring fair moved to Sunday", got.Message)
		assert.Equal(t, "2098-12-01", got.StartDate)
	})

	t.Run("update 404 for an unknown id", func(t *testing.T) {
		body := map[string]string{
			"username":        "mrodriguez",
			"message":         "x",
			"expiration_date": "2099-01-01",
		}
		w := executeRequest(t, router, "PUT", "/activities/announcements/66f000000000000000000000", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Announcement not found", errorDetail(t, w))
	})

	t.Run("update on a malformed id checks auth before 404", func(t *testing.T) {
		body := map[string]string{
			"username":        "impostor",
			"message":         "x",
			"expiration_date": "2099-01-01",
		}
		w := executeRequest(t, router, "PUT", "/activities/announcements/not-an-id", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		body["username"] = "mrodriguez"
		w = executeRequest(t, router, "PUT", "/activities/announcements/not-an-id", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the announcement", func(t *testing.T) {
		body := map[string]string{"username": "mrodriguez"}
		w := executeRequest(t, router, "DELETE", "/activities/announcements/"+announcementID, body)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			ID      string `json:"_id"`
			Deleted bool   `json:"deleted"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, announcementID, got.ID)
		assert.True(t, got.Deleted)

		listResp := executeRequest(t, router, "GET", "/activities/announcements", nil)
		var remaining []announcementBody
		require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &remaining))
		assert.Empty(t, remaining)
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		body := map[string]string{"username": "mrodriguez"}
		w := executeRequest(t, router, "DELETE", "/activities/announcements/"+announcementID, body)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Announcement not found", errorDetail(t, w))
	})

	t.Run("delete 401 for an unknown username", func(t *testing.T) {
		body := map[string]string{"username": "impostor"}
		w := executeRequest(t, router, "DELETE", "/activities/announcements/66f000000000000000000000", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
