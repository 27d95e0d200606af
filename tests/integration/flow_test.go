//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

func register(t *testing.T, client *http.Client, name, email, username, password string) {
	payload := map[string]string{
		"name":     name,
		"email":    email,
		"username": username,
		"password": password,
	}
	body, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func login(t *testing.T, client *http.Client, email, password string) string {
	payload := map[string]string{"email": email, "password": password}
	body, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["access_token"].(string)
}

func doJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestEndToEndFlow(t *testing.T) {
	// This test assumes the API server is running on localhost:8080
	// with a fresh database.

	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	register(t, client, "Alice Smith", "alice@example.com", "alice", "password123")
	register(t, client, "Bob Jones", "bob@example.com", "bob", "password123")

	aliceToken := login(t, client, "alice@example.com", "password123")
	bobToken := login(t, client, "bob@example.com", "password123")

	var groupID string

	t.Run("Create Group", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/groups", aliceToken, map[string]string{
			"name":        "Hiking Club",
			"description": "Weekend hikes around the city",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		groupID = result["group"].(map[string]interface{})["id"].(string)
	})

	t.Run("Duplicate Group Name Conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/groups", bobToken, map[string]string{
			"name":        "Hiking Club",
			"description": "A different description entirely",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Invite Bob", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", fmt.Sprintf("%s/groups/%s/invites", baseURL, groupID), aliceToken, map[string]string{
			"username": "bob",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Second Invite Conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", fmt.Sprintf("%s/groups/%s/invites", baseURL, groupID), aliceToken, map[string]string{
			"username": "bob",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Bob Sees Invite Notification", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/notifications/invites", bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, result["invites"], 1)
	})

	t.Run("Bob Accepts", func(t *testing.T) {
		resp, _ := doJSON(t, client, "PATCH", fmt.Sprintf("%s/groups/%s/invites", baseURL, groupID), bobToken, map[string]string{
			"status": "accepted",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Resolving Again Is Not Found", func(t *testing.T) {
		resp, _ := doJSON(t, client, "PATCH", fmt.Sprintf("%s/groups/%s/invites", baseURL, groupID), bobToken, map[string]string{
			"status": "accepted",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bob Lists His Invitations", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/invitations", bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		invitations := result["invitations"].([]interface{})
		require.Len(t, invitations, 1)
		require.Equal(t, "accepted", invitations[0].(map[string]interface{})["status"])
	})

	var discussionID string

	t.Run("Bob Creates Discussion", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", fmt.Sprintf("%s/groups/%s/discussions", baseURL, groupID), bobToken, map[string]string{
			"title":   "First hike",
			"content": "Where should we go first?",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		discussionID = result["discussion"].(map[string]interface{})["id"].(string)
	})

	t.Run("Alice Got The Announcement", func(t *testing.T) {
		resp, result := doJSON(t, client, "GET", baseURL+"/notifications/unread-count", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.GreaterOrEqual(t, result["count"].(float64), float64(1))
	})

	t.Run("Alice Likes The Discussion", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/reactions", aliceToken, map[string]string{
			"target_type": "discussion",
			"target_id":   discussionID,
			"kind":        "like",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.True(t, result["applied"].(bool))
	})

	t.Run("Dislike While Liked Conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, client, "POST", baseURL+"/reactions", aliceToken, map[string]string{
			"target_type": "discussion",
			"target_id":   discussionID,
			"kind":        "dislike",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Like Again Toggles Off", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/reactions", aliceToken, map[string]string{
			"target_type": "discussion",
			"target_id":   discussionID,
			"kind":        "like",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.False(t, result["applied"].(bool))
	})

	t.Run("Outsider Cannot Read Discussions", func(t *testing.T) {
		register(t, client, "Carol White", "carol@example.com", "carol", "password123")
		carolToken := login(t, client, "carol@example.com", "password123")

		resp, _ := doJSON(t, client, "GET", fmt.Sprintf("%s/groups/%s/discussions", baseURL, groupID), carolToken, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Deleted Group Is Gone", func(t *testing.T) {
		resp, result := doJSON(t, client, "POST", baseURL+"/groups", aliceToken, map[string]string{
			"name":        "Book Club",
			"description": "Monthly book discussions",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		bookClubID := result["group"].(map[string]interface{})["id"].(string)

		resp, _ = doJSON(t, client, "DELETE", fmt.Sprintf("%s/groups/%s", baseURL, bookClubID), aliceToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// The memberships went with it, so not even the creator can get it back.
		resp, _ = doJSON(t, client, "GET", fmt.Sprintf("%s/groups/%s", baseURL, bookClubID), aliceToken, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
