package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const tasksBaseURL = "https://tasks.googleapis.com/tasks/v1"

// TaskItem is a Google Tasks entry from the default list.
type TaskItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
	Due   string `json:"due,omitempty"`
}

// ListTasksDueBy returns incomplete tasks from the default list due on or
// before the given time.
func (s *Service) ListTasksDueBy(ctx context.Context, userID uuid.UUID, due time.Time) ([]TaskItem, error) {
	client, err := s.ClientFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("showCompleted", "false")
	params.Set("dueMax", due.UTC().Format(time.RFC3339))

	var list struct {
		Items []TaskItem `json:"items"`
	}
	err = getJSON(ctx, client, tasksBaseURL+"/lists/@default/tasks?"+params.Encode(), &list)
	if err != nil {
		return nil, err
	}

	return list.Items, nil
}

// CreateTask adds a task to the default list. due may be zero for no deadline.
func (s *Service) CreateTask(ctx context.Context, userID uuid.UUID, title, notes string, due time.Time) (*TaskItem, error) {
	client, err := s.ClientFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	body := map[string]string{"title": title}
	if notes != "" {
		body["notes"] = notes
	}
	if !due.IsZero() {
		body["due"] = due.UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tasksBaseURL+"/lists/@default/tasks", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tasks create failed: %s", resp.Status)
	}

	var created TaskItem
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}
