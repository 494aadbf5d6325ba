package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

const gmailBaseURL = "https://gmail.googleapis.com/gmail/v1/users/me"

// EmailSummary is a condensed inbox message.
type EmailSummary struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
	Unread  bool   `json:"unread"`
}

// ListRecentEmails returns up to max recent inbox messages matching the
// optional Gmail search query.
func (s *Service) ListRecentEmails(ctx context.Context, userID uuid.UUID, query string, max int) ([]EmailSummary, error) {
	client, err := s.ClientFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if max <= 0 || max > 25 {
		max = 10
	}

	params := url.Values{}
	params.Set("maxResults", strconv.Itoa(max))
	params.Set("labelIds", "INBOX")
	if query != "" {
		params.Set("q", query)
	}

	var list struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := getJSON(ctx, client, gmailBaseURL+"/messages?"+params.Encode(), &list); err != nil {
		return nil, err
	}

	summaries := make([]EmailSummary, 0, len(list.Messages))
	for _, msg := range list.Messages {
		summary, err := s.fetchMessage(ctx, client, msg.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// UnreadCount returns the approximate number of unread inbox messages.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	client, err := s.ClientFor(ctx, userID)
	if err != nil {
		return 0, err
	}

	var list struct {
		ResultSizeEstimate int `json:"resultSizeEstimate"`
	}
	err = getJSON(ctx, client, gmailBaseURL+"/messages?labelIds=INBOX&q=is%3Aunread&maxResults=1", &list)
	if err != nil {
		return 0, err
	}

	return list.ResultSizeEstimate, nil
}

// SendEmail sends a plain-text message from the linked account.
func (s *Service) SendEmail(ctx context.Context, userID uuid.UUID, to, subject, body string) error {
	client, err := s.ClientFor(ctx, userID)
	if err != nil {
		return err
	}

	raw := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s", to, subject, body)
	payload, err := json.Marshal(map[string]string{
		"raw": base64.URLEncoding.EncodeToString([]byte(raw)),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailBaseURL+"/messages/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gmail send failed: %s", resp.Status)
	}

	return nil
}

func (s *Service) fetchMessage(ctx context.Context, client *http.Client, id string) (EmailSummary, error) {
	var msg struct {
		Snippet  string   `json:"snippet"`
		LabelIDs []string `json:"labelIds"`
		Payload  struct {
			Headers []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"headers"`
		} `json:"payload"`
	}

	endpoint := gmailBaseURL + "/messages/" + id + "?format=metadata&metadataHeaders=From&metadataHeaders=Subject"
	if err := getJSON(ctx, client, endpoint, &msg); err != nil {
		return EmailSummary{}, err
	}

	summary := EmailSummary{ID: id, Snippet: msg.Snippet}
	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "From":
			summary.From = h.Value
		case "Subject":
			summary.Subject = h.Value
		}
	}
	for _, label := range msg.LabelIDs {
		if label == "UNREAD" {
			summary.Unread = true
			break
		}
	}

	return summary, nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google api request failed: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
