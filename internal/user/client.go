package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quizapp/quiz-service/internal/config"
)

// Client resolves user records from the external users service. The bearer
// token is the caller's Authorization header value, passed through verbatim.
type Client interface {
	GetByID(ctx context.Context, token string, userID int64) (*User, error)
	GetAll(ctx context.Context, token string) ([]User, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, client *http.Client) Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{
		baseURL: baseURL,
		client:  client,
	}
}

func (c *httpClient) GetByID(ctx context.Context, token string, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/users?userId=%d", c.baseURL, userID)

	var u User
	if err := c.get(ctx, url, token, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *httpClient) GetAll(ctx context.Context, token string) ([]User, error) {
	url := fmt.Sprintf("%s/users/getall", c.baseURL)

	var users []User
	if err := c.get(ctx, url, token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *httpClient) get(ctx context.Context, url, token string, out interface{}) error {
	log := config.WithContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", token)

	resp, err := c.client.Do(req)
	if err != nil {
		log.WithError(err).Error("Users service request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("Users service returned status %d for %s", resp.StatusCode, url)
		return fmt.Errorf("users service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
