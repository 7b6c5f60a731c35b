package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	domain "github.com/foodfast/foodfast-backend/internal/domain/restaurant"
)

// HTTPClient resolves users by calling the user service. The timeout is
// deliberate: an owner lookup blocks restaurant creation, so it must not
// wait forever on an unresponsive collaborator.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) GetUserByEmail(ctx context.Context, email string) (*domain.OwnerInfo, error) {
	endpoint := fmt.Sprintf("%s/api/users/email/%s", c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var info domain.OwnerInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, fmt.Errorf("decode user service response: %w", err)
		}
		return &info, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}
}

// Compile-time check
var _ domain.UserLookup = (*HTTPClient)(nil)
