package directory

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log"
	"net/http"
)

// Client pulls the allowed-email directory from the upstream API.
type Client struct {
	*http.Client // [Embedded]
	Conf         *Conf
}

type allowedEmailsPayload struct {
	Emails []string `json:"emails"`
}

func (c *Client) RequestAllowedEmails(ctx context.Context) (*http.Response, error) {
	upstrUrl := c.Conf.Host + c.Conf.AllowedEmailsEndpoint
	upstrReq, err := http.NewRequestWithContext(ctx, http.MethodGet, upstrUrl, nil) // *http.Request
	if err != nil {
		return nil, err
	}
	upstrReq.Header.Set("Authorization", "Bearer "+c.Conf.APIKey)
	upstrReq.Header.Set("Accept", "application/json")
	return c.Do(upstrReq) // *http.Response
}

// FetchAllowedEmails fetches the full allowed-email list from the Directory API
func (c *Client) FetchAllowedEmails(ctx context.Context) ([]string, error) {
	upstrRes, err := c.RequestAllowedEmails(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := upstrRes.Body.Close(); closeErr != nil {
			log.Printf("[WARN] %v", closeErr)
		}
	}()
	if upstrRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP Status Code: %d", upstrRes.StatusCode)
	}
	var payload allowedEmailsPayload
	if err = json.UnmarshalRead(upstrRes.Body, &payload); err != nil {
		return nil, err
	}
	return payload.Emails, nil
}
