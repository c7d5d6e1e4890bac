package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

var errNoHTTPClient = errors.New("http client not configured")

// getJSON issues a single GET and decodes a 200 body into out. Transport
// failures become network errors, non-200 statuses are classified by code,
// and decode failures are reported as unknown errors. No retries.
func getJSON(ctx context.Context, client *http.Client, endpoint string, params url.Values, out any) error {
	resp, err := get(ctx, client, endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.NetworkError(err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &weather.Error{Kind: weather.KindUnknown, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// checkStatus issues a single GET and only looks at the status code; the body
// is discarded unread.
func checkStatus(ctx context.Context, client *http.Client, endpoint string, params url.Values) error {
	resp, err := get(ctx, client, endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// get returns the response only for a 200 status; the caller closes the body.
func get(ctx context.Context, client *http.Client, endpoint string, params url.Values) (*http.Response, error) {
	if client == nil {
		return nil, &weather.Error{Kind: weather.KindUnknown, Err: errNoHTTPClient}
	}

	u := fmt.Sprintf("%s?%s", endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &weather.Error{Kind: weather.KindUnknown, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, weather.NetworkError(err)
	}

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, weather.StatusError(resp.StatusCode)
	}
	return resp, nil
}
