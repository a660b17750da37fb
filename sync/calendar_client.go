// ABOUTME: Builds the Google Calendar service used by the meeting importer
// ABOUTME: Wraps a stored OAuth token in an authenticated HTTP client
package sync

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewCalendarClient builds a Calendar API service from a previously stored
// OAuth token. Callers obtain the token via LoadToken after `calendar init`.
func NewCalendarClient(token *oauth2.Token) (*calendar.Service, error) {
	if token == nil {
		return nil, fmt.Errorf("no OAuth token; run calendar init first")
	}

	ctx := context.Background()
	httpClient := NewOAuthConfig().Client(ctx, token)

	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return service, nil
}
