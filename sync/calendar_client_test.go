// ABOUTME: Tests for calendar service construction
// ABOUTME: Service creation needs only a token, no network round trip
package sync

import (
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestNewCalendarClient(t *testing.T) {
	token := &oauth2.Token{
		AccessToken:  "token",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}

	service, err := NewCalendarClient(token)
	if err != nil {
		t.Fatalf("NewCalendarClient: %v", err)
	}
	if service == nil {
		t.Fatal("expected a calendar service")
	}
}

func TestNewCalendarClientRequiresToken(t *testing.T) {
	service, err := NewCalendarClient(nil)
	if err == nil {
		t.Fatal("expected an error without a token")
	}
	if service != nil {
		t.Error("expected nil service without a token")
	}
}
