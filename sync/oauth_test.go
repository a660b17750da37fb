// ABOUTME: Tests for OAuth config and token storage
// ABOUTME: Verifies scopes, XDG path, and round-trip persistence
package sync

import (
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestNewOAuthConfigScopes(t *testing.T) {
	config := NewOAuthConfig()
	if len(config.Scopes) != 1 {
		t.Fatalf("expected 1 scope, got %d", len(config.Scopes))
	}
	if !strings.Contains(config.Scopes[0], "calendar.readonly") {
		t.Errorf("unexpected scope %q", config.Scopes[0])
	}
}

func TestTokenPath(t *testing.T) {
	path := TokenPath()
	if !strings.Contains(path, "grantdesk") {
		t.Errorf("token path %q should live under the app data dir", path)
	}
	if !strings.HasSuffix(path, "google-credentials.json") {
		t.Errorf("unexpected token file name in %q", path)
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Round(time.Second),
	}

	// TokenPath reads xdg at package init; write directly to its answer
	if err := SaveToken(token); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}
	defer os.Remove(TokenPath())

	loaded, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if loaded.AccessToken != "access" || loaded.RefreshToken != "refresh" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
