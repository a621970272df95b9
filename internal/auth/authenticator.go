// Package auth obtains read-only Google Drive credentials for driveindex.
//
// Credentials follow the installed-application OAuth flow: a client secret
// file supplied by the user, and a token cache file written next to it.
// Both paths are injected explicitly so tests can point them anywhere.
package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"

	"github.com/dbsmedya/driveindex/internal/logger"
)

// Options configures an Authenticator.
type Options struct {
	CredentialsFile string
	TokenFile       string
	Scopes          []string

	// AuthInput and AuthOutput carry the interactive authorization
	// exchange. They default to stdin/stdout.
	AuthInput  io.Reader
	AuthOutput io.Writer
}

// Authenticator produces authorized HTTP clients for the Drive API.
type Authenticator struct {
	opts Options
	log  *logger.Logger
}

// New creates an Authenticator. A nil scope list defaults to the Drive
// read-only scope.
func New(opts Options, log *logger.Logger) *Authenticator {
	if len(opts.Scopes) == 0 {
		opts.Scopes = []string{drive.DriveReadonlyScope}
	}
	if opts.AuthInput == nil {
		opts.AuthInput = os.Stdin
	}
	if opts.AuthOutput == nil {
		opts.AuthOutput = os.Stdout
	}
	return &Authenticator{opts: opts, log: log}
}

// Client returns an HTTP client carrying a valid token, acquiring or
// refreshing one as needed.
func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	cfg, err := a.oauthConfig()
	if err != nil {
		return nil, err
	}

	tok, err := a.token(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return cfg.Client(ctx, tok), nil
}

// Login forces token acquisition and persists the result. Used by the
// login command to mint a token ahead of a scan.
func (a *Authenticator) Login(ctx context.Context) error {
	cfg, err := a.oauthConfig()
	if err != nil {
		return err
	}
	_, err = a.token(ctx, cfg)
	return err
}

// CheckCredentials verifies that a client secret file exists and parses.
// Used by the validate command; no network calls are made.
func CheckCredentials(path string, scopes ...string) error {
	if len(scopes) == 0 {
		scopes = []string{drive.DriveReadonlyScope}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read client secret file %q: %w", path, err)
	}
	if _, err := google.ConfigFromJSON(b, scopes...); err != nil {
		return fmt.Errorf("failed to parse client secret file %q: %w", path, err)
	}
	return nil
}

// oauthConfig parses the client secret file.
func (a *Authenticator) oauthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(a.opts.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file %q: %w", a.opts.CredentialsFile, err)
	}

	cfg, err := google.ConfigFromJSON(b, a.opts.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file %q: %w", a.opts.CredentialsFile, err)
	}
	return cfg, nil
}

// token returns a valid token: cached if still valid, refreshed if the
// cache holds a refresh token, otherwise from the interactive flow.
// Whatever is obtained is persisted for the next run.
func (a *Authenticator) token(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	tok, err := LoadToken(a.opts.TokenFile)
	if err == nil {
		if tok.Valid() {
			a.log.Debugw("Using cached token", "token_file", a.opts.TokenFile)
			return tok, nil
		}
		if tok.RefreshToken != "" {
			a.log.Debugw("Cached token expired, refreshing", "token_file", a.opts.TokenFile)
			refreshed, err := cfg.TokenSource(ctx, tok).Token()
			if err != nil {
				return nil, fmt.Errorf("failed to refresh token: %w", err)
			}
			if err := SaveToken(a.opts.TokenFile, refreshed); err != nil {
				return nil, err
			}
			return refreshed, nil
		}
	}

	tok, err = a.authorize(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := SaveToken(a.opts.TokenFile, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// authorize runs the interactive authorization-code exchange.
func (a *Authenticator) authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.opts.AuthOutput,
		"Go to the following link in your browser, then paste the authorization code:\n%s\n\nCode: ", authURL)

	scanner := bufio.NewScanner(a.opts.AuthInput)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read authorization code: %w", err)
		}
		return nil, fmt.Errorf("no authorization code provided")
	}

	tok, err := cfg.Exchange(ctx, scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}
