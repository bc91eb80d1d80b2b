package adapter

import "golang.org/x/oauth2"

// TokenSource supplies the bearer token attached to every outbound request.
// Token acquisition mechanics (interactive OAuth flows, refresh handling) are
// outside this package; any [oauth2.TokenSource] works. A failing token
// source surfaces as [ErrRemoteUnavailable].
type TokenSource = oauth2.TokenSource

// StaticTokenSource wraps a fixed access token, for configurations where the
// token is provided directly (environment, flag, config file).
func StaticTokenSource(accessToken string) TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}
