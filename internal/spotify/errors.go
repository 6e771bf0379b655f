package spotify

import "fmt"

// TokenError is returned when the refresh-token exchange fails. It is
// fatal for the request; callers surface it rather than degrading.
type TokenError struct {
	StatusCode int
	Body       string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token exchange failed with status %d: %s", e.StatusCode, e.Body)
}

// UpstreamError is returned when a playback endpoint answers with a
// non-success status. Callers absorb it and degrade to a fallback or
// offline result.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("spotify %s returned status %d", e.Endpoint, e.StatusCode)
}
