package polygon

import "fmt"

// CredentialError reports a 401/403 from the API. Retrying cannot succeed;
// the listener treats it as fatal misconfiguration.
type CredentialError struct {
	StatusCode int
	Body       string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("API rejected credentials (status %d): %s", e.StatusCode, e.Body)
}

// RetriesExhaustedError reports a transient failure (429, timeout,
// connection error) that survived the full backoff schedule.
type RetriesExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error { return e.Err }

// UnexpectedStatusError reports a non-2xx status outside the known taxonomy.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("API status %d: %s", e.StatusCode, e.Body)
}
