package service

import (
	"fmt"
	"net/url"

	"github.com/nearbuy/marketplace/internal/constants"
)

// BuildShareLink strips the query string and fragment from a page address
// so the copied link is stable across search and navigation state.
func BuildShareLink(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if err == nil {
			err = fmt.Errorf("not an absolute address: %q", raw)
		}
		return "", NewServiceError(constants.ErrCodeInvalidShareLink, err)
	}

	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
