package auth

import (
	"strings"

	"github.com/dmitrijs2005/salesinsight/internal/common"
)

// ParseBearer extracts the token from an Authorization header value of the
// form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.AuthScheme) {
		return "", unauthenticated(common.ErrMissingToken)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", unauthenticated(common.ErrMissingToken)
	}
	return token, nil
}
