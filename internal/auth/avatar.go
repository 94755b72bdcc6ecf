package auth

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// AvatarURL returns the Gravatar URL for email: 200px, PG rated, mystery-man fallback.
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
