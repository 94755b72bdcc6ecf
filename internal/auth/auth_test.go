package auth

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, "devconnect-api", 100*time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_Expiry(t *testing.T) {
	svc := NewTokenService(testSecret, "devconnect-api", time.Hour)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_RejectsTampering(t *testing.T) {
	svc := NewTokenService(testSecret, "devconnect-api", time.Hour)
	token, err := svc.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	other := NewTokenService("a-completely-different-secret-value-123456", "devconnect-api", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_RejectsMalformedAndForeignTokens(t *testing.T) {
	svc := NewTokenService(testSecret, "devconnect-api", time.Hour)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	sign := func(claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
		s, signErr := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, signErr)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"wrong issuer", sign(jwt.MapClaims{"sub": "1", "iss": "someone-else", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"missing expiry", sign(jwt.MapClaims{"sub": "1", "iss": "devconnect-api"}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"non-numeric subject", sign(jwt.MapClaims{"sub": "abc", "iss": "devconnect-api", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"zero subject", sign(jwt.MapClaims{"sub": strconv.Itoa(0), "iss": "devconnect-api", "exp": exp}, jwt.SigningMethodHS256, []byte(testSecret))},
		{"other hmac algorithm", sign(jwt.MapClaims{"sub": "1", "iss": "devconnect-api", "exp": exp}, jwt.SigningMethodHS512, []byte(testSecret))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_IssueWithoutSecret(t *testing.T) {
	svc := NewTokenService("", "devconnect-api", time.Hour)
	_, err := svc.Issue(1)
	assert.Error(t, err)
}

func TestHasher(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	again, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "each hash uses a fresh salt")

	ok, err := h.Compare(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-bcrypt-hash", "secret123")
	assert.Error(t, err)
}

func TestNewHasher_FallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(99).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func TestAvatarURL(t *testing.T) {
	// md5("myemailaddress@example.com") from the Gravatar documentation.
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=200&r=pg&d=mm"
	assert.Equal(t, want, AvatarURL("MyEmailAddress@example.com "))
	assert.Equal(t, AvatarURL("a@b.co"), AvatarURL("A@B.CO"))
}
