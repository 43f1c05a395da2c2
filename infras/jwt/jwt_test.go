package jwt_test

import (
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireMin = 60

	return cfg
}

func TestIssueAndValidate(t *testing.T) {
	service := jwt.New(newConfig("front-desk"))

	token, err := service.Issue("admin")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := service.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "hotel", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateRejects(t *testing.T) {
	service := jwt.New(newConfig("front-desk"))

	other, err := jwt.New(newConfig("someone-else")).Issue("admin")
	require.NoError(t, err)

	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Issuer:    "hotel",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("front-desk"))
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{Issuer: "hotel"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "garbage", token: "not.a.token", want: jwt.ErrInvalidToken},
		{name: "foreign secret", token: other.AccessToken, want: jwt.ErrInvalidToken},
		{name: "expired", token: expired, want: jwt.ErrExpiredToken},
		{name: "alg none", token: unsigned, want: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Validate(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDisabledWithoutSecret(t *testing.T) {
	service := jwt.New(newConfig(""))

	assert.False(t, service.Enabled())

	_, err := service.Issue("admin")
	assert.ErrorIs(t, err, jwt.ErrDisabled)

	_, err = service.Validate("anything")
	assert.ErrorIs(t, err, jwt.ErrDisabled)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "", wantErr: true},
		{header: "Basic dXNlcg==", wantErr: true},
		{header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, jwt.ErrMissingToken)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
