package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordrank/internal/auth"
	"github.com/domino14/wordrank/internal/rankserver"
)

var testKey = []byte("not-very-secret")

func signedToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "42",
		"usn": "cesar",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthenticateJWT(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+signedToken(t, testKey, validClaims()))
	ctx, err := authenticateJWT(context.Background(), h, testKey)
	require.NoError(t, err)
	c := auth.CallerFromContext(ctx)
	require.NotNil(t, c)
	assert.Equal(t, "42", c.Subject)
	assert.Equal(t, "cesar", c.Username)
}

func TestAuthenticateJWTFailures(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()
	noUsn := validClaims()
	delete(noUsn, "usn")

	for name, header := range map[string]string{
		"missing":   "",
		"wrong-key": "Bearer " + signedToken(t, []byte("other"), validClaims()),
		"expired":   "Bearer " + signedToken(t, testKey, expired),
		"no-usn":    "Bearer " + signedToken(t, testKey, noUsn),
		"garbage":   "Bearer abc.def.ghi",
	} {
		h := http.Header{}
		if header != "" {
			h.Set("Authorization", header)
		}
		_, err := authenticateJWT(context.Background(), h, testKey)
		assert.Error(t, err, name)
	}
}

func TestAuthInterceptor(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(rankserver.NewRankServiceHandler(&rankserver.Server{},
		connect.WithInterceptors(NewAuthInterceptor(testKey))))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := rankserver.NewClient(srv.Client(), srv.URL)
	_, err := c.Rank(ctx, "ba")
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	token := signedToken(t, testKey, validClaims())
	authed := rankserver.NewClient(srv.Client(), srv.URL,
		connect.WithInterceptors(connect.UnaryInterceptorFunc(
			func(next connect.UnaryFunc) connect.UnaryFunc {
				return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
					req.Header().Set("Authorization", "Bearer "+token)
					return next(ctx, req)
				}
			})))
	r, err := authed.Rank(ctx, "ba")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), r)
}
