package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"habit_tracker/internal/config"
	"habit_tracker/internal/model"
	"habit_tracker/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ParseToken は HS256 で署名されたトークンを検証し、期待する種別かどうかも確認する
func ParseToken(secret, tokenString, wantType string) (*model.JWTCustomClaims, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("token type %q is not %q", claims.TokenType, wantType)
	}
	return claims, nil
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークン(アクセストークン)を検証し、
// プロフィールIDをコンテキストにセットする
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized))
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrUnauthorized))
				return
			}

			claims, err := ParseToken(cfg.JWT.SecretKey, tokenString, model.TokenTypeAccess)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token is invalid or expired.", "", model.ErrUnauthorized))
				return
			}

			profileID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token subject is malformed.", "", model.ErrUnauthorized))
				return
			}

			ctx := WithProfileID(r.Context(), profileID)
			ctx = WithLogger(ctx, logger.With("profile_id", profileID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithProfileID(ctx context.Context, profileID uuid.UUID) context.Context {
	return context.WithValue(ctx, model.ProfileIDKey, profileID)
}

// GetProfileIDFromContext は認証済みプロフィールIDを取り出す
func GetProfileIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.ProfileIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		// ミドルウェアが適用されていないルートから呼ばれた場合
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Authenticated profile is missing from the request.", "", model.ErrUnauthorized)
	}
	return value, nil
}
