// Package jwt carries the double-token auth middleware: a short-lived access
// token on every request and a longer-lived refresh token that can mint a new
// access token without re-entering credentials.
package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"

	userservice "vidtube.com/cmd/user/service"
	"vidtube.com/config"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

const (
	accessTokenTimeout  = time.Hour
	refreshTokenTimeout = 7 * 24 * time.Hour
)

type LoginParam struct {
	UserName string `json:"user_name" form:"user_name" vd:"len($)>0"`
	Password string `json:"password" form:"password" vd:"len($)>0"`
}

func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       accessTokenTimeout,
		MaxRefresh:    accessTokenTimeout,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			return jwt.MapClaims{constants.IdentityKey: data}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[constants.IdentityKey]
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var login LoginParam
			if err := c.BindAndValidate(&login); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}
			user, err := userservice.NewUserService(ctx).CheckPassword(ctx, login.UserName, login.Password)
			if err != nil {
				return nil, jwt.ErrFailedAuthentication
			}
			// stashed for LoginResponse, which only receives the signed token
			c.Set(constants.IdentityKey, user.UserId)
			return user.UserId, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			identity, _ := c.Get(constants.IdentityKey)
			refreshToken, _, err := RefreshTokenJwtMiddleware.TokenGenerator(identity)
			if err != nil {
				c.JSON(consts.StatusOK, map[string]interface{}{
					"code":    errno.ServiceErrCode,
					"message": "refresh token generation failed",
				})
				return
			}
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":          errno.SuccessCode,
				"message":       "login success",
				"access_token":  token,
				"refresh_token": refreshToken,
				"expire":        expire.Format(constants.DataFormate),
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":    errno.AuthFailedCode,
				"message": message,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube-refresh",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       refreshTokenTimeout,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Refresh-Token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			return jwt.MapClaims{constants.IdentityKey: data}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[constants.IdentityKey]
		},
	})
	if err != nil {
		panic(err)
	}
}

// IsAccessTokenAvailable reports whether the request carries a live access
// token. Parsing also stores the claims on the request context.
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, AccessTokenJwtMiddleware)
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, RefreshTokenJwtMiddleware)
}

func isTokenAvailable(ctx context.Context, c *app.RequestContext, mw *jwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	if int64(exp) < mw.TimeFunc().Unix() {
		return false
	}
	c.Set("JWT_PAYLOAD", claims)
	return true
}

// GenerateAccessToken mints a fresh access token for the identity carried by
// the refresh token and hands it back in a response header.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return
	}
	token, _, err := AccessTokenJwtMiddleware.TokenGenerator(claims[constants.IdentityKey])
	if err != nil {
		return
	}
	c.Header("New-Access-Token", token)
	c.Set("JWT_PAYLOAD", jwt.MapClaims{constants.IdentityKey: claims[constants.IdentityKey]})
}

// ConvertJWTPayloadToString returns the identity claim of the request's token.
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	payload, ok := c.Get("JWT_PAYLOAD")
	if ok {
		if claims, ok := payload.(jwt.MapClaims); ok {
			if id, ok := claims[constants.IdentityKey]; ok {
				return id, nil
			}
		}
	}
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return nil, errno.AuthFailedErr
	}
	id, ok := claims[constants.IdentityKey]
	if !ok {
		return nil, errno.AuthFailedErr
	}
	return id, nil
}
