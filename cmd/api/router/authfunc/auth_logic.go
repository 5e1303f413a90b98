package authfunc

import (
	"context"

	handlers "vidtube.com/cmd/api/handlers/user"
	jwt "vidtube.com/pkg/jwt"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc admits requests carrying a live access token. An
// expired access token paired with a live refresh token gets a fresh access
// token minted into the response headers instead of a 401.
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.AuthFailedErr, nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
