package jwt

import (
	"context"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	hertzjwt "github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var AccessTokenJwt *hertzjwt.HertzJWTMiddleware

// AccessTokenJwtInit 初始化access-token中间件
// 身份校验在这一层完成 业务层只拿到可信的user_id
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwt, err = hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:       "vidtube",
		Key:         []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:     24 * time.Hour,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) hertzjwt.MapClaims {
			if v, ok := data.(int64); ok {
				return hertzjwt.MapClaims{IdentityKey: v}
			}
			return hertzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
	})
	if err != nil {
		panic(err)
	}
}

// ConvertJWTPayloadToString 从jwt载荷中取出当前用户标识
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	claims := hertzjwt.ExtractClaims(ctx, c)
	v, ok := claims[IdentityKey]
	if !ok {
		return nil, errno.TokenInvailedErr
	}
	return v, nil
}
