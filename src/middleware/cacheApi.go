package middleware

import (
	"bytes"
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/pkg/xkv"

	"github.com/gin-gonic/gin"
)

const CacheApiPrefix = "apicache:"

// CacheApi replays a cached 200 response for identical requests, and caches
// fresh 200 responses for expireSeconds. A nil store disables the middleware.
func CacheApi(store *xkv.Store, expireSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		bodyLogWrite := &BodyLogWrite{ResponseWriter: c.Writer, body: bytes.NewBufferString("")}
		c.Writer = bodyLogWrite

		cacheKey := CreateKey(c)
		cacheData, err := store.Get(cacheKey)
		if err == nil && cacheData != "" {
			var data xhttp.Response
			if err := json.Unmarshal([]byte(cacheData), &data); err == nil && data.Code == http.StatusOK {
				bodyLogWrite.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
				bodyLogWrite.ResponseWriter.WriteHeader(http.StatusOK)
				_, _ = bodyLogWrite.ResponseWriter.Write([]byte(cacheData))
				c.Abort()
				return
			}
		}

		c.Next()

		responseBody := bodyLogWrite.body.Bytes()
		var data xhttp.Response
		if err := json.Unmarshal(responseBody, &data); err == nil && data.Code == http.StatusOK {
			_, _ = store.SetnxEx(cacheKey, string(responseBody), expireSeconds)
		}
	}
}

// CreateKey derives the cache key from path, query and body, hashed when it
// grows past 128 bytes.
func CreateKey(c *gin.Context) string {
	var buf bytes.Buffer
	reader := io.TeeReader(c.Request.Body, &buf)
	reqBody, _ := io.ReadAll(reader)
	c.Request.Body = io.NopCloser(&buf)

	path := c.Request.URL.Path
	query := c.Request.URL.RawQuery
	cacheKey := path + "," + query + string(reqBody)
	if len(cacheKey) > 128 {
		hash := sha512.Sum512([]byte(cacheKey))
		cacheKey = fmt.Sprintf("%x", hash)
	}
	return CacheApiPrefix + cacheKey
}
