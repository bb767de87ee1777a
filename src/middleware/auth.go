package middleware

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/pkg/xhttp"
	"NFTMarketLedger/src/pkg/xkv"

	"github.com/gin-gonic/gin"
)

const (
	CR_LOGIN_MSG_KEY   = "cache:nml:login:msg"
	CR_LOGIN_TOKEN_KEY = "cache:nml:login:token"
	// 32 bytes, AES-256.
	CR_LOGIN_SALT = "nftmarketledger_login_salt_2024!"
)

// CheckLogin admits requests whose session token decrypts to a cached login
// token key.
func CheckLogin(store *xkv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("session_id")
		if token == "" || store == nil {
			xhttp.Error(c, errcode.ErrTokenExpire)
			c.Abort()
			return
		}
		raw, err := hex.DecodeString(token)
		if err != nil {
			xhttp.Error(c, errcode.ErrTokenExpire)
			c.Abort()
			return
		}
		tokenKey, err := AesDecryptOFB(raw, []byte(CR_LOGIN_SALT))
		if err != nil || !strings.HasPrefix(string(tokenKey), CR_LOGIN_TOKEN_KEY) {
			xhttp.Error(c, errcode.ErrTokenExpire)
			c.Abort()
			return
		}
		cached, err := store.Get(string(tokenKey))
		if err != nil || cached == "" {
			xhttp.Error(c, errcode.ErrTokenExpire)
			c.Abort()
			return
		}
		c.Next()
	}
}

func AesEncryptOFB(data []byte, key []byte) ([]byte, error) {
	data = PKCS7Padding(data, aes.BlockSize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, aes.BlockSize+len(data))
	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}

	stream := cipher.NewOFB(block, iv)
	stream.XORKeyStream(out[aes.BlockSize:], data)
	return out, nil
}

func AesDecryptOFB(data []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(data) < aes.BlockSize {
		return nil, errcode.NewCustomErr("cipher text too short")
	}
	iv := data[:aes.BlockSize]
	data = data[aes.BlockSize:]
	if len(data)%aes.BlockSize != 0 {
		return nil, errcode.NewCustomErr("cipher text not block aligned")
	}

	out := make([]byte, len(data))
	stream := cipher.NewOFB(block, iv)
	stream.XORKeyStream(out, data)
	return PKCS7UnPadding(out)
}

// PKCS7Padding pads to the AES block size; the block length is fixed at
// 128 bits whatever the key length.
func PKCS7Padding(ciphertext []byte, blocksize int) []byte {
	padding := blocksize - len(ciphertext)%blocksize
	padtext := bytes.Repeat([]byte{byte(padding)}, padding)
	return append(ciphertext, padtext...)
}

func PKCS7UnPadding(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, errcode.NewCustomErr("empty padded data")
	}
	padding := int(data[length-1])
	if padding == 0 || padding > length {
		return nil, errcode.NewCustomErr("invalid padding")
	}
	return data[:length-padding], nil
}
