package services

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadCredentials é o triple que o browser usa para subir a imagem direto
// no ImageKit, sem o arquivo passar pelo servidor.
type UploadCredentials struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

const uploadCredentialTTL = 10 * time.Minute

// NewUploadCredentials gera token único, expiração curta e a assinatura
// HMAC-SHA1(privateKey, token+expire) que o ImageKit confere no upload.
func NewUploadCredentials(privateKey, publicKey string) UploadCredentials {
	token := uuid.NewString()
	expire := time.Now().Add(uploadCredentialTTL).Unix()

	return UploadCredentials{
		Token:     token,
		Expire:    expire,
		Signature: SignUploadToken(privateKey, token, expire),
		PublicKey: publicKey,
	}
}

func SignUploadToken(privateKey, token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// --- URLs otimizadas ---

func imagekitEndpoint() string {
	if endpoint := os.Getenv("IMAGEKIT_URL_ENDPOINT"); endpoint != "" {
		return strings.TrimRight(endpoint, "/")
	}
	return "https://ik.imagekit.io/chefinho"
}

// ProductImageURL reconstrói a URL da imagem a partir do nome de arquivo sem
// extensão (padrão produtos_<timestamp>_<nome>).
func ProductImageURL(stem string) string {
	return fmt.Sprintf("%s/produtos/%s.jpg", imagekitEndpoint(), stem)
}

// OptimizedImageURL devolve a URL com as transformações on-the-fly do CDN
// (resize + qualidade + webp). URLs que já são do ImageKit voltam intactas.
func OptimizedImageURL(originalURL string, width, height, quality int) string {
	if originalURL == "" {
		return ""
	}
	if strings.Contains(originalURL, "ik.imagekit.io") {
		return originalURL
	}

	transforms := []string{}
	if width > 0 {
		transforms = append(transforms, fmt.Sprintf("w-%d", width))
	}
	if height > 0 {
		transforms = append(transforms, fmt.Sprintf("h-%d", height))
	}
	if quality <= 0 {
		quality = 80
	}
	transforms = append(transforms, fmt.Sprintf("q-%d", quality), "f-webp")

	return fmt.Sprintf("%s/tr:%s/%s", imagekitEndpoint(), strings.Join(transforms, ","), url.QueryEscape(originalURL))
}

// ThumbnailURL é o atalho usado nos cards e na mensagem do pedido.
func ThumbnailURL(originalURL string) string {
	return OptimizedImageURL(originalURL, 200, 200, 70)
}
