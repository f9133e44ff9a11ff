package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Clientes globais ---
var (
	Redis       *redis.Client
	MinioClient *minio.Client
)

// ConnectDatabases inicializa Redis (catálogo/carrinhos) e MinIO (mídia).
// Redis é obrigatório; MinIO pode ficar de fora em dev.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)
	connectMinIO()

	log.Println("✅ Stores conectados")
}

func connectRedis(ctx context.Context) {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		redisHost = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis inacessível (%s): %v — endpoints de catálogo vão usar o documento padrão", redisHost, err)
		return
	}
	log.Println("✅ Redis conectado:", redisHost)
}

func connectMinIO() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")

	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT ausente — endpoints de mídia desabilitados")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO não configurado:", err)
		return
	}
	MinioClient = client
	log.Println("✅ Conectado ao MinIO:", endpoint)
}
