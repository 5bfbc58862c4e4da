package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Stripe
	StripeSecretKey string

	// Redis (비어있으면 인메모리 주문 저장소 사용)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Server
	Port string

	// 프론트/API 분리 배포 시 origin 폴백
	PublicBaseURL string

	// 주문 이미지 보관 TTL (시간)
	OrderTTLHours int
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
// API 키 누락은 경고만 남김 - 요청 시점에 500으로 표면화 (부팅 거부 금지)
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := true // 기본값
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	// OrderTTL 파싱
	orderTTL := 24 // 기본값 (24시간 후 스테이징 이미지 만료)
	if ttlStr := os.Getenv("ORDER_TTL_HOURS"); ttlStr != "" {
		if parsed, err := strconv.Atoi(ttlStr); err == nil && parsed > 0 {
			orderTTL = parsed
		}
	}

	globalConfig = &Config{
		// OpenAI
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-image-1.5"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		// Stripe
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Server
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		// Order
		OrderTTLHours: orderTTL,
	}

	globalConfig.warnMissing()

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   OpenAI: model=%s, key=%v", globalConfig.OpenAIModel, globalConfig.OpenAIAPIKey != "")
	log.Printf("   Stripe: key=%v", globalConfig.StripeSecretKey != "")
	if globalConfig.RedisHost != "" {
		log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	} else {
		log.Printf("   Redis: not configured, using in-memory order store")
	}
	log.Printf("   Order TTL: %dh", globalConfig.OrderTTLHours)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// SetConfigForTest - 테스트 전용 설정 주입
func SetConfigForTest(c *Config) {
	globalConfig = c
}

// warnMissing - 자격증명 누락 경고 (핸들러가 요청 시 500 반환)
func (c *Config) warnMissing() {
	if c.OpenAIAPIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY is not set - portrait generation will return 500")
	}
	if c.StripeSecretKey == "" {
		log.Println("⚠️  STRIPE_SECRET_KEY is not set - checkout will return 500")
	}
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// HasRedis - Redis 설정 여부
func (c *Config) HasRedis() bool {
	return c.RedisHost != ""
}
