package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/muhammadolammi/resumechat/internal/assistant"
	"github.com/muhammadolammi/resumechat/internal/chat"
	"github.com/muhammadolammi/resumechat/internal/gemini"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		log.Fatal("empty GEMINI_API_KEY in environment")
	}

	modelName := os.Getenv("GEMINI_MODEL")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	historyLimit := envInt("HISTORY_LIMIT", 20)
	maxUploadMB := envInt("MAX_UPLOAD_MB", 10)

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, apiKey, modelName)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	advisor := assistant.New(client, advisorInstruction())

	reviewer, err := newAgentReviewer(apiKey, client.Model())
	if err != nil {
		log.Fatalf("failed to create reviewer: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "repl" {
		resumePath := ""
		if len(os.Args) > 2 {
			resumePath = os.Args[2]
		}
		runREPL(advisor, reviewer, historyLimit, resumePath)
		return
	}

	srv := &server{
		sessions:  chat.NewManager(historyLimit),
		assistant: advisor,
		reviewer:  reviewer,
		maxUpload: int64(maxUploadMB) << 20,
	}

	if r2 := loadR2Config(); r2 != nil {
		s3Client, err := newR2Client(ctx, r2)
		if err != nil {
			log.Fatalf("failed to create r2 client: %v", err)
		}
		srv.fetch = func(ctx context.Context, key string) ([]byte, error) {
			return retry(3, func() ([]byte, error) {
				return DownloadFromR2(ctx, s3Client, r2.Bucket, key)
			})
		}
		log.Printf("object storage enabled for bucket %s", r2.Bucket)
	}

	if err := srv.run(port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Fatalf("invalid %s: %q", name, raw)
	}
	return n
}

// loadR2Config reads the optional object storage settings. All four variables
// must be set together; when none are set the feature is disabled.
func loadR2Config() *R2Config {
	r2 := R2Config{
		AccountID: os.Getenv("R2_ACCOUNT_ID"),
		Bucket:    os.Getenv("R2_BUCKET"),
		AccessKey: os.Getenv("R2_ACCESS_KEY"),
		SecretKey: os.Getenv("R2_SECRET_KEY"),
	}
	if r2.AccountID == "" && r2.Bucket == "" && r2.AccessKey == "" && r2.SecretKey == "" {
		return nil
	}
	if r2.AccountID == "" || r2.Bucket == "" || r2.AccessKey == "" || r2.SecretKey == "" {
		log.Fatal("incomplete R2 settings: set R2_ACCOUNT_ID, R2_BUCKET, R2_ACCESS_KEY and R2_SECRET_KEY together")
	}
	return &r2
}
