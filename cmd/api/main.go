package main

import (
	"context"
	"log"
	"time"

	"borteh/internal/config"
	"borteh/internal/domain/model"
	"borteh/internal/handler"
	"borteh/internal/infra/db"
	"borteh/internal/infra/kv"
	"borteh/internal/infra/messenger"
	infraRepo "borteh/internal/infra/repository"
	"borteh/internal/infra/storage"
	"borteh/internal/realtime"
	"borteh/internal/repository"
	"borteh/internal/server"
	"borteh/internal/store"
	"borteh/internal/usecase"
	auth "borteh/internal/usecase/auth_usecase"

	gcs "cloud.google.com/go/storage"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Category{},
		&model.AdminUser{},
		&model.KVEntry{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	ctx := context.Background()

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	userRepo := infraRepo.NewAdminUserGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//KVストレージ（REDIS_ADDRがあればRedis、無ければDB）
	var kvRepo repository.KVRepository = infraRepo.NewKVGormRepository(gormDB)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		kvRepo = kv.NewRedisKVRepository(rdb)
	}

	//画像ストレージ（GCS）
	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		log.Fatalf("gcs client: %v", err)
	}
	images := storage.NewGCSImageStore(gcsClient, cfg.GCSBucket)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg.JWTSecret)
	feed := realtime.NewProductFeed()

	//初期管理者（両方設定されたときだけ）
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		seedUC := auth.NewSeedAdminUsecase(userRepo, hasher, clock)
		if err := seedUC.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
	}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(ctx, store.NewListStore[model.CartLine](kvRepo))
	favoritesUC := usecase.NewFavoritesUsecase(ctx, store.NewListStore[int64](kvRepo))
	themeUC := usecase.NewThemeUsecase(kvRepo)
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, messenger.NewWhatsAppMessenger(), cfg.WhatsAppNumber)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, auditRepo, images, feed)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo, auditRepo, images)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	auditUC := usecase.NewAuditUsecase(auditRepo)

	//新着通知
	notifier := usecase.NewNewArrivalNotifier(feed)
	notifier.Start(ctx)

	//起動時にカタログを読み込む（失敗しても起動は続行、/catalog/refreshで回復）
	if err := catalogUC.Refresh(ctx); err != nil {
		log.Printf("catalog refresh: %v", err)
	}

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(loginUC),
		Catalog:       handler.NewCatalogHandler(catalogUC),
		Cart:          handler.NewCartHandler(cartUC, checkoutUC),
		Favorites:     handler.NewFavoritesHandler(favoritesUC, catalogUC),
		Theme:         handler.NewThemeHandler(themeUC),
		Notification:  handler.NewNotificationHandler(notifier),
		AdminProduct:  handler.NewAdminProductHandler(productUC, catalogUC),
		AdminCategory: handler.NewAdminCategoryHandler(categoryUC, catalogUC),
		AdminAudit:    handler.NewAdminAuditHandler(auditUC),
	}

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
