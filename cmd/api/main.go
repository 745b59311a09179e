package main

import (
	"context"
	"log"
	"time"

	"github.com/dhiraj-gede/qkart-backend/internal/config"
	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	"github.com/dhiraj-gede/qkart-backend/internal/handler"
	"github.com/dhiraj-gede/qkart-backend/internal/infra/db"
	infraRepo "github.com/dhiraj-gede/qkart-backend/internal/infra/repository"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"
	"github.com/dhiraj-gede/qkart-backend/internal/server"
	"github.com/dhiraj-gede/qkart-backend/internal/usecase"
	"github.com/dhiraj-gede/qkart-backend/internal/validator"

	"github.com/joho/godotenv"
)

// refresh cookieの有効期限
const refreshTTL = 30 * 24 * time.Hour

func main() {
	//.envは無くてもよい（本番は実環境変数）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続（ハンドルはここで作ってDIする）
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.RefreshToken{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authValidator := validator.NewAuthValidator(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, authValidator)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, txManager)
	userUC := usecase.NewUserUsecase(userRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, refreshTTL)
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	userH := handler.NewUserHandler(userUC)

	//期限切れrefresh tokenの掃除
	go cleanupExpiredTokens(rtRepo)

	//Server起動
	e := server.New(cfg, userRepo, authH, productH, cartH, userH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := e.Start(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// 1時間おきに期限切れトークンを削除する
func cleanupExpiredTokens(rtRepo repository.RefreshTokenRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := rtRepo.DeleteExpired(ctx, time.Now())
		cancel()

		if err != nil {
			log.Printf("cleanup refresh tokens: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("cleanup refresh tokens: deleted %d", n)
		}
	}
}
