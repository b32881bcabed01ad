package main

import (
	"context"
	"os"
	"time"

	"msistore/internal/config"
	"msistore/internal/domain/model"
	"msistore/internal/handler"
	"msistore/internal/infra/db"
	infraRepo "msistore/internal/infra/repository"
	"msistore/internal/jobs"
	"msistore/internal/server"
	"msistore/internal/usecase"
	auth "msistore/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

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

func (i *jwtIssuer) Issue(userID int64, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
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

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.UserInfo{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.Image{},
		&model.Like{},
		&model.Order{},
		&model.OrderItem{},
		&model.StatusOrder{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	infoRepo := infraRepo.NewUserInfoGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	imageRepo := infraRepo.NewImageGormRepository(gormDB)
	likeRepo := infraRepo.NewLikeGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	itemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	statusRepo := infraRepo.NewStatusOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//ロールの初期データ
	if err := roleRepo.EnsureSeed(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("role seed failed")
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, roleRepo, verifier, issuer, clock)
	userUC := usecase.NewUserUsecase(userRepo, roleRepo, verifier, hasher)
	infoUC := usecase.NewUserInfoUsecase(infoRepo)
	productUC := usecase.NewProductUsecase(productRepo, imageRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	brandUC := usecase.NewBrandUsecase(brandRepo)
	imageUC := usecase.NewImageUsecase(imageRepo, productRepo)
	likeUC := usecase.NewLikeUsecase(likeRepo, infoRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, idGen)
	itemUC := usecase.NewOrderItemUsecase(itemRepo, orderRepo)
	statusUC := usecase.NewStatusOrderUsecase(statusRepo, orderRepo)

	//Handler生成
	handlers := server.Handlers{
		User:       handler.NewUserHandler(registerUC, loginUC, userUC),
		UserInfo:   handler.NewUserInfoHandler(infoUC),
		Product:    handler.NewProductHandler(productUC),
		Category:   handler.NewCategoryHandler(categoryUC, brandUC),
		Image:      handler.NewImageHandler(imageUC),
		Like:       handler.NewLikeHandler(likeUC),
		Order:      handler.NewOrderHandler(orderUC, cfg),
		OrderAdmin: handler.NewOrderAdminHandler(itemUC, statusUC),
	}

	//未払い注文の掃除ジョブ
	staleJob := jobs.NewStaleOrderJob(orderRepo, cfg.StaleOrderDays, logger)
	if err := staleJob.Start(); err != nil {
		logger.Fatal().Err(err).Msg("stale order job start failed")
	}
	defer staleJob.Stop()

	//Server起動
	e := server.New(cfg, logger, handlers)
	if err := server.Start(e, cfg); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
