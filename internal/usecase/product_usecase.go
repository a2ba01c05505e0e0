package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"borteh/internal/domain/model"
	"borteh/internal/realtime"
	repo "borteh/internal/repository"
)

// 画像ストレージ（GCSバケットなど）の約束。
// バイト列を保存して公開URLを返す。
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// ProductUsecase は管理画面の商品CRUD。
// 画像アップロードが失敗した場合は商品行を作らない。
type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	auditRepo    repo.AuditLogRepository
	images       ImageStore
	feed         *realtime.ProductFeed
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	auditRepo repo.AuditLogRepository,
	images ImageStore,
	feed *realtime.ProductFeed,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		images:       images,
		feed:         feed,
	}
}

type AdminCreateProductInput struct {
	Name         string
	Description  string
	Price        int64
	Stock        int64
	Category     string
	IsNewArrival bool

	Image            []byte
	ImageContentType string
}

type AdminUpdateProductInput struct {
	Name         string
	Description  string
	Price        int64
	Stock        int64
	Category     string
	IsNewArrival bool
}

// 共通の入力チェック。
func (u *ProductUsecase) validateFields(ctx context.Context, name string, price int64, stock int64, category string) error {
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if strings.TrimSpace(category) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}

	//カテゴリの存在チェック
	_, err := u.categoryRepo.FindByName(ctx, strings.TrimSpace(category))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusBadRequest, "unknown category")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminCreateProduct は画像を先にアップロードし、成功した場合のみ行を作る。
// 作成した商品はINSERTフィードへ流す（新着通知用）。
func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, adminUserID int64, in AdminCreateProductInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validateFields(ctx, in.Name, in.Price, in.Stock, in.Category); err != nil {
		return 0, err
	}
	if len(in.Image) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "image required")
	}

	//アップロード失敗＝商品行なし（中途半端な状態を作らない）
	imageURL, err := u.images.Upload(ctx, in.Image, in.ImageContentType)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadGateway, "image upload failed")
	}

	now := time.Now()
	created, err := u.productRepo.Create(ctx, model.Product{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Price:        in.Price,
		Stock:        in.Stock,
		Category:     strings.TrimSpace(in.Category),
		ImageURL:     imageURL,
		IsNewArrival: in.IsNewArrival,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionCreateProduct, created.ID, nil, created)

	//新着通知用のINSERTフィード
	u.feed.Publish(created)

	return created.ID, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, adminUserID int64, productID int64, in AdminUpdateProductInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateFields(ctx, in.Name, in.Price, in.Stock, in.Category); err != nil {
		return err
	}

	//変更前の状態（監査ログ用）
	before, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = strings.TrimSpace(in.Name)
	after.Description = in.Description
	after.Price = in.Price
	after.Stock = in.Stock
	after.Category = strings.TrimSpace(in.Category)
	after.IsNewArrival = in.IsNewArrival
	after.UpdatedAt = time.Now()

	err = u.productRepo.Update(ctx, after)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionUpdateProduct, productID, before, after)
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, adminUserID int64, productID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	before, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionDeleteProduct, productID, before, nil)
	return nil
}

// 監査ログを1件残す。ログ保存の失敗で操作自体は巻き戻さない。
func (u *ProductUsecase) audit(ctx context.Context, adminUserID int64, action model.AuditAction, resourceID int64, before interface{}, after interface{}) {
	entry := model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       action,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   resourceID,
		CreatedAt:    time.Now(),
	}
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			entry.BeforeJSON = string(b)
		}
	}
	if after != nil {
		if b, err := json.Marshal(after); err == nil {
			entry.AfterJSON = string(b)
		}
	}

	_ = u.auditRepo.Create(ctx, entry)
}
