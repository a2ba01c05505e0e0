package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"borteh/internal/domain/model"
	repo "borteh/internal/repository"
)

// CategoryUsecase は管理画面のカテゴリCRUD。
// 商品が残っているカテゴリは削除できない。
type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	auditRepo    repo.AuditLogRepository
	images       ImageStore
}

// DI
func NewCategoryUsecase(
	categoryRepo repo.CategoryRepository,
	productRepo repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	images ImageStore,
) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
		images:       images,
	}
}

type AdminCreateCategoryInput struct {
	Name             string
	Image            []byte
	ImageContentType string
}

type AdminUpdateCategoryInput struct {
	Name string

	//画像は差し替えたいときだけ渡す
	Image            []byte
	ImageContentType string
}

func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, adminUserID int64, in AdminCreateCategoryInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(in.Image) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "image required")
	}

	//同名カテゴリの重複チェック
	_, err := u.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return 0, NewHTTPError(http.StatusConflict, "category already exists")
	}
	if err != repo.ErrNotFound {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//アップロード失敗＝カテゴリ行なし
	imageURL, err := u.images.Upload(ctx, in.Image, in.ImageContentType)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadGateway, "image upload failed")
	}

	now := time.Now()
	created, err := u.categoryRepo.Create(ctx, model.Category{
		Name:      name,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionCreateCategory, created.ID, nil, created)
	return created.ID, nil
}

func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, adminUserID int64, categoryID int64, in AdminUpdateCategoryInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	before, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = name
	after.UpdatedAt = time.Now()

	//画像が渡されたときだけ差し替える
	if len(in.Image) > 0 {
		imageURL, err := u.images.Upload(ctx, in.Image, in.ImageContentType)
		if err != nil {
			return NewHTTPError(http.StatusBadGateway, "image upload failed")
		}
		after.ImageURL = imageURL
	}

	err = u.categoryRepo.Update(ctx, after)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionUpdateCategory, categoryID, before, after)
	return nil
}

// AdminDeleteCategory は空のカテゴリだけ削除できる。
// 商品が残っている場合は件数入りのメッセージで拒否する。
func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, adminUserID int64, categoryID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	before, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//使用中チェック
	count, err := u.productRepo.CountByCategory(ctx, before.Name)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusConflict,
			fmt.Sprintf("category %q has %d products", before.Name, count))
	}

	err = u.categoryRepo.Delete(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, adminUserID, model.AuditActionDeleteCategory, categoryID, before, nil)
	return nil
}

func (u *CategoryUsecase) audit(ctx context.Context, adminUserID int64, action model.AuditAction, resourceID int64, before interface{}, after interface{}) {
	entry := model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       action,
		ResourceType: model.AuditResourceCategory,
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
