package usecase_test

import (
	"context"
	"testing"

	"borteh/internal/domain/model"
	repo "borteh/internal/repository"
	"borteh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCategoryUC(cRepo *CategoryRepoMock, pRepo *ProductRepoMock, aRepo *AuditRepoMock, images *ImageStoreMock) *usecase.CategoryUsecase {
	return usecase.NewCategoryUsecase(cRepo, pRepo, aRepo, images)
}

// 同名カテゴリは作れない
func TestCategoryUsecase_AdminCreateCategory_Duplicate(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := newCategoryUC(cRepo, new(ProductRepoMock), new(AuditRepoMock), new(ImageStoreMock))

	cRepo.On("FindByName", mock.Anything, "Watches").Return(model.Category{ID: 1, Name: "Watches"}, nil)

	_, err := uc.AdminCreateCategory(context.Background(), 1, usecase.AdminCreateCategoryInput{
		Name: "Watches", Image: []byte{1},
	})
	assertErrContains(t, err, "category already exists")
}

// アップロード失敗＝カテゴリ行なし
func TestCategoryUsecase_AdminCreateCategory_UploadFailureCreatesNoRow(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	images := new(ImageStoreMock)
	uc := newCategoryUC(cRepo, new(ProductRepoMock), new(AuditRepoMock), images)

	cRepo.On("FindByName", mock.Anything, "Watches").Return(model.Category{}, repo.ErrNotFound)
	images.On("Upload", mock.Anything, []byte{1}, "image/png").Return("", assert.AnError)

	_, err := uc.AdminCreateCategory(context.Background(), 1, usecase.AdminCreateCategoryInput{
		Name: "Watches", Image: []byte{1}, ImageContentType: "image/png",
	})
	assertErrContains(t, err, "image upload failed")

	cRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_AdminCreateCategory_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	aRepo := new(AuditRepoMock)
	images := new(ImageStoreMock)
	uc := newCategoryUC(cRepo, new(ProductRepoMock), aRepo, images)

	cRepo.On("FindByName", mock.Anything, "Watches").Return(model.Category{}, repo.ErrNotFound)
	images.On("Upload", mock.Anything, []byte{1}, "image/png").Return("https://img/c.png", nil)
	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "Watches" && c.ImageURL == "https://img/c.png"
	})).Return(model.Category{ID: 5, Name: "Watches"}, nil)
	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionCreateCategory &&
			l.ResourceType == model.AuditResourceCategory &&
			l.ResourceID == 5
	})).Return(nil)

	id, err := uc.AdminCreateCategory(ctx, 1, usecase.AdminCreateCategoryInput{
		Name: " Watches ", Image: []byte{1}, ImageContentType: "image/png",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)

	cRepo.AssertExpectations(t)
	aRepo.AssertExpectations(t)
}

// 商品が残っているカテゴリは削除できない（件数入りメッセージ）
func TestCategoryUsecase_AdminDeleteCategory_GuardWhenInUse(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	pRepo := new(ProductRepoMock)
	uc := newCategoryUC(cRepo, pRepo, new(AuditRepoMock), new(ImageStoreMock))

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1, Name: "Watches"}, nil)
	pRepo.On("CountByCategory", mock.Anything, "Watches").Return(int64(3), nil)

	err := uc.AdminDeleteCategory(ctx, 1, 1)
	assertErrContains(t, err, `category "Watches" has 3 products`)

	cRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_AdminDeleteCategory_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	pRepo := new(ProductRepoMock)
	aRepo := new(AuditRepoMock)
	uc := newCategoryUC(cRepo, pRepo, aRepo, new(ImageStoreMock))

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1, Name: "Empty"}, nil)
	pRepo.On("CountByCategory", mock.Anything, "Empty").Return(int64(0), nil)
	cRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionDeleteCategory && l.ResourceID == 1
	})).Return(nil)

	err := uc.AdminDeleteCategory(ctx, 1, 1)
	assert.NoError(t, err)

	cRepo.AssertExpectations(t)
	aRepo.AssertExpectations(t)
}

// 画像を渡さない更新は名前だけ変える
func TestCategoryUsecase_AdminUpdateCategory_WithoutImage(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	aRepo := new(AuditRepoMock)
	images := new(ImageStoreMock)
	uc := newCategoryUC(cRepo, new(ProductRepoMock), aRepo, images)

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1, Name: "Old", ImageURL: "https://img/old.png"}, nil)
	cRepo.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "New" && c.ImageURL == "https://img/old.png"
	})).Return(nil)
	aRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := uc.AdminUpdateCategory(ctx, 1, 1, usecase.AdminUpdateCategoryInput{Name: "New"})
	assert.NoError(t, err)

	images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	cRepo.AssertExpectations(t)
}
