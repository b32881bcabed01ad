package repository

import (
	"context"
	"errors"
	"strings"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開中の商品を、キーワード/カテゴリ/価格帯/ページング付きで返す。
func (r *ProductGormRepository) ListCatalog(ctx context.Context, q repo.CatalogQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	//公開（is_active=true）のものだけ
	tx = tx.Where("is_active = ?", true)

	//kwはnameとdescriptionの両方に含まれること
	if strings.TrimSpace(q.Kw) != "" {
		like := "%" + strings.TrimSpace(q.Kw) + "%"
		tx = tx.Where("name LIKE ?", like).Where("description LIKE ?", like)
	}

	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}

	//価格帯は両端が揃ったときだけ絞る（片方だけなら無視）
	if q.FromPrice != nil && q.ToPrice != nil {
		tx = tx.Where("new_price BETWEEN ? AND ?", *q.FromPrice, *q.ToPrice)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	err := tx.Order("id asc").Offset(offset).Limit(q.PageSize).Find(&products).Error
	if err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"detail":      p.Detail,
		"old_price":   p.OldPrice,
		"new_price":   p.NewPrice,
		"category_id": p.CategoryID,
		"brand_id":    p.BrandID,
		"is_active":   p.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
