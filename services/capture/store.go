package capture

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/promovia/promovia-api/models"
	"gorm.io/gorm"
)

// Store is the persistence surface the capture engine needs.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	OrderIDExists(projectID, orderID string) (bool, error)
	PhoneExists(projectID, phone string) (bool, error)
	CreateOrder(order *models.CapturedOrder) error
	TouchPromoter(promoterID string) error
	ProjectPrompt(projectID string) (string, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) OrderIDExists(projectID, orderID string) (bool, error) {
	var count int64
	err := projectScope(s.db.Model(&models.CapturedOrder{}), projectID).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormStore) PhoneExists(projectID, phone string) (bool, error) {
	var count int64
	err := projectScope(s.db.Model(&models.CapturedOrder{}), projectID).
		Where("customer_phone = ?", phone).
		Count(&count).Error
	return count > 0, err
}

// projectScope narrows a query to one project. Captures made outside any
// project form their own scope.
func projectScope(query *gorm.DB, projectID string) *gorm.DB {
	if projectID == "" {
		return query.Where("project_id IS NULL")
	}
	return query.Where("project_id = ?", projectID)
}

func (s *gormStore) CreateOrder(order *models.CapturedOrder) error {
	if err := s.db.Create(order).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// translateDuplicate maps unique index violations onto the same rejections
// the pre-insert checks produce, so a capture that loses a race surfaces
// identically to one caught early.
func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		switch {
		case strings.Contains(mysqlErr.Message, "idx_orders_project_phone"):
			return ErrProfileExists
		case strings.Contains(mysqlErr.Message, "idx_orders_project_order"):
			return ErrOrderExists
		}
	}
	return err
}

func (s *gormStore) TouchPromoter(promoterID string) error {
	return s.db.Model(&models.Promoter{}).
		Where("id = ?", promoterID).
		Update("last_active_at", time.Now()).Error
}

// ProjectPrompt returns the OCR prompt configured on the project's brand,
// or empty when the project or prompt is absent.
func (s *gormStore) ProjectPrompt(projectID string) (string, error) {
	if projectID == "" {
		return "", nil
	}

	var project models.Project
	err := s.db.Preload("Brand").First(&project, "id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if project.Brand != nil {
		return project.Brand.OcrPrompt, nil
	}
	return "", nil
}
