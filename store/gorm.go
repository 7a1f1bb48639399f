package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore keeps every collection in a SQL table through gorm.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a sqlite database at dsn and migrates it.
// Use "file:<name>?mode=memory&cache=shared" for an in-memory database.
func OpenSQLite(dsn string) (*GormStore, error) {
	return openGorm(sqlite.Open(dsn))
}

// OpenPostgres connects to PostgreSQL with a libpq-style DSN and migrates it.
func OpenPostgres(dsn string) (*GormStore, error) {
	return openGorm(postgres.Open(dsn))
}

func openGorm(dialector gorm.Dialector) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
		&models.Payment{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	logrus.WithField("dialect", dialector.Name()).Info("database connected and migrated")
	return &GormStore{db: db}, nil
}

// DB exposes the underlying handle for seeding and tests.
func (s *GormStore) DB() *gorm.DB { return s.db }

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) (models.InsertResult, error) {
	item.ID = uuid.NewString()
	return s.insert(ctx, item, item.ID)
}

func (s *GormStore) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.deleteByID(ctx, &models.MenuItem{}, id)
}

func (s *GormStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) ListCartByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := s.db.WithContext(ctx).Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateCartItem(ctx context.Context, item *models.CartItem) (models.InsertResult, error) {
	item.ID = uuid.NewString()
	return s.insert(ctx, item, item.ID)
}

func (s *GormStore) DeleteCartItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.deleteByID(ctx, &models.CartItem{}, id)
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error) {
	user.ID = uuid.NewString()
	return s.insert(ctx, user, user.ID)
}

func (s *GormStore) PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin)
	if res.Error != nil {
		return models.UpdateResult{}, res.Error
	}
	// SQL drivers report rows matched by the WHERE clause, not rows whose
	// value changed, so both counts carry the same number.
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.RowsAffected,
		ModifiedCount: res.RowsAffected,
	}, nil
}

func (s *GormStore) CreatePayment(ctx context.Context, payment *models.Payment) (models.InsertResult, error) {
	payment.ID = uuid.NewString()
	return s.insert(ctx, payment, payment.ID)
}

func (s *GormStore) insert(ctx context.Context, value any, id string) (models.InsertResult, error) {
	err := s.db.WithContext(ctx).Create(value).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.InsertResult{}, ErrDuplicate
	}
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *GormStore) deleteByID(ctx context.Context, model any, id string) (models.DeleteResult, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return models.DeleteResult{}, res.Error
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
