package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORM models. These are the storage-layer shapes; the domain entities live
// in internal/domain and the repositories translate between the two.

// BookModel stores fixed-point money and rating as decimal columns, not
// floats. The many-to-many memberships go through the explicit join models
// below, registered with SetupJoinTable.
type BookModel struct {
	ID            uint            `gorm:"primaryKey"`
	Title         string          `gorm:"size:100;not null;index"`
	Description   string          `gorm:"type:text"`
	ISBN          string          `gorm:"size:20"`
	PublisherID   *uint           `gorm:"index"`
	Publisher     *PublisherModel `gorm:"foreignKey:PublisherID;constraint:OnDelete:SET NULL"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null;index"`
	Currency      string          `gorm:"size:10;not null"`
	Stock         int             `gorm:"not null;default:0"`
	Pages         int             `gorm:"not null"`
	PublishedDate *time.Time      `gorm:"type:date"`
	CoverURL      string          `gorm:"size:500"`
	Rating        decimal.Decimal `gorm:"type:decimal(3,2)"`
	CreatedAt     time.Time

	Authors []AuthorModel `gorm:"many2many:book_authors;joinForeignKey:BookID;joinReferences:AuthorID"`
	Genres  []GenreModel  `gorm:"many2many:book_genres;joinForeignKey:BookID;joinReferences:GenreID"`
}

func (BookModel) TableName() string { return "books" }

type AuthorModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null;index"`
	Bio      string `gorm:"type:text"`
	PhotoURL string `gorm:"size:500"`
}

func (AuthorModel) TableName() string { return "authors" }

type GenreModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;uniqueIndex"`
}

func (GenreModel) TableName() string { return "genres" }

type PublisherModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"size:500"`
}

func (PublisherModel) TableName() string { return "publishers" }

// BookAuthorModel is one Book<->Author membership. The composite primary key
// makes duplicate links impossible.
type BookAuthorModel struct {
	BookID   uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"primaryKey"`
}

func (BookAuthorModel) TableName() string { return "book_authors" }

// BookGenreModel is one Book<->Genre membership.
type BookGenreModel struct {
	BookID  uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}

func (BookGenreModel) TableName() string { return "book_genres" }

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:500;not null"`
	Role         string `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

type OrderModel struct {
	ID          uint             `gorm:"primaryKey"`
	UserID      uint             `gorm:"index;not null"`
	Status      string           `gorm:"size:20;not null;default:created"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time        `gorm:"index"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel stores the unit-price snapshot taken at order creation.
// It is never recomputed from the book's live price.
type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	BookID    uint            `gorm:"index;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }

type CartItemModel struct {
	ID       uint `gorm:"primaryKey"`
	UserID   uint `gorm:"index;not null"`
	BookID   uint `gorm:"index;not null"`
	Quantity int  `gorm:"not null;default:1"`
}

func (CartItemModel) TableName() string { return "cart_items" }

// AutoMigrate creates or extends the schema. Production deployments should
// use versioned migrations; this keeps development and tests self-contained.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&BookModel{}, "Authors", &BookAuthorModel{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&BookModel{}, "Genres", &BookGenreModel{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&UserModel{},
		&PublisherModel{},
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CartItemModel{},
	)
}
