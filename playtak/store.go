// Package playtak reads finished games out of a playtak.com style games
// database so they can be replayed against the rules engine.
package playtak

import (
	"context"
	"fmt"
	"strconv"

	"github.com/icco/gutil/logging"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"moul.io/zapgorm2"

	"github.com/icco/takrules"
)

var log = logging.Must(logging.NewLogger(takrules.Service))

// Game is a row of the games table.
type Game struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        int64  `json:"date"`
	Size        int    `gorm:"not null" json:"size"`
	PlayerWhite string `gorm:"type:text" json:"player_white"`
	PlayerBlack string `gorm:"type:text" json:"player_black"`
	Notation    string `gorm:"type:text" json:"notation"`
	Result      string `gorm:"type:text" json:"result"`
}

// TableName is the table name used by the playtak server.
func (Game) TableName() string {
	return "games"
}

// AutoMigrate creates or updates the games table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Game{})
}

// Store reads games from a database.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to a games database. driver is "sqlite" or "postgres".
func Open(driver, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	gl := zapgorm2.New(log.Desugar())
	gl.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gl.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}

	return NewStore(db), nil
}

// Migrate creates the games table if it does not exist.
func (s *Store) Migrate() error {
	return AutoMigrate(s.db)
}

// Insert adds a game row. It is used to build fixtures and local copies of
// the database.
func (s *Store) Insert(ctx context.Context, g *Game) error {
	return s.db.WithContext(ctx).Create(g).Error
}

// Get loads a game by id and decodes it into a record.
func (s *Store) Get(ctx context.Context, id int64) (*takrules.Record, error) {
	var g Game
	if err := s.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, fmt.Errorf("game %d: %w", id, err)
	}

	moves, err := DecodeNotation(g.Notation)
	if err != nil {
		log.Errorw("could not decode game", "id", id, zap.Error(err))
		return nil, fmt.Errorf("game %d: %w", id, err)
	}

	return &takrules.Record{
		Size:   g.Size,
		Moves:  moves,
		Result: g.Result,
		Meta: []*takrules.Tag{
			{Key: "Site", Value: "playtak.com"},
			{Key: "Id", Value: strconv.FormatInt(g.ID, 10)},
			{Key: "Player1", Value: g.PlayerWhite},
			{Key: "Player2", Value: g.PlayerBlack},
			{Key: "Result", Value: g.Result},
		},
	}, nil
}

// IDs lists up to limit game ids in ascending order. A size of 0 matches
// every board size; a limit of 0 means no limit.
func (s *Store) IDs(ctx context.Context, size, limit int) ([]int64, error) {
	q := s.db.WithContext(ctx).Model(&Game{}).Order("id")
	if size > 0 {
		q = q.Where("size = ?", size)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var ids []int64
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
