package sqlstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/go-clean-forum/internal/repository/sqlstore/model"
)

var baseDate = time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)

func fixedID(id string) func() string {
	return func() string { return id }
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to ":memory:" would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// setupMockDB returns a gorm handle whose queries all go to sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

type seed struct {
	db *gorm.DB
	t  *testing.T
}

func (s seed) user(id, username string) {
	require.NoError(s.t, s.db.Create(&model.User{ID: id, Username: username, Password: "secret", Fullname: username}).Error)
}

func (s seed) thread(id, owner string) {
	require.NoError(s.t, s.db.Create(&model.Thread{ID: id, Title: "a title", Body: "a body", Date: baseDate, Owner: owner}).Error)
}

func (s seed) comment(id, threadID, owner string, offset time.Duration, deleted bool) {
	require.NoError(s.t, s.db.Create(&model.Comment{
		ID:       id,
		Content:  "content of " + id,
		Date:     baseDate.Add(offset),
		ThreadID: threadID,
		Owner:    owner,
		IsDelete: deleted,
	}).Error)
}

func (s seed) reply(id, commentID, owner string, offset time.Duration, deleted bool) {
	require.NoError(s.t, s.db.Create(&model.Reply{
		ID:        id,
		Content:   "content of " + id,
		Date:      baseDate.Add(offset),
		CommentID: commentID,
		Owner:     owner,
		IsDelete:  deleted,
	}).Error)
}

func (s seed) like(id, commentID, owner string) {
	require.NoError(s.t, s.db.Create(&model.CommentLike{ID: id, CommentID: commentID, Owner: owner}).Error)
}
