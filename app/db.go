package main

import (
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/internal/config"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func dialector(cfg config.Config) gorm.Dialector {
	if cfg.DBDriver == "mysql" {
		dsn := mysqldriver.Config{
			User:                 cfg.DBUser,
			Passwd:               cfg.DBPass,
			Net:                  "tcp",
			Addr:                 net.JoinHostPort(cfg.DBHost, cfg.DBPort),
			DBName:               cfg.DBName,
			ParseTime:            true,
			Loc:                  time.UTC,
			AllowNativePasswords: true,
		}
		return mysql.Open(dsn.FormatDSN())
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName)
	return postgres.Open(dsn)
}

// openDB retries until the database answers a ping. TranslateError lets the
// like store recognise unique index violations on either driver.
func openDB(cfg config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(dialector(cfg), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				return nil, dbErr
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after retries: %w", err)
}
