package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

func (opts Options) DSN() string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

// NewConnection opens a gorm connection pool. Driver errors are translated so
// that foreign key violations surface as gorm.ErrForeignKeyViolated.
func NewConnection(opts Options) (*gorm.DB, error) {
	return Open(postgres.Open(opts.DSN()))
}

// Open wraps gorm.Open with the configuration shared by every connection.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
}
