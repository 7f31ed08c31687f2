package app

import (
	"html/template"
	"net/http"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/phenrril/customerbook/internal/adapters/httpserver"
	"github.com/phenrril/customerbook/internal/adapters/repo/postgres"
	"github.com/phenrril/customerbook/internal/domain"
	"github.com/phenrril/customerbook/internal/usecase"
	"github.com/phenrril/customerbook/internal/views"
)

type App struct {
	DB         *gorm.DB
	Tmpl       *template.Template
	CustomerUC *usecase.CustomerUC
}

func NewApp(db *gorm.DB) (*App, error) {
	custRepo := postgres.NewCustomerRepo(db)

	app := &App{
		DB:         db,
		CustomerUC: &usecase.CustomerUC{Customers: custRepo},
	}

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	isDev := appEnv == "" || appEnv == "development" || appEnv == "dev"

	var tmpl *template.Template
	var err error
	if isDev {
		tmpl, err = template.ParseGlob("internal/views/*.html")
	} else {
		tmpl, err = template.ParseFS(views.FS, "*.html")
	}
	if err != nil {
		return nil, err
	}
	app.Tmpl = tmpl

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.CustomerUC)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(&domain.Customer{}); err != nil {
		return err
	}

	_ = a.DB.Exec("ALTER TABLE customers ALTER COLUMN status SET DEFAULT true").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_full_name ON customers(full_name)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_phone_number ON customers(phone_number)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_registration_date ON customers(registration_date)").Error

	return nil
}
