package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"assettrack/src/api/controllers"
	"assettrack/src/clients/inventory"
	"assettrack/src/config"
	"assettrack/src/database"
	"assettrack/src/services"
	"assettrack/src/utils"
	aws_handler "assettrack/src/utils/aws"
	redis_utils "assettrack/src/utils/redis"

	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Inventory inventory.InventoryServiceClientI
	Reports   controllers.ReportsControllerI
	Assets    controllers.AssetsControllerI
	Token     controllers.TokenControllerI
	Schedules controllers.ReportScheduleControllerI
	Dashboard services.DashboardServiceI
	TokenAuth *jwtauth.JWTAuth
	Logger    *logrus.Logger
}

func NewHandler(cfg *config.Config, logger *logrus.Logger) (*Handler, error) {
	inventoryClient := inventory.NewClient(cfg)

	reportService := services.NewReportService(inventoryClient)
	exportService := services.NewExportService()
	dashboardService := services.NewDashboardService(inventoryClient)

	tokenSecret := cfg.Auth.TokenSecret
	if cfg.AWS.Enabled {
		awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
		if err != nil {
			return nil, err
		}
		tokenSecret, err = awsHandler.SecretManager.GetSecretValue(cfg.Auth.SecretName)
		if err != nil {
			return nil, err
		}
	}
	tokenAuth := jwtauth.New("HS256", []byte(tokenSecret), nil)

	gormDB, err := database.SetupGormDB(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}
	sessions, err := redis_utils.NewSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	return &Handler{
		Inventory: inventoryClient,
		Reports:   controllers.NewReportsController(reportService, exportService),
		Assets:    controllers.NewAssetsController(inventoryClient),
		Token:     controllers.NewTokenController(gormDB, sessions, tokenAuth, tokenTTL),
		Schedules: controllers.NewReportScheduleController(pool),
		Dashboard: dashboardService,
		TokenAuth: tokenAuth,
		Logger:    logger,
	}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	utils.WriteError(w, err)
}
