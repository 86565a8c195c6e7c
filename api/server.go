package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/db/memstore"
	db "github.com/SwiftFiat/SwiftFiat-Escrow/db/sqlc"
	"github.com/SwiftFiat/SwiftFiat-Escrow/middleware"
	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	activitylogs "github.com/SwiftFiat/SwiftFiat-Escrow/services/activity_logs"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/advance"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/dispute"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/escrow"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/features"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/hooks"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/invoice"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/tasks"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/notification"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/project"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/redis"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/stage"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/wallet"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/webhook"
	"github.com/SwiftFiat/SwiftFiat-Escrow/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const webhookSweepTask = "webhook-sweep"

type Server struct {
	router    *gin.Engine
	store     db.Store
	config    *utils.Config
	logger    *logging.Logger
	token     *utils.JWTToken
	redis     *redis.RedisService
	scheduler *tasks.TaskScheduler
	hooks     *hooks.Hooks
	audit     *middleware.ActivityLogMiddleware
	closeDB   func() error

	projects      *project.ProjectService
	escrow        *escrow.EscrowService
	advances      *advance.AdvanceService
	disputes      *dispute.DisputeService
	wallets       *wallet.WalletService
	features      *features.FeatureService
	webhooks      *webhook.WebhookService
	notifications *notification.Notification
	activity      *activitylogs.ActivityLog
	invoices      *invoice.InvoiceService
}

// OpenStore returns the configured store. For postgres it also migrates the
// schema up to date.
func OpenStore(c *utils.Config) (db.Store, func() error, error) {
	if c.DBDriver == utils.DriverMemory {
		return memstore.New(), func() error { return nil }, nil
	}

	source := utils.GetDBSource(c, c.DBName)
	conn, err := sql.Open(c.DBDriver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	m, err := migrate.New(c.MigrationsPath, source)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("unable to instantiate the database schema migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		conn.Close()
		return nil, nil, fmt.Errorf("unable to migrate up to the latest database schema: %w", err)
	}

	return db.NewStore(conn, c.TxMaxRetries), conn.Close, nil
}

// NewServerFromConfig wires a server from the .env at envPath.
func NewServerFromConfig(envPath string) (*Server, error) {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	l := logging.NewLogger(c)

	store, closeDB, err := OpenStore(c)
	if err != nil {
		return nil, err
	}

	var rs *redis.RedisService
	if c.RedisEnabled() {
		rs, err = redis.NewRedisService(&redis.RedisConfig{
			Host:     c.RedisHost,
			Port:     c.RedisPort,
			Password: c.RedisPassword,
		})
		if err != nil {
			closeDB()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
	} else {
		l.Warn("REDIS_HOST not set, milestone locks are process-local")
	}

	s := NewServer(c, store, l, rs)
	s.closeDB = closeDB
	return s, nil
}

// NewServer builds every service on top of store and registers the routes.
// rs may be nil.
func NewServer(c *utils.Config, store db.Store, l *logging.Logger, rs *redis.RedisService) *Server {
	if err := apimodels.ConfigureIDs(c.SigningKey); err != nil {
		panic(fmt.Sprintf("Could not configure ids: %v", err))
	}
	registerValidators()

	s := &Server{
		store:     store,
		config:    c,
		logger:    l,
		token:     utils.NewJWTToken(c),
		redis:     rs,
		scheduler: tasks.NewTaskScheduler(l),
		closeDB:   func() error { return nil },
	}

	s.activity = activitylogs.NewActivityLog(store, l)
	s.notifications = notification.NewNotificationService(store, l)
	s.invoices = invoice.NewInvoiceService(store, l, c.Currency)
	s.webhooks = webhook.NewWebhookService(store, l, webhook.Config{
		Timeout:     c.WebhookTimeout,
		MaxAttempts: c.WebhookMaxAttempts,
	})
	s.features = features.NewFeatureService(store, l, c.FeatureCacheTTL)
	s.wallets = wallet.NewWalletService(store, l, c.Currency)

	s.hooks = &hooks.Hooks{
		Notifier: s.notifications,
		Webhooks: s.webhooks,
		Activity: s.activity,
		Invoices: s.invoices,
		Stages:   stage.NewAdvancer(store, stage.DefaultInferrer(), l),
		Logger:   l,
	}
	if rs != nil {
		s.hooks.Locker = rs
	}

	s.projects = project.NewProjectService(store, l)
	s.escrow = escrow.NewEscrowService(store, s.wallets, s.hooks, l)
	s.advances = advance.NewAdvanceService(store, s.wallets, s.hooks, l, c.AdvanceLimitPercent)
	s.disputes = dispute.NewDisputeService(store, s.wallets, s.hooks, l)
	s.audit = middleware.NewActivityLogMiddleware(s.activity)

	s.routes()
	return s
}

func (s *Server) routes() {
	g := gin.New()
	g.Use(gin.Recovery())
	g.Use(CORSMiddleware())
	g.Use(s.logger.LoggingMiddleWare())
	s.router = g

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to SwiftFiat Escrow!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Project{}.router(s)
	Milestone{}.router(s)
	CapitalAdvance{}.router(s)
	Claim{}.router(s)
	Wallet{}.router(s)
	Feature{}.router(s)
	ActivityLog{}.router(s)
	Notification{}.router(s)
	Webhook{}.router(s)
}

// v1 is the authenticated /api/v1 group.
func (s *Server) v1() *gin.RouterGroup {
	return s.router.Group("/api/v1", s.AuthenticatedMiddleware())
}

// admin is the /api/v1/admin group; every mutating request in it is audited.
func (s *Server) admin() *gin.RouterGroup {
	return s.router.Group("/api/v1/admin", s.AuthenticatedMiddleware(), RoleMiddleware(utils.RoleAdmin), s.audit.ActivityLogger())
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) scheduleWebhookSweep() error {
	interval := s.config.WebhookSweepInterval
	if interval <= 0 {
		return nil
	}
	_, err := s.scheduler.AddTask(webhookSweepTask, "webhook redelivery sweep", func(ctx context.Context) error {
		n, err := s.webhooks.Sweep(ctx, interval+s.webhooks.InlineWindow(), 100)
		if n > 0 {
			s.logger.WithField("events", n).Info("webhook sweep redelivered events")
		}
		return err
	}, interval)
	if err != nil {
		return err
	}
	return s.scheduler.ScheduleTask(webhookSweepTask, interval)
}

// Start runs background tasks and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.scheduleWebhookSweep(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", s.config.ServerPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logrus.Fields{"port": s.config.ServerPort, "driver": s.config.DBDriver}).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close stops background work and releases connections.
func (s *Server) Close() error {
	s.scheduler.Stop()
	s.hooks.Wait()
	s.webhooks.Wait()
	s.audit.Wait()

	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	errs = append(errs, s.closeDB())
	return errors.Join(errs...)
}
