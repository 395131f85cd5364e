package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/indexdata/circbroker/adapter"
	"github.com/indexdata/circbroker/api"
	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/dbutil"
	"github.com/indexdata/circbroker/events"
	"github.com/indexdata/circbroker/lms"
	"github.com/indexdata/circbroker/oapi"
	"github.com/indexdata/circbroker/service"
	"github.com/indexdata/circbroker/vcs"
	"github.com/indexdata/go-utils/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

var HTTP_PORT = utils.Must(utils.GetEnvInt("HTTP_PORT", 8081))
var DB_TYPE = utils.GetEnv("DB_TYPE", "postgres")
var DB_USER = utils.GetEnv("DB_USER", "circbroker")
var DB_PASSWORD = utils.GetEnv("DB_PASSWORD", "circbroker")
var DB_HOST = utils.GetEnv("DB_HOST", "localhost")
var DB_PORT = utils.GetEnv("DB_PORT", "25432")
var DB_DATABASE = utils.GetEnv("DB_DATABASE", "circbroker")
var DB_MAX_CONNS = utils.Must(utils.GetEnvInt("DB_MAX_CONNS", 20))
var ConnectionString = dbutil.GetConnectionString(DB_TYPE, DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_DATABASE)
var MigrationsFolder = "file://migrations"
var ENABLE_JSON_LOG = utils.GetEnv("ENABLE_JSON_LOG", "false")
var LOG_LEVEL = utils.GetEnv("LOG_LEVEL", "INFO")
var CATALOG_ADAPTER = utils.GetEnv("CATALOG_ADAPTER", "db")
var CONNECTORS_CONFIG = utils.GetEnv("CONNECTORS_CONFIG", "")
var USE_QUEUE_LAS_CALL = utils.Must(utils.GetEnvBool("USE_QUEUE_LAS_CALL", false))
var LISTEN_TOPICS = utils.GetEnv("LISTEN_TOPICS", "")
var MAX_MESSAGE_SIZE, _ = utils.GetEnvAny("MAX_MESSAGE_SIZE", int(100*1024), func(val string) (int, error) {
	v, err := humanize.ParseBytes(val)
	if err == nil && v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %s is too large", val)
	}
	return int(v), err
})
var NCIP_TIMEOUT, _ = utils.GetEnvAny("NCIP_TIMEOUT", 30*time.Second, func(val string) (time.Duration, error) {
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid NCIP_TIMEOUT value: %s", val)
	}
	return d, nil
})
var SHUTDOWN_DELAY, _ = utils.GetEnvAny("SHUTDOWN_DELAY", time.Duration(15*float64(time.Second)), func(val string) (time.Duration, error) {
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid SHUTDOWN_DELAY value: %s", val)
	}
	return d, nil
})

var ServeMux *http.ServeMux
var appCtx = common.CreateExtCtxWithLogArgsAndHandler(context.Background(), nil, configLog())

type Context struct {
	Pool        *pgxpool.Pool
	CatalogRepo catalog.CatalogRepo
	EventRepo   events.EventRepo
	Router      lms.LmsRouter
	ApiHandler  api.ApiHandler
	Listener    *events.PostgresListener
}

func configLog() slog.Handler {
	var level slog.Level
	switch strings.ToUpper(LOG_LEVEL) {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	if strings.EqualFold(ENABLE_JSON_LOG, "true") {
		jsonHandler := slog.NewJSONHandler(os.Stdout, opts)
		common.DefaultLogHandler = jsonHandler
		return jsonHandler
	} else {
		textHandler := slog.NewTextHandler(os.Stdout, opts)
		common.DefaultLogHandler = textHandler
		return textHandler
	}
}

func Init(ctx context.Context) (Context, error) {
	appCtx.Logger().Info("starting " + vcs.GetSignature())
	catalogRepo := new(catalog.PgCatalogRepo)
	catalogLookup, err := adapter.CreateCatalogLookupAdapter(CATALOG_ADAPTER, catalogRepo)
	if err != nil {
		return Context{}, err
	}

	connectors, err := LoadConnectorsFile(CONNECTORS_CONFIG)
	if err != nil {
		return Context{}, err
	}
	router, err := lms.NewLmsRouter(connectors.Connectors, &http.Client{Timeout: NCIP_TIMEOUT})
	if err != nil {
		return Context{}, err
	}

	err = RunMigrateScripts()
	if err != nil {
		return Context{}, err
	}

	pool, err := InitDbPool()
	if err != nil {
		return Context{}, err
	}
	catalogRepo.Pool = pool
	eventRepo := CreateEventRepo(pool)

	policy := service.NewInstitutionPolicy(connectors.PolicyConfig)
	dispatcher := service.NewRequestDispatcher(router, policy)
	validator := service.NewItemValidator(catalogLookup, service.NewDeliveryValidator(catalogLookup))
	edd := service.NewEddService(catalogLookup, service.NewCatalogRequestStore(catalogRepo),
		events.NewPgNotifyPublisher(eventRepo), USE_QUEUE_LAS_CALL)

	appContext := Context{
		Pool:        pool,
		CatalogRepo: catalogRepo,
		EventRepo:   eventRepo,
		Router:      router,
		ApiHandler:  api.NewApiHandler(dispatcher, validator, edd, MAX_MESSAGE_SIZE),
	}
	if topics := splitTopics(LISTEN_TOPICS); len(topics) > 0 {
		appContext.Listener = events.NewPostgresListener(ConnectionString, topics, LogNotice)
		err = appContext.Listener.Start(common.CreateExtCtxWithArgs(ctx, nil))
		if err != nil {
			return Context{}, fmt.Errorf("starting listener failed err=%w", err)
		}
	}
	return appContext, nil
}

func Run(ctx context.Context) error {
	appContext, err := Init(ctx)
	if err != nil {
		return err
	}
	defer appContext.Pool.Close()
	return StartServer(appContext)
}

func StartServer(ctx Context) error {
	ServeMux = http.NewServeMux()
	ServeMux.HandleFunc("GET /healthz", HandleHealthz)
	ServeMux.HandleFunc("GET /v3/open-api.yaml", HandleOpenApiSpec)
	oapi.HandlerFromMux(&ctx.ApiHandler, ServeMux)

	signatureHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", vcs.GetSignature())
		ServeMux.ServeHTTP(w, r)
	})
	server := &http.Server{
		Addr:              ":" + strconv.Itoa(HTTP_PORT),
		Handler:           signatureHandler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	// channel to listen for server errors
	serverErrors := make(chan error, 1)
	go func() {
		appCtx.Logger().Info("HTTP server started on port " + strconv.Itoa(HTTP_PORT))
		serverErrors <- server.ListenAndServe()
	}()
	// channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	// block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("HTTP server error: %w", err)
	case sig := <-shutdown:
		appCtx.Logger().Info("HTTP server shutdown initiated", "signal", sig)
		// give outstanding requests a timeout to complete
		ctx, cancel := context.WithTimeout(appCtx, SHUTDOWN_DELAY)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("HTTP server could not shutdown gracefully: %w", err)
		}
		appCtx.Logger().Info("HTTP server shutdown complete")
		return nil
	}
}

func RunMigrateScripts() error {
	verFrom, verTo, dirty, err := dbutil.RunMigrateScripts(MigrationsFolder, ConnectionString)
	if err != nil {
		return fmt.Errorf("DB migration failed: err=%w versionFrom=%d versionTo=%d dirty=%t", err, verFrom, verTo, dirty)
	}
	appCtx.Logger().Info("DB migration success", "versionFrom", verFrom, "versionTo", verTo, "dirty", dirty)
	return nil
}

func InitDbPool() (*pgxpool.Pool, error) {
	dbPool, err := dbutil.InitDbPool(ConnectionString, int32(DB_MAX_CONNS))
	if err != nil {
		return nil, fmt.Errorf("unable to create pool to database: %w", err)
	}
	return dbPool, nil
}

func CreateEventRepo(dbPool *pgxpool.Pool) events.EventRepo {
	eventRepo := new(events.PgEventRepo)
	eventRepo.Pool = dbPool
	return eventRepo
}

// LogNotice records a notice received on one of LISTEN_TOPICS.
func LogNotice(ctx common.ExtendedContext, n events.Notification) {
	args := []any{"channel", n.Channel, "requestType", n.Notice.RequestType, "institution", n.Notice.RequestingInstitution}
	if r := n.Notice.Response; r != nil {
		args = append(args, "itemBarcode", r.ItemBarcode, "success", r.Success, "requestId", r.RequestId)
	}
	ctx.Logger().Info("request notice", args...)
}

func splitTopics(val string) []string {
	var topics []string
	for _, t := range strings.Split(val, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

func HandleOpenApiSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-yaml")
	_, _ = w.Write(oapi.OpenAPISpecYAML)
}

func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
