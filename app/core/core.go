package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/saas-journey/journey/app/store/sqlstore"
	"github.com/saas-journey/journey/pkg/types"
	"github.com/saas-journey/journey/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores     func() *sqlstore.Provider
	httpEngine *gin.Engine
	redis      redis.UniversalClient

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	// 单实例部署，集群ID固定为0
	utils.SetupIDWorker(0)

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("journey", "core"),
		httpEngine: gin.New(),
	}

	setupSqlStore(core)
	setupRedis(core)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	// 执行数据库表初始化
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
	fmt.Println("setupSqlStore done")
}

func setupRedis(core *Core) {
	core.redis = redis.NewClient(&redis.Options{
		Addr:         core.cfg.Redis.Addr,
		Password:     core.cfg.Redis.Password,
		DB:           core.cfg.Redis.DB,
		PoolSize:     core.cfg.Redis.PoolSize,
		MinIdleConns: core.cfg.Redis.MinIdleConns,
		MaxRetries:   core.cfg.Redis.MaxRetries,
	})
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Redis() redis.UniversalClient {
	return s.redis
}

func (s *Core) Cache() types.Cache {
	return &Cache{redis: s.redis}
}

func (s *Core) SessionTTL() time.Duration {
	return s.cfg.Session.TTL()
}
