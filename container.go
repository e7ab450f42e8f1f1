package catalog

import (
	"database/sql"
	"sync"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql" // enable mysql dialect
	_ "github.com/go-sql-driver/mysql"               // enable mysql driver
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/toolmart/catalog/attrs"
	"github.com/toolmart/catalog/config"
	"github.com/toolmart/catalog/index"
)

// Container Container.
type Container struct {
	config          config.Config
	db              *sql.DB
	dbMutex         sync.Mutex
	goquDB          *goqu.Database
	redis           *redis.Client
	attrsRepository *attrs.Repository
	index           *index.Index
}

// NewContainer constructor.
func NewContainer(cfg config.Config) *Container {
	return &Container{
		config: cfg,
	}
}

func (s *Container) Config() config.Config {
	return s.config
}

func (s *Container) DB() (*sql.DB, error) {
	s.dbMutex.Lock()
	defer s.dbMutex.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	start := time.Now()

	const (
		connectionTimeout = 60 * time.Second
		reconnectDelay    = 100 * time.Millisecond
	)

	logrus.Info("Waiting for mysql")

	var (
		db  *sql.DB
		err error
	)

	for {
		db, err = sql.Open("mysql", s.config.DSN)
		if err != nil {
			return nil, err
		}

		err = db.Ping()
		if err == nil {
			logrus.Info("Started.")

			break
		}

		if time.Since(start) > connectionTimeout {
			return nil, err
		}

		logrus.Infof(". %s", err.Error())
		time.Sleep(reconnectDelay)
	}

	s.db = db

	return s.db, nil
}

func (s *Container) GoquDB() (*goqu.Database, error) {
	if s.goquDB == nil {
		db, err := s.DB()
		if err != nil {
			return nil, err
		}

		s.goquDB = goqu.New("mysql", db)
	}

	return s.goquDB, nil
}

func (s *Container) Redis() (*redis.Client, error) {
	if s.redis == nil {
		opts, err := redis.ParseURL(s.config.Redis)
		if err != nil {
			return nil, err
		}

		s.redis = redis.NewClient(opts)
	}

	return s.redis, nil
}

func (s *Container) AttrsRepository() (*attrs.Repository, error) {
	if s.attrsRepository == nil {
		db, err := s.GoquDB()
		if err != nil {
			return nil, err
		}

		s.attrsRepository = attrs.NewRepository(db)
	}

	return s.attrsRepository, nil
}

func (s *Container) Index() (*index.Index, error) {
	if s.index == nil {
		redisClient, err := s.Redis()
		if err != nil {
			return nil, err
		}

		repository, err := s.AttrsRepository()
		if err != nil {
			return nil, err
		}

		s.index = index.NewIndex(redisClient, repository, s.config.FacetCacheTTL)
	}

	return s.index, nil
}

// Close Destructor.
func (s *Container) Close() error {
	s.attrsRepository = nil
	s.index = nil

	if s.redis != nil {
		err := s.redis.Close()
		if err != nil {
			logrus.Error(err.Error())
		}

		s.redis = nil
	}

	s.goquDB = nil

	if s.db != nil {
		err := s.db.Close()
		if err != nil {
			logrus.Error(err.Error())
		}

		s.db = nil
	}

	return nil
}
