package conf

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/zeptools/billgen/access"
	"github.com/zeptools/billgen/apis/directory"
	"github.com/zeptools/billgen/db"
	"github.com/zeptools/billgen/db/kvdb"
	"github.com/zeptools/billgen/db/kvdb/impls/redis"
	"github.com/zeptools/billgen/db/sqldb"
	"github.com/zeptools/billgen/export"
	"github.com/zeptools/billgen/schedjobs"
	"github.com/zeptools/billgen/security"
	"github.com/zeptools/billgen/storages"
	"github.com/zeptools/billgen/stores"
	"github.com/zeptools/billgen/svc"
	"github.com/zeptools/billgen/throttle"
	"github.com/zeptools/billgen/tpl"
	"github.com/zeptools/billgen/uds"
	"github.com/zeptools/billgen/web"
	"github.com/zeptools/billgen/web/session"

	_ "github.com/zeptools/billgen/db/sqldb/impls/mysql"
	_ "github.com/zeptools/billgen/db/sqldb/impls/pgsql"
)

// Core - application config and wired state
// B = Throttle BucketID Type _ e.g. string, int64, etc
type Core[B comparable] struct {
	AppName             string                        `json:"app_name"`
	Listen              string                        `json:"listen"` // HTTP Server Listen IP:PORT Address
	Host                string                        `json:"host"`   // HTTP Host. Can be used to generate public url endpoints
	AppRoot             string                        `json:"-"`      // Filled from compiled paths
	RootCtx             context.Context               `json:"-"`      // Global Context with RootCancel
	RootCancel          context.CancelFunc            `json:"-"`      // CancelFunc for RootCtx
	UDSService          *uds.Service                  `json:"-"`      // PrepareUDSService
	JobScheduler        *schedjobs.Scheduler          `json:"-"`      // PrepareJobScheduler
	WebService          *web.Service                  `json:"-"`      // PrepareWebService
	ThrottleBucketStore *throttle.BucketStore[B]      `json:"-"`      // PrepareThrottleBucketStore
	VolatileKV          *sync.Map                     `json:"-"`      // map[string]string
	ActionLocks         *sync.Map                     `json:"-"`      // map[string]struct{}
	StorageConf         storages.Conf                 `json:"-"`      // LoadStorageConf
	BackendHttpClient   *http.Client                  `json:"-"`      // for requests to external apis
	KVDBConf            kvdb.Conf                     `json:"-"`      // loadKVDBConf
	BackendKVDBClient   kvdb.Client                   `json:"-"`      // prepareKVDBClient
	SQLDBConf           *sqldb.Conf                   `json:"-"`      // loadSQLDBConf
	BackendSQLDBClient  sqldb.Client                  `json:"-"`      // prepareSQLDBClient
	SessionManager      *session.Manager              `json:"-"`      // PrepareSessions
	DirectoryClient     *directory.Client             `json:"-"`      // PrepareDirectoryClient
	HTMLTemplateStore   *tpl.HTMLTemplateStore        `json:"-"`      // PrepareHTMLTemplateStore
	Allowlist           *access.Allowlist             `json:"-"`      // PrepareAccess
	AccessGate          *access.Gate                  `json:"-"`      // PrepareAccess
	AuditLog            *access.AuditLog              `json:"-"`      // PrepareAccess
	ProfileStore        *stores.ProfileStore          `json:"-"`      // PrepareStores
	DefaultsStore       *stores.DefaultsStore         `json:"-"`      // PrepareStores
	Exporter            *export.Exporter              `json:"-"`      // PrepareExporter

	services []svc.Service // Services to Manage
	done     chan error
}

// BaseInit - 1st step for initialization
// 1. set AppRoot
// 2. load config/.core.json file
// 3. prepare base fields
// 4. Start ShutdownSignalListener
func (c *Core[B]) BaseInit(appRoot string, rootCtx context.Context, rootCancel context.CancelFunc) error {
	c.AppRoot = appRoot
	envFilePath := filepath.Join(appRoot, "config", ".core.json")
	envBytes, err := os.ReadFile(envFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(envBytes, c); err != nil {
		return err
	}
	c.RootCtx = rootCtx
	c.RootCancel = rootCancel
	c.prepareDefaultFeatures()
	c.startShutdownSignalListener()
	return nil
}

func (c *Core[B]) prepareDefaultFeatures() {
	c.VolatileKV = &sync.Map{}
	c.ActionLocks = &sync.Map{}
	c.BackendHttpClient = &http.Client{}
}

func (c *Core[B]) AddService(s svc.Service) {
	log.Printf("[INFO] adding service: %s", s.Name())
	c.services = append(c.services, s)
	log.Printf("[INFO] total services: %d", len(c.services))
}

func (c *Core[B]) StartServices() error {
	c.done = make(chan error, len(c.services))
	for _, s := range c.services {
		err := s.Start()
		if err != nil {
			return err
		}
		go func(s svc.Service) {
			err := <-s.Done()
			c.done <- err
		}(s) // pass the loop var to the param. otherwise, they are captured inside goroutine lazily
	}
	return nil
}

func (c *Core[B]) WaitServicesDone() error {
	for i := 0; i < len(c.services); i++ {
		if err := <-c.done; err != nil {
			return err
		}
	}
	return nil
}

func (c *Core[B]) StopServices() {
	for _, s := range c.services {
		s.Stop()
	}
}

var once sync.Once

func (c *Core[B]) startShutdownSignalListener() {
	once.Do(func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Printf("[INFO] got signal [%s]. shutting down app [%s] ...", sig, c.AppName)
			c.RootCancel() // broadcast to all child services via Context.Done()
		}()
	})
	log.Printf("[INFO][CORE] shutdown signal listener started")
}

func (c *Core[B]) PrepareJobScheduler() {
	c.JobScheduler = schedjobs.NewScheduler(c.RootCtx)
	c.AddService(c.JobScheduler)
}

func (c *Core[B]) PrepareUDSService(sockPath string, cmdMap map[string]uds.CmdHnd) {
	c.UDSService = uds.NewService(c.RootCtx, sockPath, cmdMap)
	c.AddService(c.UDSService)
}

func (c *Core[B]) PrepareWebService(router http.Handler) {
	c.WebService = web.NewService(c.RootCtx, c.Listen, router)
	c.AddService(c.WebService)
}

func (c *Core[B]) PrepareThrottleBucketStore(cleanupCycle time.Duration, cleanupOlderThan time.Duration) {
	c.ThrottleBucketStore = throttle.NewBucketStore[B](c.RootCtx, cleanupCycle, cleanupOlderThan)
	c.AddService(c.ThrottleBucketStore)
}

func (c *Core[B]) LoadStorageConf() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".storages.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, &c.StorageConf); err != nil {
		return err
	}
	return nil
}

func (c *Core[B]) PrepareKVDatabase() error {
	// Load KV Database Config File
	err := c.loadKVDBConf()
	if err != nil {
		return err
	}
	if err = c.prepareKVDBClient(); err != nil {
		return err
	}
	return nil
}

func (c *Core[B]) loadKVDBConf() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".kv-databases.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, &c.KVDBConf); err != nil {
		return err
	}
	return nil
}

func (c *Core[B]) prepareKVDBClient() error {
	switch c.KVDBConf.Type {
	case "redis":
		c.BackendKVDBClient = &redis.Client{Conf: &c.KVDBConf}
		if err := c.BackendKVDBClient.Init(); err != nil {
			return err
		}
	// case "memcached"
	default:
		return errors.New("unsupported key-value database type")
	}
	return nil
}

// PrepareSQLDatabase loads the SQL DB config and builds the client
// through the registered factory (mysql or pgsql).
func (c *Core[B]) PrepareSQLDatabase() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".sql-databases.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	c.SQLDBConf = &sqldb.Conf{}
	if err = json.Unmarshal(confBytes, c.SQLDBConf); err != nil {
		return err
	}
	dbClient, err := sqldb.New(c.SQLDBConf.Type, c.SQLDBConf)
	if err != nil {
		return err
	}
	if err = dbClient.Init(); err != nil {
		return err
	}
	c.BackendSQLDBClient = dbClient
	return nil
}

// PrepareSessions prepares SessionManager
// Prerequisite: BackendKVDBClient
func (c *Core[B]) PrepareSessions() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".session.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if c.BackendKVDBClient == nil {
		return errors.New("backend KVDB client not ready")
	}
	mgr := &session.Manager{
		AppName:           c.AppName,
		BackendKVDBClient: c.BackendKVDBClient,
	}
	if err = json.Unmarshal(confBytes, &mgr.Conf); err != nil {
		return err
	}
	cipher, err := security.NewXChaCha20Poly1305CipherBase64([]byte(mgr.Conf.EncryptionKey))
	if err != nil {
		return fmt.Errorf("NewXChaCha20Poly1305Cipher: %v", err)
	}
	mgr.Cipher = cipher

	c.SessionManager = mgr
	return nil
}

// PrepareDirectoryClient to Pull the Allow-list from the Directory API if any
// Prerequisite: BackendHttpClient
func (c *Core[B]) PrepareDirectoryClient() error {
	confFilePath := filepath.Join(c.AppRoot, "config", ".directory-api.json")
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return err
	}
	if c.BackendHttpClient == nil {
		return errors.New("backend http client not ready")
	}
	c.DirectoryClient = &directory.Client{
		Client: c.BackendHttpClient,
	}
	if err = json.Unmarshal(confBytes, &c.DirectoryClient.Conf); err != nil {
		return err
	}
	return nil
}

func (c *Core[B]) PrepareHTMLTemplateStore() error {
	dir := c.StorageConf.HTMLTemplateDir
	if dir == "" {
		dir = filepath.Join(c.AppRoot, "templates", "html")
	}
	c.HTMLTemplateStore = tpl.NewHTMLTemplateStore()
	return c.HTMLTemplateStore.LoadBaseTemplates(dir)
}

// PrepareAccess wires the allow-list cache, gate and audit log.
// Prerequisite: BackendSQLDBClient
func (c *Core[B]) PrepareAccess() error {
	if c.BackendSQLDBClient == nil {
		return errors.New("backend SQL DB client not ready")
	}
	c.Allowlist = access.NewAllowlist(&access.AllowlistStore{DB: c.BackendSQLDBClient})
	c.AccessGate = access.NewGate(c.Allowlist)
	c.AuditLog = &access.AuditLog{DB: c.BackendSQLDBClient}
	return nil
}

// PrepareStores wires the profile and defaults stores.
// Prerequisite: BackendKVDBClient
func (c *Core[B]) PrepareStores() error {
	if c.BackendKVDBClient == nil {
		return errors.New("backend KVDB client not ready")
	}
	c.ProfileStore = &stores.ProfileStore{KV: c.BackendKVDBClient}
	c.DefaultsStore = &stores.DefaultsStore{KV: c.BackendKVDBClient}
	return nil
}

// PrepareExporter loads the render fonts.
// Prerequisite: StorageConf
func (c *Core[B]) PrepareExporter() error {
	exporter, err := export.NewExporter(c.StorageConf.FontFile, c.StorageConf.BoldFontFile)
	if err != nil {
		return err
	}
	c.Exporter = exporter
	return nil
}

func (c *Core[B]) ResourceCleanUp() {
	log.Println("[INFO] App Resource Cleaning Up...")
	db.CloseClient("kvdb", c.BackendKVDBClient)
	db.CloseClient("sqldb", c.BackendSQLDBClient)
	log.Println("[INFO] App Resource Cleanup Complete")
}
