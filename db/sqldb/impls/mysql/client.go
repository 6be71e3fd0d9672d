package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql" // side-effect

	"github.com/zeptools/billgen/db/sqldb"
)

func init() {
	sqldb.RegisterFactory("mysql", func(conf *sqldb.Conf) (sqldb.Client, error) {
		return &Client{Conf: conf}, nil
	})
}

type Client struct {
	Handle // [Embedded] for Promoted Methods

	Conf *sqldb.Conf
	dsn  string
}

// Ensure mysql.Client implements sqldb.Client interface
var _ sqldb.Client = (*Client)(nil)

func (c *Client) Init() error {
	var err error
	if c.Conf.DSN != "" {
		c.dsn = c.Conf.DSN
	} else {
		c.dsn = fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&sql_mode=ANSI_QUOTES&multiStatements=true",
			c.Conf.User,
			c.Conf.PW,
			c.Conf.Host,
			c.Conf.Port,
			c.Conf.DB,
			c.Conf.TZ,
		)
	}
	if c.Handle.db, err = sql.Open("mysql", c.dsn); err != nil {
		return err
	}
	c.Handle.db.SetConnMaxLifetime(time.Minute * 3)
	c.Handle.db.SetMaxOpenConns(10)
	c.Handle.db.SetMaxIdleConns(10)
	if err = c.Handle.db.Ping(); err != nil {
		return err
	}
	log.Println("[INFO] mysql client initialized")
	return nil
}

func (c *Client) Close() error {
	if c.Handle.db == nil {
		return nil
	}
	log.Println("[INFO] closing mysql client")
	err := c.Handle.db.Close()
	if err != nil {
		return err
	}
	log.Println("[INFO] mysql client closed")
	return nil
}

func (c *Client) GetHandle() sqldb.Handle {
	return &c.Handle
}

func (c *Client) GetConf() *sqldb.Conf {
	return c.Conf
}

func (c *Client) GetDSN() string {
	return c.dsn
}

func (c *Client) Ping(ctx context.Context) error {
	return c.Handle.db.PingContext(ctx)
}

func (c *Client) BeginTx(ctx context.Context) (sqldb.Tx, error) {
	tx, err := c.Handle.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}
