package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/zeptools/billgen/conf"
	"github.com/zeptools/billgen/routing"
	"github.com/zeptools/billgen/schedjobs"
	"github.com/zeptools/billgen/throttle"
	"github.com/zeptools/billgen/uds"
	"github.com/zeptools/billgen/web"
)

func main() {
	appRoot := flag.String("approot", ".", "application root holding config/ and assets")
	sockPath := flag.String("sock", "/tmp/billgend.sock", "admin unix socket path")
	flag.Parse()

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	core := &conf.Core[string]{}
	if err := core.BaseInit(*appRoot, rootCtx, rootCancel); err != nil {
		log.Fatalf("[ERROR] core init: %v", err)
	}
	if err := core.LoadStorageConf(); err != nil {
		log.Fatalf("[ERROR] storage conf: %v", err)
	}
	if err := core.PrepareKVDatabase(); err != nil {
		log.Fatalf("[ERROR] kv database: %v", err)
	}
	if err := core.PrepareSQLDatabase(); err != nil {
		log.Fatalf("[ERROR] sql database: %v", err)
	}
	defer core.ResourceCleanUp()

	if err := core.PrepareSessions(); err != nil {
		log.Fatalf("[ERROR] sessions: %v", err)
	}
	if err := core.PrepareAccess(); err != nil {
		log.Fatalf("[ERROR] access: %v", err)
	}
	if err := core.PrepareStores(); err != nil {
		log.Fatalf("[ERROR] stores: %v", err)
	}
	if err := core.PrepareExporter(); err != nil {
		log.Fatalf("[ERROR] exporter: %v", err)
	}
	if err := core.PrepareHTMLTemplateStore(); err != nil {
		log.Fatalf("[ERROR] html templates: %v", err)
	}
	if err := core.PrepareDirectoryClient(); err != nil {
		// the directory sync is optional. without it the allow-list is
		// whatever is in the SQL store
		log.Printf("[WARN] directory client not configured: %v", err)
		core.DirectoryClient = nil
	}

	if n, err := core.Allowlist.Reload(rootCtx); err != nil {
		log.Printf("[WARN] initial allow-list load failed: %v", err)
	} else {
		log.Printf("[INFO] allow-list loaded with %d emails", n)
	}

	core.PrepareThrottleBucketStore(10*time.Minute, time.Hour)
	core.ThrottleBucketStore.SetBucketGroup("access", &throttle.BucketConf{
		Burst:     10,
		Increment: 5,
		Period:    time.Minute,
	})

	core.PrepareJobScheduler()
	core.JobScheduler.AddCronJob(allowlistReloadJob(core))
	if core.DirectoryClient != nil {
		core.JobScheduler.AddCronJob(directorySyncJob(core))
	}

	handlers := &web.Handlers{
		SessionManager: core.SessionManager,
		Gate:           core.AccessGate,
		Audit:          core.AuditLog,
		Profiles:       core.ProfileStore,
		Defaults:       core.DefaultsStore,
		Exporter:       core.Exporter,
		HTMLTemplates:  core.HTMLTemplateStore,
		ActionLocks:    core.ActionLocks,
	}
	router := web.NewRouter(handlers, core.ThrottleBucketStore)
	core.PrepareWebService(routing.RecoverWrapper(router))

	core.PrepareUDSService(*sockPath, adminCommands(core))

	if err := core.StartServices(); err != nil {
		log.Fatalf("[ERROR] starting services: %v", err)
	}
	if err := core.WaitServicesDone(); err != nil {
		log.Printf("[ERROR] service ended with error: %v", err)
	}
}

// allowlistReloadJob refreshes the in-process allow-list cache from the
// SQL store every 15 minutes.
func allowlistReloadJob(core *conf.Core[string]) *schedjobs.CronJob {
	job := schedjobs.NewEveryMinEmptyCronJob("allowlist-reload")
	job.Minutes = schedjobs.BitsFromMinutes([]int{0, 15, 30, 45})
	job.Task = func() error {
		n, err := core.Allowlist.Reload(core.RootCtx)
		if err != nil {
			log.Printf("[WARN] allow-list reload failed: %v", err)
			return err
		}
		log.Printf("[INFO] allow-list reloaded with %d emails", n)
		return nil
	}
	return job
}

// directorySyncJob pulls the canonical allow-list from the directory API
// into the SQL store once an hour, then refreshes the cache.
func directorySyncJob(core *conf.Core[string]) *schedjobs.CronJob {
	job := schedjobs.NewEveryMinEmptyCronJob("directory-sync")
	job.Minutes = schedjobs.BitsFromMinutes([]int{5})
	job.Task = func() error {
		emails, err := core.DirectoryClient.FetchAllowedEmails(core.RootCtx)
		if err != nil {
			log.Printf("[WARN] directory sync fetch failed: %v", err)
			return err
		}
		store := core.Allowlist.Store()
		if err = store.Replace(core.RootCtx, emails); err != nil {
			log.Printf("[WARN] directory sync store failed: %v", err)
			return err
		}
		n, err := core.Allowlist.Reload(core.RootCtx)
		if err != nil {
			return err
		}
		log.Printf("[INFO] directory sync complete with %d emails", n)
		return nil
	}
	return job
}

func adminCommands(core *conf.Core[string]) map[string]uds.CmdHnd {
	return map[string]uds.CmdHnd{
		"ping": {
			Desc:  "liveness check",
			Usage: "ping",
			Fn: func(args []string, w io.Writer) error {
				_, err := fmt.Fprintln(w, "pong")
				return err
			},
		},
		"allowlist-reload": {
			Desc:  "reload the allow-list cache from the SQL store",
			Usage: "allowlist-reload",
			Fn: func(args []string, w io.Writer) error {
				n, err := core.Allowlist.Reload(core.RootCtx)
				if err != nil {
					_, _ = fmt.Fprintf(w, "reload failed: %v\n", err)
					return err
				}
				_, err = fmt.Fprintf(w, "reloaded with %d emails\n", n)
				return err
			},
		},
		"allowlist-count": {
			Desc:  "number of emails in the cached allow-list",
			Usage: "allowlist-count",
			Fn: func(args []string, w io.Writer) error {
				_, err := fmt.Fprintln(w, core.Allowlist.Count())
				return err
			},
		},
		"downloads": {
			Desc:  "latest download log entries",
			Usage: "downloads [limit]",
			Fn: func(args []string, w io.Writer) error {
				limit := 20
				if len(args) > 0 {
					if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
						limit = n
					}
				}
				entries, err := core.AuditLog.RecentDownloads(core.RootCtx, limit)
				if err != nil {
					_, _ = fmt.Fprintf(w, "query failed: %v\n", err)
					return err
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(w, "%s  %-30s %-10s %s\n",
						e.CreatedAt.Format(time.RFC3339), e.Email, e.Template, e.Format)
				}
				return nil
			},
		},
	}
}
