package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/subkh4n/SIPILPRO-sub001/internal/config"
	appHTTP "github.com/subkh4n/SIPILPRO-sub001/internal/handler/http"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/cron"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/database"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
	remotePostgres "github.com/subkh4n/SIPILPRO-sub001/internal/remote/postgresql"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote/sheets"
	attendanceService "github.com/subkh4n/SIPILPRO-sub001/internal/service/attendance"
	payrollService "github.com/subkh4n/SIPILPRO-sub001/internal/service/payroll"
	reportService "github.com/subkh4n/SIPILPRO-sub001/internal/service/report"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sipilpro"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	ctx := context.Background()

	var backend remote.Store
	switch cfg.Remote.Kind {
	case config.RemoteSheets:
		backend, err = sheets.New(cfg.Remote.SheetsURL, cfg.Remote.Token)
		if err != nil {
			log.Fatal("Error configuring sheets remote: ", err)
		}
	case config.RemotePostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		pg := remotePostgres.New(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal("Error preparing remote schema: ", err)
		}
		backend = pg
	}

	st := store.New(backend, logger, cfg.Finance.InitialBalance)

	// The initial load is the one remote call that must succeed; without
	// a snapshot there is nothing to serve.
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := st.Load(loadCtx); err != nil {
		cancel()
		log.Fatal("Error loading initial state: ", err)
	}
	cancel()

	scheduler := cron.NewScheduler(logger)
	cron.NewSyncJobs(st, cfg.App.RefreshInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	resolver := attendanceService.HolidayResolver{RestDays: restDays(cfg.Finance.RestDays)}
	attendanceSvc := attendanceService.NewService(st, resolver)
	payrollSvc := payrollService.NewService(st, cfg.Finance.WagePolicy)
	reportSvc := reportService.NewService(st)

	router := appHTTP.NewRouter(logger, appHTTP.Handlers{
		State:      appHTTP.NewStateHandler(st),
		Worker:     appHTTP.NewWorkerHandler(st),
		Project:    appHTTP.NewProjectHandler(st),
		Vendor:     appHTTP.NewVendorHandler(st),
		Holiday:    appHTTP.NewHolidayHandler(st),
		Attendance: appHTTP.NewAttendanceHandler(st, attendanceSvc),
		Purchase:   appHTTP.NewPurchaseHandler(st),
		Master:     appHTTP.NewMasterHandler(st),
		Schedule:   appHTTP.NewScheduleHandler(st),
		Report:     appHTTP.NewReportHandler(reportSvc, payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// restDays maps ISO weekday numbers (1=Monday .. 7=Sunday) to
// time.Weekday values.
func restDays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d%7))
	}
	return out
}
