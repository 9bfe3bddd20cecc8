package main

import (
	"flag"
	"log/slog"
	"time"

	"odooclient/bot"
	"odooclient/entity"
	"odooclient/impl/core"
	"odooclient/internal/config"
	"odooclient/internal/database"
	repository "odooclient/internal/database/mongo"
	"odooclient/internal/http-server/api"
	"odooclient/internal/lib/logger"
	"odooclient/internal/lib/sl"
	"odooclient/internal/services"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	mode := flag.String("mode", "seed", "seed, check, journals, version or serve")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	// Initialize Telegram bot if enabled
	var tgBot *bot.TgBot
	if conf.Telegram.Enabled {
		var err error
		tgBot, err = bot.NewTgBot(conf.Telegram.BotName, conf.Telegram.ApiKey, conf.Telegram.AdminId, lg)
		if err != nil {
			lg.Error("failed to initialize telegram bot", slog.String("error", err.Error()))
		} else {
			lg = logger.SetupTelegramHandler(lg, tgBot, slog.LevelDebug)
			lg.With(
				slog.String("bot_name", conf.Telegram.BotName),
			).Info("telegram bot initialized")

			go func() {
				if err := tgBot.Start(); err != nil {
					lg.Error("telegram bot error", slog.String("error", err.Error()))
				}
			}()
		}
	}

	lg.Info("starting odooclient",
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		slog.String("mode", *mode),
	)
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	if tgBot != nil {
		handler.SetNotifier(tgBot)
	}

	if conf.SQL.Enabled {
		db, err := database.NewSQLClient(conf, lg)
		if err != nil {
			lg.With(
				sl.Err(err),
			).Error("mysql client")
		}
		if db != nil {
			handler.SetRepository(db)
			lg.With(
				slog.String("host", conf.SQL.HostName),
				slog.String("port", conf.SQL.Port),
				slog.String("user", conf.SQL.UserName),
				slog.String("database", conf.SQL.Database),
			).Info("mysql client initialized")
			defer db.Close()

			lg.Info("mysql stats", slog.String("connections", db.Stats()))
		}
	}

	mongoRepo, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongodb client")
	}
	if mongoRepo != nil {
		handler.SetMongoRepository(mongoRepo)
		if tgBot != nil {
			tgBot.SetReportSource(mongoRepo)
		}
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("database", conf.Mongo.Database),
		).Info("mongodb client initialized")
	}

	odoo, err := services.NewOdooService(conf, lg)
	if err != nil {
		lg.Error("odoo service", sl.Err(err))
		return
	}
	handler.SetOdoo(odoo)
	lg.With(
		slog.String("url", conf.Odoo.Url),
		slog.String("protocol", conf.Odoo.Protocol),
	).Info("odoo service initialized")

	if conf.Seed.DatasetPath != "" {
		dataset, err := entity.LoadDataset(conf.Seed.DatasetPath)
		if err != nil {
			lg.With(
				slog.String("path", conf.Seed.DatasetPath),
				sl.Err(err),
			).Error("extra dataset not loaded")
			return
		}
		handler.SetExtraDataset(dataset)
		lg.With(
			slog.Int("partners", len(dataset.Partners)),
			slog.Int("products", len(dataset.Products)),
		).Info("extra dataset loaded")
	}

	switch *mode {
	case "seed":
		runSeed(lg, handler)
	case "check":
		runCheck(lg, handler)
	case "journals":
		runJournals(lg, handler)
	case "version":
		runVersion(lg, handler)
	case "serve":
		handler.StartCleanup()
		defer handler.Stop()
		if err := api.New(conf, lg, handler); err != nil {
			lg.Error("api server", sl.Err(err))
		}
		lg.Error("service stopped")
	default:
		lg.Error("unknown mode", slog.String("mode", *mode))
	}

	// Give the Telegram handler a moment to flush pending messages.
	if tgBot != nil {
		time.Sleep(time.Second)
	}
}

func runSeed(lg *slog.Logger, handler *core.Core) {
	report, err := handler.SeedAll()
	if err != nil {
		lg.Error("seed run failed", sl.Err(err))
		return
	}
	for _, step := range report.Steps {
		lg.With(
			slog.String("step", step.Name),
			slog.Int("created", len(step.Created)),
			slog.Int("skipped", step.Skipped),
		).Info("seed step")
	}
	lg.With(
		slog.String("run_id", report.RunID),
		slog.Int("created", report.TotalCreated()),
		slog.Int("skipped", report.TotalSkipped()),
	).Info("seed run complete")

	records, err := handler.RunRecords(report.RunID)
	if err != nil {
		lg.Warn("ledger readback failed", sl.Err(err))
		return
	}
	if records != nil {
		lg.With(
			slog.String("run_id", report.RunID),
			slog.Int("rows", len(records)),
		).Info("ledger rows written")
	}
}

func runCheck(lg *slog.Logger, handler *core.Core) {
	samples, err := handler.CheckData()
	if err != nil {
		lg.Error("data check failed", sl.Err(err))
		return
	}
	for _, sample := range samples {
		log := lg.With(
			slog.String("model", sample.Model),
			slog.Int("count", sample.Count),
		)
		if sample.Error != "" {
			log.Warn("model unavailable", slog.String("error", sample.Error))
			continue
		}
		log.Info("model data", slog.Any("samples", sample.Samples))
	}

	counts, err := handler.LedgerCounts()
	if err != nil {
		lg.Warn("ledger counts failed", sl.Err(err))
		return
	}
	for model, count := range counts {
		lg.With(
			slog.String("model", model),
			slog.Int64("ledger_rows", count),
		).Info("ledger count")
	}
}

func runJournals(lg *slog.Logger, handler *core.Core) {
	entries, err := handler.CheckJournalEntries()
	if err != nil {
		lg.Error("journal check failed", sl.Err(err))
		return
	}
	for _, entry := range entries {
		lg.With(
			slog.Any("id", entry["id"]),
			slog.Any("name", entry["name"]),
			slog.Any("date", entry["date"]),
			slog.Any("move_type", entry["move_type"]),
			slog.Any("state", entry["state"]),
		).Info("journal entry")
	}
	lg.Info("journal check complete", slog.Int("entries", len(entries)))
}

func runVersion(lg *slog.Logger, handler *core.Core) {
	version, err := handler.ServerVersion()
	if err != nil {
		lg.Error("version check failed", sl.Err(err))
		return
	}
	lg.Info("odoo server reachable", slog.String("server_version", version))
}
