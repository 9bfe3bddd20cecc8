package bot

import (
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"odooclient/entity"
	"odooclient/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
)

// ReportSource provides the last stored seed run for the /report
// command.
type ReportSource interface {
	LastReport() (*entity.SeedReport, error)
}

type TgBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminIds    []int64
	minLogLevel slog.Level
	adminLevels map[int64]slog.Level
	reports     ReportSource
}

func NewTgBot(botName, apiKey string, adminIdsStr string, log *slog.Logger) (*TgBot, error) {
	var adminIds []int64
	if adminIdsStr != "" {
		idStrs := strings.Split(adminIdsStr, ",")
		for _, idStr := range idStrs {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid admin_id value: %q, must be a comma-separated list of integers", adminIdsStr)
			}
			adminIds = append(adminIds, id)
		}
	}

	minLogLevel := slog.LevelDebug

	// First admin gets everything, the rest only warnings and up.
	adminLevels := make(map[int64]slog.Level)
	for i, adminId := range adminIds {
		if i == 0 {
			adminLevels[adminId] = slog.LevelDebug
		} else {
			adminLevels[adminId] = slog.LevelWarn
		}
	}

	tgBot := &TgBot{
		log:         log.With(sl.Module("tgbot")),
		adminIds:    adminIds,
		botUsername: botName,
		minLogLevel: minLogLevel,
		adminLevels: adminLevels,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

// SetReportSource wires the store queried by the /report command.
func (t *TgBot) SetReportSource(reports ReportSource) {
	t.reports = reports
}

func (t *TgBot) Start() error {

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		// If an error is returned by a handler, log it and continue going.
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Println("an error occurred while handling update:", err.Error())
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("level", t.level))
	dispatcher.AddHandler(handlers.NewCommand("report", t.report))

	err := updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		panic("failed to start polling: " + err.Error())
	}

	// Idle, to keep updates coming in, and avoid bot stopping.
	updater.Idle()

	return nil
}

// SetMinLogLevel sets the minimum log level for all admin notifications
func (t *TgBot) SetMinLogLevel(level slog.Level) {
	t.minLogLevel = level

	for _, adminId := range t.adminIds {
		t.adminLevels[adminId] = level
	}
}

// SetAdminLogLevel sets the minimum log level for a specific admin
func (t *TgBot) SetAdminLogLevel(adminId int64, level slog.Level) {
	t.adminLevels[adminId] = level
}

func (t *TgBot) isAdmin(userId int64) bool {
	for _, adminId := range t.adminIds {
		if userId == adminId {
			return true
		}
	}
	return false
}

// level handles the /level command to set the minimum log level for admin notifications
func (t *TgBot) level(b *tgbotapi.Bot, ctx *ext.Context) error {
	userId := ctx.EffectiveUser.Id

	if !t.isAdmin(userId) {
		_, err := ctx.EffectiveMessage.Reply(b, "You are not authorized to use this command.", nil)
		return err
	}

	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) < 2 {
		currentLevel := t.adminLevels[userId]
		t.plainResponse(userId, fmt.Sprintf("Your current log level: %s\nAvailable levels: debug, info, warn, error", currentLevel.String()))
		return nil
	}

	levelStr := strings.ToLower(args[1])
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		t.plainResponse(userId, fmt.Sprintf("Invalid level: %s\nAvailable levels: debug, info, warn, error", levelStr))
		return nil
	}

	t.SetAdminLogLevel(userId, level)
	t.plainResponse(userId, fmt.Sprintf("Your log level set to: %s", level.String()))
	return nil
}

// report handles the /report command, replying with a summary of the
// last seed run.
func (t *TgBot) report(b *tgbotapi.Bot, ctx *ext.Context) error {
	userId := ctx.EffectiveUser.Id

	if !t.isAdmin(userId) {
		_, err := ctx.EffectiveMessage.Reply(b, "You are not authorized to use this command.", nil)
		return err
	}

	if t.reports == nil {
		t.plainResponse(userId, "Report storage is not enabled.")
		return nil
	}

	lastReport, err := t.reports.LastReport()
	if err != nil {
		t.log.Warn("fetching last report", sl.Err(err))
		t.plainResponse(userId, "Could not read the last report.")
		return nil
	}
	if lastReport == nil {
		t.plainResponse(userId, "No seed runs recorded yet.")
		return nil
	}

	t.plainResponse(userId, FormatReport(lastReport))
	return nil
}

// FormatReport renders a seed report as a readable Telegram message.
func FormatReport(report *entity.SeedReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seed run %s\n", report.RunID)
	fmt.Fprintf(&b, "Started: %s\n", report.Started.Format(time.RFC3339))
	for _, step := range report.Steps {
		fmt.Fprintf(&b, "%s: %d created, %d skipped\n", step.Name, len(step.Created), step.Skipped)
	}
	fmt.Fprintf(&b, "Total: %d created, %d skipped", report.TotalCreated(), report.TotalSkipped())
	return b.String()
}

func (t *TgBot) SendMessage(msg string) {
	t.SendMessageWithLevel(msg, t.minLogLevel)
}

// SendMessageWithLevel sends a message to all admins with the specified log level
func (t *TgBot) SendMessageWithLevel(msg string, level slog.Level) {
	for _, adminId := range t.adminIds {
		adminLevel, exists := t.adminLevels[adminId]
		if !exists {
			adminLevel = t.minLogLevel
		}

		if level >= adminLevel {
			t.plainResponse(adminId, msg)
		}
	}
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	if text == "" {
		t.log.With(
			slog.Int64("id", chatId),
		).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		t.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))
		_, _ = t.api.SendMessage(chatId, err.Error(), &tgbotapi.SendMessageOpts{})
		_, err = t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(
				slog.Int64("id", chatId),
			).Error("sending safe message", sl.Err(err))
		}
	}
}

func Sanitize(input string) string {
	reservedChars := "\\_{}#+-.!|()[]=*"

	sanitized := ""
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			sanitized += "\\" + string(char)
		} else {
			sanitized += string(char)
		}
	}

	return sanitized
}
