package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	flags "github.com/jessevdk/go-flags"
	"github.com/sashabaranov/go-openai"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/tg-doorman/app/bot"
	"github.com/umputun/tg-doorman/app/events"
	"github.com/umputun/tg-doorman/app/storage"
	"github.com/umputun/tg-doorman/app/storage/engine"
	"github.com/umputun/tg-doorman/app/webapi"
	"github.com/umputun/tg-doorman/lib/checker"
)

type options struct {
	Telegram struct {
		Token string `long:"token" env:"TOKEN" description:"telegram bot token" required:"true"`
		Group string `long:"group" env:"GROUP" description:"group name/id" required:"true"`
	} `group:"telegram" namespace:"telegram" env-namespace:"TELEGRAM"`

	AdminGroup string            `long:"admin.group" env:"ADMIN_GROUP" description:"admin group name, or channel id"`
	SuperUsers events.SuperUsers `long:"super" env:"SUPER_USER" env-delim:"," description:"super-users"`

	History struct {
		Duration   time.Duration `long:"duration" env:"DURATION" default:"1h" description:"how long to keep recent messages for cleanup"`
		MaxUsers   int           `long:"max-users" env:"MAX_USERS" default:"1000" description:"max tracked (user, chat) pairs"`
		MaxPerUser int           `long:"max-per-user" env:"MAX_PER_USER" default:"100" description:"max messages kept per user"`
	} `group:"history" namespace:"history" env-namespace:"HISTORY"`

	DB struct {
		Conn string `long:"conn" env:"CONN" default:"tg-doorman.db" description:"db connection, sqlite file or postgres:// url"`
		GID  string `long:"gid" env:"GID" default:"" description:"group id to scope records, defaults to telegram group"`
	} `group:"db" namespace:"db" env-namespace:"DB"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable rotated audit log"`
		FileName   string `long:"file" env:"FILE" default:"tg-doorman.log" description:"location of audit log"`
		MaxSize    string `long:"max-size" env:"MAX_SIZE" default:"100M" description:"maximum size before it gets rotated"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	OpenAI struct {
		Token             string `long:"token" env:"TOKEN" description:"openai token, veto check disabled if not set"`
		Prompt            string `long:"prompt" env:"PROMPT" default:"" description:"openai system prompt, if empty uses builtin default"`
		Model             string `long:"model" env:"MODEL" default:"gpt-4o-mini" description:"openai model"`
		MaxTokensResponse int    `long:"max-tokens-response" env:"MAX_TOKENS_RESPONSE" default:"1024" description:"openai max tokens in response"`
		MaxSymbolsRequest int    `long:"max-symbols-request" env:"MAX_SYMBOLS_REQUEST" default:"8192" description:"openai max symbols in request"`
	} `group:"openai" namespace:"openai" env-namespace:"OPENAI"`

	Files struct {
		SamplesSpamFile string        `long:"samples-spam" env:"SAMPLES_SPAM" default:"data/spam-samples.txt" description:"spam samples"`
		SamplesHamFile  string        `long:"samples-ham" env:"SAMPLES_HAM" default:"data/ham-samples.txt" description:"ham samples"`
		StopWordsFile   string        `long:"stop-words" env:"STOP_WORDS" default:"data/stop-words.txt" description:"stop words file"`
		DynamicSpamFile string        `long:"dynamic-spam" env:"DYNAMIC_SPAM" default:"data/spam-dynamic.txt" description:"dynamic spam file"`
		DynamicHamFile  string        `long:"dynamic-ham" env:"DYNAMIC_HAM" default:"data/ham-dynamic.txt" description:"dynamic ham file"`
		WatchInterval   time.Duration `long:"watch-interval" env:"WATCH_INTERVAL" default:"5s" description:"watch interval"`
	} `group:"files" namespace:"files" env-namespace:"FILES"`

	MaxEmoji           int     `long:"max-emoji" env:"MAX_EMOJI" default:"2" description:"max emoji count in message, -1 to disable check"`
	MinSpamProbability float64 `long:"min-probability" env:"MIN_PROBABILITY" default:"50" description:"min spam probability percent to report"`

	Server struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable web API server"`
		ListenAddr string `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd string `long:"auth" env:"AUTH" default:"auto" description:"basic auth password for user tg-doorman, 'auto' to generate"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Dbg   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	TGDbg bool `long:"tg-dbg" env:"TG_DEBUG" description:"telegram debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("tg-doorman %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts.Dbg, opts.Telegram.Token, opts.OpenAI.Token)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	tbAPI, err := tbapi.NewBotAPI(opts.Telegram.Token)
	if err != nil {
		return fmt.Errorf("can't make telegram bot, %w", err)
	}
	tbAPI.Debug = opts.TGDbg

	gid := opts.DB.GID
	if gid == "" {
		gid = opts.Telegram.Group
	}
	db, err := makeDBEngine(ctx, opts.DB.Conn, gid)
	if err != nil {
		return fmt.Errorf("can't make db engine, %w", err)
	}
	defer db.Close()

	approvedUsers, err := storage.NewApprovedUsers(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make approved users store, %w", err)
	}
	reviewedProfiles, err := storage.NewReviewedProfiles(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make reviewed profiles store, %w", err)
	}
	badMessages, err := storage.NewBadMessages(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make bad messages store, %w", err)
	}

	detector := makeDetector(opts)
	filter, err := makeFilter(ctx, opts, detector)
	if err != nil {
		return fmt.Errorf("can't make filter, %w", err)
	}

	auditWr, err := makeAuditLogWriter(opts)
	if err != nil {
		return fmt.Errorf("can't make audit log writer, %w", err)
	}
	defer auditWr.Close()

	if opts.Server.Enabled {
		authPasswd := opts.Server.AuthPasswd
		if authPasswd == "auto" {
			if authPasswd, err = webapi.GenerateRandomPassword(20); err != nil {
				return fmt.Errorf("can't generate auth password, %w", err)
			}
			log.Printf("[WARN] generated basic auth password for user tg-doorman: %q", authPasswd)
		}
		srv := webapi.NewServer(webapi.Config{
			Version:    revision,
			ListenAddr: opts.Server.ListenAddr,
			Detector:   detector,
			SpamFilter: filter,
			Trust:      approvedUsers,
			BadContent: badMessages,
			AuthPasswd: authPasswd,
			Dbg:        opts.Dbg,
		})
		go func() {
			if srvErr := srv.Run(ctx); srvErr != nil {
				log.Printf("[WARN] webapi server failed: %v", srvErr)
			}
		}()
	}

	tgListener := events.TelegramListener{
		TbAPI:      tbAPI,
		Trust:      approvedUsers,
		Profiles:   reviewedProfiles,
		BadContent: badMessages,
		Classifier: filter,
		Recent:     events.NewRecentMessages(opts.History.Duration, opts.History.MaxUsers, opts.History.MaxPerUser),
		Audit:      makeAuditLogger(auditWr),
		Group:      opts.Telegram.Group,
		AdminGroup: opts.AdminGroup,
		SuperUsers: opts.SuperUsers,
	}
	log.Printf("[DEBUG] telegram listener config: {group: %s, admin: %s, super: %v}",
		tgListener.Group, tgListener.AdminGroup, tgListener.SuperUsers)

	// run telegram listener and event processor loop
	if err := tgListener.Do(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("telegram listener failed, %w", err)
	}
	return nil
}

// makeDBEngine creates a db engine, postgres for postgres:// urls and sqlite otherwise
func makeDBEngine(ctx context.Context, conn, gid string) (*engine.SQL, error) {
	if strings.HasPrefix(conn, "postgres://") {
		return engine.NewPostgres(ctx, conn, gid)
	}
	return engine.NewSqlite(conn, gid)
}

func makeDetector(opts options) *checker.Detector {
	detectorConfig := checker.Config{
		MaxAllowedEmoji:    opts.MaxEmoji,
		MinSpamProbability: opts.MinSpamProbability,
	}
	detector := checker.NewDetector(detectorConfig)
	log.Printf("[DEBUG] detector config: %+v", detectorConfig)

	if opts.OpenAI.Token != "" {
		log.Printf("[WARN] openai veto enabled")
		openAIConfig := checker.OpenAIConfig{
			SystemPrompt:      opts.OpenAI.Prompt,
			Model:             opts.OpenAI.Model,
			MaxTokensResponse: opts.OpenAI.MaxTokensResponse,
			MaxSymbolsRequest: opts.OpenAI.MaxSymbolsRequest,
		}
		log.Printf("[DEBUG] openai config: %+v", openAIConfig)
		detector.WithOpenAIVeto(openai.NewClient(opts.OpenAI.Token), openAIConfig)
	}

	if opts.Files.DynamicSpamFile != "" {
		detector.WithSpamUpdater(bot.NewSampleUpdater(opts.Files.DynamicSpamFile))
		log.Printf("[DEBUG] dynamic spam file: %s", opts.Files.DynamicSpamFile)
	}
	if opts.Files.DynamicHamFile != "" {
		detector.WithHamUpdater(bot.NewSampleUpdater(opts.Files.DynamicHamFile))
		log.Printf("[DEBUG] dynamic ham file: %s", opts.Files.DynamicHamFile)
	}
	return detector
}

func makeFilter(ctx context.Context, opts options, detector *checker.Detector) (*bot.Filter, error) {
	filterParams := bot.FilterConfig{
		SpamSamplesFile: opts.Files.SamplesSpamFile,
		HamSamplesFile:  opts.Files.SamplesHamFile,
		StopWordsFile:   opts.Files.StopWordsFile,
		SpamDynamicFile: opts.Files.DynamicSpamFile,
		HamDynamicFile:  opts.Files.DynamicHamFile,
		WatchDelay:      opts.Files.WatchInterval,
	}
	filter := bot.NewFilter(ctx, detector, filterParams)
	log.Printf("[DEBUG] filter config: %+v", filterParams)

	if err := filter.ReloadSamples(); err != nil {
		return nil, fmt.Errorf("can't reload samples, %w", err)
	}
	return filter, nil
}

// makeAuditLogger creates an audit logger writing one json line per action
func makeAuditLogger(wr io.Writer) events.AuditLogger {
	return events.AuditLoggerFunc(func(entry events.AuditEntry) {
		line, err := json.Marshal(&entry)
		if err != nil {
			log.Printf("[WARN] can't marshal audit entry, %v", err)
			return
		}
		if _, err := wr.Write(append(line, '\n')); err != nil {
			log.Printf("[WARN] can't write to audit log, %v", err)
		}
	})
}

// makeAuditLogWriter creates the audit log writer with rotation
func makeAuditLogWriter(opts options) (accessLog io.WriteCloser, err error) {
	if !opts.Logger.Enabled {
		return nopWriteCloser{io.Discard}, nil
	}

	sizeParse := func(inp string) (uint64, error) {
		if inp == "" {
			return 0, errors.New("empty value")
		}
		for i, sfx := range []string{"k", "m", "g", "t"} {
			if strings.HasSuffix(inp, strings.ToUpper(sfx)) || strings.HasSuffix(inp, strings.ToLower(sfx)) {
				val, err := strconv.Atoi(inp[:len(inp)-1])
				if err != nil {
					return 0, fmt.Errorf("can't parse %s: %w", inp, err)
				}
				return uint64(float64(val) * math.Pow(float64(1024), float64(i+1))), nil
			}
		}
		return strconv.ParseUint(inp, 10, 64)
	}

	maxSize, perr := sizeParse(opts.Logger.MaxSize)
	if perr != nil {
		return nil, fmt.Errorf("can't parse logger MaxSize: %w", perr)
	}

	maxSize /= 1048576

	log.Printf("[INFO] audit log enabled for %s, max size %dM", opts.Logger.FileName, maxSize)
	return &lumberjack.Logger{
		Filename:   opts.Logger.FileName,
		MaxSize:    int(maxSize), // in MB
		MaxBackups: opts.Logger.MaxBackups,
		Compress:   true,
		LocalTime:  true,
	}, nil
}

type nopWriteCloser struct{ io.Writer }

func (n nopWriteCloser) Close() error { return nil }

func setupLog(dbg bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
