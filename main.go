package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendbook/backend/internal/controllers/v1"
	"github.com/spendbook/backend/internal/money"
	"github.com/spendbook/backend/internal/router"
	"github.com/spendbook/backend/internal/session"
	"github.com/spendbook/backend/internal/state"
	"github.com/spendbook/backend/internal/storage"
)

func main() {
	// Local development configuration can come from a .env file.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}

	clock := state.SystemClock{}

	local, err := storage.NewLocalStore(dataDir, clock)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database holding the per-user state records
	db, err := storage.Connect(filepath.Join(dataDir, "spendbook.db") + "?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Migrate all models so that the schema is correct
	if err := storage.Migrate(db); err != nil {
		log.Fatal().Msg(err.Error())
	}

	currencyCode, ok := os.LookupEnv("CURRENCY")
	if !ok {
		currencyCode = "RUB"
	}
	locale, ok := os.LookupEnv("LOCALE")
	if !ok {
		locale = "ru"
	}

	formatter, err := money.NewFormatter(locale, currencyCode)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := state.NewStore(local.Load(), state.NewReducer(state.UUIDSource{}, clock), local)

	sess := session.New(store, storage.NewRemoteStore(db, clock), session.DefaultDebounce)
	defer sess.Close()

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.NewController(store, sess, formatter, locale, clock)
	router.AttachRoutes(co, db, r.Group(""))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
