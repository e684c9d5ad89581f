package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

var port int

func init() {
	serveCmd.Flags().IntVar(&port, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves scales, chords, positions, patterns, triads and board renders over HTTP`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		cobra.CheckErr(serve(ctx))
	},
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	router.HandleFunc("/scales/{key}/{scale}", HandleScale).Methods("GET")
	router.HandleFunc("/circle", HandleCircle).Methods("GET")
	router.HandleFunc("/chords/{symbol}", HandleChord).Methods("GET")
	router.HandleFunc("/diatonic/{key}/{scale}", HandleDiatonic).Methods("GET")
	router.HandleFunc("/instruments", HandleInstruments).Methods("GET")
	router.HandleFunc("/positions", HandlePositions).Methods("POST")
	router.HandleFunc("/patterns", HandlePatterns).Methods("POST")
	router.HandleFunc("/triads", HandleTriads).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(router)
}

func serve(ctx context.Context) error {
	LoadDynamo(ctx)
	if path := constants.GetCatalogPath(); path != "" {
		delay := time.Duration(constants.CatalogDebounceMillis) * time.Millisecond
		go func() {
			if err := instrument.Watch(ctx, path, registry, delay, logger); err != nil {
				logger.Error("catalog watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: NewRouter()}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
