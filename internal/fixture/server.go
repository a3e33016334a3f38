package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/adopt"
)

// Options configures the fixture API.
type Options struct {
	// Shape selects the wire form of /api/pets. Empty means the canonical envelope.
	Shape adopt.Shape
	// Pets replaces the default dataset when non-nil.
	Pets []adopt.Pet
	// AllowedOrigins lists CORS origins. Empty allows any origin.
	AllowedOrigins []string
	Log            *zap.Logger
}

type server struct {
	shape adopt.Shape
	pets  []adopt.Pet
	byID  map[string]adopt.Pet
	log   *zap.Logger
}

// NewRouter builds the fixture API handler.
func NewRouter(opts Options) http.Handler {
	s := &server{shape: opts.Shape, pets: opts.Pets, log: opts.Log}
	if s.shape == "" {
		s.shape = adopt.ShapeEnvelope
	}
	if s.pets == nil {
		s.pets = Pets()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.byID = make(map[string]adopt.Pet, len(s.pets))
	for _, p := range s.pets {
		s.byID[p.ID] = p
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/pets", s.listPets)
		ar.Get("/pets/{petID}", s.getPet)
		ar.Get("/breeds/{species}", s.listBreeds)
	})

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

func (s *server) listPets(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := adopt.PetQuery{Filters: adopt.FiltersFromValues(values)}

	var err error
	if q.Page, err = intParam(values.Get("page"), 0); err != nil || q.Page < 0 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	if q.Size, err = intParam(values.Get("size"), DefaultPageSize); err != nil || q.Size <= 0 {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}
	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		if q.Sort, err = adopt.ParseSort(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if s.shape == adopt.ShapeArray {
		// The bare array form is the whole matching list; clients page it.
		matched := Filter(s.pets, q.Filters)
		SortPets(matched, q.Sort)
		writeJSON(w, http.StatusOK, adopt.EncodePage(adopt.Page{Items: matched}, adopt.ShapeArray))
		return
	}
	page := Query(s.pets, q)
	writeJSON(w, http.StatusOK, adopt.EncodePage(page, s.shape))
}

func (s *server) getPet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "petID"))
	if err != nil {
		http.Error(w, "invalid pet id", http.StatusBadRequest)
		return
	}
	p, ok := s.byID[id.String()]
	if !ok {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *server) listBreeds(w http.ResponseWriter, r *http.Request) {
	species, ok := adopt.ParseSpecies(chi.URLParam(r, "species"))
	if !ok {
		http.Error(w, "species must be dog or cat", http.StatusBadRequest)
		return
	}
	name := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("name")))

	out := make([]adopt.BreedData, 0)
	for _, b := range Breeds(species) {
		if name == "" || strings.Contains(strings.ToLower(b.Name), name) {
			out = append(out, b)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("fixture api listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("fixture api stopped")
	return nil
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", chimw.GetReqID(r.Context())))
		})
	}
}

func intParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
