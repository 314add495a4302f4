package main

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nerzal/gocloak/v13"
	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/proxy"

	"github.com/pitchpool/pitchpool.api/clients"
	"github.com/pitchpool/pitchpool.api/config"
	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/handlers"
	"github.com/pitchpool/pitchpool.api/notifiers"
)

var (
	auth           *handlers.AuthHandler
	UserContextKey = "user"
)

//go:embed data/migrations/*.sql
var embedMigrations embed.FS

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(90)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB, embedMigrations); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	rdb, err := redisClient(context.Background(), config.Config.RedisURL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	usersRepo := repos.NewUserRepo(db)
	contactRepo := repos.NewContactRepo(db)
	poolRepo := repos.NewPoolRepo(db)
	opportunityRepo := repos.NewOpportunityRepo(db)
	templateRepo := repos.NewTemplateRepo(db)
	campaignRepo := repos.NewCampaignRepo(db)
	queueRepo := repos.NewQueueRepo(db)

	keycloakClient := gocloak.NewClient(config.Config.KeycloakURL)
	auth = handlers.NewAuthHandler(keycloakClient)
	go auth.StartTokenTicker()

	client, err := httpClient(config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}

	finder := clients.NewFinder(logger, client, config.Config.FinderAPIURL, config.Config.FinderAPIKey)
	verifier := clients.NewVerifier(logger, client, rdb, config.Config.VerifierAPIURL, config.Config.VerifierAPIKey)
	categorizer := clients.NewCategorizer(logger, client, config.Config.CategorizerAPIURL, config.Config.CategorizerAPIKey)

	mailer := notifiers.NewMailer(
		config.Config.SMTPHost,
		config.Config.SMTPPort,
		config.Config.SMTPFrom,
		config.Config.SMTPPassword,
		config.Config.AppBaseURL,
	)

	sender := NewSender(queueRepo, mailer)
	if config.Config.EnableSender {
		if err := sender.Start(); err != nil {
			slog.Error("failed to start sender", "error", err)
			os.Exit(1)
		}
	}

	users := handlers.NewUserHandler(usersRepo)
	contacts := handlers.NewContactHandler(contactRepo, verifier, categorizer)
	pools := handlers.NewPoolHandler(poolRepo, contactRepo)
	opportunities := handlers.NewOpportunityHandler(opportunityRepo)
	templates := handlers.NewTemplateHandler(templateRepo)
	campaigns := handlers.NewCampaignHandler(campaignRepo, contactRepo, opportunityRepo, templateRepo, queueRepo)
	discovery := handlers.NewDiscoveryHandler(finder, categorizer, contactRepo)
	feedback := handlers.NewFeedbackHandler(mailer)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /users/init", private(users.InitializeUser))

	mux.HandleFunc("POST /contacts", private(contacts.CreateContact))
	mux.HandleFunc("GET /contacts", private(contacts.GetContacts))
	mux.HandleFunc("GET /contacts/{id}", private(contacts.GetContact))
	mux.HandleFunc("PUT /contacts/{id}", private(contacts.UpdateContact))
	mux.HandleFunc("DELETE /contacts/{id}", private(contacts.DeleteContact))
	mux.HandleFunc("POST /contacts/{id}/verify", private(contacts.VerifyContact))
	mux.HandleFunc("POST /contacts/{id}/categorize", private(contacts.CategorizeContact))

	mux.HandleFunc("POST /pools", private(pools.CreatePool))
	mux.HandleFunc("GET /pools", private(pools.GetPools))
	mux.HandleFunc("GET /pools/{id}", private(pools.GetPool))
	mux.HandleFunc("PUT /pools/{id}", private(pools.UpdatePool))
	mux.HandleFunc("DELETE /pools/{id}", private(pools.DeletePool))
	mux.HandleFunc("POST /pools/{id}/contacts", private(pools.AddContacts))
	mux.HandleFunc("DELETE /pools/{id}/contacts/{contactId}", private(pools.RemoveContact))

	mux.HandleFunc("POST /opportunities", private(opportunities.CreateOpportunity))
	mux.HandleFunc("GET /opportunities", private(opportunities.GetOpportunities))
	mux.HandleFunc("GET /opportunities/{id}", private(opportunities.GetOpportunity))
	mux.HandleFunc("PUT /opportunities/{id}", private(opportunities.UpdateOpportunity))
	mux.HandleFunc("DELETE /opportunities/{id}", private(opportunities.DeleteOpportunity))

	mux.HandleFunc("POST /templates", private(templates.CreateTemplate))
	mux.HandleFunc("GET /templates", private(templates.GetTemplates))
	mux.HandleFunc("GET /templates/{id}", private(templates.GetTemplate))
	mux.HandleFunc("PUT /templates/{id}", private(templates.UpdateTemplate))
	mux.HandleFunc("DELETE /templates/{id}", private(templates.DeleteTemplate))

	mux.HandleFunc("POST /campaigns/preview", private(campaigns.PreviewCampaign))
	mux.HandleFunc("POST /campaigns", private(campaigns.LaunchCampaign))
	mux.HandleFunc("GET /campaigns", private(campaigns.GetCampaigns))
	mux.HandleFunc("GET /campaigns/{id}", private(campaigns.GetCampaign))

	mux.HandleFunc("POST /discovery/search", private(discovery.Search))

	mux.HandleFunc("POST /feedback", private(feedback.SubmitFeedback))

	mux.Handle("GET /metrics", promhttp.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		if config.Config.EnableSender {
			sender.Stop()
		}
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)

	}()

	slog.Info("Starting server on port 8080")
	err = http.ListenAndServe(":8080", withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func redisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

func httpClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: 15 * time.Second}

	if proxyURL == "" {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme != "socks5" {
		return client, nil
	}

	// SOCKS5 proxy with authentication
	var auth *proxy.Auth
	if parsedURL.User != nil {
		password, _ := parsedURL.User.Password()
		auth = &proxy.Auth{
			User:     parsedURL.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}
	slog.Info("using SOCKS5 proxy", "proxy", parsedURL.Host)

	return client, nil
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func private(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		result := auth.GetUser(r.Context(), authHeader)
		if result.Code != http.StatusOK {
			slog.Debug("unauthorized request", "path", r.URL.Path)
			writeResult(w, result)
			return
		}

		user := result.Body.(data.User)
		ctx := context.WithValue(r.Context(), UserContextKey, user)

		public(handler)(w, r.WithContext(ctx))
	}
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	if res.Code == http.StatusInternalServerError {
		slog.Error("internal error", "error", res.Error.Error())
	}
}
