package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/Financial-Times/go-fthealth/v1a"
	"github.com/Financial-Times/http-handlers-go/httphandlers"
	"github.com/Financial-Times/service-status-go/gtg"
	status "github.com/Financial-Times/service-status-go/httphandlers"
	graphite "github.com/cyberdelia/go-metrics-graphite"
	"github.com/gorilla/mux"
	cli "github.com/jawher/mow.cli"
	"github.com/joho/godotenv"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/contact"
	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
	"github.com/kevinsamson6262-hub/stories-rw-firestore/stories"
)

func main() {
	godotenv.Load()

	app := cli.App("stories-rw-firestore", "A RESTful API for managing stories and contact messages in Firestore")

	gcpProject := app.String(cli.StringOpt{
		Name:   "gcp-project",
		Value:  "",
		Desc:   "Google Cloud project id owning the Firestore database. Leave as default to detect it from the environment",
		EnvVar: "GCP_PROJECT",
	})

	credentialsFile := app.String(cli.StringOpt{
		Name:   "firebase-credentials",
		Value:  "",
		Desc:   "Path to a Firebase service account credentials file. Leave as default to use application default credentials",
		EnvVar: "FIREBASE_CREDENTIALS",
	})

	corsOrigins := app.String(cli.StringOpt{
		Name:   "cors-origins",
		Value:  "*",
		Desc:   "Comma-separated list of origins allowed to call the API",
		EnvVar: "CORS_ORIGINS",
	})

	graphiteTCPAddress := app.String(cli.StringOpt{
		Name:   "graphiteTCPAddress",
		Value:  "",
		Desc:   "Graphite TCP address, e.g. graphite.example.com:2003. Leave as default if you do NOT want to output to graphite (e.g. if running locally",
		EnvVar: "GRAPHITE_ADDRESS",
	})

	graphitePrefix := app.String(cli.StringOpt{
		Name:   "graphitePrefix",
		Value:  "",
		Desc:   "Prefix to use. Should include the environment and the host name. e.g. content.test.stories.rw.firestore.host1",
		EnvVar: "GRAPHITE_PREFIX",
	})

	port := app.Int(cli.IntOpt{
		Name:   "port",
		Value:  8080,
		Desc:   "Port to listen on",
		EnvVar: "APP_PORT",
	})

	logMetrics := app.Bool(cli.BoolOpt{
		Name:   "logMetrics",
		Value:  false,
		Desc:   "Whether to log metrics. Set to true if running locally and you want metrics output",
		EnvVar: "LOG_METRICS",
	})

	env := app.String(cli.StringOpt{
		Name:  "env",
		Value: "local",
		Desc:  "environment this app is running in",
	})

	app.Action = func() {
		conn, err := store.Connect(context.Background(), *gcpProject, *credentialsFile)
		if err != nil {
			log.Fatalf("Could not connect to Firestore, error=[%s]\n", err)
		}
		defer conn.Close()

		outputMetricsIfRequired(*graphiteTCPAddress, *graphitePrefix, *logMetrics)

		if *env != "local" {
			f, err := os.OpenFile("/var/log/apps/stories-rw-firestore-go-app.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
			if err == nil {
				log.SetOutput(f)
				log.SetFormatter(&log.TextFormatter{DisableColors: true})
			} else {
				log.Fatalf("Failed to initialise log file, %v", err)
			}
			defer f.Close()
		}

		var m http.Handler
		m = router(conn)

		m = cors.New(cors.Options{
			AllowedOrigins:   strings.Split(*corsOrigins, ","),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(m)

		m = httphandlers.HTTPMetricsHandler(metrics.DefaultRegistry, m)

		http.Handle("/", m)

		log.Printf("listening on %d", *port)
		log.Println(http.ListenAndServe(fmt.Sprintf(":%d", *port), nil).Error())
		log.Println("exiting on stories-rw-firestore")
	}

	log.SetLevel(log.InfoLevel)
	log.Infof("Application started with args %s", os.Args)
	app.Run(os.Args)
}

// Router sets up the Router - extracted for testability
func router(conn store.Connection) *mux.Router {
	healthHandler := v1a.Handler("stories-rw-firestore ServiceModule", "Writes stories and contact messages to Firestore on behalf of the public site", makeCheck(conn))

	m := mux.NewRouter()

	gtgChecker := make([]gtg.StatusChecker, 0)

	storyHandler := stories.NewHTTPHandler(stories.NewService(conn))
	m.HandleFunc("/api/stories", storyHandler.CreateHandler).Methods("POST")
	m.HandleFunc("/api/stories", storyHandler.ListHandler).Methods("GET")

	contactHandler := contact.NewHTTPHandler(contact.NewService(conn))
	m.HandleFunc("/api/contact", contactHandler.CreateHandler).Methods("POST")

	m.HandleFunc("/api", rootHandler).Methods("GET")
	m.HandleFunc("/api/", rootHandler).Methods("GET")

	m.HandleFunc("/__health", healthHandler)
	m.HandleFunc(status.PingPath, status.PingHandler)
	m.HandleFunc(status.PingPathDW, status.PingHandler)
	m.HandleFunc(status.BuildInfoPath, status.BuildInfoHandler)
	m.HandleFunc(status.BuildInfoPathDW, status.BuildInfoHandler)

	m.HandleFunc(status.GTGPath, status.NewGoodToGoHandler(gtg.FailFastParallelCheck(gtgChecker)))
	return m
}

func rootHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	fmt.Fprintln(w, `{"message": "Hello from the Firestore-backed stories API!"}`)
}

func makeCheck(conn store.Connection) v1a.Check {
	return v1a.Check{
		BusinessImpact:   "Cannot read/write stories or contact messages via this writer",
		Name:             "Check connectivity to Firestore - gcp-project is a parameter for this service",
		PanicGuide:       "TODO - write panic guide",
		Severity:         1,
		TechnicalSummary: "Cannot connect to the Firestore database backing this service",
		Checker:          func() (string, error) { return "", conn.Check(context.Background()) },
	}
}

func outputMetricsIfRequired(graphiteTCPAddress string, graphitePrefix string, logMetrics bool) {
	if graphiteTCPAddress != "" {
		addr, err := net.ResolveTCPAddr("tcp", graphiteTCPAddress)
		if err != nil {
			log.WithError(err).Error("Invalid graphite address")
		} else {
			go graphite.Graphite(metrics.DefaultRegistry, 5*time.Second, graphitePrefix, addr)
		}
	}
	if logMetrics {
		go metrics.Log(metrics.DefaultRegistry, 60*time.Second, stdlog.New(os.Stdout, "metrics", stdlog.Lmicroseconds))
	}
}
