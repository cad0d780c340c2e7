package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safmod/saf-pathways/internal/api"
	"github.com/safmod/saf-pathways/internal/calculation"
	"github.com/safmod/saf-pathways/internal/config"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scenario model as an HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port")
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML run configuration (assumption overrides)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	assumptions := config.DefaultConfiguration().Assumptions
	if configFile != "" {
		cfg, err := config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return err
		}
		assumptions = cfg.Assumptions
	}

	engine, err := calculation.NewCalculationEngineWithAssumptions(assumptions)
	if err != nil {
		return err
	}
	engine.SetLogger(log)

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(engine, log)

	addr := fmt.Sprintf(":%d", servePort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.WithCORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Infof("listening on %s", addr)
	return srv.ListenAndServe()
}
