package main

import (
	"errors"
	"net/http"

	"github.com/greenside/greenside/cmd/greenside/shared"
	"github.com/greenside/greenside/internal/courses"
	"github.com/greenside/greenside/internal/games"
	"github.com/greenside/greenside/internal/server"
)

// ServerCmd runs the live scorecard server.
type ServerCmd struct {
	Addr        string `kong:"help='Listen address, overrides the config file'"`
	Config      string `kong:"default='greenside.hcl',help='Server config file (HCL)'"`
	Debug       bool   `kong:"help='Enable debug logging'"`
	CourseFile  string `kong:"help='Course definitions file (HCL), overrides the config file'"`
	JunkCatalog string `kong:"help='Junk achievement catalog (YAML), overrides the config file'"`
}

func (c *ServerCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadServerConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.CourseFile != "" {
		cfg.Server.CourseFile = c.CourseFile
	}
	if c.JunkCatalog != "" {
		cfg.Server.JunkCatalog = c.JunkCatalog
	}
	if !c.Debug {
		logger.SetLevel(shared.ParseLevel(cfg.Server.LogLevel))
	}

	library := courses.NewLibrary()
	if cfg.Server.CourseFile != "" {
		if err := library.LoadFile(cfg.Server.CourseFile); err != nil {
			return err
		}
	}
	if cfg.Server.DefaultCourse != "" {
		if err := library.SetDefault(cfg.Server.DefaultCourse); err != nil {
			return err
		}
	}

	var catalog []games.Achievement
	if cfg.Server.JunkCatalog != "" {
		catalog, err = games.LoadCatalog(cfg.Server.JunkCatalog)
		if err != nil {
			return err
		}
		logger.Info("loaded junk catalog", "file", cfg.Server.JunkCatalog, "achievements", len(catalog))
	}

	s := server.NewServer(cfg.Server.Address, library, logger,
		server.WithJunkCatalog(catalog))

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return s.Stop()
	case err := <-serverErr:
		return err
	}
}
