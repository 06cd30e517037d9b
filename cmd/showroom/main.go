package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/jawa-showroom/internal/application/auth"
	"github.com/jhoicas/jawa-showroom/internal/application/booking"
	"github.com/jhoicas/jawa-showroom/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/jawa-showroom/internal/infrastructure/pdf"
	"github.com/jhoicas/jawa-showroom/internal/interfaces/cli"
	"github.com/jhoicas/jawa-showroom/pkg/config"
	"github.com/jhoicas/jawa-showroom/pkg/logger"
	"github.com/jhoicas/jawa-showroom/pkg/security"
)

const sessionFileName = "session.token"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	hasher, err := security.NewHasher(cfg.Security.PasswordHasher, cfg.Security.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("estrategia de hash")
	}

	store := filestore.New(cfg.Store.DataDir, log)
	showroom := booking.Showroom{
		Name:    cfg.Showroom.Name,
		Address: cfg.Showroom.Address,
		Phone:   cfg.Showroom.Phone,
		GSTIN:   cfg.Showroom.GSTIN,
	}
	if err := security.ValidateGSTIN(showroom.GSTIN); err != nil {
		// La factura se emite igual; el GSTIN solo se imprime.
		log.Info().Err(err).Str("gstin", showroom.GSTIN).Msg("GSTIN del concesionario no verificado")
	}

	authUC := auth.NewAuthUseCase(store, hasher, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, log)
	bookingUC := booking.NewBookingUseCase(store, showroom, log)
	pdfUC := booking.NewPDFUseCase(store, infrapdf.NewMarotoPDFGenerator(), showroom)

	root := cli.NewRootCommand(&cli.App{
		Auth:        authUC,
		Bookings:    bookingUC,
		PDF:         pdfUC,
		Bikes:       store,
		Log:         log,
		SessionFile: filepath.Join(cfg.Store.DataDir, sessionFileName),
		InvoiceDir:  cfg.Showroom.InvoiceDir,
		In:          os.Stdin,
		Out:         os.Stdout,
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
