// Package httpserver runs an http.Server with bounded timeouts and graceful
// shutdown.
//
// Run binds the listener, closes Ready, and serves until its context is
// cancelled; it then calls Shutdown, which gives in-flight requests up to the
// shutdown timeout to finish. Signal handling is left to the caller, usually
// through signal.NotifyContext in main:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped in ErrStart and drain failures in ErrShutdown.
package httpserver
