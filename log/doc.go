// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports two output formats ([FormatText] and [FormatJSON]) and the
// standard severity levels. Use [NewHandler] to create a handler directly,
// or use [Config] with CLI flag integration via [github.com/spf13/pflag]
// and shell completion support via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
