package logger

import "go.uber.org/zap"

// New builds the production logger. Logs go to stdout, matching the
// single-stream contract of the rest of the program.
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
