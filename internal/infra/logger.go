// README: zap logger construction shared by the API and CLI entry points.
package infra

import "go.uber.org/zap"

// NewLogger returns a JSON production logger on stdout, or a console
// development logger when env is "development".
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
