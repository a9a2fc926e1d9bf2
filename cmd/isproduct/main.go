// Command isproduct reads "a b product" from input.txt in the working
// directory and writes YES or NO to output.txt. Errors go to stderr; the exit
// status is always 0.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/ib-77/isproduct/pkg/product"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	product.NewPipeline(product.DefaultConfig(), logger).Run(context.Background())
}
