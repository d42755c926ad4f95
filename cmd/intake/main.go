package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/pkg/flows"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/submission"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	internalConfig := config.NewInternalConfig()

	flowName := flag.String("flow", schema.FlowContact.String(), "questionnaire to run: contact, assessment, referral or virtual-care")
	apiURL := flag.String("api", internalConfig.Submission.APIURL, "base URL of the intake service")
	level := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	log := logger.NewConsoleLogger(*level)
	defer log.Sync()

	flowType, ok := schema.ParseFlowType(*flowName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown flow %q\n", *flowName)
		os.Exit(2)
	}
	def, _ := flows.Get(flowType)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := submission.NewPipeline(*apiURL, internalConfig.Submission.Timeout, log)
	result, err := newSession(def, pipeline, os.Stdin, os.Stdout, log).run(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout, "\nCancelled.")
		os.Exit(1)
	case err != nil:
		log.Error("Intake session failed", zap.Error(err))
		os.Exit(1)
	case result.State != submission.Success:
		os.Exit(1)
	}
}
