package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/heidelpay-go"
	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

const usage = `usage: heidelpay [-detailed] <command> [args]

commands:
  keypair                     show the merchant configuration of the key
  payment <id|orderId>        fetch a payment
  customer <id|customerId>    fetch a customer
  type <typeId>               fetch a payment type
  webhooks                    list registered webhooks
  event <file>                fetch the resource named by a webhook event body

The key and settings are read from HEIDELPAY_* environment variables or a .env file.`

var errUsage = errors.New("invalid usage")

func main() {
	detailed := flag.Bool("detailed", false, "fetch the detailed keypair")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if err := checkArgs(flag.Args()); err != nil {
		flag.Usage()
		os.Exit(2)
	}

	hp, err := heidelpay.NewFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, hp, flag.Args(), *detailed)
	if err != nil {
		if apiErr, ok := domain.IsAPIError(err); ok {
			slog.Error("gateway rejected request", "code", apiErr.Code, "message", apiErr.MerchantMessage, "error_id", apiErr.ErrorID)
		} else {
			slog.Error("request failed", "error", err)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("failed to write result", "error", err)
		os.Exit(1)
	}
}

// checkArgs validates the command line without touching the configuration.
func checkArgs(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "keypair", "webhooks":
		if len(args) == 1 {
			return nil
		}
	case "payment", "customer", "type", "event":
		if len(args) == 2 {
			return nil
		}
	}
	return errUsage
}

func run(ctx context.Context, hp *heidelpay.Heidelpay, args []string, detailed bool) (any, error) {
	if err := checkArgs(args); err != nil {
		return nil, err
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "keypair":
		return hp.FetchKeypair(ctx, detailed)
	case "webhooks":
		return hp.FetchAllWebhooks(ctx)
	case "payment":
		return hp.FetchPayment(ctx, rest[0])
	case "customer":
		return hp.FetchCustomer(ctx, rest[0])
	case "type":
		return hp.FetchPaymentType(ctx, rest[0])
	case "event":
		body, err := os.ReadFile(rest[0])
		if err != nil {
			return nil, fmt.Errorf("reading event: %w", err)
		}
		return hp.FetchResourceFromEvent(ctx, body)
	}
	return nil, errUsage
}
