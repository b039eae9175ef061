package ports

import "github.com/bft-labs/coordmod/pkg/log"

// Logger is the logging port. It is the public pkg/log interface so adapters
// and embedders share one implementation.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
