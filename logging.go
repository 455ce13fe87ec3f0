package takrules

import (
	"github.com/icco/gutil/logging"
)

const (
	// Service is the name of this service.
	Service = "takrules"
)

var (
	log = logging.Must(logging.NewLogger(Service))
)
