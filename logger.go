package futures

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger receives unhandled-rejection reports from the default handler.
// Replace it, or the handler itself with SetUnhandledRejectionHandler, to
// route them elsewhere.
var (
	log    = logrus.New()
	Logger = log
)

func init() {
	// set level from env
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, err := logrus.ParseLevel(x); err == nil {
			Logger.SetLevel(level)
		}
	}
}
