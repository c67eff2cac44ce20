package adapter

import (
	"github.com/go-resty/resty/v2"

	"github.com/lyra-school/lyra-client/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID forwards the trace id of the user action to CouchDB so its
// access log lines up with the client log.
func withTraceID(_ *resty.Client, req *resty.Request) error {
	if traceID, ok := utils.GetTraceIDFromContext(req.Context()); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return nil
}
