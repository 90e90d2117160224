// ABOUTME: Package modelrun provides a Go SDK for the Modelrun platform.
// ABOUTME: This is the main package containing the Client and error helpers.

// Package modelrun provides a Go SDK for the Modelrun inference
// platform.
//
// The SDK covers models, model versions, and predictions, with
// client-side conveniences for polling a prediction to completion,
// streaming its output incrementally, and reading progress out of its
// logs.
//
// # Quick Start
//
// Create a client and run a model:
//
//	client, err := modelrun.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	output, err := client.Run(ctx, "stability-ai/sdxl:39ed52f2", map[string]any{
//	    "prompt": "an astronaut riding a horse",
//	})
//	if err != nil {
//	    if modelrun.IsModelError(err) {
//	        log.Fatal("the model failed:", err)
//	    }
//	    log.Fatal(err)
//	}
//
// For finer control, use the predictions namespace directly:
//
//	prediction, err := client.Predictions().Create(ctx, version, input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it := prediction.OutputIterator(ctx)
//	for it.Next() {
//	    fmt.Print(it.Current())
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The client reads configuration from environment variables by default:
//
//   - MODELRUN_API_TOKEN: API token (required)
//   - MODELRUN_API_URL: API base URL (optional)
//   - MODELRUN_POLL_INTERVAL: poll interval for Wait and streaming (optional)
//
// Configuration can also be provided explicitly:
//
//	client, err := modelrun.NewClient(
//	    modelrun.WithToken("mr_..."),
//	    modelrun.WithPollInterval(500*time.Millisecond),
//	)
//
// # Error Handling
//
// All API errors are returned as typed errors that can be inspected:
//
//	if modelrun.IsNotFound(err) {
//	    // Handle 404
//	}
//	if modelrun.IsRateLimited(err) {
//	    // Handle 429 - back off and retry
//	}
//	if modelrun.IsModelError(err) {
//	    // The prediction itself failed; the message is the
//	    // model's error text.
//	}
//
// # Thread Safety
//
// The Client and the namespace clients are safe for concurrent use
// after construction. Prediction and Model values are snapshots owned
// by the caller: they are updated in place by Reload, Wait, Cancel and
// the output iterator, and concurrent use of one value from multiple
// goroutines must be serialized by the caller.
package modelrun
