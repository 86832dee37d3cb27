package cmd

import (
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/strat-chain/strat-go/api"
	logging "github.com/strat-chain/strat-go/log"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Send a list of requests concurrently",
	Long: `Send every request listed in a YAML file and print the results in order.
A failed request does not stop the others.

File format:
  - method: GET
    endpoint: /api/blockchain/info
  - method: POST
    endpoint: /api/mining/start
    body:
      minerAddress: "0x1111..."`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// batchOutcome is the printed form of one api.BatchResult
type batchOutcome struct {
	Method   string    `json:"method"`
	Endpoint string    `json:"endpoint"`
	Result   api.Value `json:"result,omitempty"`
	Error    string    `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	requests, err := loadBatchFile(args[0])
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return errors.Errorf("%s contains no requests", args[0])
	}

	logger := logging.FromContext(cmd.Context())

	bar := progressbar.NewOptions(len(requests),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Sending requests...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)

	var mu sync.Mutex
	results := client.Batch(cmd.Context(), requests, func(result api.BatchResult) {
		mu.Lock()
		defer mu.Unlock()
		_ = bar.Add(1)
		if result.Err != nil {
			logger.Debug("batch request failed",
				zap.String("method", result.Request.Method),
				zap.String("endpoint", result.Request.Endpoint),
				zap.Error(result.Err),
			)
		}
	})
	_ = bar.Finish()

	outcomes, failed := summarizeBatch(results)
	if err := printJSON(cmd, outcomes); err != nil {
		return err
	}

	if failed > 0 {
		cmd.PrintErrf("⚠️  %s of %d requests failed\n", color.RedString("%d", failed), len(results))
	} else {
		cmd.PrintErrf("✅ %d requests succeeded\n", len(results))
	}
	return nil
}

// loadBatchFile reads a YAML list of requests. Methods default to GET and are upper-cased.
func loadBatchFile(path string) ([]api.BatchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read batch file")
	}

	var requests []api.BatchRequest
	if err := yaml.Unmarshal(data, &requests); err != nil {
		return nil, errors.Wrapf(err, "failed to parse batch file %s", path)
	}

	for i := range requests {
		req := &requests[i]
		if req.Endpoint == "" {
			return nil, errors.Errorf("request %d: endpoint is required", i+1)
		}
		if req.Method == "" {
			req.Method = http.MethodGet
		}
		req.Method = strings.ToUpper(req.Method)
		req.Body = normalizeYAML(req.Body)
	}

	return requests, nil
}

// normalizeYAML turns yaml.v3 maps into map[string]interface{} so bodies encode as JSON
func normalizeYAML(value api.Value) api.Value {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalizeYAML(item)
		}
		return v
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[toString(key)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return value
	}
}

func toString(key interface{}) string {
	if s, ok := key.(string); ok {
		return s
	}
	data, _ := yaml.Marshal(key)
	return strings.TrimSpace(string(data))
}

func summarizeBatch(results []api.BatchResult) ([]batchOutcome, int) {
	outcomes := make([]batchOutcome, len(results))
	failed := 0
	for i, result := range results {
		outcomes[i] = batchOutcome{
			Method:   result.Request.Method,
			Endpoint: result.Request.Endpoint,
			Result:   result.Value,
		}
		if result.Err != nil {
			outcomes[i].Error = result.Err.Error()
			failed++
		}
	}
	return outcomes, failed
}
