package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strat-chain/strat-go/config"
	"github.com/strat-chain/strat-go/profile"
)

type nodeRequest struct {
	Method        string
	URI           string
	Body          string
	Authorization string
}

// stubNode answers by request path and records what it saw
type stubNode struct {
	mu        sync.Mutex
	requests  []nodeRequest
	responses map[string]string
}

func newStubNode(t *testing.T, responses map[string]string) (*httptest.Server, *stubNode) {
	t.Helper()

	node := &stubNode{responses: responses}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		node.mu.Lock()
		node.requests = append(node.requests, nodeRequest{
			Method:        r.Method,
			URI:           r.RequestURI,
			Body:          string(body),
			Authorization: r.Header.Get("Authorization"),
		})
		node.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		resp, ok := node.responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error": "not found"}`)
			return
		}
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(srv.Close)

	return srv, node
}

func (n *stubNode) last(t *testing.T) nodeRequest {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.requests)
	return n.requests[len(n.requests)-1]
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with a fresh HOME and returns stdout
func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()

	if home == "" {
		home = t.TempDir()
	}
	t.Setenv("HOME", home)

	resetFlags(rootCmd)
	v = config.New()
	bindFlags(rootCmd.PersistentFlags())
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestChainInfoPrintsJSON(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{
		"/api/blockchain/info": `{"height": 7, "difficulty": 4}`,
	})

	out, err := execute(t, "", "--api-url", srv.URL, "chain", "info")
	require.NoError(t, err)
	assert.JSONEq(t, `{"height": 7, "difficulty": 4}`, out)
	assert.Equal(t, http.MethodGet, node.last(t).Method)
	assert.Empty(t, node.last(t).Authorization)
}

func TestChainBlockRoutesByIdentifier(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{
		"/api/blockchain/block-by-index/42": `{"index": 42}`,
		"/api/blockchain/block/ab12":        `{"hash": "ab12"}`,
	})

	_, err := execute(t, "", "--api-url", srv.URL, "chain", "block", "42")
	require.NoError(t, err)
	assert.Equal(t, "/api/blockchain/block-by-index/42", node.last(t).URI)

	_, err = execute(t, "", "--api-url", srv.URL, "chain", "block", "ab12")
	require.NoError(t, err)
	assert.Equal(t, "/api/blockchain/block/ab12", node.last(t).URI)
}

func TestChainBlocksLimitFlag(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{"/api/blockchain/blocks": `[]`})

	_, err := execute(t, "", "--api-url", srv.URL, "chain", "blocks", "--limit", "3")
	require.NoError(t, err)
	assert.Equal(t, "/api/blockchain/blocks?limit=3", node.last(t).URI)

	_, err = execute(t, "", "--api-url", srv.URL, "chain", "blocks")
	require.NoError(t, err)
	assert.Equal(t, "/api/blockchain/blocks?limit=10", node.last(t).URI)
}

func TestAPIErrorIsReturned(t *testing.T) {
	srv, _ := newStubNode(t, nil)

	_, err := execute(t, "", "--api-url", srv.URL, "tx", "get", "abc")
	require.Error(t, err)
	assert.EqualError(t, err, "failed to get transaction: API error (404): not found")
}

func TestTxSendWithPrivateKeyFlag(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{"/api/transactions/send": `{"txId": "t1"}`})

	out, err := execute(t, "", "--api-url", srv.URL, "--api-key", "k1",
		"tx", "send", "0xaaa", "0xbbb", "2.5", "--private-key", "pk")
	require.NoError(t, err)
	assert.JSONEq(t, `{"txId": "t1"}`, out)

	got := node.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "Bearer k1", got.Authorization)
	assert.JSONEq(t, `{"fromAddress": "0xaaa", "toAddress": "0xbbb", "amount": 2.5, "privateKey": "pk"}`, got.Body)
}

func TestTxSendRejectsBadAmount(t *testing.T) {
	srv, node := newStubNode(t, nil)

	_, err := execute(t, "", "--api-url", srv.URL, "tx", "send", "0xaaa", "0xbbb", "0", "--private-key", "pk")
	require.Error(t, err)
	assert.Empty(t, node.requests)
}

func TestGovListStatus(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{"/api/governance/proposals": `[]`})

	_, err := execute(t, "", "--api-url", srv.URL, "gov", "list", "--status", "active")
	require.NoError(t, err)
	assert.Equal(t, "/api/governance/proposals?status=active", node.last(t).URI)

	_, err = execute(t, "", "--api-url", srv.URL, "gov", "list")
	require.NoError(t, err)
	assert.Equal(t, "/api/governance/proposals", node.last(t).URI)
}

func TestWalletBalance(t *testing.T) {
	srv, _ := newStubNode(t, map[string]string{"/api/wallets/balance/0xabc": `{"balance": 12.5}`})

	out, err := execute(t, "", "--api-url", srv.URL, "wallet", "balance", "0xabc")
	require.NoError(t, err)
	assert.Contains(t, out, "12.5 STRAT")
}

func TestUtilCommands(t *testing.T) {
	out, err := execute(t, "", "util", "to-wei", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000\n", out)

	out, err = execute(t, "", "util", "from-wei", "1500000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1.5\n", out)

	out, err = execute(t, "", "util", "validate", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Contains(t, out, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")

	_, err = execute(t, "", "util", "validate", "0x123")
	require.Error(t, err)

	_, err = execute(t, "", "util", "from-wei", "1.5")
	require.Error(t, err)
}

func TestProfileCredentialIsSent(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{"/health": `{"status": "ok"}`})

	home := t.TempDir()
	manager := profile.NewManager(filepath.Join(home, config.DirName))
	require.NoError(t, manager.SaveCredential("sealed-token", "passphrase"))
	require.NoError(t, manager.Unlock("passphrase", srv.URL))

	_, err := execute(t, home, "--api-url", srv.URL, "health")
	require.NoError(t, err)
	assert.Equal(t, "Bearer sealed-token", node.last(t).Authorization)

	_, err = execute(t, home, "--api-url", srv.URL, "--api-key", "explicit", "health")
	require.NoError(t, err)
	assert.Equal(t, "Bearer explicit", node.last(t).Authorization)

	_, err = execute(t, home, "--api-url", srv.URL, "lock")
	require.NoError(t, err)

	_, err = execute(t, home, "--api-url", srv.URL, "health")
	require.NoError(t, err)
	assert.Empty(t, node.last(t).Authorization)
}

func TestConfigFileIsUsed(t *testing.T) {
	srv, node := newStubNode(t, map[string]string{"/api": `{"version": "1.0"}`})

	home := t.TempDir()
	require.NoError(t, config.Write(filepath.Join(home, config.DirName, config.FileName), config.Settings{
		APIURL:  srv.URL,
		APIKey:  "from-file",
		Timeout: defaultTestTimeout,
	}))

	out, err := execute(t, home, "api-version")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "1.0"}`, out)
	assert.Equal(t, "Bearer from-file", node.last(t).Authorization)
}

func TestBatchCommand(t *testing.T) {
	srv, _ := newStubNode(t, map[string]string{
		"/health":           `{"status": "ok"}`,
		"/api/mining/start": `{"started": true}`,
	})

	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- endpoint: /health
- method: post
  endpoint: /api/mining/start
  body:
    minerAddress: "0x1111"
- endpoint: /missing
`), 0600))

	out, err := execute(t, "", "--api-url", srv.URL, "batch", path)
	require.NoError(t, err)

	var outcomes []batchOutcome
	require.NoError(t, json.Unmarshal([]byte(out), &outcomes))
	require.Len(t, outcomes, 3)

	assert.Equal(t, "GET", outcomes[0].Method)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, outcomes[0].Result)
	assert.Equal(t, "POST", outcomes[1].Method)
	assert.Equal(t, map[string]interface{}{"started": true}, outcomes[1].Result)
	assert.Equal(t, "/missing", outcomes[2].Endpoint)
	assert.Equal(t, "API error (404): not found", outcomes[2].Error)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "strat v"+version+"\n", out)
}

func TestConfigInitWritesSettings(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, config.DirName, config.FileName)

	out, err := execute(t, home, "--api-url", "https://node.example.com", "--timeout", "12s",
		"--api-key", "secret", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	saved, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://node.example.com", saved.APIURL)
	assert.Equal(t, 12*time.Second, saved.Timeout)
	assert.Empty(t, saved.APIKey)

	_, err = execute(t, home, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, home, "--api-key", "secret", "config", "init", "--force", "--save-key")
	require.NoError(t, err)

	saved, err = config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://node.example.com", saved.APIURL)
	assert.Equal(t, "secret", saved.APIKey)
}

func TestOfflineCommandsIgnoreBrokenConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, config.DirName), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, config.DirName, config.FileName),
		[]byte("api_url: [unclosed\n"), 0600))

	out, err := execute(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "strat v"+version+"\n", out)

	out, err = execute(t, home, "util", "to-wei", "2")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000\n", out)

	_, err = execute(t, home, "health")
	assert.ErrorContains(t, err, "failed to read config file")
}
